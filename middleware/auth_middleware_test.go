package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/teacher-only", Protected(), TeacherRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin-only", Protected(), AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/teacher-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	req := httptest.NewRequest("GET", "/teacher-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoleGates(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := testApp()

	tests := []struct {
		name   string
		path   string
		role   string
		status int
	}{
		{name: "teacher passes teacher gate", path: "/teacher-only", role: "teacher", status: fiber.StatusOK},
		{name: "student blocked from teacher gate", path: "/teacher-only", role: "student", status: fiber.StatusForbidden},
		{name: "admin blocked from teacher gate", path: "/teacher-only", role: "admin", status: fiber.StatusForbidden},
		{name: "admin passes admin gate", path: "/admin-only", role: "admin", status: fiber.StatusOK},
		{name: "teacher blocked from admin gate", path: "/admin-only", role: "teacher", status: fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tt.role))
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
