package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/edumart/course_market/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "course not found", err: services.ErrCourseNotFound, status: fiber.StatusNotFound},
		{name: "teacher not found", err: services.ErrTeacherNotFound, status: fiber.StatusNotFound},
		{name: "student not found", err: services.ErrStudentNotFound, status: fiber.StatusNotFound},
		{name: "enrollment not found", err: services.ErrEnrollmentNotFound, status: fiber.StatusNotFound},
		{name: "duplicate enrollment", err: services.ErrDuplicateEnrollment, status: fiber.StatusConflict},
		{name: "capacity exceeded", err: services.ErrCapacityExceeded, status: fiber.StatusConflict},
		{name: "payment failed", err: services.ErrPaymentFailed, status: fiber.StatusPaymentRequired},
		{name: "payout failed", err: services.ErrPayoutFailed, status: fiber.StatusBadRequest},
		{name: "invalid state", err: services.ErrInvalidState, status: fiber.StatusBadRequest},
		{name: "wrapped capacity error", err: fmt.Errorf("%w: course xyz", services.ErrCapacityExceeded), status: fiber.StatusConflict},
		{name: "wrapped payment error", err: fmt.Errorf("%w: card declined", services.ErrPaymentFailed), status: fiber.StatusPaymentRequired},
		{name: "unknown error hides detail", err: fmt.Errorf("pq: connection refused"), status: fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			require.Equal(t, tt.status, resp.StatusCode)

			var body struct {
				Success    bool        `json:"success"`
				StatusCode int         `json:"statusCode"`
				Message    string      `json:"message"`
				Data       interface{} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.False(t, body.Success)
			require.Equal(t, tt.status, body.StatusCode)
			require.NotEmpty(t, body.Message)
			if tt.status == fiber.StatusInternalServerError {
				require.Equal(t, "Internal server error", body.Message, "internal detail must not leak")
			}
		})
	}
}

func TestRespondEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusCreated, "Created", fiber.Map{"id": "abc"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(fiber.StatusCreated), body["statusCode"])
	require.Equal(t, "Created", body["message"])
	require.NotNil(t, body["data"])
}
