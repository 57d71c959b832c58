package middleware

import (
	config "github.com/edumart/course_market/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"success": false, "statusCode": fiber.StatusBadRequest, "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"success": false, "statusCode": fiber.StatusUnauthorized, "message": "Invalid or expired JWT", "data": nil})
}

func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		got, _ := claims["role"].(string)

		if got != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success":    false,
				"statusCode": fiber.StatusForbidden,
				"message":    "Forbidden: " + role + " access required",
				"data":       nil,
			})
		}
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return RoleRequired("admin")
}

func TeacherRequired() fiber.Handler {
	return RoleRequired("teacher")
}
