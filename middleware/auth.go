package middleware

import (
	"strings"

	"limpamais-api/config"
	"limpamais-api/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and attaches the decoded identity
// to the request context. Missing header -> 401, bad or expired token -> 403.
func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization header",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "bearer") {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid Authorization header format",
		})
	}

	claims, err := utils.ParseToken(config.JWTSecret, tokenParts[1])
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
	}

	// Role is carried for downstream handlers but not enforced per route.
	ctx.Locals("userID", claims.UserID)
	ctx.Locals("email", claims.Email)
	ctx.Locals("role", claims.Role)

	return ctx.Next()
}
