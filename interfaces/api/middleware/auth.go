// interfaces/api/middleware/auth.go
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/service"
)

// AuthMiddleware verifies bearer tokens against the identity provider
type AuthMiddleware struct {
	identity    port.IdentityProvider
	userService service.UserService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(identity port.IdentityProvider, userService service.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		identity:    identity,
		userService: userService,
	}
}

// Protected requires a valid bearer token and stores the caller identity
// in locals for the handlers downstream
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Missing authorization token",
			})
		}

		identity, err := m.identity.Verify(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized: " + err.Error(),
			})
		}

		user, err := m.userService.SyncIdentity(identity)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to sync user: " + err.Error(),
			})
		}

		c.Locals("userID", user.ID.String())
		c.Locals("identity", identity)
		c.Locals("token", token)

		return c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the token query param for WebSocket upgrades
func extractToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Query("token")
}

// GetUserUUID reads the authenticated user ID set by Protected
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return uuid.Parse(raw)
}

// GetToken reads the raw bearer token set by Protected
func GetToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
