// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
)

type UserHandler struct {
	userService service.UserService
	identity    port.IdentityProvider
}

func NewUserHandler(userService service.UserService, identity port.IdentityProvider) *UserHandler {
	return &UserHandler{
		userService: userService,
		identity:    identity,
	}
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "user not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// SignOut invalidates the caller's token with the identity provider.
func (h *UserHandler) SignOut(c *fiber.Ctx) error {
	token := middleware.GetToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "No token to sign out",
		})
	}

	if err := h.identity.SignOut(c.Context(), token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Sign-out failed: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Signed out",
	})
}
