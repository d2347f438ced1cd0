package controllers

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/internal/auth"
	"github.com/pibuilder/pibuilder/pkg/domain"
)

type AuthController struct {
	verifier *auth.PiTokenVerifier
	users    domain.UserStore
}

type AuthControllerDependencies struct {
	Verifier *auth.PiTokenVerifier
	Users    domain.UserStore
}

func NewAuthController(deps AuthControllerDependencies) *AuthController {
	return &AuthController{
		verifier: deps.Verifier,
		users:    deps.Users,
	}
}

type piAuthRequest struct {
	AccessToken string `json:"access_token"`
}

// Authenticate verifies a Pi Network access token and upserts the user record.
func (c *AuthController) Authenticate(ctx fiber.Ctx) error {
	var req piAuthRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	identity, err := c.verifier.Verify(req.AccessToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid Pi Network token",
		})
	}

	user := domain.User{
		ID:              identity.UserID,
		Username:        identity.Username,
		AuthenticatedAt: time.Now().UTC(),
	}

	if err := c.users.UpsertUser(ctx.RequestCtx(), user); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to upsert user")

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store user")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
