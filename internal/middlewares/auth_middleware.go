package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/internal/auth"
)

const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

func bearerToken(c fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth rejects requests without a valid access token and stores the
// caller identity in the request locals.
func RequireAuth(verifier *auth.PiTokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			log.Debug().
				Err(err).
				Str("path", c.Path()).
				Msg("Access token verification failed")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid Pi Network token",
			})
		}

		c.Locals(UserIDKey, identity.UserID)
		c.Locals(UsernameKey, identity.Username)

		return c.Next()
	}
}

// OptionalAuth stores the caller identity when a valid token is present and
// lets the request through either way. Tool execution uses it: published tools
// are public, unpublished ones check the identity downstream.
func OptionalAuth(verifier *auth.PiTokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token != "" {
			if identity, err := verifier.Verify(token); err == nil {
				c.Locals(UserIDKey, identity.UserID)
				c.Locals(UsernameKey, identity.Username)
			}
		}

		return c.Next()
	}
}

// CallerID returns the authenticated user id, empty for anonymous callers.
func CallerID(c fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)

	return userID
}

// CallerUsername returns the authenticated username, empty for anonymous
// callers.
func CallerUsername(c fiber.Ctx) string {
	username, _ := c.Locals(UsernameKey).(string)

	return username
}
