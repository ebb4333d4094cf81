package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brasserie/internal/config"
	"github.com/example/brasserie/internal/models"
	"github.com/example/brasserie/internal/utils"
)

const userContextKey = "currentUser"

// AuthMiddleware validates bearer tokens and loads the authenticated user
// into request locals. A token whose subject no longer exists fails as not
// found.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusForbidden, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusForbidden, "invalid authorization header")
		}

		userID, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return fiber.NewError(fiber.StatusForbidden, "expired token")
			}
			return fiber.NewError(fiber.StatusForbidden, "invalid token")
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return err
		}

		c.Locals(userContextKey, &user)
		return c.Next()
	}
}

// RequireAdmin rejects requests from non-admin users. Must run after
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "access denied")
		}
		if !user.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "access denied")
		}
		return c.Next()
	}
}

// CurrentUser extracts the authenticated user from request locals.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}

// OwnerOrAdmin is the single ownership predicate used by every
// resource-level access check: the requester must own the resource or hold
// the admin role.
func OwnerOrAdmin(user *models.User, ownerID uuid.UUID) bool {
	if user == nil {
		return false
	}
	return user.ID == ownerID || user.IsAdmin()
}
