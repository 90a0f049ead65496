package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/utils"
)

// ErrUnauthorized is returned by AdminAuth for missing or wrong credentials.
var ErrUnauthorized = errors.New("UNAUTHORIZED", "Admin credentials required", fiber.StatusUnauthorized)

// AdminAuth protects the admin API with HTTP basic auth. With no password
// configured every request is rejected.
func AdminAuth(cfg config.AdminConfig) fiber.Handler {
	users := map[string]string{}
	if cfg.Password != "" {
		users[cfg.User] = cfg.Password
	}
	return basicauth.New(basicauth.Config{
		Users: users,
		Realm: "transit admin",
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="transit admin"`)
			return utils.SendError(c, ErrUnauthorized)
		},
	})
}
