package http

import (
	"errors"

	pkg "github.com/folium-app/folium/pkg/internal"
	"github.com/folium-app/folium/pkg/internal/cache"
	"github.com/folium-app/folium/pkg/internal/http/admin"
	"github.com/folium-app/folium/pkg/internal/http/api"
	"github.com/folium-app/folium/pkg/internal/security"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	App *fiber.App
}

func NewServer(timeline *cache.PageCache) *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Folium",
		AppName:               "Folium v" + pkg.AppVersion,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler:          renderError,
	})

	app.Use(recover.New())
	app.Use(authMiddleware)

	// The anti-forgery check only concerns cookie sessions; a bearer
	// token is not an ambient credential, so there is nothing to forge.
	app.Use(csrf.New(csrf.Config{
		Next: func(c *fiber.Ctx) bool {
			return len(c.Cookies(security.LoginCookieName)) == 0
		},
		KeyLookup:  "header:X-CSRF-Token",
		CookieName: "folium_csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fiber.NewError(fiber.StatusForbidden, "anti-forgery token mismatch")
		},
	}))

	api.MapAPIs(app, timeline)
	admin.MapAdminAPIs(app, timeline)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return &App{app}
}

// renderError resolves the whole error taxonomy at the boundary, each
// class with its own distinct body. Anything unexpected becomes the
// generic server error and never leaks internals.
func renderError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch {
	case code == fiber.StatusNotFound:
		return c.Status(code).JSON(fiber.Map{
			"error":   "not found",
			"message": err.Error(),
			"path":    c.Path(),
		})
	case code == fiber.StatusForbidden:
		return c.Status(code).JSON(fiber.Map{
			"error":   "forbidden",
			"message": err.Error(),
		})
	case code >= fiber.StatusInternalServerError:
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
		return c.Status(code).JSON(fiber.Map{
			"error":   "server error",
			"message": "something went wrong on our side, please try again later",
		})
	default:
		return c.Status(code).JSON(fiber.Map{
			"error":   utils.StatusMessage(code),
			"message": err.Error(),
		})
	}
}

func (v *App) Listen() {
	if err := v.App.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}
