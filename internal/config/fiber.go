package config

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

func NewFiber(cfg *AppConfig) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               cfg.App.Name,
			BodyLimit:             1 * 1024 * 1024,
			DisableKeepalive:      false,
			StrictRouting:         false,
			CaseSensitive:         true,
			DisableStartupMessage: cfg.App.Env == "test",
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
		})

	return app
}
