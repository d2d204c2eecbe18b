package config

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func GetFiberConfig(cfg *Config) fiber.Config {
	// money fields go out as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	return fiber.Config{
		DisableStartupMessage: cfg.IsDeploy(),
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          cfg.AppName,
		AppName:               cfg.AppName,
		ReadTimeout:           time.Second * 60,
		CaseSensitive:         true,
		ErrorHandler:          fiberErrorHandler,
	}
}

// fiberErrorHandler keeps router-level failures (unknown route, bad method,
// recovered panics) in the same envelope as handler errors.
func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		GetLogrusInstance().WithError(err).Error("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
