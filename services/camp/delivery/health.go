package delivery

import (
	"context"
	"time"

	"ecamp/config"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthDelivery(app *fiber.App, db Pinger) {
	handler := &healthHandler{
		db:      db,
		timeout: 2 * time.Second,
	}

	app.Get("/healthz", handler.deliveryHealth)
}

func (hh *healthHandler) deliveryHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), hh.timeout)
	defer cancel()

	if err := hh.db.PingContext(ctx); err != nil {
		config.GetLogrusInstance().WithError(err).Warn("database ping failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Database unavailable",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "ok",
	})
}
