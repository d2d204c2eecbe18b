package delivery

import (
	"errors"
	"strconv"

	"ecamp/config"
	"ecamp/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidBody = "Invalid request body."
	msgInvalidID   = "Invalid id."
)

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindBadRequest:
		return fiber.StatusBadRequest
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// actorName returns the token subject in deploy mode and nil on open routes.
func actorName(c *fiber.Ctx) *string {
	claims, ok := c.Locals("user").(*domain.Claims)
	if !ok || claims == nil {
		return nil
	}
	return &claims.Username
}

// paramID reads a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, domain.NewBadRequestError(msgInvalidID)
	}
	return id, nil
}

// sendError writes the error envelope. Internal failures are logged with their
// cause and answered with the generic message only.
func sendError(c *fiber.Ctx, funcName string, err error) error {
	var appErr *domain.AppError
	message := "Something went wrong. Please try again later."
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	kind := domain.KindOf(err)
	status := statusFor(kind)

	if kind == domain.KindInternal {
		config.GetLogrusInstance().WithFields(logrus.Fields{
			"op":    funcName,
			"error": err,
		}).Error("request failed")
	}

	config.PrintLogInfo(actorName(c), status, funcName)
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func sendData(c *fiber.Ctx, funcName string, data any) error {
	config.PrintLogInfo(actorName(c), fiber.StatusOK, funcName)
	return c.Status(fiber.StatusOK).JSON(data)
}

func sendMessage(c *fiber.Ctx, funcName, message string) error {
	config.PrintLogInfo(actorName(c), fiber.StatusOK, funcName)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}
