package delivery

import (
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/gofiber/fiber/v2"
)

type campHandler struct {
	cuc domain.CampUseCase
}

func NewCampDelivery(app *fiber.App, uc domain.CampUseCase) {
	handler := &campHandler{
		cuc: uc,
	}

	route := app.Group("/api/camps")
	route.Get("/", handler.deliveryGetAllCamps)
	route.Get("/:id", handler.deliveryGetCamp)
	route.Post("/", handler.deliveryCreateCamp)
}

// NewCampDeliveryDeploy leaves the catalogue readable by anyone; only admins add camps.
func NewCampDeliveryDeploy(app *fiber.App, uc domain.CampUseCase) {
	handler := &campHandler{
		cuc: uc,
	}

	route := app.Group("/api/camps")
	route.Get("/", handler.deliveryGetAllCamps)
	route.Get("/:id", handler.deliveryGetCamp)
	route.Post("/", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.deliveryCreateCamp)
}

func (ch *campHandler) deliveryGetAllCamps(c *fiber.Ctx) error {
	camps, err := ch.cuc.GetAllCamps(c.UserContext())
	if err != nil {
		return sendError(c, "GetAllCamps", err)
	}

	return sendData(c, "GetAllCamps", camps)
}

func (ch *campHandler) deliveryGetCamp(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "GetCamp", err)
	}

	camp, err := ch.cuc.GetCampByID(c.UserContext(), id)
	if err != nil {
		return sendError(c, "GetCamp", err)
	}

	return sendData(c, "GetCamp", camp)
}

func (ch *campHandler) deliveryCreateCamp(c *fiber.Ctx) error {
	var req domain.CampPayload
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, "CreateCamp", domain.NewBadRequestError(msgInvalidBody))
	}

	camp, err := ch.cuc.CreateCamp(c.UserContext(), &req)
	if err != nil {
		return sendError(c, "CreateCamp", err)
	}

	return sendData(c, "CreateCamp", camp)
}
