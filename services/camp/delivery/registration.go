package delivery

import (
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/gofiber/fiber/v2"
)

const msgRegistrationDeleted = "Registration deleted successfully."

type registrationHandler struct {
	ruc domain.RegistrationUseCase
}

func NewRegistrationDelivery(app *fiber.App, uc domain.RegistrationUseCase) {
	handler := &registrationHandler{
		ruc: uc,
	}

	route := app.Group("/api/registrations")
	route.Get("/", handler.deliveryGetAllRegistrations)
	route.Get("/byChild/:childId", handler.deliveryGetRegistrationsByChild)
	route.Get("/:id", handler.deliveryGetRegistration)
	route.Post("/", handler.deliveryCreateRegistration)
	route.Delete("/:id", handler.deliveryDeleteRegistration)
}

func NewRegistrationDeliveryDeploy(app *fiber.App, uc domain.RegistrationUseCase) {
	handler := &registrationHandler{
		ruc: uc,
	}

	route := app.Group("/api/registrations", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleParent, domain.RoleAdmin))
	route.Get("/", handler.deliveryGetAllRegistrations)
	route.Get("/byChild/:childId", handler.deliveryGetRegistrationsByChild)
	route.Get("/:id", handler.deliveryGetRegistration)
	route.Post("/", handler.deliveryCreateRegistration)
	route.Delete("/:id", handler.deliveryDeleteRegistration)
}

func (rh *registrationHandler) deliveryGetAllRegistrations(c *fiber.Ctx) error {
	registrations, err := rh.ruc.GetAllRegistrations(c.UserContext())
	if err != nil {
		return sendError(c, "GetAllRegistrations", err)
	}

	return sendData(c, "GetAllRegistrations", registrations)
}

func (rh *registrationHandler) deliveryGetRegistration(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "GetRegistration", err)
	}

	registration, err := rh.ruc.GetRegistrationByID(c.UserContext(), id)
	if err != nil {
		return sendError(c, "GetRegistration", err)
	}

	return sendData(c, "GetRegistration", registration)
}

func (rh *registrationHandler) deliveryGetRegistrationsByChild(c *fiber.Ctx) error {
	childID, err := paramID(c, "childId")
	if err != nil {
		return sendError(c, "GetRegistrationsByChild", err)
	}

	registrations, err := rh.ruc.GetRegistrationsByChildID(c.UserContext(), childID)
	if err != nil {
		return sendError(c, "GetRegistrationsByChild", err)
	}

	return sendData(c, "GetRegistrationsByChild", registrations)
}

func (rh *registrationHandler) deliveryCreateRegistration(c *fiber.Ctx) error {
	var req domain.RegistrationPayload
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, "CreateRegistration", domain.NewBadRequestError(msgInvalidBody))
	}

	registration, err := rh.ruc.CreateRegistration(c.UserContext(), &req)
	if err != nil {
		return sendError(c, "CreateRegistration", err)
	}

	return sendData(c, "CreateRegistration", registration)
}

func (rh *registrationHandler) deliveryDeleteRegistration(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "DeleteRegistration", err)
	}

	if err := rh.ruc.DeleteRegistration(c.UserContext(), id); err != nil {
		return sendError(c, "DeleteRegistration", err)
	}

	return sendMessage(c, "DeleteRegistration", msgRegistrationDeleted)
}
