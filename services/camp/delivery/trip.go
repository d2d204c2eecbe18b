package delivery

import (
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/gofiber/fiber/v2"
)

type tripHandler struct {
	tuc domain.TripUseCase
}

func NewTripDelivery(app *fiber.App, uc domain.TripUseCase) {
	handler := &tripHandler{
		tuc: uc,
	}

	route := app.Group("/api/trips")
	route.Get("/", handler.deliveryGetAllTrips)
	route.Get("/:id", handler.deliveryGetTrip)
	route.Post("/", handler.deliveryCreateTrip)
}

// NewTripDeliveryDeploy leaves the catalogue readable by anyone; only admins add trips.
func NewTripDeliveryDeploy(app *fiber.App, uc domain.TripUseCase) {
	handler := &tripHandler{
		tuc: uc,
	}

	route := app.Group("/api/trips")
	route.Get("/", handler.deliveryGetAllTrips)
	route.Get("/:id", handler.deliveryGetTrip)
	route.Post("/", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.deliveryCreateTrip)
}

func (th *tripHandler) deliveryGetAllTrips(c *fiber.Ctx) error {
	trips, err := th.tuc.GetAllTrips(c.UserContext())
	if err != nil {
		return sendError(c, "GetAllTrips", err)
	}

	return sendData(c, "GetAllTrips", trips)
}

func (th *tripHandler) deliveryGetTrip(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "GetTrip", err)
	}

	trip, err := th.tuc.GetTripByID(c.UserContext(), id)
	if err != nil {
		return sendError(c, "GetTrip", err)
	}

	return sendData(c, "GetTrip", trip)
}

func (th *tripHandler) deliveryCreateTrip(c *fiber.Ctx) error {
	var req domain.TripPayload
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, "CreateTrip", domain.NewBadRequestError(msgInvalidBody))
	}

	trip, err := th.tuc.CreateTrip(c.UserContext(), &req)
	if err != nil {
		return sendError(c, "CreateTrip", err)
	}

	return sendData(c, "CreateTrip", trip)
}
