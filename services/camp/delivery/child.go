package delivery

import (
	"ecamp/config"
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/gofiber/fiber/v2"
)

type childHandler struct {
	cuc domain.ChildUseCase
}

func NewChildDelivery(app *fiber.App, uc domain.ChildUseCase) {
	handler := &childHandler{
		cuc: uc,
	}

	route := app.Group("/api/children")
	route.Get("/", handler.deliveryGetAllChildren)
	route.Get("/byParent/:parentId", handler.deliveryGetChildrenByParent)
	route.Get("/:id", handler.deliveryGetChild)
	route.Post("/", handler.deliveryCreateChild)
	route.Put("/:id", handler.deliveryUpdateChild)
	route.Delete("/:id", handler.deliveryDeleteChild)
}

func NewChildDeliveryDeploy(app *fiber.App, uc domain.ChildUseCase) {
	handler := &childHandler{
		cuc: uc,
	}

	route := app.Group("/api/children", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleParent, domain.RoleAdmin))
	route.Get("/", handler.deliveryGetAllChildren)
	route.Get("/byParent/:parentId", handler.deliveryGetChildrenByParent)
	route.Get("/:id", handler.deliveryGetChild)
	route.Post("/", handler.deliveryCreateChild)
	route.Put("/:id", handler.deliveryUpdateChild)
	route.Delete("/:id", handler.deliveryDeleteChild)
}

func (ch *childHandler) deliveryGetAllChildren(c *fiber.Ctx) error {
	children, err := ch.cuc.GetAllChildren(c.UserContext())
	if err != nil {
		return sendError(c, "GetAllChildren", err)
	}

	return sendData(c, "GetAllChildren", children)
}

func (ch *childHandler) deliveryGetChild(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "GetChild", err)
	}

	child, err := ch.cuc.GetChildByID(c.UserContext(), id)
	if err != nil {
		return sendError(c, "GetChild", err)
	}

	return sendData(c, "GetChild", child)
}

func (ch *childHandler) deliveryGetChildrenByParent(c *fiber.Ctx) error {
	parentID, err := paramID(c, "parentId")
	if err != nil {
		return sendError(c, "GetChildrenByParent", err)
	}

	children, err := ch.cuc.GetChildrenByParentID(c.UserContext(), parentID)
	if err != nil {
		return sendError(c, "GetChildrenByParent", err)
	}

	return sendData(c, "GetChildrenByParent", children)
}

func (ch *childHandler) deliveryCreateChild(c *fiber.Ctx) error {
	var req domain.ChildPayload
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, "CreateChild", domain.NewBadRequestError(msgInvalidBody))
	}

	child, err := ch.cuc.CreateChild(c.UserContext(), &req)
	if err != nil {
		return sendError(c, "CreateChild", err)
	}

	return sendData(c, "CreateChild", child)
}

func (ch *childHandler) deliveryUpdateChild(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "UpdateChild", err)
	}

	var req domain.ChildPayload
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, "UpdateChild", domain.NewBadRequestError(msgInvalidBody))
	}

	child, err := ch.cuc.UpdateChild(c.UserContext(), id, &req)
	if err != nil {
		return sendError(c, "UpdateChild", err)
	}

	return sendData(c, "UpdateChild", child)
}

func (ch *childHandler) deliveryDeleteChild(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return sendError(c, "DeleteChild", err)
	}

	if err := ch.cuc.DeleteChild(c.UserContext(), id); err != nil {
		return sendError(c, "DeleteChild", err)
	}

	config.PrintLogInfo(actorName(c), fiber.StatusNoContent, "DeleteChild")
	return c.SendStatus(fiber.StatusNoContent)
}
