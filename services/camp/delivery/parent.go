package delivery

import (
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/gofiber/fiber/v2"
)

const msgRegisterSuccess = "Parent registered successfully."

type parentHandler struct {
	puc    domain.ParentUseCase
	issuer func(res *domain.ParentLoginResponse) (string, error)
}

func NewParentDelivery(app *fiber.App, uc domain.ParentUseCase) {
	handler := &parentHandler{
		puc: uc,
	}

	route := app.Group("/api/parents")
	route.Post("/register", handler.deliveryRegister)
	route.Post("/login", handler.deliveryLogin)
}

// NewParentDeliveryDeploy keeps both routes open and hands a signed token back
// on a successful login.
func NewParentDeliveryDeploy(app *fiber.App, uc domain.ParentUseCase) {
	handler := &parentHandler{
		puc: uc,
		issuer: func(res *domain.ParentLoginResponse) (string, error) {
			return middleware.GenerateJWT(res.ID, res.Email, domain.RoleParent)
		},
	}

	route := app.Group("/api/parents")
	route.Post("/register", handler.deliveryRegister)
	route.Post("/login", handler.deliveryLogin)
}

func (ph *parentHandler) deliveryRegister(c *fiber.Ctx) error {
	var req domain.ParentRegisterPayload
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, "Register", domain.NewBadRequestError(msgInvalidBody))
	}

	if err := ph.puc.Register(c.UserContext(), &req); err != nil {
		return sendError(c, "Register", err)
	}

	return sendMessage(c, "Register", msgRegisterSuccess)
}

func (ph *parentHandler) deliveryLogin(c *fiber.Ctx) error {
	res, err := ph.puc.Login(c.UserContext(), c.Query("email"), c.Query("phone"))
	if err != nil {
		return sendError(c, "Login", err)
	}

	if ph.issuer != nil {
		token, err := ph.issuer(res)
		if err != nil {
			return sendError(c, "Login", domain.NewInternalError("Login failed. Please try again later.", err))
		}
		c.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	return sendData(c, "Login", res)
}
