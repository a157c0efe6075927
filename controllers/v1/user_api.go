package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"approval-flow-backend/controllers"
	usershandler "approval-flow-backend/lib/users"
	"approval-flow-backend/middleware"
	apimodels "approval-flow-backend/models/api"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("managers", controller.managers)
		router.Get("employees", middleware.ManagerRoleRequired(), controller.employees)
	})
}

// @Summary List managers
// @Tags Users
// @Description Managers directory, used when registering employees and assigning requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/managers [get]
func (c *userApiController) managers(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.ListManagers()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "manager list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List employees
// @Tags Users
// @Description Employees directory, used by managers when assigning requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/employees [get]
func (c *userApiController) employees(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.ListEmployees()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "employee list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
