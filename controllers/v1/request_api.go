package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"approval-flow-backend/controllers"
	requesthandler "approval-flow-backend/lib/request"
	"approval-flow-backend/middleware"
	"approval-flow-backend/models"
	apimodels "approval-flow-backend/models/api"
	requestapimodels "approval-flow-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("requests", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			idRoute.Put(":action", controller.applyAction)
		})
	})
}

// @Summary Create request
// @Tags Requests
// @Description Create a request assigned to an employee, routed to the employee's manager for approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	view, err := requesthandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request create error")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary List requests
// @Tags Requests
// @Description Role-scoped listing: managers see their approval queue, employees their actionable requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests [get]
func (c *requestApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, err := requesthandler.Instance.List(userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request list error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get request
// @Tags Requests
// @Description Get a request by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := requesthandler.Instance.GetByID(id, userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request get error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Request history
// @Tags Requests
// @Description Append-ordered audit trail of a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/history [get]
func (c *requestApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, err := requesthandler.Instance.History(id, userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request history error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Apply action
// @Tags Requests
// @Description Apply a lifecycle action (approve/reject/action/close) to a request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param   action      		path    string  true         "approve/reject/action/close"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/{action} [put]
func (c *requestApiController) applyAction(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	// the engine only accepts the closed action set, normalize here
	action, err := models.ParseRequestAction(ctx.Params("action"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	view, err := requesthandler.Instance.ApplyAction(id, action, userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request action error")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
