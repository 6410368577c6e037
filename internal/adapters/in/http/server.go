// Package http is the inbound echo adapter. Handlers translate between
// the JSON surface and the application's commands and queries; all business
// rules stay behind those.
package http

import (
	"errors"
	"net/http"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the pre-authorized caller identity. Authentication
// happens upstream; the server only records who acted.
const actorHeader = "X-Actor-ID"

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	importOrdersHandler  commands.ImportOrdersCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	returnToHubHandler   commands.ReturnToHubCommandHandler
	autoPlanHandler      commands.AutoPlanRoutesCommandHandler
	createRouteHandler   commands.CreateRouteCommandHandler
	assignRouteHandler   commands.AssignRouteCommandHandler
	dispatchRouteHandler commands.DispatchRouteCommandHandler
	deleteRouteHandler   commands.DeleteRouteCommandHandler
	arriveAtStopHandler  commands.ArriveAtStopCommandHandler
	completeStopHandler  commands.CompleteStopCommandHandler
	sendOtpHandler       commands.SendOtpCommandHandler
	verifyOtpHandler     commands.VerifyOtpCommandHandler
	recordAttemptHandler commands.RecordAttemptCommandHandler

	// Query handlers
	listOrdersHandler     queries.ListOrdersQueryHandler
	routeDetailHandler    queries.GetRouteDetailQueryHandler
	getImportBatchHandler queries.GetImportBatchQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	importOrdersHandler commands.ImportOrdersCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	returnToHubHandler commands.ReturnToHubCommandHandler,
	autoPlanHandler commands.AutoPlanRoutesCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	assignRouteHandler commands.AssignRouteCommandHandler,
	dispatchRouteHandler commands.DispatchRouteCommandHandler,
	deleteRouteHandler commands.DeleteRouteCommandHandler,
	arriveAtStopHandler commands.ArriveAtStopCommandHandler,
	completeStopHandler commands.CompleteStopCommandHandler,
	sendOtpHandler commands.SendOtpCommandHandler,
	verifyOtpHandler commands.VerifyOtpCommandHandler,
	recordAttemptHandler commands.RecordAttemptCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	routeDetailHandler queries.GetRouteDetailQueryHandler,
	getImportBatchHandler queries.GetImportBatchQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		importOrdersHandler:   importOrdersHandler,
		cancelOrderHandler:    cancelOrderHandler,
		returnToHubHandler:    returnToHubHandler,
		autoPlanHandler:       autoPlanHandler,
		createRouteHandler:    createRouteHandler,
		assignRouteHandler:    assignRouteHandler,
		dispatchRouteHandler:  dispatchRouteHandler,
		deleteRouteHandler:    deleteRouteHandler,
		arriveAtStopHandler:   arriveAtStopHandler,
		completeStopHandler:   completeStopHandler,
		sendOtpHandler:        sendOtpHandler,
		verifyOtpHandler:      verifyOtpHandler,
		recordAttemptHandler:  recordAttemptHandler,
		listOrdersHandler:     listOrdersHandler,
		routeDetailHandler:    routeDetailHandler,
		getImportBatchHandler: getImportBatchHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/import", s.ImportOrders)
	api.GET("/orders", s.ListOrders)
	api.DELETE("/orders/:id", s.CancelOrder)
	api.POST("/orders/:id/return", s.ReturnToHub)

	api.POST("/routes", s.CreateRoute)
	api.POST("/routes/auto-plan", s.AutoPlanRoutes)
	api.POST("/routes/:id/assign", s.AssignRoute)
	api.POST("/routes/:id/dispatch", s.DispatchRoute)
	api.DELETE("/routes/:id", s.DeleteRoute)
	api.GET("/routes/:id", s.GetRouteDetail)

	api.POST("/stops/:id/arrive", s.ArriveAtStop)
	api.POST("/stops/:id/complete", s.CompleteStop)

	api.POST("/otp/send", s.SendOtp)
	api.POST("/otp/verify", s.VerifyOtp)
	api.POST("/attempts", s.RecordAttempt)

	api.GET("/imports/:id", s.GetImportBatch)
}

// Health reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Error is the JSON error envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto HTTP statuses: unknown objects
// become 404, rejected input 400, illegal state transitions 409, anything
// else 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func parseIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
