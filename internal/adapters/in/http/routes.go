package http

import (
	"net/http"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AutoPlanRoutesRequest is the JSON body of POST /api/v1/routes/auto-plan.
// An empty vehicle_ids list means every available vehicle at the hub.
type AutoPlanRoutesRequest struct {
	HubID      string   `json:"hub_id"`
	RouteDate  string   `json:"route_date"`
	VehicleIDs []string `json:"vehicle_ids"`
}

// PlannedRouteResponse describes one route created by a planning pass.
type PlannedRouteResponse struct {
	RouteID       string  `json:"route_id"`
	Name          string  `json:"name"`
	VehicleID     string  `json:"vehicle_id"`
	Stops         int     `json:"stops"`
	TotalWeightKG float64 `json:"total_weight_kg"`
}

// AutoPlanRoutesResponse summarizes a planning pass.
type AutoPlanRoutesResponse struct {
	Routes          []PlannedRouteResponse `json:"routes"`
	OrdersAssigned  int                    `json:"orders_assigned"`
	OrdersUnplanned int                    `json:"orders_unplanned"`
}

// AutoPlanRoutes handles POST /api/v1/routes/auto-plan.
func (s *Server) AutoPlanRoutes(ctx echo.Context) error {
	var req AutoPlanRoutesRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	hubID, err := kernel.UUIDFromString(req.HubID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("hub_id", err))
	}

	routeDate, err := time.Parse("2006-01-02", req.RouteDate)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("route_date", err))
	}

	vehicleIDs := make([]kernel.UUID, 0, len(req.VehicleIDs))
	for _, raw := range req.VehicleIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("vehicle_ids", parseErr))
		}
		vehicleIDs = append(vehicleIDs, id)
	}

	cmd, err := commands.NewAutoPlanRoutesCommand(hubID, routeDate, vehicleIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.autoPlanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	routes := make([]PlannedRouteResponse, len(result.Routes))
	for i, planned := range result.Routes {
		routes[i] = PlannedRouteResponse{
			RouteID:       planned.RouteID.String(),
			Name:          planned.Name,
			VehicleID:     planned.VehicleID.String(),
			Stops:         planned.Stops,
			TotalWeightKG: planned.TotalWeightKG,
		}
	}

	return ctx.JSON(http.StatusCreated, AutoPlanRoutesResponse{
		Routes:          routes,
		OrdersAssigned:  result.OrdersAssigned,
		OrdersUnplanned: result.OrdersUnplanned,
	})
}

// CreateRouteRequest is the JSON body of POST /api/v1/routes. An empty
// route_name gets a generated one.
type CreateRouteRequest struct {
	HubID     string   `json:"hub_id"`
	RouteName string   `json:"route_name"`
	VehicleID *string  `json:"vehicle_id"`
	RouteDate string   `json:"route_date"`
	OrderIDs  []string `json:"order_ids"`
}

// CreateRouteResponse reports the hand-built route.
type CreateRouteResponse struct {
	RouteID       string  `json:"route_id"`
	Name          string  `json:"name"`
	Stops         int     `json:"stops"`
	TotalWeightKG float64 `json:"total_weight_kg"`
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req CreateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	hubID, err := kernel.UUIDFromString(req.HubID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("hub_id", err))
	}

	routeDate, err := time.Parse("2006-01-02", req.RouteDate)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("route_date", err))
	}

	var vehicleID *kernel.UUID
	if req.VehicleID != nil && *req.VehicleID != "" {
		id, parseErr := kernel.UUIDFromString(*req.VehicleID)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("vehicle_id", parseErr))
		}
		vehicleID = &id
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order_ids", parseErr))
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewCreateRouteCommand(hubID, req.RouteName, vehicleID, routeDate, orderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRouteResponse{
		RouteID:       result.RouteID.String(),
		Name:          result.Name,
		Stops:         result.Stops,
		TotalWeightKG: result.TotalWeightKG,
	})
}

// AssignRouteRequest is the JSON body of POST /api/v1/routes/:id/assign.
type AssignRouteRequest struct {
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

// AssignRoute handles POST /api/v1/routes/:id/assign.
func (s *Server) AssignRoute(ctx echo.Context) error {
	routeID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("vehicle_id", err))
	}

	cmd, err := commands.NewAssignRouteCommand(routeID, driverID, vehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchRoute handles POST /api/v1/routes/:id/dispatch.
func (s *Server) DispatchRoute(ctx echo.Context) error {
	routeID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchRouteCommand(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.dispatchRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRoute handles DELETE /api/v1/routes/:id.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	routeID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderBriefResponse is the slice of an order a driver needs at the door.
type OrderBriefResponse struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"order_number"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	DeliveryAddress string  `json:"delivery_address"`
	ProductDesc     string  `json:"product_description"`
	Status          string  `json:"status"`
	IsCOD           bool    `json:"is_cod"`
	CODAmount       float64 `json:"cod_amount"`
}

// StopDetailResponse is one stop with its order brief.
type StopDetailResponse struct {
	ID              string             `json:"id"`
	Sequence        int                `json:"sequence"`
	Status          string             `json:"status"`
	ActualArrival   *time.Time         `json:"actual_arrival"`
	ActualDeparture *time.Time         `json:"actual_departure"`
	Order           OrderBriefResponse `json:"order"`
}

// RouteDetailResponse is the route header plus its ordered stops.
type RouteDetailResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	RouteDate     time.Time            `json:"route_date"`
	Status        string               `json:"status"`
	VehicleID     *string              `json:"vehicle_id"`
	DriverID      *string              `json:"driver_id"`
	TotalStops    int                  `json:"total_stops"`
	TotalWeightKG float64              `json:"total_weight_kg"`
	StartTime     *time.Time           `json:"start_time"`
	EndTime       *time.Time           `json:"end_time"`
	Stops         []StopDetailResponse `json:"stops"`
}

// GetRouteDetail handles GET /api/v1/routes/:id.
func (s *Server) GetRouteDetail(ctx echo.Context) error {
	routeID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRouteDetailQuery(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.routeDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	stops := make([]StopDetailResponse, len(result.Stops))
	for i, stop := range result.Stops {
		stops[i] = StopDetailResponse{
			ID:              stop.ID.String(),
			Sequence:        stop.Sequence,
			Status:          stop.Status,
			ActualArrival:   stop.ActualArrival,
			ActualDeparture: stop.ActualDeparture,
			Order: OrderBriefResponse{
				ID:              stop.Order.ID.String(),
				OrderNumber:     stop.Order.OrderNumber,
				CustomerName:    stop.Order.CustomerName,
				CustomerPhone:   stop.Order.CustomerPhone,
				DeliveryAddress: stop.Order.DeliveryAddress,
				ProductDesc:     stop.Order.ProductDesc,
				Status:          stop.Order.Status,
				IsCOD:           stop.Order.IsCOD,
				CODAmount:       stop.Order.CODAmount,
			},
		}
	}

	return ctx.JSON(http.StatusOK, RouteDetailResponse{
		ID:            result.ID.String(),
		Name:          result.Name,
		RouteDate:     result.RouteDate,
		Status:        result.Status,
		VehicleID:     optionalIDString(result.VehicleID),
		DriverID:      optionalIDString(result.DriverID),
		TotalStops:    result.TotalStops,
		TotalWeightKG: result.TotalWeightKG,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Stops:         stops,
	})
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	str := id.String()
	return &str
}
