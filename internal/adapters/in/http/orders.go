package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the JSON body of POST /api/v1/orders.
type CreateOrderRequest struct {
	HubID  string `json:"hub_id"`
	Source string `json:"source"`

	CustomerName     string `json:"customer_name"`
	CustomerPhone    string `json:"customer_phone"`
	CustomerAltPhone string `json:"customer_alt_phone"`
	CustomerEmail    string `json:"customer_email"`

	DeliveryAddress string `json:"delivery_address"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`

	SellerName     string `json:"seller_name"`
	SellerOrderRef string `json:"seller_order_ref"`
	Marketplace    string `json:"marketplace"`

	ProductDescription string   `json:"product_description"`
	ProductSKU         string   `json:"product_sku"`
	ProductCategory    string   `json:"product_category"`
	PackageCount       int      `json:"package_count"`
	TotalWeightKG      *float64 `json:"total_weight_kg"`
	TotalVolumeCFT     *float64 `json:"total_volume_cft"`
	DeclaredValue      *float64 `json:"declared_value"`

	IsCOD     bool    `json:"is_cod"`
	CODAmount float64 `json:"cod_amount"`

	Priority      string `json:"priority"`
	ScheduledDate string `json:"scheduled_date"`
	DeliverySlot  string `json:"delivery_slot"`
}

// CreateOrderResponse reports the generated identity of a new order.
type CreateOrderResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	hubID, err := kernel.UUIDFromString(req.HubID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("hub_id", err))
	}

	source := order.Source(req.Source)
	if req.Source == "" {
		source = order.SourceAPI
	}

	var scheduledDate *time.Time
	if req.ScheduledDate != "" {
		parsed, parseErr := time.Parse("2006-01-02", req.ScheduledDate)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("scheduled_date", parseErr))
		}
		scheduledDate = &parsed
	}

	packageCount := req.PackageCount
	if packageCount == 0 {
		packageCount = 1
	}

	details := order.Details{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerAltPhone: req.CustomerAltPhone,
		CustomerEmail:    req.CustomerEmail,

		AddressLine: req.DeliveryAddress,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,

		SellerName:     req.SellerName,
		SellerOrderRef: req.SellerOrderRef,
		Marketplace:    req.Marketplace,

		ProductDescription: req.ProductDescription,
		ProductSKU:         req.ProductSKU,
		ProductCategory:    req.ProductCategory,
		PackageCount:       packageCount,
		TotalWeightKG:      req.TotalWeightKG,
		TotalVolumeCFT:     req.TotalVolumeCFT,
		DeclaredValue:      req.DeclaredValue,
	}

	cmd, err := commands.NewCreateOrderCommand(
		hubID,
		source,
		details,
		order.Payment{IsCOD: req.IsCOD, CODAmount: req.CODAmount},
		order.Priority(req.Priority),
		scheduledDate,
		req.DeliverySlot,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:     result.OrderID.String(),
		OrderNumber: result.OrderNumber,
	})
}

// ImportRowError is one rejected CSV row in an import response.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportOrdersResponse summarizes an import run with an error preview.
type ImportOrdersResponse struct {
	BatchID   string           `json:"batch_id"`
	TotalRows int              `json:"total_rows"`
	Processed int              `json:"processed"`
	Failed    int              `json:"failed"`
	Status    string           `json:"status"`
	Errors    []ImportRowError `json:"errors"`
}

// ImportOrders handles POST /api/v1/orders/import. The CSV arrives as a
// multipart file field named "file"; hub_id is a query parameter.
func (s *Server) ImportOrders(ctx echo.Context) error {
	hubID, err := kernel.UUIDFromString(ctx.QueryParam("hub_id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("hub_id", err))
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return writeError(ctx, errs.NewValueIsRequiredError("file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(ctx, err)
	}
	defer file.Close()

	cmd, err := commands.NewImportOrdersCommand(
		hubID,
		fileHeader.Filename,
		file,
		ctx.Request().Header.Get(actorHeader),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ImportOrdersResponse{
		BatchID:   result.BatchID.String(),
		TotalRows: result.TotalRows,
		Processed: result.Processed,
		Failed:    result.Failed,
		Status:    string(result.Status),
		Errors:    toRowErrors(result.Errors),
	})
}

func toRowErrors(rowErrors []imports.RowError) []ImportRowError {
	out := make([]ImportRowError, len(rowErrors))
	for i, re := range rowErrors {
		out[i] = ImportRowError{Row: re.Row, Message: re.Message}
	}
	return out
}

// OrderSummaryResponse is one row of the order list.
type OrderSummaryResponse struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"order_number"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	DeliveryAddress string    `json:"delivery_address"`
	City            string    `json:"city"`
	PostalCode      string    `json:"postal_code"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	IsCOD           bool      `json:"is_cod"`
	CODAmount       float64   `json:"cod_amount"`
	RouteID         *string   `json:"route_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListOrdersResponse is a page of orders plus the unpaged total.
type ListOrdersResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
}

// ListOrders handles GET /api/v1/orders with optional hub_id, status,
// route_id, scheduled_date, page and page_size query filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var hubID, routeID *kernel.UUID
	if raw := ctx.QueryParam("hub_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("hub_id", err))
		}
		hubID = &id
	}
	if raw := ctx.QueryParam("route_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("route_id", err))
		}
		routeID = &id
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		st := order.Status(raw)
		status = &st
	}

	var scheduledDate *time.Time
	if raw := ctx.QueryParam("scheduled_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("scheduled_date", err))
		}
		scheduledDate = &parsed
	}

	page := intQueryParam(ctx, "page")
	pageSize := intQueryParam(ctx, "page_size")

	query, err := queries.NewListOrdersQuery(hubID, status, routeID, scheduledDate, page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]OrderSummaryResponse, len(result.Orders))
	for i, o := range result.Orders {
		var routeIDStr *string
		if o.RouteID != nil {
			str := o.RouteID.String()
			routeIDStr = &str
		}
		orders[i] = OrderSummaryResponse{
			ID:              o.ID.String(),
			OrderNumber:     o.OrderNumber,
			CustomerName:    o.CustomerName,
			CustomerPhone:   o.CustomerPhone,
			DeliveryAddress: o.DeliveryAddress,
			City:            o.City,
			PostalCode:      o.PostalCode,
			Status:          o.Status,
			Priority:        o.Priority,
			IsCOD:           o.IsCOD,
			CODAmount:       o.CODAmount,
			RouteID:         routeIDStr,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, ListOrdersResponse{
		Orders: orders,
		Total:  result.Total,
		Page:   result.Page,
	})
}

// CancelOrder handles DELETE /api/v1/orders/:id.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnToHub handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnToHub(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReturnToHubCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.returnToHubHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ImportBatchResponse is the batch record with its full error log.
type ImportBatchResponse struct {
	ID         string           `json:"id"`
	HubID      string           `json:"hub_id"`
	FileName   string           `json:"file_name"`
	TotalRows  int              `json:"total_rows"`
	Processed  int              `json:"processed"`
	Failed     int              `json:"failed"`
	Status     string           `json:"status"`
	CreatedBy  string           `json:"created_by"`
	CreatedAt  time.Time        `json:"created_at"`
	FinishedAt *time.Time       `json:"finished_at"`
	Errors     []ImportRowError `json:"errors"`
}

// GetImportBatch handles GET /api/v1/imports/:id.
func (s *Server) GetImportBatch(ctx echo.Context) error {
	batchID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetImportBatchQuery(batchID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getImportBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ImportBatchResponse{
		ID:         result.ID.String(),
		HubID:      result.HubID.String(),
		FileName:   result.FileName,
		TotalRows:  result.TotalRows,
		Processed:  result.Processed,
		Failed:     result.Failed,
		Status:     result.Status,
		CreatedBy:  result.CreatedBy,
		CreatedAt:  result.CreatedAt,
		FinishedAt: result.FinishedAt,
		Errors:     toRowErrors(result.Errors),
	})
}

// intQueryParam returns 0 for absent or malformed values; the query
// constructor applies the defaults.
func intQueryParam(ctx echo.Context, name string) int {
	n, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
