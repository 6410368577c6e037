package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// GetRouteDetailQueryHandler assembles the driver's route view: header row
// plus stops joined to their orders, in sequence order.
type GetRouteDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteDetailQueryHandler(db *gorm.DB) GetRouteDetailQueryHandler {
	return GetRouteDetailQueryHandler{db: db}
}

func (h GetRouteDetailQueryHandler) Handle(ctx context.Context, query GetRouteDetailQuery) (RouteDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteDetailResponse{}, err
	}

	var header struct {
		ID            uuid.UUID
		Name          string
		RouteDate     time.Time
		Status        string
		VehicleID     *uuid.UUID
		DriverID      *uuid.UUID
		TotalStops    int
		TotalWeightKG float64
		StartTime     *time.Time
		EndTime       *time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			route_date,
			status,
			vehicle_id,
			driver_id,
			total_stops,
			total_weight_kg,
			start_time,
			end_time
		FROM delivery_routes
		WHERE id = ?
	`, query.RouteID().Bytes()).Row().Scan(
		&header.ID,
		&header.Name,
		&header.RouteDate,
		&header.Status,
		&header.VehicleID,
		&header.DriverID,
		&header.TotalStops,
		&header.TotalWeightKG,
		&header.StartTime,
		&header.EndTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RouteDetailResponse{}, errs.NewObjectNotFoundError("route_id", query.RouteID())
	}
	if err != nil {
		return RouteDetailResponse{}, err
	}

	response := RouteDetailResponse{
		Name:          header.Name,
		RouteDate:     header.RouteDate,
		Status:        header.Status,
		TotalStops:    header.TotalStops,
		TotalWeightKG: header.TotalWeightKG,
		StartTime:     header.StartTime,
		EndTime:       header.EndTime,
	}
	if response.ID, err = kernel.UUIDFromBytes(header.ID[:]); err != nil {
		return RouteDetailResponse{}, err
	}
	if header.VehicleID != nil {
		vehicleID, err := kernel.UUIDFromBytes(header.VehicleID[:])
		if err != nil {
			return RouteDetailResponse{}, err
		}
		response.VehicleID = &vehicleID
	}
	if header.DriverID != nil {
		driverID, err := kernel.UUIDFromBytes(header.DriverID[:])
		if err != nil {
			return RouteDetailResponse{}, err
		}
		response.DriverID = &driverID
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.sequence,
			s.status,
			s.actual_arrival,
			s.actual_departure,
			o.id,
			o.order_number,
			o.customer_name,
			o.customer_phone,
			o.address_line,
			o.product_description,
			o.status,
			o.is_cod,
			o.cod_amount
		FROM route_stops s
		JOIN delivery_orders o ON o.id = s.order_id
		WHERE s.route_id = ?
		ORDER BY s.sequence
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return RouteDetailResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stop    StopDetail
			stopID  uuid.UUID
			orderID uuid.UUID
		)
		if err = rows.Scan(
			&stopID,
			&stop.Sequence,
			&stop.Status,
			&stop.ActualArrival,
			&stop.ActualDeparture,
			&orderID,
			&stop.Order.OrderNumber,
			&stop.Order.CustomerName,
			&stop.Order.CustomerPhone,
			&stop.Order.DeliveryAddress,
			&stop.Order.ProductDesc,
			&stop.Order.Status,
			&stop.Order.IsCOD,
			&stop.Order.CODAmount,
		); err != nil {
			return RouteDetailResponse{}, err
		}

		if stop.ID, err = kernel.UUIDFromBytes(stopID[:]); err != nil {
			return RouteDetailResponse{}, err
		}
		if stop.Order.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return RouteDetailResponse{}, err
		}
		response.Stops = append(response.Stops, stop)
	}
	if err = rows.Err(); err != nil {
		return RouteDetailResponse{}, err
	}

	return response, nil
}
