package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
)

// ListOrdersQueryHandler reads the order list straight from the table.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 4)
	if query.HubID() != nil {
		where += " AND hub_id = ?"
		args = append(args, query.HubID().Bytes())
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, string(*query.Status()))
	}
	if query.RouteID() != nil {
		where += " AND route_id = ?"
		args = append(args, query.RouteID().Bytes())
	}
	if query.ScheduledDate() != nil {
		where += " AND scheduled_date = ?"
		args = append(args, query.ScheduledDate().Format("2006-01-02"))
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM delivery_orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_phone,
			address_line,
			city,
			postal_code,
			status,
			priority,
			is_cod,
			cod_amount,
			route_id,
			created_at
		FROM delivery_orders
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersResponse{}, err
	}
	defer rows.Close()

	response := ListOrdersResponse{Page: query.Page(), Total: total}
	for rows.Next() {
		var (
			summary OrderSummary
			id      uuid.UUID
			routeID *uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&summary.CustomerName,
			&summary.CustomerPhone,
			&summary.DeliveryAddress,
			&summary.City,
			&summary.PostalCode,
			&summary.Status,
			&summary.Priority,
			&summary.IsCOD,
			&summary.CODAmount,
			&routeID,
			&summary.CreatedAt,
		); err != nil {
			return ListOrdersResponse{}, err
		}

		summary.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListOrdersResponse{}, err
		}
		if routeID != nil {
			restored, err := kernel.UUIDFromBytes(routeID[:])
			if err != nil {
				return ListOrdersResponse{}, err
			}
			summary.RouteID = &restored
		}
		response.Orders = append(response.Orders, summary)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersResponse{}, err
	}

	return response, nil
}
