// Package orderrepo provides the GORM-backed repository for delivery order
// aggregates, including the mapping between the domain model and the
// delivery_orders table.
package orderrepo

import (
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row shape for delivery orders. Column names are
// kept explicit where GORM's snake-casing of initialisms would be ambiguous
// because the read-side queries select them by name.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HubID         uuid.UUID  `gorm:"type:uuid;index"`
	OrderNumber   string     `gorm:"uniqueIndex"`
	Source        string     `gorm:"type:varchar(16)"`
	ImportBatchID *uuid.UUID `gorm:"type:uuid;index"`

	CustomerName     string
	CustomerPhone    string
	CustomerAltPhone string
	CustomerEmail    string

	AddressLine string
	City        string
	State       string
	PostalCode  string `gorm:"index"`

	SellerName     string
	SellerOrderRef string
	Marketplace    string

	ProductDescription string
	ProductSKU         string `gorm:"column:product_sku"`
	ProductCategory    string
	PackageCount       int
	TotalWeightKG      *float64 `gorm:"column:total_weight_kg"`
	TotalVolumeCFT     *float64 `gorm:"column:total_volume_cft"`
	DeclaredValue      *float64

	IsCOD     bool    `gorm:"column:is_cod"`
	CODAmount float64 `gorm:"column:cod_amount"`

	Priority      string     `gorm:"type:varchar(16)"`
	ScheduledDate *time.Time `gorm:"type:date"`
	DeliverySlot  string

	RouteID  *uuid.UUID `gorm:"type:uuid;index"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`
	Status   string     `gorm:"type:varchar(32);index"`

	CreatedAt        time.Time
	AssignedAt       *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FailedAt         *time.Time
	ReturnedAt       *time.Time
}

// TableName overrides GORM's default naming to use "delivery_orders".
func (OrderDTO) TableName() string {
	return "delivery_orders"
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	payment := aggregate.Payment()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		HubID:         aggregate.HubID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		Source:        string(aggregate.Source()),
		ImportBatchID: optionalUUID(aggregate.ImportBatchID()),

		CustomerName:     details.CustomerName,
		CustomerPhone:    details.CustomerPhone,
		CustomerAltPhone: details.CustomerAltPhone,
		CustomerEmail:    details.CustomerEmail,

		AddressLine: details.AddressLine,
		City:        details.City,
		State:       details.State,
		PostalCode:  details.PostalCode,

		SellerName:     details.SellerName,
		SellerOrderRef: details.SellerOrderRef,
		Marketplace:    details.Marketplace,

		ProductDescription: details.ProductDescription,
		ProductSKU:         details.ProductSKU,
		ProductCategory:    details.ProductCategory,
		PackageCount:       details.PackageCount,
		TotalWeightKG:      details.TotalWeightKG,
		TotalVolumeCFT:     details.TotalVolumeCFT,
		DeclaredValue:      details.DeclaredValue,

		IsCOD:     payment.IsCOD,
		CODAmount: payment.CODAmount,

		Priority:      string(aggregate.Priority()),
		ScheduledDate: aggregate.ScheduledDate(),
		DeliverySlot:  aggregate.DeliverySlot(),

		RouteID:  optionalUUID(aggregate.RouteID()),
		DriverID: optionalUUID(aggregate.DriverID()),
		Status:   string(aggregate.Status()),

		CreatedAt:        aggregate.CreatedAt(),
		AssignedAt:       aggregate.AssignedAt(),
		OutForDeliveryAt: aggregate.OutForDeliveryAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		FailedAt:         aggregate.FailedAt(),
		ReturnedAt:       aggregate.ReturnedAt(),
	}
}

// toDomain reconstructs an order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}
	importBatchID, err := optionalKernelUUID(dto.ImportBatchID)
	if err != nil {
		return nil, err
	}
	routeID, err := optionalKernelUUID(dto.RouteID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalKernelUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerName:     dto.CustomerName,
		CustomerPhone:    dto.CustomerPhone,
		CustomerAltPhone: dto.CustomerAltPhone,
		CustomerEmail:    dto.CustomerEmail,

		AddressLine: dto.AddressLine,
		City:        dto.City,
		State:       dto.State,
		PostalCode:  dto.PostalCode,

		SellerName:     dto.SellerName,
		SellerOrderRef: dto.SellerOrderRef,
		Marketplace:    dto.Marketplace,

		ProductDescription: dto.ProductDescription,
		ProductSKU:         dto.ProductSKU,
		ProductCategory:    dto.ProductCategory,
		PackageCount:       dto.PackageCount,
		TotalWeightKG:      dto.TotalWeightKG,
		TotalVolumeCFT:     dto.TotalVolumeCFT,
		DeclaredValue:      dto.DeclaredValue,
	}

	payment := order.Payment{
		IsCOD:     dto.IsCOD,
		CODAmount: dto.CODAmount,
	}

	return order.RestoreOrder(
		id,
		hubID,
		dto.OrderNumber,
		order.Source(dto.Source),
		importBatchID,
		details,
		payment,
		order.Priority(dto.Priority),
		dto.ScheduledDate,
		dto.DeliverySlot,
		routeID,
		driverID,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.AssignedAt,
		dto.OutForDeliveryAt,
		dto.DeliveredAt,
		dto.FailedAt,
		dto.ReturnedAt,
	)
}
