package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/google/uuid"
)

// Details carries the descriptive payload of an order: who receives it,
// where it goes and what is inside. It is validated as part of NewOrder
// and treated as immutable afterwards.
type Details struct {
	CustomerName     string
	CustomerPhone    string
	CustomerAltPhone string
	CustomerEmail    string

	AddressLine string
	City        string
	State       string
	PostalCode  string

	SellerName     string
	SellerOrderRef string
	Marketplace    string

	ProductDescription string
	ProductSKU         string
	ProductCategory    string
	PackageCount       int
	TotalWeightKG      *float64
	TotalVolumeCFT     *float64
	DeclaredValue      *float64
}

func (d Details) validate() error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	if strings.TrimSpace(d.AddressLine) == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	if strings.TrimSpace(d.ProductDescription) == "" {
		return errs.NewValueIsRequiredError("product_description")
	}
	if d.PackageCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("package_count",
			fmt.Errorf("%d is not greater than 0", d.PackageCount))
	}
	return nil
}

// Payment carries the cash-on-delivery terms of an order.
type Payment struct {
	IsCOD     bool
	CODAmount float64
}

// Order is the DeliveryOrder aggregate root. It enforces the order state
// machine and guarantees that each lifecycle timestamp is written exactly
// once, on the first transition into the corresponding state.
type Order struct {
	id            kernel.UUID
	hubID         kernel.UUID
	orderNumber   string
	source        Source
	importBatchID *kernel.UUID

	details Details
	payment Payment

	priority      Priority
	scheduledDate *time.Time
	deliverySlot  string

	routeID  *kernel.UUID
	driverID *kernel.UUID
	status   Status

	createdAt        time.Time
	assignedAt       *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time
	failedAt         *time.Time
	returnedAt       *time.Time
}

// NewOrderNumber generates a short unique order reference, e.g. "DH-3F0A91BC".
func NewOrderNumber() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "DH-" + strings.ToUpper(hex[:8])
}

// NewOrder creates a pending order for a hub.
// The caller provides a generated id and order number so the aggregate stays
// free of infrastructure concerns; NewOrderNumber covers the common case.
func NewOrder(
	id kernel.UUID,
	hubID kernel.UUID,
	orderNumber string,
	source Source,
	details Details,
	payment Payment,
	priority Priority,
	scheduledDate *time.Time,
	deliverySlot string,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := hubID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.NewValueIsRequiredError("order_number")
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if err := details.validate(); err != nil {
		return nil, err
	}
	if priority == "" {
		priority = PriorityNormal
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		hubID:         hubID,
		orderNumber:   orderNumber,
		source:        source,
		details:       details,
		payment:       payment,
		priority:      priority,
		scheduledDate: scheduledDate,
		deliverySlot:  deliverySlot,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time defaults. The stored status must still be a defined state.
func RestoreOrder(
	id kernel.UUID,
	hubID kernel.UUID,
	orderNumber string,
	source Source,
	importBatchID *kernel.UUID,
	details Details,
	payment Payment,
	priority Priority,
	scheduledDate *time.Time,
	deliverySlot string,
	routeID *kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	createdAt time.Time,
	assignedAt, outForDeliveryAt, deliveredAt, failedAt, returnedAt *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:               id,
		hubID:            hubID,
		orderNumber:      orderNumber,
		source:           source,
		importBatchID:    importBatchID,
		details:          details,
		payment:          payment,
		priority:         priority,
		scheduledDate:    scheduledDate,
		deliverySlot:     deliverySlot,
		routeID:          routeID,
		driverID:         driverID,
		status:           status,
		createdAt:        createdAt,
		assignedAt:       assignedAt,
		outForDeliveryAt: outForDeliveryAt,
		deliveredAt:      deliveredAt,
		failedAt:         failedAt,
		returnedAt:       returnedAt,
	}, nil
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) HubID() kernel.UUID           { return o.hubID }
func (o *Order) OrderNumber() string          { return o.orderNumber }
func (o *Order) Source() Source               { return o.source }
func (o *Order) ImportBatchID() *kernel.UUID  { return o.importBatchID }
func (o *Order) Details() Details             { return o.details }
func (o *Order) Payment() Payment             { return o.payment }
func (o *Order) Priority() Priority           { return o.priority }
func (o *Order) ScheduledDate() *time.Time    { return o.scheduledDate }
func (o *Order) DeliverySlot() string         { return o.deliverySlot }
func (o *Order) RouteID() *kernel.UUID        { return o.routeID }
func (o *Order) DriverID() *kernel.UUID       { return o.driverID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) AssignedAt() *time.Time       { return o.assignedAt }
func (o *Order) OutForDeliveryAt() *time.Time { return o.outForDeliveryAt }
func (o *Order) DeliveredAt() *time.Time      { return o.deliveredAt }
func (o *Order) FailedAt() *time.Time         { return o.failedAt }
func (o *Order) ReturnedAt() *time.Time       { return o.returnedAt }

// WeightKG returns the order weight, defaulting to 0 when no weight was
// captured. The route planner relies on this default.
func (o *Order) WeightKG() float64 {
	if o.details.TotalWeightKG == nil {
		return 0
	}
	return *o.details.TotalWeightKG
}

// MarkImported links the order to the import batch that created it.
func (o *Order) MarkImported(batchID kernel.UUID) {
	o.importBatchID = &batchID
}

// AttachToRoute records route membership during planning. The order stays
// pending and keeps no driver: a planned route has no driver yet.
func (o *Order) AttachToRoute(routeID kernel.UUID) error {
	if o.status != StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is %s, only pending orders can be routed", o.orderNumber, o.status))
	}
	if o.routeID != nil {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is already on a route", o.orderNumber))
	}
	o.routeID = &routeID
	return nil
}

// Assign moves the order to assigned when its route receives a driver.
// Re-assignment of an already assigned order (driver swap) is allowed.
func (o *Order) Assign(routeID, driverID kernel.UUID, now time.Time) error {
	if o.status != StatusPending && o.status != StatusAssigned {
		return o.transitionConflict(StatusAssigned)
	}
	o.routeID = &routeID
	o.driverID = &driverID
	o.status = StatusAssigned
	if o.assignedAt == nil {
		t := now
		o.assignedAt = &t
	}
	return nil
}

// MarkOutForDelivery is the dispatch cascade: assigned -> out_for_delivery.
func (o *Order) MarkOutForDelivery(now time.Time) error {
	if !o.status.CanTransitionTo(StatusOutForDelivery) {
		return o.transitionConflict(StatusOutForDelivery)
	}
	o.status = StatusOutForDelivery
	if o.outForDeliveryAt == nil {
		t := now
		o.outForDeliveryAt = &t
	}
	return nil
}

// MarkDelivered finalizes the order after a successful attempt.
func (o *Order) MarkDelivered(now time.Time) error {
	if !o.status.CanTransitionTo(StatusDelivered) {
		return o.transitionConflict(StatusDelivered)
	}
	o.status = StatusDelivered
	if o.deliveredAt == nil {
		t := now
		o.deliveredAt = &t
	}
	return nil
}

// MarkFailed records a failed attempt outcome.
func (o *Order) MarkFailed(now time.Time) error {
	if !o.status.CanTransitionTo(StatusFailed) {
		return o.transitionConflict(StatusFailed)
	}
	o.status = StatusFailed
	if o.failedAt == nil {
		t := now
		o.failedAt = &t
	}
	return nil
}

// ReturnToHub closes out a failed order once it is physically back at the hub.
func (o *Order) ReturnToHub(now time.Time) error {
	if !o.status.CanTransitionTo(StatusReturnedToHub) {
		return o.transitionConflict(StatusReturnedToHub)
	}
	o.status = StatusReturnedToHub
	if o.returnedAt == nil {
		t := now
		o.returnedAt = &t
	}
	return nil
}

// Cancel voids the order. Delivered and already-cancelled orders cannot be
// cancelled.
func (o *Order) Cancel() error {
	if o.status == StatusDelivered || o.status == StatusCancelled {
		return errs.NewConflictError(
			fmt.Sprintf("cannot cancel order with status: %s", o.status))
	}
	o.status = StatusCancelled
	return nil
}

// Unassign is the route-deletion cascade: the order returns to the pending
// pool with no route, driver or assignment timestamp.
func (o *Order) Unassign() error {
	if o.status.IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("order %s is %s and cannot be unassigned", o.orderNumber, o.status))
	}
	o.routeID = nil
	o.driverID = nil
	o.assignedAt = nil
	o.status = StatusPending
	return nil
}

func (o *Order) transitionConflict(to Status) error {
	return errs.NewConflictError(
		fmt.Sprintf("invalid order status transition: %s -> %s", o.status, to))
}
