package commands

import (
	"errors"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a request to register a single order at a hub,
// entered manually or through the API.
type CreateOrderCommand struct {
	hubID         kernel.UUID
	source        order.Source
	details       order.Details
	payment       order.Payment
	priority      order.Priority
	scheduledDate *time.Time
	deliverySlot  string

	constructed bool
}

// NewCreateOrderCommand validates identity and source up front; field-level
// rules live in the order aggregate.
func NewCreateOrderCommand(
	hubID kernel.UUID,
	source order.Source,
	details order.Details,
	payment order.Payment,
	priority order.Priority,
	scheduledDate *time.Time,
	deliverySlot string,
) (CreateOrderCommand, error) {
	if err := hubID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := source.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		hubID:         hubID,
		source:        source,
		details:       details,
		payment:       payment,
		priority:      priority,
		scheduledDate: scheduledDate,
		deliverySlot:  deliverySlot,
		constructed:   true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	if !c.constructed {
		return ErrCreateOrderCommandIsNotConstructed
	}
	return nil
}

func (c CreateOrderCommand) HubID() kernel.UUID         { return c.hubID }
func (c CreateOrderCommand) Source() order.Source       { return c.source }
func (c CreateOrderCommand) Details() order.Details     { return c.details }
func (c CreateOrderCommand) Payment() order.Payment     { return c.payment }
func (c CreateOrderCommand) Priority() order.Priority   { return c.priority }
func (c CreateOrderCommand) ScheduledDate() *time.Time  { return c.scheduledDate }
func (c CreateOrderCommand) DeliverySlot() string       { return c.deliverySlot }
