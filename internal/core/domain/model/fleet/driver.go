package fleet

import (
	"fmt"
	"strings"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// DriverStatus represents a driver's availability for delivery work.
type DriverStatus string

const (
	DriverAvailable  DriverStatus = "available"
	DriverOnDelivery DriverStatus = "on_delivery"
	DriverOffDuty    DriverStatus = "off_duty"
)

// Validate checks that the status is one of the defined states.
func (s DriverStatus) Validate() error {
	switch s {
	case DriverAvailable, DriverOnDelivery, DriverOffDuty:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid driver status", string(s)))
	}
}

// Driver is a hub courier who executes routes.
type Driver struct {
	id       kernel.UUID
	hubID    kernel.UUID
	name     string
	phone    string
	status   DriverStatus
	isActive bool
}

// NewDriver registers an available, active driver at a hub.
func NewDriver(id, hubID kernel.UUID, name, phone string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := hubID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	return &Driver{
		id:       id,
		hubID:    hubID,
		name:     name,
		phone:    phone,
		status:   DriverAvailable,
		isActive: true,
	}, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id, hubID kernel.UUID,
	name, phone string,
	status DriverStatus,
	isActive bool,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:       id,
		hubID:    hubID,
		name:     name,
		phone:    phone,
		status:   status,
		isActive: isActive,
	}, nil
}

func (d *Driver) ID() kernel.UUID      { return d.id }
func (d *Driver) HubID() kernel.UUID   { return d.hubID }
func (d *Driver) Name() string         { return d.name }
func (d *Driver) Phone() string        { return d.phone }
func (d *Driver) Status() DriverStatus { return d.status }
func (d *Driver) IsActive() bool       { return d.isActive }

// MarkOnDelivery marks the driver as out running a route.
func (d *Driver) MarkOnDelivery() error {
	if !d.isActive || d.status == DriverOffDuty {
		return errs.NewConflictError(
			fmt.Sprintf("driver %s is not available for delivery", d.name))
	}
	d.status = DriverOnDelivery
	return nil
}

// MarkAvailable returns the driver to the available pool.
func (d *Driver) MarkAvailable() {
	d.status = DriverAvailable
}
