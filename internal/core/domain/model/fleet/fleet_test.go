package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

func ptr(v float64) *float64 { return &v }

func TestNewVehicle(t *testing.T) {
	hubID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		v, err := NewVehicle(kernel.NewUUID(), hubID, "van", "KA-01-AB-1234", ptr(150), nil)
		require.NoError(t, err)
		assert.Equal(t, VehicleAvailable, v.Status())
		assert.True(t, v.IsActive())
		assert.Nil(t, v.AssignedDriverID())
	})

	t.Run("unlimited capacity", func(t *testing.T) {
		v, err := NewVehicle(kernel.NewUUID(), hubID, "truck", "KA-01-AB-5678", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, v.CapacityKG())
	})

	t.Run("empty plate number", func(t *testing.T) {
		_, err := NewVehicle(kernel.NewUUID(), hubID, "van", "  ", nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		_, err := NewVehicle(kernel.NewUUID(), hubID, "van", "KA-01-AB-0000", ptr(0), nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicleMarkOnRoute(t *testing.T) {
	hubID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	t.Run("available vehicle goes on route", func(t *testing.T) {
		v, err := NewVehicle(kernel.NewUUID(), hubID, "van", "KA-01-AB-1111", ptr(100), nil)
		require.NoError(t, err)

		require.NoError(t, v.MarkOnRoute(driverID))
		assert.Equal(t, VehicleOnRoute, v.Status())
		require.NotNil(t, v.AssignedDriverID())
		assert.True(t, v.AssignedDriverID().IsEqual(driverID))

		v.Release()
		assert.Equal(t, VehicleAvailable, v.Status())
		assert.Nil(t, v.AssignedDriverID())
	})

	t.Run("vehicle in maintenance is rejected", func(t *testing.T) {
		v, err := RestoreVehicle(kernel.NewUUID(), hubID, "van", "KA-01-AB-2222",
			nil, nil, VehicleMaintenance, nil, true)
		require.NoError(t, err)

		assert.ErrorIs(t, v.MarkOnRoute(driverID), errs.ErrConflict)
	})

	t.Run("inactive vehicle is rejected", func(t *testing.T) {
		v, err := RestoreVehicle(kernel.NewUUID(), hubID, "van", "KA-01-AB-3333",
			nil, nil, VehicleAvailable, nil, false)
		require.NoError(t, err)

		assert.ErrorIs(t, v.MarkOnRoute(driverID), errs.ErrConflict)
	})
}

func TestNewDriver(t *testing.T) {
	hubID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		d, err := NewDriver(kernel.NewUUID(), hubID, "Ravi Kumar", "+919900112233")
		require.NoError(t, err)
		assert.Equal(t, DriverAvailable, d.Status())
		assert.True(t, d.IsActive())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewDriver(kernel.NewUUID(), hubID, "", "+919900112233")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty phone", func(t *testing.T) {
		_, err := NewDriver(kernel.NewUUID(), hubID, "Ravi Kumar", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDriverMarkOnDelivery(t *testing.T) {
	hubID := kernel.NewUUID()

	t.Run("available driver goes on delivery", func(t *testing.T) {
		d, err := NewDriver(kernel.NewUUID(), hubID, "Ravi Kumar", "+919900112233")
		require.NoError(t, err)

		require.NoError(t, d.MarkOnDelivery())
		assert.Equal(t, DriverOnDelivery, d.Status())

		d.MarkAvailable()
		assert.Equal(t, DriverAvailable, d.Status())
	})

	t.Run("off duty driver is rejected", func(t *testing.T) {
		d, err := RestoreDriver(kernel.NewUUID(), hubID, "Ravi Kumar", "+919900112233",
			DriverOffDuty, true)
		require.NoError(t, err)

		assert.ErrorIs(t, d.MarkOnDelivery(), errs.ErrConflict)
	})
}
