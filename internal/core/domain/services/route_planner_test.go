package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/fleet"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

func ptr(v float64) *float64 { return &v }

func plannerOrder(t *testing.T, postal, city string, weightKG *float64) *order.Order {
	t.Helper()
	details := order.Details{
		CustomerName:       "Asha Rao",
		CustomerPhone:      "+919900112233",
		AddressLine:        "12 MG Road",
		City:               city,
		PostalCode:         postal,
		ProductDescription: "parcel",
		PackageCount:       1,
		TotalWeightKG:      weightKG,
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.NewOrderNumber(),
		order.SourceAPI, details, order.Payment{}, order.PriorityNormal, nil, "", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func plannerVehicle(t *testing.T, plate string, capacityKG *float64) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "van", plate, capacityKG, nil)
	require.NoError(t, err)
	return v
}

func TestRoutePlannerPlan(t *testing.T) {
	planner := NewRoutePlanner()

	t.Run("orders sorted by postal code then city", func(t *testing.T) {
		o1 := plannerOrder(t, "560034", "Bengaluru", nil)
		o2 := plannerOrder(t, "560001", "Bengaluru", nil)
		o3 := plannerOrder(t, "560001", "Agara", nil)

		result := planner.Plan([]*order.Order{o1, o2, o3},
			[]*fleet.Vehicle{plannerVehicle(t, "KA-01-AB-1111", nil)})

		require.Len(t, result.Routes, 1)
		got := result.Routes[0].Orders
		require.Len(t, got, 3)
		assert.Equal(t, o3.ID(), got[0].ID())
		assert.Equal(t, o2.ID(), got[1].ID())
		assert.Equal(t, o1.ID(), got[2].ID())
		assert.Empty(t, result.Unassigned)
	})

	t.Run("capacity skips non-fitting orders but keeps packing", func(t *testing.T) {
		light := plannerOrder(t, "560001", "Bengaluru", ptr(2))
		heavy := plannerOrder(t, "560002", "Bengaluru", ptr(4))
		medium := plannerOrder(t, "560003", "Bengaluru", ptr(3))

		result := planner.Plan([]*order.Order{light, heavy, medium},
			[]*fleet.Vehicle{plannerVehicle(t, "KA-01-AB-2222", ptr(5))})

		require.Len(t, result.Routes, 1)
		planned := result.Routes[0]
		require.Len(t, planned.Orders, 2)
		assert.Equal(t, light.ID(), planned.Orders[0].ID())
		assert.Equal(t, medium.ID(), planned.Orders[1].ID())
		assert.InDelta(t, 5.0, planned.TotalWeightKG, 0.001)

		require.Len(t, result.Unassigned, 1)
		assert.Equal(t, heavy.ID(), result.Unassigned[0].ID())
	})

	t.Run("leftovers spill onto the next vehicle", func(t *testing.T) {
		orders := []*order.Order{
			plannerOrder(t, "560001", "Bengaluru", ptr(6)),
			plannerOrder(t, "560002", "Bengaluru", ptr(6)),
		}
		vehicles := []*fleet.Vehicle{
			plannerVehicle(t, "KA-01-AB-3333", ptr(8)),
			plannerVehicle(t, "KA-01-AB-4444", ptr(8)),
		}

		result := planner.Plan(orders, vehicles)

		require.Len(t, result.Routes, 2)
		assert.Len(t, result.Routes[0].Orders, 1)
		assert.Len(t, result.Routes[1].Orders, 1)
		assert.Empty(t, result.Unassigned)
	})

	t.Run("stop cap splits a large backlog", func(t *testing.T) {
		var orders []*order.Order
		for i := 0; i < MaxStopsPerRoute+5; i++ {
			orders = append(orders, plannerOrder(t, "560001", "Bengaluru", nil))
		}

		result := planner.Plan(orders,
			[]*fleet.Vehicle{
				plannerVehicle(t, "KA-01-AB-5555", nil),
				plannerVehicle(t, "KA-01-AB-6666", nil),
			})

		require.Len(t, result.Routes, 2)
		assert.Len(t, result.Routes[0].Orders, MaxStopsPerRoute)
		assert.Len(t, result.Routes[1].Orders, 5)
		assert.Empty(t, result.Unassigned)
	})

	t.Run("missing weight counts as zero", func(t *testing.T) {
		weightless := plannerOrder(t, "560001", "Bengaluru", nil)

		result := planner.Plan([]*order.Order{weightless},
			[]*fleet.Vehicle{plannerVehicle(t, "KA-01-AB-7777", ptr(1))})

		require.Len(t, result.Routes, 1)
		assert.Zero(t, result.Routes[0].TotalWeightKG)
	})

	t.Run("no vehicles leaves everything unassigned", func(t *testing.T) {
		o := plannerOrder(t, "560001", "Bengaluru", nil)

		result := planner.Plan([]*order.Order{o}, nil)

		assert.Empty(t, result.Routes)
		require.Len(t, result.Unassigned, 1)
	})
}
