package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(nil, nil, nil, nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page())
		assert.Equal(t, 50, q.PageSize())
		assert.Zero(t, q.Offset())
	})

	t.Run("offset follows page", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(nil, nil, nil, nil, 3, 20)
		require.NoError(t, err)
		assert.Equal(t, 40, q.Offset())
	})

	t.Run("oversized page", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(nil, nil, nil, nil, 1, 500)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		bad := order.Status("teleported")
		_, err := queries.NewListOrdersQuery(nil, &bad, nil, nil, 1, 10)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed query fails validation", func(t *testing.T) {
		var q queries.ListOrdersQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetRouteDetailQuery(t *testing.T) {
	_, err := queries.NewGetRouteDetailQuery(kernel.UUID{})
	require.Error(t, err)

	q, err := queries.NewGetRouteDetailQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewGetImportBatchQuery(t *testing.T) {
	_, err := queries.NewGetImportBatchQuery(kernel.UUID{})
	require.Error(t, err)

	q, err := queries.NewGetImportBatchQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}
