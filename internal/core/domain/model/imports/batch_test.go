package imports

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

func newBatch(t *testing.T) *Batch {
	t.Helper()
	b, err := NewBatch(kernel.NewUUID(), kernel.NewUUID(), "orders.csv", "ops@hub", time.Now().UTC())
	require.NoError(t, err)
	return b
}

func TestBatchFinalize(t *testing.T) {
	now := time.Now().UTC()

	t.Run("all rows imported", func(t *testing.T) {
		b := newBatch(t)
		b.RecordSuccess()
		b.RecordSuccess()

		require.NoError(t, b.Finalize(now))
		assert.Equal(t, BatchCompleted, b.Status())
		assert.Equal(t, 2, b.TotalRows())
		assert.Equal(t, 2, b.Processed())
		require.NotNil(t, b.FinishedAt())
	})

	t.Run("partial success completes with errors", func(t *testing.T) {
		b := newBatch(t)
		b.RecordSuccess()
		b.RecordFailure(3, "customer_phone is required")

		require.NoError(t, b.Finalize(now))
		assert.Equal(t, BatchCompletedWithErrors, b.Status())
		assert.Equal(t, 1, b.Failed())
	})

	t.Run("nothing imported fails the batch", func(t *testing.T) {
		b := newBatch(t)
		b.RecordFailure(2, "customer_name is required")

		require.NoError(t, b.Finalize(now))
		assert.Equal(t, BatchFailed, b.Status())
	})

	t.Run("empty file completes", func(t *testing.T) {
		b := newBatch(t)
		require.NoError(t, b.Finalize(now))
		assert.Equal(t, BatchCompleted, b.Status())
	})

	t.Run("double finalize", func(t *testing.T) {
		b := newBatch(t)
		require.NoError(t, b.Finalize(now))
		assert.ErrorIs(t, b.Finalize(now), errs.ErrConflict)
	})
}

func TestBatchErrorPreview(t *testing.T) {
	b := newBatch(t)
	for i := 0; i < ErrorPreviewLimit+5; i++ {
		b.RecordFailure(i+2, fmt.Sprintf("row %d is broken", i+2))
	}

	preview := b.ErrorPreview()
	assert.Len(t, preview, ErrorPreviewLimit)
	assert.Len(t, b.RowErrors(), ErrorPreviewLimit+5)
	assert.Equal(t, 2, preview[0].Row)
}
