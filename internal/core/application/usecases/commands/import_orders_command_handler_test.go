package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/imports"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

func TestImportOrdersCommandHandler_Handle_MixedRows(t *testing.T) {
	ctx := t.Context()
	csvData := strings.Join([]string{
		"customer_name,customer_phone,delivery_address,product_description",
		"Asha Rao,+919900112233,12 MG Road,Books",
		"Vikram Shah,,5 Church Street,Pens",
		"Meera Iyer,+919911223344,9 Brigade Road,Lamps",
	}, "\n")

	cmd, err := commands.NewImportOrdersCommand(kernel.NewUUID(), "orders.csv",
		strings.NewReader(csvData), "ops@hub")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Imports.On("Add", mock.Anything, mock.AnythingOfType("*imports.Batch")).Return(nil).Once()
	var created []*order.Order
	uow.Orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*order.Order))
		}).Return(nil).Twice()
	uow.Imports.On("Update", mock.Anything, mock.AnythingOfType("*imports.Batch")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewImportOrdersCommandHandler(importUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, imports.BatchCompletedWithErrors, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "customer_phone is required")

	require.Len(t, created, 2)
	for _, o := range created {
		assert.Equal(t, order.SourceCSV, o.Source())
		require.NotNil(t, o.ImportBatchID())
		assert.True(t, o.ImportBatchID().IsEqual(result.BatchID))
	}
	uow.Imports.AssertExpectations(t)
	uow.Orders.AssertExpectations(t)
}

func TestImportOrdersCommandHandler_Handle_AllRowsBroken(t *testing.T) {
	ctx := t.Context()
	csvData := strings.Join([]string{
		"customer_name,customer_phone,delivery_address,product_description",
		",,12 MG Road,Books",
	}, "\n")

	cmd, err := commands.NewImportOrdersCommand(kernel.NewUUID(), "orders.csv",
		strings.NewReader(csvData), "ops@hub")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Imports.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.Imports.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewImportOrdersCommandHandler(importUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, imports.BatchFailed, result.Status)
	assert.Zero(t, result.Processed)
	assert.Equal(t, 1, result.Failed)
	uow.Orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
