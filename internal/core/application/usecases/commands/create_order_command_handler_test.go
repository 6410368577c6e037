package commands_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hubID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(hubID, order.SourceAPI, testDetails(),
		order.Payment{}, order.PriorityNormal, nil, "")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	var persisted *order.Order
	uow.Orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*order.Order)
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^DH-[0-9A-F]{8}$`), result.OrderNumber)
	require.NotNil(t, persisted)
	assert.Equal(t, order.StatusPending, persisted.Status())
	assert.True(t, persisted.HubID().IsEqual(hubID))
	uow.Orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(orderUoWFactory{NewMockUnitOfWork()})
	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.SourceManual,
		testDetails(), order.Payment{}, order.PriorityNormal, nil, "")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Orders.On("Add", mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()

	h := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
