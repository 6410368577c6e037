package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

func TestSendOtpCommandHandler_Handle_SupersedesActiveToken(t *testing.T) {
	ctx := t.Context()
	hubID := kernel.NewUUID()
	orderAggregate := testPendingOrder(t, hubID)

	cmd, err := commands.NewSendOtpCommand(orderAggregate.ID(), otp.TypeDelivery)
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Orders.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once()

	var stored *otp.Token
	mock.InOrder(
		uow.Otps.On("InvalidateActiveByOrder", mock.Anything, orderAggregate.ID(), otp.TypeDelivery).
			Return(nil).Once(),
		uow.Otps.On("Add", mock.Anything, mock.AnythingOfType("*otp.Token")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*otp.Token)
			}).Return(nil).Once(),
	)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSendOtpCommandHandler(otpUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "*********2233", result.MaskedDestination)
	assert.WithinDuration(t, time.Now().UTC().Add(otp.TokenTTL), result.ExpiresAt, 5*time.Second)

	require.NotNil(t, stored)
	assert.Len(t, stored.Code(), 6)
	assert.Equal(t, otp.TypeDelivery, stored.Type())
	assert.Equal(t, orderAggregate.Details().CustomerPhone, stored.Destination())
	uow.Otps.AssertExpectations(t)
}

func TestSendOtpCommandHandler_Handle_ReturnCodeKeepsDeliveryCodeLive(t *testing.T) {
	ctx := t.Context()
	hubID := kernel.NewUUID()
	orderAggregate := testPendingOrder(t, hubID)

	cmd, err := commands.NewSendOtpCommand(orderAggregate.ID(), otp.TypeReturn)
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Orders.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once()
	// Only return tokens for this order are superseded. A delivery code
	// issued earlier stays verifiable alongside the new return code.
	uow.Otps.On("InvalidateActiveByOrder", mock.Anything, orderAggregate.ID(), otp.TypeReturn).
		Return(nil).Once()
	uow.Otps.On("Add", mock.Anything, mock.AnythingOfType("*otp.Token")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewSendOtpCommandHandler(otpUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	uow.Otps.AssertNotCalled(t, "InvalidateActiveByOrder",
		mock.Anything, orderAggregate.ID(), otp.TypeDelivery)
	uow.Otps.AssertExpectations(t)
}

func TestSendOtpCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewSendOtpCommand(orderID, otp.TypeDelivery)
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Orders.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order_id", orderID)).Once()

	h := commands.NewSendOtpCommandHandler(otpUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.Otps.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
