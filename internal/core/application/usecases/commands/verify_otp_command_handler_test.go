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

func activeToken(t *testing.T, orderID kernel.UUID, tokenType otp.TokenType, code string, issued time.Time) *otp.Token {
	t.Helper()
	token, err := otp.NewToken(kernel.NewUUID(), orderID, tokenType, code, "+919900112233", issued)
	require.NoError(t, err)
	return token
}

func TestVerifyOtpCommandHandler_Handle_Verified(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	token := activeToken(t, orderID, otp.TypeDelivery, "042137", time.Now().UTC())

	cmd, err := commands.NewVerifyOtpCommand(orderID, otp.TypeDelivery, "042137")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Otps.On("GetActiveByOrder", mock.Anything, orderID, otp.TypeDelivery).Return(token, nil).Once()
	uow.Otps.On("Update", mock.Anything, token).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewVerifyOtpCommandHandler(otpUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.OtpVerified, result.Outcome)
	assert.NotNil(t, token.VerifiedAt())
	uow.Otps.AssertExpectations(t)
}

func TestVerifyOtpCommandHandler_Handle_ReturnCodeLooksUpReturnToken(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	token := activeToken(t, orderID, otp.TypeReturn, "731950", time.Now().UTC())

	cmd, err := commands.NewVerifyOtpCommand(orderID, otp.TypeReturn, "731950")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Otps.On("GetActiveByOrder", mock.Anything, orderID, otp.TypeReturn).Return(token, nil).Once()
	uow.Otps.On("Update", mock.Anything, token).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewVerifyOtpCommandHandler(otpUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.OtpVerified, result.Outcome)
	uow.Otps.AssertNotCalled(t, "GetActiveByOrder", mock.Anything, orderID, otp.TypeDelivery)
}

func TestVerifyOtpCommandHandler_Handle_CodeMismatch(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	token := activeToken(t, orderID, otp.TypeDelivery, "042137", time.Now().UTC())

	cmd, err := commands.NewVerifyOtpCommand(orderID, otp.TypeDelivery, "000000")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Otps.On("GetActiveByOrder", mock.Anything, orderID, otp.TypeDelivery).Return(token, nil).Once()

	h := commands.NewVerifyOtpCommandHandler(otpUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.OtpCodeMismatch, result.Outcome)
	assert.Nil(t, token.VerifiedAt())
	uow.Otps.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestVerifyOtpCommandHandler_Handle_Expired(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	token := activeToken(t, orderID, otp.TypeDelivery, "042137", time.Now().UTC().Add(-2*otp.TokenTTL))

	cmd, err := commands.NewVerifyOtpCommand(orderID, otp.TypeDelivery, "042137")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Otps.On("GetActiveByOrder", mock.Anything, orderID, otp.TypeDelivery).Return(token, nil).Once()

	h := commands.NewVerifyOtpCommandHandler(otpUoWFactory{uow})
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, commands.OtpExpired, result.Outcome)
	assert.Nil(t, token.VerifiedAt())
}

func TestVerifyOtpCommandHandler_Handle_NoActiveToken(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewVerifyOtpCommand(orderID, otp.TypeDelivery, "042137")
	require.NoError(t, err)

	uow := NewMockUnitOfWork()
	uow.Otps.On("GetActiveByOrder", mock.Anything, orderID, otp.TypeDelivery).
		Return(nil, errs.NewObjectNotFoundError("order_id", orderID)).Once()

	h := commands.NewVerifyOtpCommandHandler(otpUoWFactory{uow})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
