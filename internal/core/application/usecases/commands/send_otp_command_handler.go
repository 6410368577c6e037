package commands

import (
	"context"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
)

// SendOtpResult reports where the code went and how long it lives.
type SendOtpResult struct {
	MaskedDestination string
	ExpiresAt         time.Time
}

// SendOtpCommandHandler issues a fresh confirmation code for an order,
// superseding any active one of the same type. Invalidate and insert run in
// one transaction so at most one token per order and type is verifiable at
// any time; a delivery code and a return code can coexist.
type SendOtpCommandHandler struct {
	uowFactory OtpUoWFactory
}

func NewSendOtpCommandHandler(uowFactory OtpUoWFactory) SendOtpCommandHandler {
	return SendOtpCommandHandler{uowFactory: uowFactory}
}

func (h *SendOtpCommandHandler) Handle(ctx context.Context, cmd SendOtpCommand) (SendOtpResult, error) {
	if err := cmd.Validate(); err != nil {
		return SendOtpResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SendOtpResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return SendOtpResult{}, err
	}

	code, err := otp.NewCode()
	if err != nil {
		return SendOtpResult{}, err
	}
	token, err := otp.NewToken(
		kernel.NewUUID(), cmd.OrderID(), cmd.TokenType(), code,
		orderAggregate.Details().CustomerPhone, time.Now().UTC())
	if err != nil {
		return SendOtpResult{}, err
	}

	if err = uow.OtpRepository().InvalidateActiveByOrder(ctx, cmd.OrderID(), cmd.TokenType()); err != nil {
		return SendOtpResult{}, err
	}
	if err = uow.OtpRepository().Add(ctx, token); err != nil {
		return SendOtpResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return SendOtpResult{}, err
	}

	return SendOtpResult{
		MaskedDestination: otp.MaskedDestination(token.Destination()),
		ExpiresAt:         token.ExpiresAt(),
	}, nil
}
