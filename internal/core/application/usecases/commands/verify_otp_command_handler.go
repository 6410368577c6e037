package commands

import (
	"context"
	"time"
)

// OtpVerification is the typed outcome of a verification attempt. Mismatch
// and expiry are ordinary outcomes the driver retries on, not errors.
type OtpVerification string

const (
	OtpVerified     OtpVerification = "verified"
	OtpCodeMismatch OtpVerification = "code_mismatch"
	OtpExpired      OtpVerification = "expired"
)

// VerifyOtpResult carries the verification outcome.
type VerifyOtpResult struct {
	Outcome OtpVerification
}

// VerifyOtpCommandHandler checks a driver-entered code against the order's
// active token of the requested type. Missing active token surfaces as
// ErrObjectNotFound.
type VerifyOtpCommandHandler struct {
	uowFactory OtpUoWFactory
}

func NewVerifyOtpCommandHandler(uowFactory OtpUoWFactory) VerifyOtpCommandHandler {
	return VerifyOtpCommandHandler{uowFactory: uowFactory}
}

func (h *VerifyOtpCommandHandler) Handle(ctx context.Context, cmd VerifyOtpCommand) (VerifyOtpResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyOtpResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VerifyOtpResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	token, err := uow.OtpRepository().GetActiveByOrder(ctx, cmd.OrderID(), cmd.TokenType())
	if err != nil {
		return VerifyOtpResult{}, err
	}

	now := time.Now().UTC()
	if !token.Matches(cmd.Code()) {
		return VerifyOtpResult{Outcome: OtpCodeMismatch}, nil
	}
	if token.IsExpired(now) {
		return VerifyOtpResult{Outcome: OtpExpired}, nil
	}

	if err = token.Verify(cmd.Code(), now); err != nil {
		return VerifyOtpResult{}, err
	}
	if err = uow.OtpRepository().Update(ctx, token); err != nil {
		return VerifyOtpResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return VerifyOtpResult{}, err
	}

	return VerifyOtpResult{Outcome: OtpVerified}, nil
}
