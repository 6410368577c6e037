package http

import (
	"net/http"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/attempt"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/route"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ArriveAtStop handles POST /api/v1/stops/:id/arrive.
func (s *Server) ArriveAtStop(ctx echo.Context) error {
	stopID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewArriveAtStopCommand(stopID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.arriveAtStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteStopRequest is the JSON body of POST /api/v1/stops/:id/complete.
type CompleteStopRequest struct {
	Outcome string `json:"outcome"`
}

// CompleteStop handles POST /api/v1/stops/:id/complete.
func (s *Server) CompleteStop(ctx echo.Context) error {
	stopID, err := parseIDParam(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CompleteStopRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCompleteStopCommand(stopID, route.StopStatus(req.Outcome))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendOtpRequest is the JSON body of POST /api/v1/otp/send. An empty
// otp_type means a delivery code.
type SendOtpRequest struct {
	OrderID string `json:"order_id"`
	OtpType string `json:"otp_type"`
}

// SendOtpResponse reports where the code went and when it expires. The
// code itself is never echoed back.
type SendOtpResponse struct {
	MaskedDestination string    `json:"masked_destination"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// SendOtp handles POST /api/v1/otp/send.
func (s *Server) SendOtp(ctx echo.Context) error {
	var req SendOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	cmd, err := commands.NewSendOtpCommand(orderID, otpType(req.OtpType))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.sendOtpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SendOtpResponse{
		MaskedDestination: result.MaskedDestination,
		ExpiresAt:         result.ExpiresAt,
	})
}

// VerifyOtpRequest is the JSON body of POST /api/v1/otp/verify. An empty
// otp_type means a delivery code.
type VerifyOtpRequest struct {
	OrderID string `json:"order_id"`
	OtpType string `json:"otp_type"`
	Code    string `json:"code"`
}

// VerifyOtpResponse carries the verification outcome. Mismatch and expiry
// are outcomes of a well-formed request, not transport errors.
type VerifyOtpResponse struct {
	Outcome string `json:"outcome"`
}

// VerifyOtp handles POST /api/v1/otp/verify.
func (s *Server) VerifyOtp(ctx echo.Context) error {
	var req VerifyOtpRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	cmd, err := commands.NewVerifyOtpCommand(orderID, otpType(req.OtpType), req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.verifyOtpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerifyOtpResponse{
		Outcome: string(result.Outcome),
	})
}

// otpType maps the wire value to a token type, defaulting to delivery.
func otpType(raw string) otp.TokenType {
	if raw == "" {
		return otp.TypeDelivery
	}
	return otp.TokenType(raw)
}

// RecordAttemptRequest is the JSON body of POST /api/v1/attempts.
type RecordAttemptRequest struct {
	OrderID       string   `json:"order_id"`
	StopID        *string  `json:"stop_id"`
	Outcome       string   `json:"outcome"`
	FailureReason string   `json:"failure_reason"`
	Notes         string   `json:"notes"`
	RecipientName string   `json:"recipient_name"`
	CODCollected  bool     `json:"cod_collected"`
	CODAmount     *float64 `json:"cod_amount"`
}

// RecordAttemptResponse reports the appended attempt.
type RecordAttemptResponse struct {
	AttemptID     string `json:"attempt_id"`
	AttemptNumber int    `json:"attempt_number"`
}

// RecordAttempt handles POST /api/v1/attempts.
func (s *Server) RecordAttempt(ctx echo.Context) error {
	var req RecordAttemptRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	var stopID *kernel.UUID
	if req.StopID != nil && *req.StopID != "" {
		id, parseErr := kernel.UUIDFromString(*req.StopID)
		if parseErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("stop_id", parseErr))
		}
		stopID = &id
	}

	cmd, err := commands.NewRecordAttemptCommand(
		orderID,
		stopID,
		attempt.Outcome(req.Outcome),
		req.FailureReason,
		req.Notes,
		attempt.Proof{
			RecipientName: req.RecipientName,
			CODCollected:  req.CODCollected,
			CODAmount:     req.CODAmount,
		},
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.recordAttemptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RecordAttemptResponse{
		AttemptID:     result.AttemptID.String(),
		AttemptNumber: result.AttemptNumber,
	})
}
