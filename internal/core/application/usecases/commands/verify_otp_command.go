package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

var ErrVerifyOtpCommandIsNotConstructed = errors.New(
	"VerifyOtpCommand must be created via NewVerifyOtpCommand constructor",
)

// VerifyOtpCommand carries the code a driver read back from the customer,
// against the order's active token of the given type.
type VerifyOtpCommand struct {
	orderID   kernel.UUID
	tokenType otp.TokenType
	code      string

	constructed bool
}

func NewVerifyOtpCommand(orderID kernel.UUID, tokenType otp.TokenType, code string) (VerifyOtpCommand, error) {
	if err := orderID.Validate(); err != nil {
		return VerifyOtpCommand{}, err
	}
	if err := tokenType.Validate(); err != nil {
		return VerifyOtpCommand{}, err
	}
	if code == "" {
		return VerifyOtpCommand{}, errs.NewValueIsRequiredError("code")
	}

	return VerifyOtpCommand{orderID: orderID, tokenType: tokenType, code: code, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOtpCommand) Validate() error {
	if !c.constructed {
		return ErrVerifyOtpCommandIsNotConstructed
	}
	return nil
}

func (c VerifyOtpCommand) OrderID() kernel.UUID     { return c.orderID }
func (c VerifyOtpCommand) TokenType() otp.TokenType { return c.tokenType }
func (c VerifyOtpCommand) Code() string             { return c.code }
