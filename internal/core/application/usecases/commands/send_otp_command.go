package commands

import (
	"errors"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
)

var ErrSendOtpCommandIsNotConstructed = errors.New(
	"SendOtpCommand must be created via NewSendOtpCommand constructor",
)

// SendOtpCommand is a request to issue a confirmation code for an order,
// either for the delivery handover or for the return of a failed delivery.
// SMS transport is out of scope; the code lands in storage and the caller
// gets a masked destination back.
type SendOtpCommand struct {
	orderID   kernel.UUID
	tokenType otp.TokenType

	constructed bool
}

func NewSendOtpCommand(orderID kernel.UUID, tokenType otp.TokenType) (SendOtpCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SendOtpCommand{}, err
	}
	if err := tokenType.Validate(); err != nil {
		return SendOtpCommand{}, err
	}
	return SendOtpCommand{orderID: orderID, tokenType: tokenType, constructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOtpCommand) Validate() error {
	if !c.constructed {
		return ErrSendOtpCommandIsNotConstructed
	}
	return nil
}

func (c SendOtpCommand) OrderID() kernel.UUID     { return c.orderID }
func (c SendOtpCommand) TokenType() otp.TokenType { return c.tokenType }
