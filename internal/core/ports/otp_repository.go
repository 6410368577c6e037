package ports

import (
	"context"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/otp"
)

// OtpRepository is the persistence contract for delivery confirmation codes.
type OtpRepository interface {
	// Add persists a newly issued token.
	Add(ctx context.Context, token *otp.Token) error

	// Update persists changes to an existing token.
	Update(ctx context.Context, token *otp.Token) error

	// GetActiveByOrder retrieves the order's current verifiable token of
	// the given type: not invalidated and not yet verified. Expiry is the
	// caller's check.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID, tokenType otp.TokenType) (*otp.Token, error)

	// InvalidateActiveByOrder retires every active token of the given
	// type for the order so a fresh one can be issued. Tokens of other
	// types stay live.
	InvalidateActiveByOrder(ctx context.Context, orderID kernel.UUID, tokenType otp.TokenType) error
}
