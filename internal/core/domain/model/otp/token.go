// Package otp contains the one-time codes that gate delivery confirmation.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// TokenTTL is how long a code stays verifiable after generation.
const TokenTTL = 10 * time.Minute

// TokenType separates the delivery confirmation flow from the return
// confirmation flow. Tokens of different types supersede independently, so
// a delivery code and a return code can be live for the same order.
type TokenType string

const (
	TypeDelivery TokenType = "delivery"
	TypeReturn   TokenType = "return"
)

// Validate checks that the type is one of the defined flows.
func (t TokenType) Validate() error {
	switch t {
	case TypeDelivery, TypeReturn:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("otp_type",
			fmt.Errorf("%q is not a valid otp type", string(t)))
	}
}

// NewCode generates a 6-digit numeric code, zero-padded.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Token is a single OTP issued for an order. A token is consumed by
// verification or superseded by a newer one of the same type for the same
// order.
type Token struct {
	id          kernel.UUID
	orderID     kernel.UUID
	tokenType   TokenType
	code        string
	destination string
	expiresAt   time.Time
	verifiedAt  *time.Time
	invalidated bool
	createdAt   time.Time
}

// NewToken issues a token for the order expiring TokenTTL from now.
func NewToken(id, orderID kernel.UUID, tokenType TokenType, code, destination string, now time.Time) (*Token, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := tokenType.Validate(); err != nil {
		return nil, err
	}
	if len(code) != 6 {
		return nil, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is not a 6-digit code", code))
	}
	if strings.TrimSpace(destination) == "" {
		return nil, errs.NewValueIsRequiredError("destination")
	}

	return &Token{
		id:          id,
		orderID:     orderID,
		tokenType:   tokenType,
		code:        code,
		destination: destination,
		expiresAt:   now.Add(TokenTTL),
		createdAt:   now,
	}, nil
}

// RestoreToken reconstructs a token from persistence.
func RestoreToken(
	id, orderID kernel.UUID,
	tokenType TokenType,
	code, destination string,
	expiresAt time.Time,
	verifiedAt *time.Time,
	invalidated bool,
	createdAt time.Time,
) *Token {
	return &Token{
		id:          id,
		orderID:     orderID,
		tokenType:   tokenType,
		code:        code,
		destination: destination,
		expiresAt:   expiresAt,
		verifiedAt:  verifiedAt,
		invalidated: invalidated,
		createdAt:   createdAt,
	}
}

func (t *Token) ID() kernel.UUID        { return t.id }
func (t *Token) OrderID() kernel.UUID   { return t.orderID }
func (t *Token) Type() TokenType        { return t.tokenType }
func (t *Token) Code() string           { return t.code }
func (t *Token) Destination() string    { return t.destination }
func (t *Token) ExpiresAt() time.Time   { return t.expiresAt }
func (t *Token) VerifiedAt() *time.Time { return t.verifiedAt }
func (t *Token) Invalidated() bool      { return t.invalidated }
func (t *Token) CreatedAt() time.Time   { return t.createdAt }

// IsExpired reports whether the token can no longer be verified.
func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

// Matches reports whether the supplied code equals the issued one.
func (t *Token) Matches(code string) bool {
	return t.code == code
}

// Verify consumes the token with the supplied code at the given time.
func (t *Token) Verify(code string, now time.Time) error {
	if t.invalidated || t.verifiedAt != nil {
		return errs.NewConflictError("otp is no longer active")
	}
	if t.IsExpired(now) {
		return errs.NewConflictError("otp has expired")
	}
	if !t.Matches(code) {
		return errs.NewValueIsInvalidErrorWithCause("otp",
			fmt.Errorf("code does not match"))
	}
	t.verifiedAt = &now
	return nil
}

// Invalidate retires the token so a newer one can take its place.
func (t *Token) Invalidate() {
	t.invalidated = true
}

// MaskedDestination returns the destination with all but the last four
// characters replaced, for echoing in API responses and logs.
func MaskedDestination(destination string) string {
	if len(destination) <= 4 {
		return destination
	}
	return strings.Repeat("*", len(destination)-4) + destination[len(destination)-4:]
}
