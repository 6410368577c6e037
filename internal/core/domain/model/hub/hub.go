// Package hub contains the delivery hub entity that anchors the order pool
// and the fleet.
package hub

import (
	"strings"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

// Hub is a physical dispatch location. Route names embed its code.
type Hub struct {
	id         kernel.UUID
	name       string
	code       string
	city       string
	postalCode string
	isActive   bool
}

// NewHub creates an active hub. The code is uppercased and becomes part of
// every auto-planned route name.
func NewHub(id kernel.UUID, name, code, city, postalCode string) (*Hub, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	return &Hub{
		id:         id,
		name:       name,
		code:       strings.ToUpper(code),
		city:       city,
		postalCode: postalCode,
		isActive:   true,
	}, nil
}

// RestoreHub reconstructs a hub from persistence.
func RestoreHub(id kernel.UUID, name, code, city, postalCode string, isActive bool) (*Hub, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Hub{
		id:         id,
		name:       name,
		code:       code,
		city:       city,
		postalCode: postalCode,
		isActive:   isActive,
	}, nil
}

func (h *Hub) ID() kernel.UUID    { return h.id }
func (h *Hub) Name() string       { return h.name }
func (h *Hub) Code() string       { return h.code }
func (h *Hub) City() string       { return h.city }
func (h *Hub) PostalCode() string { return h.postalCode }
func (h *Hub) IsActive() bool     { return h.isActive }
