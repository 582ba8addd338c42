package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MaxHotelNameLength is the longest name the hotels table accepts.
const MaxHotelNameLength = 120

var ErrHotelNotFound = errors.New("hotel not found")
var ErrForbidden = errors.New("forbidden")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrValidation = errors.New("invalid input")

// Hotel is the core aggregate of the listing service. ManagerID is optional
// and, when set, references an existing user.
type Hotel struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID *int64 `json:"manager_id,omitempty"`
}

// Validate enforces the field rules shared by create and update:
// Name non-empty and at most MaxHotelNameLength characters, Address
// non-empty, ManagerID positive when present.
func (h *Hotel) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(h.Name) > MaxHotelNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrValidation, MaxHotelNameLength)
	}
	if strings.TrimSpace(h.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	if h.ManagerID != nil && *h.ManagerID <= 0 {
		return fmt.Errorf("%w: manager_id must be positive", ErrValidation)
	}
	return nil
}
