package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCategory indicates an unknown ordnance category
	ErrInvalidCategory = errors.New("invalid ordnance category")

	// ErrInvalidHolder indicates the depot/ship pair is inconsistent
	ErrInvalidHolder = errors.New("exactly one of depot or ship must be set")

	// ErrInvalidDate indicates a malformed date field
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyShips indicates no ships were selected for a recommendation
	ErrEmptyShips = errors.New("ship selection cannot be empty")

	// ErrInvalidDuration indicates a non-positive mission duration
	ErrInvalidDuration = errors.New("mission duration must be positive")
)

const dateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD date field.
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *value)
	}
	return &t, nil
}

// ValidateHolder checks that exactly one of depot/ship is populated.
func ValidateHolder(depot, ship *string) error {
	hasDepot := depot != nil && *depot != ""
	hasShip := ship != nil && *ship != ""
	if hasDepot == hasShip {
		return ErrInvalidHolder
	}
	return nil
}

// ValidateCreateItemRequest performs the semantic checks the struct tags
// cannot express.
func ValidateCreateItemRequest(req *CreateItemRequest) error {
	if _, ok := NormalizeCategory(req.Category); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if err := ValidateHolder(req.Depot, req.Ship); err != nil {
		return err
	}
	if _, err := ParseDate(req.ManufactureDate); err != nil {
		return fmt.Errorf("manufacture_date: %w", err)
	}
	if _, err := ParseDate(req.ExpiryDate); err != nil {
		return fmt.Errorf("expiry_date: %w", err)
	}
	return nil
}

// ValidateUpdateItemRequest checks that an update keeps the holder invariant.
// Depot and ship may not both be set in one update; setting either moves the
// item to that holder.
func ValidateUpdateItemRequest(req *UpdateItemRequest) error {
	hasDepot := req.Depot != nil && *req.Depot != ""
	hasShip := req.Ship != nil && *req.Ship != ""
	if hasDepot && hasShip {
		return ErrInvalidHolder
	}
	return nil
}

// ValidateMissionParams rejects input the generator cannot handle. The
// recommendation engine never fails past this point: unknown mission types
// fall back to a default template instead of erroring.
func ValidateMissionParams(p *MissionParams) error {
	if p.DurationDays <= 0 {
		return ErrInvalidDuration
	}
	if len(p.SelectedShips) == 0 {
		return ErrEmptyShips
	}
	for _, ship := range p.SelectedShips {
		if ship == "" {
			return fmt.Errorf("%w: blank ship name", ErrEmptyShips)
		}
	}
	return nil
}
