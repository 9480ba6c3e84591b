package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	domainErrors "github.com/l2drycleaners/cleanpress/internal/domain/errors"
)

// pickupDateLayouts are the accepted wire formats for pickup and
// delivery dates. The scheduling form sends a plain date, API clients
// may send a full timestamp.
var pickupDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a pickup or delivery date from its wire form.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", domainErrors.ErrInvalidInput)
	}
	for _, layout := range pickupDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: malformed date %q", domainErrors.ErrInvalidInput, value)
}

// ValidateEmail checks the address has a parseable form.
func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: malformed email", domainErrors.ErrInvalidInput)
	}
	return nil
}

func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order requires at least one item", domainErrors.ErrInvalidInput)
	}
	for i, item := range items {
		if strings.TrimSpace(item.ServiceType) == "" {
			return fmt.Errorf("%w: item %d is missing service type", domainErrors.ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", domainErrors.ErrInvalidInput, i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: item %d price must not be negative", domainErrors.ErrInvalidInput, i)
		}
	}
	return nil
}
