package validation

import (
	"fmt"
	"strings"

	"pizza-orders/internal/domain"
)

// ValidationError reports the first field that failed schema validation.
// The boundary layer turns it into a 400 response; the store never sees
// an invalid draft.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDraft checks an incoming order payload against the schema shared
// by every transport. It stops at the first failing field.
func ValidateDraft(d *domain.OrderDraft) error {
	if err := validateCustomer(d.Customer); err != nil {
		return err
	}

	if err := validateAddress(d.Address); err != nil {
		return err
	}

	if err := validateItems(d.Items); err != nil {
		return err
	}

	if err := validateTotal(d.Total); err != nil {
		return err
	}

	return validateStatus(d.Status)
}

func validateCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return ValidationError{
			Field:   "customer",
			Message: "customer is required",
		}
	}
	return nil
}

func validateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ValidationError{
			Field:   "address",
			Message: "address is required",
		}
	}
	return nil
}

func validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return ValidationError{
			Field:   "items",
			Message: "items cannot be empty",
		}
	}

	for i, item := range items {
		if err := validateItem(item, i); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(item domain.OrderItem, index int) error {
	if strings.TrimSpace(item.Pizza) == "" {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].pizza", index),
			Message: "pizza is required",
		}
	}

	switch item.Size {
	case domain.SizeSmall, domain.SizeMedium, domain.SizeLarge:
	default:
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].size", index),
			Message: "size must be one of: Small, Medium, Large",
		}
	}

	if item.Quantity < 1 {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].quantity", index),
			Message: "quantity must be at least 1",
		}
	}
	return nil
}

func validateTotal(total float64) error {
	if total < 0 {
		return ValidationError{
			Field:   "total",
			Message: "total must not be negative",
		}
	}
	return nil
}

func validateStatus(status domain.Status) error {
	switch status {
	case domain.StatusPending, domain.StatusPreparing, domain.StatusDelivered, domain.StatusCancelled:
		return nil
	default:
		return ValidationError{
			Field:   "status",
			Message: "status must be one of: Pending, Preparing, Delivered, Cancelled",
		}
	}
}
