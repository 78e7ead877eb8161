package validation

import (
	"errors"
	"testing"

	"pizza-orders/internal/domain"
)

func validDraft() *domain.OrderDraft {
	return &domain.OrderDraft{
		Customer: "John Doe",
		Address:  "123 Main St",
		Items: []domain.OrderItem{
			{Pizza: "Margherita", Size: domain.SizeMedium, Quantity: 1, ExtraToppings: []string{"Olives"}},
		},
		Total:  9.50,
		Status: domain.StatusPending,
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *domain.OrderDraft)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid draft",
			mutate:  func(d *domain.OrderDraft) {},
			wantErr: false,
		},
		{
			name:    "no extra toppings is valid",
			mutate:  func(d *domain.OrderDraft) { d.Items[0].ExtraToppings = nil },
			wantErr: false,
		},
		{
			name:      "missing customer",
			mutate:    func(d *domain.OrderDraft) { d.Customer = "" },
			wantErr:   true,
			wantField: "customer",
		},
		{
			name:      "blank customer",
			mutate:    func(d *domain.OrderDraft) { d.Customer = "   " },
			wantErr:   true,
			wantField: "customer",
		},
		{
			name:      "missing address",
			mutate:    func(d *domain.OrderDraft) { d.Address = "" },
			wantErr:   true,
			wantField: "address",
		},
		{
			name:      "empty items",
			mutate:    func(d *domain.OrderDraft) { d.Items = nil },
			wantErr:   true,
			wantField: "items",
		},
		{
			name:      "item without pizza",
			mutate:    func(d *domain.OrderDraft) { d.Items[0].Pizza = "" },
			wantErr:   true,
			wantField: "items[0].pizza",
		},
		{
			name:      "invalid size",
			mutate:    func(d *domain.OrderDraft) { d.Items[0].Size = "Gigantic" },
			wantErr:   true,
			wantField: "items[0].size",
		},
		{
			name:      "zero quantity",
			mutate:    func(d *domain.OrderDraft) { d.Items[0].Quantity = 0 },
			wantErr:   true,
			wantField: "items[0].quantity",
		},
		{
			name:      "negative quantity",
			mutate:    func(d *domain.OrderDraft) { d.Items[0].Quantity = -2 },
			wantErr:   true,
			wantField: "items[0].quantity",
		},
		{
			name: "second item invalid",
			mutate: func(d *domain.OrderDraft) {
				d.Items = append(d.Items, domain.OrderItem{Pizza: "Veggie", Size: domain.SizeSmall, Quantity: 0})
			},
			wantErr:   true,
			wantField: "items[1].quantity",
		},
		{
			name:      "negative total",
			mutate:    func(d *domain.OrderDraft) { d.Total = -0.01 },
			wantErr:   true,
			wantField: "total",
		},
		{
			name:    "zero total is valid",
			mutate:  func(d *domain.OrderDraft) { d.Total = 0 },
			wantErr: false,
		},
		{
			name:      "unknown status",
			mutate:    func(d *domain.OrderDraft) { d.Status = "Burnt" },
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "missing status",
			mutate:    func(d *domain.OrderDraft) { d.Status = "" },
			wantErr:   true,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := ValidateDraft(d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("ValidateDraft() error type = %T, want ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ValidateDraft() field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateDraftAllStatuses(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusPending,
		domain.StatusPreparing,
		domain.StatusDelivered,
		domain.StatusCancelled,
	} {
		d := validDraft()
		d.Status = status
		if err := ValidateDraft(d); err != nil {
			t.Errorf("ValidateDraft() with status %q returned %v, want nil", status, err)
		}
	}
}
