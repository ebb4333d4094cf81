package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewOrderFromCartSnapshot(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	if err := cart.AddProduct(productID, 6); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddProduct(productID, 6); err != nil {
		t.Fatalf("add: %v", err)
	}

	order := NewOrderFromCart(&cart)

	if order.UserID != cart.UserID {
		t.Fatalf("order user = %s, want %s", order.UserID, cart.UserID)
	}
	if order.Status != StatusInProgress {
		t.Fatalf("status = %q, want %q", order.Status, StatusInProgress)
	}
	if order.TotalPrice != 12 {
		t.Fatalf("order total = %v, want 12", order.TotalPrice)
	}
	if line := order.Products[productID.String()]; line.Quantity != 2 || line.Price != 12 {
		t.Fatalf("order line = %+v, want quantity 2 price 12", line)
	}

	// The snapshot must be independent: clearing the cart afterwards is
	// exactly what order creation does.
	cart.Clear()

	if !cart.IsEmpty() || cart.TotalPrice != 0 {
		t.Fatalf("cart not reset: %d lines, total %v", len(cart.Products), cart.TotalPrice)
	}
	if len(order.Products) != 1 || order.TotalPrice != 12 {
		t.Fatalf("order mutated by cart reset: %d lines, total %v", len(order.Products), order.TotalPrice)
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusInProgress, StatusCompleted, StatusCanceled} {
		if !ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "pending", "In Progress", "done"} {
		if ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = true, want false", status)
		}
	}
}
