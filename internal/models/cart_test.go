package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func sumOfLines(c *Cart) float64 {
	var total float64
	for _, line := range c.Products {
		total += line.Price
	}
	return total
}

func TestAddProductNewAndIncrement(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	if err := cart.AddProduct(productID, 4.5); err != nil {
		t.Fatalf("add: %v", err)
	}

	line := cart.Products[productID.String()]
	if line.Quantity != 1 || line.Price != 4.5 {
		t.Fatalf("unexpected line after first add: %+v", line)
	}

	if err := cart.AddProduct(productID, 4.5); err != nil {
		t.Fatalf("second add: %v", err)
	}

	line = cart.Products[productID.String()]
	if line.Quantity != 2 || line.Price != 9 {
		t.Fatalf("unexpected line after second add: %+v", line)
	}
	if cart.TotalPrice != 9 {
		t.Fatalf("total = %v, want 9", cart.TotalPrice)
	}
}

func TestAddProductKeepsOldUnitsAtOldPrice(t *testing.T) {
	// Additive line prices: a price change between adds must not rewrite
	// the units already in the cart.
	cart := NewCart(uuid.New())
	productID := uuid.New()

	if err := cart.AddProduct(productID, 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddProduct(productID, 12); err != nil {
		t.Fatalf("add after price change: %v", err)
	}

	line := cart.Products[productID.String()]
	if line.Quantity != 2 || line.Price != 22 {
		t.Fatalf("line = %+v, want quantity 2 price 22", line)
	}
}

func TestAddProductQuantityLimit(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	for i := 0; i < MaxLineQuantity; i++ {
		if err := cart.AddProduct(productID, 2); err != nil {
			t.Fatalf("add %d: %v", i+1, err)
		}
	}

	err := cart.AddProduct(productID, 2)
	if !errors.Is(err, ErrQuantityLimit) {
		t.Fatalf("11th add: got %v, want ErrQuantityLimit", err)
	}

	line := cart.Products[productID.String()]
	if line.Quantity != MaxLineQuantity {
		t.Fatalf("quantity = %d, want %d", line.Quantity, MaxLineQuantity)
	}
	if cart.TotalPrice != sumOfLines(&cart) {
		t.Fatalf("total %v does not match line sum %v", cart.TotalPrice, sumOfLines(&cart))
	}
}

func TestSetQuantityRecomputesFromUnitPrice(t *testing.T) {
	// Unlike AddProduct, SetQuantity is a full recompute from the current
	// unit price.
	cart := NewCart(uuid.New())
	productID := uuid.New()

	if err := cart.AddProduct(productID, 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.SetQuantity(productID, 3, 12); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	line := cart.Products[productID.String()]
	if line.Quantity != 3 || line.Price != 36 {
		t.Fatalf("line = %+v, want quantity 3 price 36", line)
	}
	if cart.TotalPrice != 36 {
		t.Fatalf("total = %v, want 36", cart.TotalPrice)
	}
}

func TestSetQuantityBounds(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	if err := cart.SetQuantity(productID, 11, 2); !errors.Is(err, ErrQuantityLimit) {
		t.Fatalf("quantity 11: got %v, want ErrQuantityLimit", err)
	}

	if err := cart.SetQuantity(productID, 10, 2); err != nil {
		t.Fatalf("quantity 10: %v", err)
	}
	if line := cart.Products[productID.String()]; line.Quantity != 10 || line.Price != 20 {
		t.Fatalf("line = %+v, want quantity 10 price 20", line)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	if err := cart.AddProduct(productID, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.SetQuantity(productID, 0, 5); err != nil {
		t.Fatalf("set zero: %v", err)
	}

	if _, ok := cart.Products[productID.String()]; ok {
		t.Fatal("line still present after setting quantity to 0")
	}
	if cart.TotalPrice != 0 {
		t.Fatalf("total = %v, want 0", cart.TotalPrice)
	}

	// Idempotence boundary: the line is gone, so removing one more unit
	// must fail.
	if err := cart.RemoveOne(productID, 5); !errors.Is(err, ErrNotInCart) {
		t.Fatalf("remove after zero: got %v, want ErrNotInCart", err)
	}
}

func TestRemoveOne(t *testing.T) {
	cart := NewCart(uuid.New())
	productID := uuid.New()

	for i := 0; i < 3; i++ {
		if err := cart.AddProduct(productID, 4); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := cart.RemoveOne(productID, 4); err != nil {
		t.Fatalf("remove: %v", err)
	}
	line := cart.Products[productID.String()]
	if line.Quantity != 2 || line.Price != 8 {
		t.Fatalf("line = %+v, want quantity 2 price 8", line)
	}

	if err := cart.RemoveOne(productID, 4); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := cart.RemoveOne(productID, 4); err != nil {
		t.Fatalf("remove last: %v", err)
	}

	if !cart.IsEmpty() {
		t.Fatal("cart should be empty after removing every unit")
	}
	if cart.TotalPrice != 0 {
		t.Fatalf("total = %v, want 0", cart.TotalPrice)
	}

	if err := cart.RemoveOne(productID, 4); !errors.Is(err, ErrNotInCart) {
		t.Fatalf("remove from empty cart: got %v, want ErrNotInCart", err)
	}
}

func TestTotalMatchesLineSumAcrossProducts(t *testing.T) {
	cart := NewCart(uuid.New())
	first := uuid.New()
	second := uuid.New()

	if err := cart.AddProduct(first, 3); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if err := cart.AddProduct(second, 7); err != nil {
		t.Fatalf("add second: %v", err)
	}
	if err := cart.SetQuantity(second, 4, 7); err != nil {
		t.Fatalf("set second: %v", err)
	}

	if cart.TotalPrice != 31 {
		t.Fatalf("total = %v, want 31", cart.TotalPrice)
	}
	if cart.TotalPrice != sumOfLines(&cart) {
		t.Fatalf("total %v does not match line sum %v", cart.TotalPrice, sumOfLines(&cart))
	}
}
