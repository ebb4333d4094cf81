package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxLineQuantity caps how many units of one product a cart may hold.
const MaxLineQuantity = 10

var (
	// ErrQuantityLimit is returned when a mutation would push a line past MaxLineQuantity.
	ErrQuantityLimit = errors.New("max quantity for one product is 10")
	// ErrNotInCart is returned when removing a product the cart does not hold.
	ErrNotInCart = errors.New("product not in cart")
)

// CartLine is one product entry inside a cart or order. Price is the line
// total, not the unit price.
type CartLine struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// LineMap maps product ids to their cart lines. Stored as a JSONB column.
type LineMap map[string]CartLine

// Value implements driver.Valuer for JSONB storage.
func (m LineMap) Value() (driver.Value, error) {
	if m == nil {
		m = LineMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage.
func (m *LineMap) Scan(value interface{}) error {
	if value == nil {
		*m = LineMap{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for LineMap", value)
	}
}

// GormDataType tells GORM which column type to migrate to.
func (LineMap) GormDataType() string {
	return "jsonb"
}

// Copy returns an independent copy of the map.
func (m LineMap) Copy() LineMap {
	out := make(LineMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Cart is the per-user mutable basket. One row per user, keyed by user id,
// created lazily on first access.
type Cart struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Products   LineMap   `gorm:"type:jsonb;not null;default:'{}'" json:"products"`
	TotalPrice float64   `gorm:"not null;default:0" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID uuid.UUID) Cart {
	return Cart{UserID: userID, Products: LineMap{}}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Products) == 0
}

// AddProduct puts one more unit of the product into the cart. An existing
// line grows additively: quantity +1, line price + one unit price. The line
// price is deliberately NOT recomputed from quantity times unit price, so a
// price change between adds keeps the old units at their old price.
func (c *Cart) AddProduct(productID uuid.UUID, unitPrice float64) error {
	if c.Products == nil {
		c.Products = LineMap{}
	}

	key := productID.String()
	if line, ok := c.Products[key]; ok {
		if line.Quantity >= MaxLineQuantity {
			return ErrQuantityLimit
		}
		line.Quantity++
		line.Price += unitPrice
		c.Products[key] = line
	} else {
		c.Products[key] = CartLine{Quantity: 1, Price: unitPrice}
	}

	c.recomputeTotal()
	return nil
}

// SetQuantity sets the line to an exact quantity. Unlike AddProduct this is
// a full recompute: the line price becomes quantity times the current unit
// price. A quantity below one removes the line entirely.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int, unitPrice float64) error {
	if quantity > MaxLineQuantity {
		return ErrQuantityLimit
	}

	if c.Products == nil {
		c.Products = LineMap{}
	}

	key := productID.String()
	if quantity < 1 {
		delete(c.Products, key)
	} else {
		c.Products[key] = CartLine{Quantity: quantity, Price: unitPrice * float64(quantity)}
	}

	c.recomputeTotal()
	return nil
}

// RemoveOne takes one unit of the product out of the cart, dropping the
// line when the last unit goes. unitPrice is only consulted when a line is
// decremented, never when it is dropped.
func (c *Cart) RemoveOne(productID uuid.UUID, unitPrice float64) error {
	key := productID.String()
	line, ok := c.Products[key]
	if !ok {
		return ErrNotInCart
	}

	if line.Quantity == 1 {
		delete(c.Products, key)
	} else {
		line.Quantity--
		line.Price -= unitPrice
		c.Products[key] = line
	}

	c.recomputeTotal()
	return nil
}

// Clear empties the cart after an order snapshot is taken.
func (c *Cart) Clear() {
	c.Products = LineMap{}
	c.TotalPrice = 0
}

func (c *Cart) recomputeTotal() {
	var total float64
	for _, line := range c.Products {
		total += line.Price
	}
	c.TotalPrice = total
}
