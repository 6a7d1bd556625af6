package clientstate

import (
	"encoding/json"

	"innovtech/internal/domain"
)

// CartKey is the storage key holding the serialized cart array.
const CartKey = "innovtech_cart"

// CartItem is a product snapshot plus the chosen quantity. The snapshot is
// whatever the catalog returned at add time; it is not refreshed.
type CartItem struct {
	domain.Product
	Quantity int `json:"quantity"`
}

// Cart accumulates items keyed by product id in one JSON blob. Every
// mutation re-serializes the entire cart, which triggers the storage
// notification for listening views.
type Cart struct {
	store Storage
}

func NewCart(s Storage) *Cart { return &Cart{store: s} }

func (c *Cart) Items() []CartItem {
	raw, ok := c.store.Get(CartKey)
	if !ok || raw == "" {
		return nil
	}
	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt blob is treated as an empty cart; there is no
		// versioning or migration strategy for stored state.
		return nil
	}
	return items
}

// Add puts one unit of the product in the cart: an existing line gains
// quantity one, a new product is appended with quantity one.
func (c *Cart) Add(p domain.Product) {
	items := c.Items()
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			c.write(items)
			return
		}
	}
	c.write(append(items, CartItem{Product: p, Quantity: 1}))
}

// Decrement lowers a line's quantity by one; going below one removes the
// line entirely.
func (c *Cart) Decrement(productID int64) {
	items := c.Items()
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity--
			if items[i].Quantity < 1 {
				c.write(append(items[:i], items[i+1:]...))
			} else {
				c.write(items)
			}
			return
		}
	}
}

// Remove drops the line for the given product.
func (c *Cart) Remove(productID int64) {
	items := c.Items()
	for i := range items {
		if items[i].ID == productID {
			c.write(append(items[:i], items[i+1:]...))
			return
		}
	}
}

// Count returns the number of units across all lines (the badge number).
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items() {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.store.Delete(CartKey)
}

func (c *Cart) write(items []CartItem) {
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.store.Set(CartKey, string(b))
}
