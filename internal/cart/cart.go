// Package cart implements the storefront's client-side cart: in-memory
// state scoped to one UI session, never persisted and never sent to the
// server. Totals are accumulated in integer cents so monetary sums stay
// exact until formatted for display.
package cart

import (
	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/money"
)

// Item is the slice of a product the cart keeps.
type Item struct {
	ProductID string
	Name      string
	Price     money.Cents
	ImageURL  *string
}

// ItemFromProduct projects a catalog product onto a cart item.
func ItemFromProduct(p models.Product) Item {
	return Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
	}
}

// Cart holds at most one entry per product, in insertion order.
// It is confined to a single goroutine, like one browser tab.
type Cart struct {
	items []Item
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends the item unless an entry with the same product ID already
// exists. It reports whether the cart changed.
func (c *Cart) Add(item Item) bool {
	if c.contains(item.ProductID) {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Remove deletes the entry for productID. Removing an absent product is
// a no-op; the return reports whether the cart changed.
func (c *Cart) Remove(productID string) bool {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums the entry prices in cents.
func (c *Cart) Total() money.Cents {
	var total money.Cents
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// Clear empties the cart, as a page reload would.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) contains(productID string) bool {
	for _, item := range c.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
