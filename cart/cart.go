// Package cart implements the session-held shopping cart as an explicit
// value. Operations return the updated cart; persisting it back into the
// visitor's session is the caller's job (see session.go).
package cart

// TaxRate is the flat sales tax applied at checkout.
const TaxRate = 0.08

// Action is a cart mutation requested by the quantity controls.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionRemove   Action = "remove"
)

// ParseAction validates a form-submitted action string.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionIncrease, ActionDecrease, ActionRemove:
		return Action(s), true
	}
	return "", false
}

// Line is one cart entry: a product reference plus a snapshot of its title,
// price and image taken when it was first added.
type Line struct {
	ProductID uint    `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is the line's price × quantity.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is an ordered list of lines, at most one per product id.
type Cart []Line

// Totals is the checkout math for a cart.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// Add merges item into the cart. If a line with the same product id already
// exists its quantity is incremented by item.Quantity; otherwise item is
// appended as a new line. A non-positive quantity is treated as 1.
func (c Cart) Add(item Line) Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c {
		if c[i].ProductID == item.ProductID {
			c[i].Quantity += item.Quantity
			return c
		}
	}
	return append(c, item)
}

// SetQuantity sets the line's quantity to n, removing the line when n <= 0.
// A product id not present in the cart is a no-op.
func (c Cart) SetQuantity(productID uint, n int) Cart {
	for i := range c {
		if c[i].ProductID != productID {
			continue
		}
		if n <= 0 {
			return append(c[:i], c[i+1:]...)
		}
		c[i].Quantity = n
		return c
	}
	return c
}

// Adjust applies a quantity control action to the line for productID.
// Decreasing a quantity-1 line removes it. Unknown product ids are a no-op.
func (c Cart) Adjust(productID uint, action Action) Cart {
	for i := range c {
		if c[i].ProductID != productID {
			continue
		}
		switch action {
		case ActionIncrease:
			c[i].Quantity++
		case ActionDecrease:
			if c[i].Quantity > 1 {
				c[i].Quantity--
			} else {
				return append(c[:i], c[i+1:]...)
			}
		case ActionRemove:
			return append(c[:i], c[i+1:]...)
		}
		return c
	}
	return c
}

// Remove deletes the line for productID unconditionally.
func (c Cart) Remove(productID uint) Cart {
	return c.Adjust(productID, ActionRemove)
}

// Totals computes subtotal, tax and grand total over all lines.
func (c Cart) Totals() Totals {
	var t Totals
	for _, l := range c {
		t.Subtotal += l.Subtotal()
	}
	t.Tax = t.Subtotal * TaxRate
	t.GrandTotal = t.Subtotal + t.Tax
	return t
}

// Find returns the line for productID, if present.
func (c Cart) Find(productID uint) (Line, bool) {
	for _, l := range c {
		if l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
