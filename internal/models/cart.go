package models

// CartItem is one product line in a cart: a product snapshot plus the
// requested quantity. Quantity never drops below 1 on a live line.
type CartItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  float64 `json:"quantity"`
}

// LineTotal returns price × quantity for the line.
func (i CartItem) LineTotal() float64 {
	return i.Price * i.Quantity
}

// AppliedCoupon is the coupon currently applied to a cart together with the
// last discount computed for it.
type AppliedCoupon struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// Cart is the in-memory line-item collection. It is the single point of truth
// for pricing: both the shop endpoints and the checkout flow consume it.
// The service layer mirrors every mutation to durable storage.
type Cart struct {
	Items  []CartItem     `json:"items"`
	Coupon *AppliedCoupon `json:"coupon,omitempty"`
}

// AddItem merges quantity into an existing line with the same product id, or
// appends a new line. Quantities of zero or less are ignored.
func (c *Cart) AddItem(p *Product, quantity float64) {
	if p == nil || quantity <= 0 {
		return
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == p.ID {
			c.Items[idx].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
	})
}

// RemoveItem deletes the line for productID unconditionally.
func (c *Cart) RemoveItem(productID int) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// SetQuantity replaces the quantity on the line for productID. Values below 1
// are rejected and the line is left unchanged. It reports whether the cart
// was modified.
func (c *Cart) SetQuantity(productID int, quantity float64) bool {
	if quantity < 1 {
		return false
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return true
		}
	}
	return false
}

// Subtotal is the sum of price × quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.LineTotal()
	}
	return sum
}

// Discount is the applied coupon discount, zero when no coupon is applied.
func (c *Cart) Discount() float64 {
	if c.Coupon == nil {
		return 0
	}
	return c.Coupon.Discount
}

// Total is subtotal minus discount, floored at zero.
func (c *Cart) Total() float64 {
	total := c.Subtotal() - c.Discount()
	if total < 0 {
		return 0
	}
	return total
}

// Clone returns an independent copy of the cart. The items slice and any
// applied coupon are copied, so later mutations to the original cannot reach
// the clone.
func (c *Cart) Clone() *Cart {
	clone := &Cart{}
	if len(c.Items) > 0 {
		clone.Items = append([]CartItem(nil), c.Items...)
	}
	if c.Coupon != nil {
		coupon := *c.Coupon
		clone.Coupon = &coupon
	}
	return clone
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear removes all lines and any applied coupon.
func (c *Cart) Clear() {
	c.Items = nil
	c.Coupon = nil
}
