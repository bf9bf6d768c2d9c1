package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Line is one itemized row in the order summary.
type Line struct {
	Name     string
	Quantity float64
	Total    float64
}

// OrderSummary carries everything needed to compose the handoff message sent
// to the store's WhatsApp number at checkout.
type OrderSummary struct {
	StoreName string

	// Customer block; skipped entirely when HasProfile is false.
	HasProfile    bool
	CustomerName  string
	CustomerPhone string
	AddressLines  []string

	DeliveryRequested bool
	IsOutstation      bool

	Lines      []Line
	Subtotal   float64
	CouponCode string
	Discount   float64
	Total      float64
}

// Message renders the human-readable order summary. The format matches what
// the store owner expects to read in a chat window, so changes here are
// user-visible.
func (s OrderSummary) Message() string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order from %s*\n\n", s.StoreName)

	if s.HasProfile {
		b.WriteString("*Customer Details:*\n")
		fmt.Fprintf(&b, "Name: %s\n", orNA(s.CustomerName))
		fmt.Fprintf(&b, "Phone: %s\n", orNA(s.CustomerPhone))

		if len(s.AddressLines) > 0 {
			b.WriteString("\n*Delivery Address:*\n")
			for _, line := range s.AddressLines {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}

		if s.DeliveryRequested {
			b.WriteString("\n*Order Type:* 🚚 Delivery Requested\n")
		} else {
			b.WriteString("\n*Order Type:* 🏪 Store Pickup\n")
		}

		if s.DeliveryRequested && s.IsOutstation {
			b.WriteString("⚠️ *Note:* Customer is outside local area. Extra shipping charges may apply.\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("*Order Items:*\n")
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "- %s (%s kg): ₹%s\n", line.Name, Amount(line.Quantity), Amount(line.Total))
	}

	fmt.Fprintf(&b, "\n*Subtotal: ₹%s*", Amount(s.Subtotal))
	if s.CouponCode != "" {
		fmt.Fprintf(&b, "\n*Discount (%s): -₹%s*", s.CouponCode, Amount(s.Discount))
	}
	fmt.Fprintf(&b, "\n*Total Amount: ₹%s*", Amount(s.Total))

	if s.DeliveryRequested && s.IsOutstation {
		b.WriteString("\n(Plus Shipping Charges)")
	}

	return b.String()
}

// DeepLink builds the wa.me URL that opens a chat with the store prefilled
// with the given message.
func DeepLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// Amount formats a monetary or quantity value without trailing zeros.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
