package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageGuestOrder(t *testing.T) {
	summary := OrderSummary{
		StoreName: "Bright Store",
		Lines: []Line{
			{Name: "Toor Dal", Quantity: 2, Total: 240},
		},
		Subtotal: 240,
		Total:    240,
	}

	msg := summary.Message()

	assert.Contains(t, msg, "*New Order from Bright Store*")
	assert.Contains(t, msg, "- Toor Dal (2 kg): ₹240")
	assert.Contains(t, msg, "*Subtotal: ₹240*")
	assert.Contains(t, msg, "*Total Amount: ₹240*")
	// guests have no customer block
	assert.NotContains(t, msg, "*Customer Details:*")
	assert.NotContains(t, msg, "*Order Type:*")
}

func TestMessageCustomerDelivery(t *testing.T) {
	summary := OrderSummary{
		StoreName:         "Bright Store",
		HasProfile:        true,
		CustomerName:      "Priya",
		CustomerPhone:     "9876543210",
		AddressLines:      []string{"12 Beach Road", "Chennai - 600001"},
		DeliveryRequested: true,
		Lines: []Line{
			{Name: "Toor Dal", Quantity: 2, Total: 240},
			{Name: "Jaggery", Quantity: 0.5, Total: 45},
		},
		Subtotal:   285,
		CouponCode: "SAVE10",
		Discount:   10,
		Total:      275,
	}

	msg := summary.Message()

	assert.Contains(t, msg, "*Customer Details:*")
	assert.Contains(t, msg, "Name: Priya")
	assert.Contains(t, msg, "Phone: 9876543210")
	assert.Contains(t, msg, "*Delivery Address:*")
	assert.Contains(t, msg, "12 Beach Road")
	assert.Contains(t, msg, "*Order Type:* 🚚 Delivery Requested")
	assert.Contains(t, msg, "- Jaggery (0.5 kg): ₹45")
	assert.Contains(t, msg, "*Discount (SAVE10): -₹10*")
	assert.Contains(t, msg, "*Total Amount: ₹275*")
	assert.NotContains(t, msg, "⚠️")
}

func TestMessagePickup(t *testing.T) {
	summary := OrderSummary{
		StoreName:  "Bright Store",
		HasProfile: true,
	}

	msg := summary.Message()
	assert.Contains(t, msg, "*Order Type:* 🏪 Store Pickup")
}

func TestMessageOutstationNotice(t *testing.T) {
	summary := OrderSummary{
		StoreName:         "Bright Store",
		HasProfile:        true,
		DeliveryRequested: true,
		IsOutstation:      true,
		Subtotal:          100,
		Total:             100,
	}

	msg := summary.Message()
	assert.Contains(t, msg, "⚠️ *Note:* Customer is outside local area. Extra shipping charges may apply.")
	assert.True(t, strings.HasSuffix(msg, "(Plus Shipping Charges)"))
}

func TestMessageMissingCustomerFields(t *testing.T) {
	summary := OrderSummary{StoreName: "Bright Store", HasProfile: true}

	msg := summary.Message()
	assert.Contains(t, msg, "Name: N/A")
	assert.Contains(t, msg, "Phone: N/A")
}

func TestDeepLinkEncodesMessage(t *testing.T) {
	link := DeepLink("919876543210", "*New Order*\nTotal: ₹100")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.NotContains(t, link, "\n")

	encoded := strings.TrimPrefix(link, "https://wa.me/919876543210?text=")
	decoded, err := url.QueryUnescape(encoded)
	assert.NoError(t, err)
	assert.Equal(t, "*New Order*\nTotal: ₹100", decoded)
}

func TestAmountDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "240", Amount(240))
	assert.Equal(t, "0.5", Amount(0.5))
	assert.Equal(t, "112.75", Amount(112.75))
}
