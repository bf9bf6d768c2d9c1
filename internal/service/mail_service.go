package service

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"

	"github.com/brightstore/store_api/internal/config"
	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/pkg/whatsapp"
)

// MailService sends order confirmation email over SMTP. The owner copy is
// always sent; the customer copy only when an address could be resolved.
// Delivery is best-effort with no retries.
type MailService struct {
	cfg       config.SMTPConfig
	storeName string
}

// NewMailService constructs a MailService.
func NewMailService(cfg config.SMTPConfig, storeName string) *MailService {
	return &MailService{cfg: cfg, storeName: storeName}
}

// SendOrderConfirmation sends the order email to the store owner and, when
// customerEmail is non-empty, a confirmation copy to the customer.
func (s *MailService) SendOrderConfirmation(order *models.Order, profile *models.Profile, items []models.CartItem, customerEmail string) error {
	if s.cfg.Username == "" || s.cfg.OwnerEmail == "" {
		return fmt.Errorf("smtp not configured")
	}

	html := s.orderHTML(order, profile, items)

	ownerMsg := email.NewEmail()
	ownerMsg.From = fmt.Sprintf("%q <%s>", s.storeName, s.cfg.From)
	ownerMsg.To = []string{s.cfg.OwnerEmail}
	ownerMsg.Subject = fmt.Sprintf("New Order #%d from %s", order.ID, profile.FullName)
	ownerMsg.HTML = []byte(html)

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := ownerMsg.Send(addr, auth); err != nil {
		return fmt.Errorf("owner email failed: %w", err)
	}

	if customerEmail == "" {
		return nil
	}

	customerMsg := email.NewEmail()
	customerMsg.From = ownerMsg.From
	customerMsg.To = []string{customerEmail}
	customerMsg.Subject = fmt.Sprintf("Order Confirmation #%d - %s", order.ID, s.storeName)
	customerMsg.HTML = []byte(html)

	if err := customerMsg.Send(addr, auth); err != nil {
		return fmt.Errorf("customer email failed: %w", err)
	}
	return nil
}

func (s *MailService) orderHTML(order *models.Order, profile *models.Profile, items []models.CartItem) string {
	var rows strings.Builder
	for _, item := range items {
		fmt.Fprintf(&rows, `<tr>
            <td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td>
            <td style="padding: 8px; border-bottom: 1px solid #ddd;">%s kg</td>
            <td style="padding: 8px; border-bottom: 1px solid #ddd;">₹%s</td>
            <td style="padding: 8px; border-bottom: 1px solid #ddd;">₹%s</td>
        </tr>`, item.Name, whatsapp.Amount(item.Quantity), whatsapp.Amount(item.Price), whatsapp.Amount(item.LineTotal()))
	}

	date := order.CreatedAt.Format("2 January 2006")

	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <div style="background-color: #000; color: #EAB308; padding: 20px; text-align: center;">
        <h1>%s</h1>
        <p>Premium Quality, Unbeatable Prices</p>
    </div>
    <div style="padding: 20px; border: 1px solid #ddd;">
        <h2>Order Confirmation</h2>
        <p>Dear %s,</p>
        <p>Thank you for your order! We have received your request and will process it shortly.</p>
        <div style="background-color: #f9f9f9; padding: 15px; margin: 20px 0;">
            <p><strong>Order ID:</strong> #%d</p>
            <p><strong>Date:</strong> %s</p>
            <p><strong>Status:</strong> Pending</p>
        </div>
        <h3>Order Details</h3>
        <table style="width: 100%%; border-collapse: collapse;">
            <thead>
                <tr style="background-color: #f1f1f1;">
                    <th style="padding: 8px; text-align: left;">Item</th>
                    <th style="padding: 8px; text-align: left;">Qty</th>
                    <th style="padding: 8px; text-align: left;">Price</th>
                    <th style="padding: 8px; text-align: left;">Total</th>
                </tr>
            </thead>
            <tbody>%s</tbody>
            <tfoot>
                <tr>
                    <td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total Amount:</td>
                    <td style="padding: 8px; font-weight: bold;">₹%s</td>
                </tr>
            </tfoot>
        </table>
        <div style="margin-top: 20px;">
            <h3>Shipping Address</h3>
            <p>%s<br>%s, %s<br>%s - %s<br>Phone: %s</p>
        </div>
    </div>
    <div style="text-align: center; padding: 20px; font-size: 12px; color: #666;">
        <p>If you have any questions, please contact us at %s</p>
        <p>&copy; %d %s. All rights reserved.</p>
    </div>
</div>`,
		s.storeName,
		profile.FullName,
		order.ID,
		date,
		rows.String(),
		whatsapp.Amount(order.TotalAmount),
		profile.FullName, profile.AddressLine1, profile.AddressLine2, profile.City, profile.Pincode, profile.Phone,
		s.cfg.OwnerEmail,
		time.Now().Year(), s.storeName,
	)
}
