package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brightstore/store_api/internal/config"
	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
	"github.com/brightstore/store_api/pkg/whatsapp"
)

// CheckoutRequest carries the checkout parameters for a session.
type CheckoutRequest struct {
	UserID            string
	DeliveryRequested bool
	AddressID         *int
	ContactEmail      string
}

// CheckoutResult is returned synchronously: the prefilled WhatsApp deep link
// is the user-visible submit action and must not wait on persistence.
type CheckoutResult struct {
	WhatsAppURL  string  `json:"whatsappUrl"`
	IsOutstation bool    `json:"isOutstation"`
	Total        float64 `json:"total"`
}

// CheckoutService composes cart state, the selected address, and the customer
// profile into the WhatsApp handoff plus a background order-persistence and
// email fan-out. The two channels are independent: the deep link can succeed
// while the durable write fails, and that failure is only logged.
type CheckoutService struct {
	cartSvc     *CartService
	profileRepo *repository.ProfileRepository
	addressRepo *repository.AddressRepository
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
	couponSvc   *CouponService
	mailSvc     *MailService
	store       config.StoreConfig
}

// NewCheckoutService constructs a CheckoutService.
func NewCheckoutService(
	cartSvc *CartService,
	profileRepo *repository.ProfileRepository,
	addressRepo *repository.AddressRepository,
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	couponSvc *CouponService,
	mailSvc *MailService,
	store config.StoreConfig,
) *CheckoutService {
	return &CheckoutService{
		cartSvc:     cartSvc,
		profileRepo: profileRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		couponSvc:   couponSvc,
		mailSvc:     mailSvc,
		store:       store,
	}
}

// Checkout runs the submission pipeline for a session cart.
// Preconditions: the cart is non-empty, and when delivery is requested a
// selected address must be present, otherwise submission is blocked.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (*CheckoutResult, error) {
	cart, err := s.cartSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateSubmission(cart, req.DeliveryRequested, req.AddressID); err != nil {
		return nil, err
	}

	var profile *models.Profile
	if req.UserID != "" {
		profile, err = s.profileRepo.GetByID(req.UserID)
		if err != nil {
			// Checkout still proceeds as a plain handoff without a profile;
			// the durable order write requires one.
			log.Warn().Err(err).Str("user_id", req.UserID).Msg("Profile lookup failed during checkout")
			profile = nil
		}
	}

	var address *models.Address
	if req.DeliveryRequested {
		address, err = s.addressRepo.GetByID(*req.AddressID, req.UserID)
		if err != nil {
			return nil, utils.ErrAddressRequired
		}
	}

	// Outstation classification: the delivery pincode (selected address when
	// delivering, else the profile address) is checked against the local
	// allow-list. Outstation orders get manual shipping-cost handling.
	pincode := ""
	if address != nil {
		pincode = address.Pincode
	} else if profile != nil {
		pincode = profile.Pincode
	}
	outstation := IsOutstation(pincode, s.store.LocalPincodes)

	summary := s.buildSummary(cart, profile, address, req.DeliveryRequested, outstation)
	link := whatsapp.DeepLink(s.store.WhatsAppPhone, summary.Message())

	// Persist the order and fan out email in the background. Failure here is
	// logged only and never surfaced to the customer.
	if profile != nil {
		go s.persistOrder(cart.Clone(), profile, address, req.ContactEmail)
	}

	return &CheckoutResult{
		WhatsAppURL:  link,
		IsOutstation: outstation,
		Total:        cart.Total(),
	}, nil
}

// validateSubmission enforces the checkout preconditions: an empty cart
// blocks submission, and a delivery request without a selected address blocks
// submission.
func validateSubmission(cart *models.Cart, deliveryRequested bool, addressID *int) error {
	if cart.IsEmpty() {
		return utils.ErrEmptyCart
	}
	if deliveryRequested && addressID == nil {
		return utils.ErrAddressRequired
	}
	return nil
}

// IsOutstation reports whether a pincode falls outside the local allow-list.
// An empty pincode is treated as local.
func IsOutstation(pincode string, localPincodes []string) bool {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return false
	}
	for _, local := range localPincodes {
		if pincode == local {
			return false
		}
	}
	return true
}

func (s *CheckoutService) buildSummary(cart *models.Cart, profile *models.Profile, address *models.Address, delivery, outstation bool) whatsapp.OrderSummary {
	summary := whatsapp.OrderSummary{
		StoreName:         s.store.Name,
		DeliveryRequested: delivery,
		IsOutstation:      outstation,
		Subtotal:          cart.Subtotal(),
		Total:             cart.Total(),
	}

	if profile != nil {
		summary.HasProfile = true
		summary.CustomerName = profile.FullName
		summary.CustomerPhone = profile.Phone
		summary.AddressLines = addressLines(profile, address, delivery)
	}

	if cart.Coupon != nil {
		summary.CouponCode = cart.Coupon.Code
		summary.Discount = cart.Coupon.Discount
	}

	for _, item := range cart.Items {
		summary.Lines = append(summary.Lines, whatsapp.Line{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    item.LineTotal(),
		})
	}
	return summary
}

// addressLines renders the address block: the selected delivery address when
// delivery is requested, else the profile address.
func addressLines(profile *models.Profile, address *models.Address, delivery bool) []string {
	if delivery && address != nil {
		lines := []string{address.FullName, address.AddressLine1}
		if address.AddressLine2 != nil && *address.AddressLine2 != "" {
			lines = append(lines, *address.AddressLine2)
		}
		lines = append(lines, fmt.Sprintf("%s, %s - %s", address.City, address.State, address.Pincode))
		if address.Landmark != nil && *address.Landmark != "" {
			lines = append(lines, "Landmark: "+*address.Landmark)
		}
		lines = append(lines, "Phone: "+address.Phone)
		return lines
	}

	lines := []string{fmt.Sprintf("%s, %s, %s - %s", profile.AddressLine1, profile.AddressLine2, profile.City, profile.Pincode)}
	if profile.Landmark != nil && *profile.Landmark != "" {
		lines = append(lines, "Landmark: "+*profile.Landmark)
	}
	return lines
}

// persistOrder writes the order snapshot, counts coupon usage, adjusts stock,
// and sends confirmation email. It runs detached from the request context:
// the handoff already happened and must not be undone.
func (s *CheckoutService) persistOrder(cart *models.Cart, profile *models.Profile, address *models.Address, contactEmail string) {
	items, err := json.Marshal(cart.Items)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal order items")
		return
	}

	shipping := shippingSnapshot(profile, address)
	shippingJSON, err := json.Marshal(shipping)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal shipping address")
		return
	}

	order := &models.Order{
		UserID:          profile.ID,
		Items:           items,
		TotalAmount:     cart.Total(),
		ShippingAddress: shippingJSON,
		Status:          models.OrderPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID).Msg("Failed to persist order")
		return
	}
	log.Info().Int("order_id", order.ID).Str("user_id", profile.ID).Msg("Order persisted")

	if cart.Coupon != nil {
		if err := s.couponSvc.MarkUsed(cart.Coupon.Code); err != nil {
			log.Error().Err(err).Str("code", cart.Coupon.Code).Msg("Failed to count coupon usage")
		}
	}

	for _, item := range cart.Items {
		if err := s.productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
			log.Error().Err(err).Int("product_id", item.ProductID).Msg("Failed to decrement stock")
		}
	}

	// Owner copy always; customer copy when an email can be resolved: the
	// profile field, then the email sent with checkout, then the stored row.
	customerEmail := ""
	if profile.Email != nil {
		customerEmail = *profile.Email
	}
	if customerEmail == "" {
		customerEmail = contactEmail
	}
	if customerEmail == "" {
		if stored, err := s.profileRepo.GetEmail(profile.ID); err == nil {
			customerEmail = stored
		}
	}

	if err := s.mailSvc.SendOrderConfirmation(order, profile, cart.Items, customerEmail); err != nil {
		log.Error().Err(err).Int("order_id", order.ID).Msg("Failed to send order email")
	}
}

func shippingSnapshot(profile *models.Profile, address *models.Address) models.ShippingSnapshot {
	if address != nil {
		snap := models.ShippingSnapshot{
			FullName:     address.FullName,
			Phone:        address.Phone,
			AddressLine1: address.AddressLine1,
			City:         address.City,
			State:        address.State,
			Pincode:      address.Pincode,
		}
		if address.AddressLine2 != nil {
			snap.AddressLine2 = *address.AddressLine2
		}
		if address.Landmark != nil {
			snap.Landmark = *address.Landmark
		}
		return snap
	}

	return models.ShippingSnapshot{
		FullName:     profile.FullName,
		Phone:        profile.Phone,
		AddressLine1: profile.AddressLine1,
		AddressLine2: profile.AddressLine2,
		City:         profile.City,
		Pincode:      profile.Pincode,
	}
}
