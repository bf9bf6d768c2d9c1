package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/brightstore/store_api/internal/cache"
	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// CartService owns session carts: every mutation loads the snapshot, applies
// the change in memory, re-validates any applied coupon, and synchronously
// mirrors the result back to durable storage.
type CartService struct {
	cartCache   *cache.CartCache
	productRepo *repository.ProductRepository
	couponSvc   *CouponService
}

// NewCartService constructs a CartService.
func NewCartService(cartCache *cache.CartCache, productRepo *repository.ProductRepository, couponSvc *CouponService) *CartService {
	return &CartService{
		cartCache:   cartCache,
		productRepo: productRepo,
		couponSvc:   couponSvc,
	}
}

// Get restores the cart for a session, empty if none was saved.
func (s *CartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.cartCache.Load(ctx, sessionID)
}

// AddItem merges quantity into the line for productID, appending a new line
// for first-time products. The product snapshot is taken at add time.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int, quantity float64) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, utils.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.cartCache.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(product, quantity)
	s.revalidateCoupon(cart)

	if err := s.cartCache.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity replaces the quantity on a line. Quantities below 1 are
// rejected and the stored cart is left untouched.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID int, quantity float64) (*models.Cart, error) {
	if quantity < 1 {
		return nil, utils.ErrInvalidQuantity
	}

	cart, err := s.cartCache.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(productID, quantity) {
		return nil, utils.ErrProductNotFound
	}
	s.revalidateCoupon(cart)

	if err := s.cartCache.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line unconditionally.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int) (*models.Cart, error) {
	cart, err := s.cartCache.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	s.revalidateCoupon(cart)

	if err := s.cartCache.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and drops the persisted snapshot.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.cartCache.Delete(ctx, sessionID)
}

// ApplyCoupon validates the code against the current subtotal. A valid result
// applies the coupon to the cart; an invalid one clears any applied coupon.
func (s *CartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*models.Cart, ValidationResult, error) {
	cart, err := s.cartCache.Load(ctx, sessionID)
	if err != nil {
		return nil, ValidationResult{}, err
	}

	result := s.couponSvc.Validate(code, cart.Subtotal())
	if result.Valid {
		cart.Coupon = &models.AppliedCoupon{
			Code:     strings.ToUpper(strings.TrimSpace(code)),
			Discount: result.Discount,
		}
	} else {
		cart.Coupon = nil
	}

	if err := s.cartCache.Save(ctx, sessionID, cart); err != nil {
		return nil, ValidationResult{}, err
	}
	return cart, result, nil
}

// RemoveCoupon drops the applied coupon.
func (s *CartService) RemoveCoupon(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.cartCache.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Coupon = nil
	if err := s.cartCache.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// revalidateCoupon re-runs validation against the new subtotal whenever the
// cart changes with a coupon applied. When the coupon is still valid the
// discount is refreshed; when it no longer is, the last computed discount is
// retained rather than cleared.
func (s *CartService) revalidateCoupon(cart *models.Cart) {
	if cart.Coupon == nil {
		return
	}
	result := s.couponSvc.Validate(cart.Coupon.Code, cart.Subtotal())
	if result.Valid {
		cart.Coupon.Discount = result.Discount
	}
}
