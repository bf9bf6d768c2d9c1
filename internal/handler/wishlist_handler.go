package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// WishlistHandler manages a customer's saved products.
type WishlistHandler struct {
	wishlistRepo *repository.WishlistRepository
}

// NewWishlistHandler constructs a WishlistHandler.
func NewWishlistHandler(wishlistRepo *repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{wishlistRepo: wishlistRepo}
}

// GetWishlist handles GET /v1/wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	products, err := h.wishlistRepo.GetProducts(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve wishlist")
		return
	}
	utils.Success(c, 200, "Wishlist retrieved", products)
}

// GetWishlistIDs handles GET /v1/wishlist/ids. The bare id list is what the
// storefront uses to mark wishlisted products in catalog views.
func (h *WishlistHandler) GetWishlistIDs(c *gin.Context) {
	ids, err := h.wishlistRepo.GetProductIDs(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve wishlist")
		return
	}
	if ids == nil {
		ids = []int{}
	}
	utils.Success(c, 200, "Wishlist retrieved", ids)
}

// AddToWishlist handles POST /v1/wishlist/:productId
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	// duplicate adds are a no-op at the repository level
	if err := h.wishlistRepo.Add(c.GetString("user_id"), productID); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to add product to wishlist")
		return
	}
	utils.Success(c, 200, "Product added to wishlist", nil)
}

// RemoveFromWishlist handles DELETE /v1/wishlist/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.wishlistRepo.Remove(c.GetString("user_id"), productID); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to remove product from wishlist")
		return
	}
	utils.Success(c, 200, "Product removed from wishlist", nil)
}
