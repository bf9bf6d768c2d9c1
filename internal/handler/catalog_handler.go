package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// CatalogHandler serves the public storefront: products, banners, offers,
// and product reviews.
type CatalogHandler struct {
	productRepo *repository.ProductRepository
	bannerRepo  *repository.BannerRepository
	offerRepo   *repository.OfferRepository
	reviewRepo  *repository.ReviewRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(
	productRepo *repository.ProductRepository,
	bannerRepo *repository.BannerRepository,
	offerRepo *repository.OfferRepository,
	reviewRepo *repository.ReviewRepository,
) *CatalogHandler {
	return &CatalogHandler{
		productRepo: productRepo,
		bannerRepo:  bannerRepo,
		offerRepo:   offerRepo,
		reviewRepo:  reviewRepo,
	}
}

// ListProducts handles GET /v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	products, total, err := h.productRepo.GetAllPaged(category, search, page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved", products, page, limit, total)
}

// GetProduct handles GET /v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	utils.Success(c, 200, "Product retrieved", product)
}

// GetRelatedProducts handles GET /v1/products/:id/related
func (h *CatalogHandler) GetRelatedProducts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productRepo.GetByID(id)
	if err != nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}

	related, err := h.productRepo.GetRelated(product.Category, product.ID, 4)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve related products")
		return
	}

	utils.Success(c, 200, "Related products retrieved", related)
}

// GetCategories handles GET /v1/products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.productRepo.GetCategories()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved", categories)
}

// ListBanners handles GET /v1/banners
func (h *CatalogHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerRepo.GetActive()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve banners")
		return
	}
	utils.Success(c, 200, "Banners retrieved", banners)
}

// ListOffers handles GET /v1/offers
func (h *CatalogHandler) ListOffers(c *gin.Context) {
	offers, err := h.offerRepo.GetActive()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve offers")
		return
	}
	utils.Success(c, 200, "Offers retrieved", offers)
}

// ListReviews handles GET /v1/products/:id/reviews
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	reviews, err := h.reviewRepo.GetByProduct(id)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve reviews")
		return
	}
	utils.Success(c, 200, "Reviews retrieved", reviews)
}

// CreateReview handles POST /v1/products/:id/reviews (customer token required)
func (h *CatalogHandler) CreateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Rating must be between 1 and 5")
		return
	}

	review := &models.Review{
		ProductID: id,
		UserID:    c.GetString("user_id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.reviewRepo.Create(review); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save review")
		return
	}

	utils.Success(c, 201, "Review saved", review)
}
