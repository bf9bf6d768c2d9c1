package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

// BannerManagementHandler covers the admin banner panel.
type BannerManagementHandler struct {
	bannerRepo *repository.BannerRepository
	storageSvc *service.StorageService
}

// NewBannerManagementHandler constructs a BannerManagementHandler.
func NewBannerManagementHandler(bannerRepo *repository.BannerRepository, storageSvc *service.StorageService) *BannerManagementHandler {
	return &BannerManagementHandler{bannerRepo: bannerRepo, storageSvc: storageSvc}
}

// ListBanners handles GET /v1/admin/banners (includes inactive)
func (h *BannerManagementHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerRepo.GetAll()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve banners")
		return
	}
	utils.Success(c, 200, "Banners retrieved", banners)
}

// CreateBanner handles POST /v1/admin/banners
func (h *BannerManagementHandler) CreateBanner(c *gin.Context) {
	var req struct {
		Title        string  `json:"title" binding:"required"`
		ImageURL     string  `json:"imageUrl" binding:"required"`
		Link         *string `json:"link"`
		Active       *bool   `json:"active"`
		DisplayOrder int     `json:"displayOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "title and imageUrl are required")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	banner := &models.Banner{
		Title:        req.Title,
		ImageURL:     req.ImageURL,
		Link:         req.Link,
		Active:       active,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.bannerRepo.Create(banner); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save banner")
		return
	}
	utils.Success(c, 201, "Banner created", banner)
}

// SetBannerActive handles PATCH /v1/admin/banners/:id/active
func (h *BannerManagementHandler) SetBannerActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid banner ID")
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "active is required")
		return
	}

	if err := h.bannerRepo.SetActive(id, *req.Active); err != nil {
		utils.Error(c, 404, "BANNER_NOT_FOUND", "Banner not found")
		return
	}
	utils.Success(c, 200, "Banner updated", nil)
}

// DeleteBanner handles DELETE /v1/admin/banners/:id
func (h *BannerManagementHandler) DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid banner ID")
		return
	}

	if err := h.bannerRepo.Delete(id); err != nil {
		utils.Error(c, 404, "BANNER_NOT_FOUND", "Banner not found")
		return
	}
	utils.Success(c, 200, "Banner deleted", nil)
}

// UploadBannerImage handles POST /v1/admin/banners/image
func (h *BannerManagementHandler) UploadBannerImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.Error(c, 400, "FILE_REQUIRED", "An image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	url, err := h.storageSvc.UploadBannerImage(c.Request.Context(), header.Filename, data, contentType)
	if err != nil {
		utils.Error(c, 502, "STORAGE_ERROR", "Failed to store image")
		return
	}
	utils.Success(c, 200, "Image uploaded", gin.H{"url": url})
}
