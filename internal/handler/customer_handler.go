package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// CustomerHandler serves the admin customer directory.
type CustomerHandler struct {
	profileRepo *repository.ProfileRepository
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(profileRepo *repository.ProfileRepository) *CustomerHandler {
	return &CustomerHandler{profileRepo: profileRepo}
}

// ListCustomers handles GET /v1/admin/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	customers, total, err := h.profileRepo.GetAllPaged(page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve customers")
		return
	}
	utils.SuccessWithPagination(c, 200, "Customers retrieved", customers, page, limit, total)
}
