package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

// maxUploadSize caps image and CSV uploads at 10 MiB.
const maxUploadSize = 10 << 20

// ProductManagementHandler covers the admin product panel: CRUD, CSV bulk
// import, and image upload.
type ProductManagementHandler struct {
	productSvc *service.ProductManagementService
	importSvc  *service.ImportService
	storageSvc *service.StorageService
}

// NewProductManagementHandler constructs a ProductManagementHandler.
func NewProductManagementHandler(
	productSvc *service.ProductManagementService,
	importSvc *service.ImportService,
	storageSvc *service.StorageService,
) *ProductManagementHandler {
	return &ProductManagementHandler{
		productSvc: productSvc,
		importSvc:  importSvc,
		storageSvc: storageSvc,
	}
}

// CreateProduct handles POST /v1/admin/products
func (h *ProductManagementHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "name and category are required")
		return
	}

	product, err := h.productSvc.CreateProduct(&req)
	if err != nil {
		utils.Error(c, 400, "INVALID_PRODUCT", err.Error())
		return
	}
	utils.Success(c, 201, "Product created", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *ProductManagementHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "name and category are required")
		return
	}

	product, err := h.productSvc.UpdateProduct(id, &req)
	if err != nil {
		if err.Error() == "product not found" {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 400, "INVALID_PRODUCT", err.Error())
		return
	}
	utils.Success(c, 200, "Product updated", product)
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *ProductManagementHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.productSvc.DeleteProduct(id); err != nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, 200, "Product deleted", nil)
}

// ImportProducts handles POST /v1/admin/products/import with a multipart
// CSV file under the "file" field.
func (h *ProductManagementHandler) ImportProducts(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "FILE_REQUIRED", "A CSV file is required")
		return
	}
	defer file.Close()

	result, err := h.importSvc.ImportProducts(io.LimitReader(file, maxUploadSize))
	if err != nil {
		utils.Error(c, 400, "IMPORT_FAILED", err.Error())
		return
	}
	utils.Success(c, 200, "Products imported", result)
}

// UploadProductImage handles POST /v1/admin/products/image with a multipart
// image under the "image" field. Returns the public URL of the stored object.
func (h *ProductManagementHandler) UploadProductImage(c *gin.Context) {
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
	url, err := h.storageSvc.UploadProductImage(c.Request.Context(), header.Filename, data, contentType)
	if err != nil {
		utils.Error(c, 502, "STORAGE_ERROR", "Failed to store image")
		return
	}
	utils.Success(c, 200, "Image uploaded", gin.H{"url": url})
}
