package service

import (
	"database/sql"
	"errors"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
)

// ProductManagementService handles admin product CRUD with field validation.
type ProductManagementService struct {
	productRepo *repository.ProductRepository
}

// NewProductManagementService constructs a ProductManagementService.
func NewProductManagementService(productRepo *repository.ProductRepository) *ProductManagementService {
	return &ProductManagementService{productRepo: productRepo}
}

// CreateProductRequest carries the fields for a new product.
type CreateProductRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	WholesalePrice       float64 `json:"wholesalePrice"`
	MinWholesaleQuantity float64 `json:"minWholesaleQuantity"`
	Category             string  `json:"category" binding:"required"`
	ImageURL             string  `json:"imageUrl"`
	StockQuantity        float64 `json:"stockQuantity"`
}

// UpdateProductRequest mirrors CreateProductRequest for full replacement.
type UpdateProductRequest = CreateProductRequest

func validateProduct(req *CreateProductRequest) error {
	if req.Price < 0 || req.WholesalePrice < 0 {
		return errors.New("price must be non-negative")
	}
	if req.StockQuantity < 0 {
		return errors.New("stock quantity must be non-negative")
	}
	return nil
}

// CreateProduct validates and inserts a product.
func (s *ProductManagementService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		WholesalePrice:       req.WholesalePrice,
		MinWholesaleQuantity: req.MinWholesaleQuantity,
		Category:             req.Category,
		ImageURL:             req.ImageURL,
		StockQuantity:        req.StockQuantity,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct validates and replaces a product.
func (s *ProductManagementService) UpdateProduct(id int, req *UpdateProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.WholesalePrice = req.WholesalePrice
	existing.MinWholesaleQuantity = req.MinWholesaleQuantity
	existing.Category = req.Category
	existing.ImageURL = req.ImageURL
	existing.StockQuantity = req.StockQuantity

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProduct removes a product.
func (s *ProductManagementService) DeleteProduct(id int) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("product not found")
		}
		return err
	}
	return nil
}
