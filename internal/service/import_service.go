package service

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
)

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// productInserter is the slice of ProductRepository the importer needs.
type productInserter interface {
	CreateBatch(products []models.Product) error
}

var _ productInserter = (*repository.ProductRepository)(nil)

// ImportService bulk-loads products from an admin-supplied CSV file. A proper
// CSV parser is used, so quoted fields containing commas are handled.
type ImportService struct {
	productRepo productInserter
}

// NewImportService constructs an ImportService.
func NewImportService(productRepo productInserter) *ImportService {
	return &ImportService{productRepo: productRepo}
}

// Expected header columns, with positional fallback in this order.
var importColumns = []string{"name", "description", "price", "wholesale_price", "category", "image_url"}

// ImportProducts parses the CSV stream and inserts all valid rows in one
// transaction. Columns are mapped by header name, falling back to position.
// Rows with fewer than 3 fields are skipped silently.
func (s *ImportService) ImportProducts(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("no valid products found in CSV")
	}

	// Header row maps column names to indexes; unknown names just fall back
	// to position for every row.
	colIndex := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(row []string, name string, fallback int) string {
		if idx, ok := colIndex[name]; ok && idx < len(row) {
			if v := strings.TrimSpace(row[idx]); v != "" {
				return v
			}
		}
		if fallback < len(row) {
			return strings.TrimSpace(row[fallback])
		}
		return ""
	}

	result := &ImportResult{}
	var products []models.Product
	for _, row := range records[1:] {
		if len(row) < 3 {
			result.Skipped++
			continue
		}

		product := models.Product{
			Name:           field(row, "name", 0),
			Description:    field(row, "description", 1),
			Price:          parseAmount(field(row, "price", 2)),
			WholesalePrice: parseAmount(field(row, "wholesale_price", 3)),
			Category:       field(row, "category", 4),
			ImageURL:       field(row, "image_url", 5),
		}
		if product.Name == "" {
			result.Skipped++
			continue
		}
		if product.Category == "" {
			product.Category = "General"
		}
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, errors.New("no valid products found in CSV")
	}

	if err := s.productRepo.CreateBatch(products); err != nil {
		return nil, err
	}
	result.Imported = len(products)

	log.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("CSV import completed")
	return result, nil
}

// parseAmount parses a price field, treating malformed values as zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
