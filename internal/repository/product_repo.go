package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// ProductRepository handles data access for catalog products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAllPaged returns products with filters and pagination and also returns total count.
// Filters: category (exact), search (ILIKE on name). Empty filters are ignored. Page begins at 1.
func (r *ProductRepository) GetAllPaged(category, search string, page, limit int) ([]models.Product, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR category = $1)
        AND ($2 = '' OR name ILIKE '%%' || $2 || '%%')`

	countQuery := `SELECT COUNT(1) FROM products ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, category, search); err != nil {
		return nil, 0, err
	}

	listQuery := `SELECT * FROM products ` + baseWhere + `
        ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	var products []models.Product
	if err := r.db.Select(&products, listQuery, category, search, limit, offset); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var p models.Product
	if err := stmt.Get(&p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetRelated returns up to limit products in the same category, excluding the product itself.
func (r *ProductRepository) GetRelated(category string, excludeID, limit int) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE category = $1 AND id <> $2
        ORDER BY created_at DESC LIMIT $3`

	var products []models.Product
	if err := r.db.Select(&products, q, category, excludeID, limit); err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategories returns the distinct product categories.
func (r *ProductRepository) GetCategories() ([]string, error) {
	const q = `SELECT DISTINCT category FROM products ORDER BY category`
	var categories []string
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create creates a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `
        INSERT INTO products (name, description, price, wholesale_price, min_wholesale_quantity, category, image_url, stock_quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Description,
		product.Price,
		product.WholesalePrice,
		product.MinWholesaleQuantity,
		product.Category,
		product.ImageURL,
		product.StockQuantity,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// CreateBatch inserts products inside a single transaction. Used by CSV import.
func (r *ProductRepository) CreateBatch(products []models.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
        INSERT INTO products (name, description, price, wholesale_price, min_wholesale_quantity, category, image_url, stock_quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	stmt, err := tx.Preparex(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.Exec(
			p.Name, p.Description, p.Price, p.WholesalePrice,
			p.MinWholesaleQuantity, p.Category, p.ImageURL, p.StockQuantity,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `
        UPDATE products
        SET name = $1, description = $2, price = $3, wholesale_price = $4,
            min_wholesale_quantity = $5, category = $6, image_url = $7,
            stock_quantity = $8, updated_at = NOW()
        WHERE id = $9
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Description,
		product.Price,
		product.WholesalePrice,
		product.MinWholesaleQuantity,
		product.Category,
		product.ImageURL,
		product.StockQuantity,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// DecrementStock reduces stock by quantity, flooring at zero.
func (r *ProductRepository) DecrementStock(id int, quantity float64) error {
	const q = `
        UPDATE products
        SET stock_quantity = GREATEST(0, stock_quantity - $2), updated_at = NOW()
        WHERE id = $1`
	_, err := r.db.Exec(q, id, quantity)
	return err
}

// Delete deletes a product by ID.
func (r *ProductRepository) Delete(id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
