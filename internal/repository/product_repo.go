package repository

import (
	"context"
	"fmt"
	"strings"

	"farmlink/internal/model"
)

// ProductRepository defines operations for product listings
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context, filters model.ListingFilters) ([]model.Product, error)
	FindByOwner(ctx context.Context, vendorID int) ([]model.Product, error)
	// DeleteOwned mirrors CropRepository.DeleteOwned for the product table.
	DeleteOwned(ctx context.Context, id int64, vendorID int) (bool, error)
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product listing into the database
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (vendor_id, vendor_name, product_name, price, description, location, phone)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.VendorID, p.VendorName, p.ProductName, p.Price, p.Description, p.Location, p.Phone).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindAll retrieves all product listings, newest first, with optional filters
func (r *productRepository) FindAll(ctx context.Context, filters model.ListingFilters) ([]model.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, vendor_id, vendor_name, product_name, price, description, location, phone, created_at
                               FROM products`)
	args := []interface{}{}
	argCount := 1

	if filters.Search != nil && *filters.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE product_name ILIKE $%d", argCount))
		args = append(args, "%"+*filters.Search+"%")
		//argCount++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.VendorID, &p.VendorName, &p.ProductName, &p.Price,
			&p.Description, &p.Location, &p.Phone, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// FindByOwner retrieves a vendor's own product listings, newest first
func (r *productRepository) FindByOwner(ctx context.Context, vendorID int) ([]model.Product, error) {
	sql := `SELECT id, vendor_id, vendor_name, product_name, price, description, location, phone, created_at
            FROM products WHERE vendor_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by owner: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.VendorID, &p.VendorName, &p.ProductName, &p.Price,
			&p.Description, &p.Location, &p.Phone, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// DeleteOwned removes a product if and only if vendorID owns it
func (r *productRepository) DeleteOwned(ctx context.Context, id int64, vendorID int) (bool, error) {
	sql := `DELETE FROM products WHERE id = $1 AND vendor_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, vendorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
