package repository

import (
	"context"
	"fmt"
	"strings"

	"farmlink/internal/model"
)

// CropRepository defines operations for crop listings
type CropRepository interface {
	Create(ctx context.Context, crop *model.Crop) error
	FindAll(ctx context.Context, filters model.ListingFilters) ([]model.Crop, error)
	FindByOwner(ctx context.Context, farmerID int) ([]model.Crop, error)
	// DeleteOwned deletes the crop only when it exists and belongs to
	// farmerID, in a single statement. Returns false when no row was removed;
	// callers cannot tell a missing row from someone else's row.
	DeleteOwned(ctx context.Context, id int64, farmerID int) (bool, error)
}

type cropRepository struct {
	db DB
}

// NewCropRepository creates a new CropRepository
func NewCropRepository(db DB) CropRepository {
	return &cropRepository{db: db}
}

// Create inserts a new crop listing into the database
func (r *cropRepository) Create(ctx context.Context, c *model.Crop) error {
	sql := `INSERT INTO crops (farmer_id, farmer_name, crop_name, quantity, price_per_kg, location, phone)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, c.FarmerID, c.FarmerName, c.CropName, c.Quantity, c.PricePerKg, c.Location, c.Phone).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create crop: %w", err)
	}
	return nil
}

// FindAll retrieves all crop listings, newest first, with optional filters
func (r *cropRepository) FindAll(ctx context.Context, filters model.ListingFilters) ([]model.Crop, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, farmer_id, farmer_name, crop_name, quantity, price_per_kg, location, phone, created_at
                               FROM crops`)
	args := []interface{}{}
	argCount := 1

	if filters.Search != nil && *filters.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE crop_name ILIKE $%d", argCount))
		args = append(args, "%"+*filters.Search+"%")
		//argCount++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query crops: %w", err)
	}
	defer rows.Close()

	var crops []model.Crop
	for rows.Next() {
		var c model.Crop
		if err := rows.Scan(
			&c.ID, &c.FarmerID, &c.FarmerName, &c.CropName, &c.Quantity,
			&c.PricePerKg, &c.Location, &c.Phone, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan crop row: %w", err)
		}
		crops = append(crops, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crop rows: %w", err)
	}
	return crops, nil
}

// FindByOwner retrieves a farmer's own crop listings, newest first
func (r *cropRepository) FindByOwner(ctx context.Context, farmerID int) ([]model.Crop, error) {
	sql := `SELECT id, farmer_id, farmer_name, crop_name, quantity, price_per_kg, location, phone, created_at
            FROM crops WHERE farmer_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query crops by owner: %w", err)
	}
	defer rows.Close()

	var crops []model.Crop
	for rows.Next() {
		var c model.Crop
		if err := rows.Scan(
			&c.ID, &c.FarmerID, &c.FarmerName, &c.CropName, &c.Quantity,
			&c.PricePerKg, &c.Location, &c.Phone, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan crop row: %w", err)
		}
		crops = append(crops, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crop rows: %w", err)
	}
	return crops, nil
}

// DeleteOwned removes a crop if and only if farmerID owns it
func (r *cropRepository) DeleteOwned(ctx context.Context, id int64, farmerID int) (bool, error) {
	sql := `DELETE FROM crops WHERE id = $1 AND farmer_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, farmerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete crop: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
