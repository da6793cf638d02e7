package model

import "time"

// Crop is a listing posted by a farmer. FarmerName is a snapshot of the
// owner's name at post time, not a live join.
type Crop struct {
	ID         int64     `json:"id"`
	FarmerID   int       `json:"farmer_id"`
	FarmerName string    `json:"farmer_name"`
	CropName   string    `json:"crop_name"`
	Quantity   string    `json:"quantity"`
	PricePerKg float64   `json:"price_per_kg"`
	Location   string    `json:"location"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

// Product is a listing posted by a vendor. Same ownership rules as Crop.
type Product struct {
	ID          int64     `json:"id"`
	VendorID    int       `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCropRequest is the body of POST /api/crops
type CreateCropRequest struct {
	CropName   string  `json:"crop_name" binding:"required"`
	Quantity   string  `json:"quantity" binding:"required"`
	PricePerKg float64 `json:"price_per_kg" binding:"required,gt=0"`
	Location   string  `json:"location" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
}

// CreateProductRequest is the body of POST /api/products
type CreateProductRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
}

// ListingFilters contains filter parameters for browse queries
type ListingFilters struct {
	Search *string // case-insensitive substring match on the listing name
}
