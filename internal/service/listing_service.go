package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farmlink/internal/model"
	"farmlink/internal/repository"
	"farmlink/internal/utils"
)

var (
	ErrInvalidPrice = errors.New("enter a valid price")
	// ErrListingNotFound covers both a missing row and a row owned by someone
	// else; the two cases are deliberately indistinguishable.
	ErrListingNotFound = errors.New("listing not found or unauthorized")
)

// ListingService provides crop and product listing operations. Role checks
// happen in the route middleware; ownership is enforced here and in the
// repository delete predicate.
type ListingService interface {
	BrowseCrops(ctx context.Context, filters model.ListingFilters) ([]model.Crop, error)
	MyCrops(ctx context.Context, farmerID int) ([]model.Crop, error)
	PostCrop(ctx context.Context, owner *utils.JWTClaims, req model.CreateCropRequest) (*model.Crop, error)
	DeleteCrop(ctx context.Context, cropID int64, farmerID int) error

	BrowseProducts(ctx context.Context, filters model.ListingFilters) ([]model.Product, error)
	MyProducts(ctx context.Context, vendorID int) ([]model.Product, error)
	PostProduct(ctx context.Context, owner *utils.JWTClaims, req model.CreateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID int64, vendorID int) error
}

type listingService struct {
	cropRepo    repository.CropRepository
	productRepo repository.ProductRepository
}

// NewListingService creates a new ListingService
func NewListingService(cropRepo repository.CropRepository, productRepo repository.ProductRepository) ListingService {
	return &listingService{
		cropRepo:    cropRepo,
		productRepo: productRepo,
	}
}

func (s *listingService) BrowseCrops(ctx context.Context, filters model.ListingFilters) ([]model.Crop, error) {
	crops, err := s.cropRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to browse crops: %w", err)
	}
	return crops, nil
}

func (s *listingService) MyCrops(ctx context.Context, farmerID int) ([]model.Crop, error) {
	crops, err := s.cropRepo.FindByOwner(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crops for farmer %d: %w", farmerID, err)
	}
	return crops, nil
}

// PostCrop creates a crop listing owned by the authenticated farmer. The
// owner's name is copied onto the row as it stands now; later renames must
// not change what past listings display.
func (s *listingService) PostCrop(ctx context.Context, owner *utils.JWTClaims, req model.CreateCropRequest) (*model.Crop, error) {
	if req.PricePerKg <= 0 {
		return nil, ErrInvalidPrice
	}

	crop := &model.Crop{
		FarmerID:   owner.UserID,
		FarmerName: owner.FullName,
		CropName:   strings.TrimSpace(req.CropName),
		Quantity:   strings.TrimSpace(req.Quantity),
		PricePerKg: req.PricePerKg,
		Location:   strings.TrimSpace(req.Location),
		Phone:      strings.TrimSpace(req.Phone),
	}

	if err := s.cropRepo.Create(ctx, crop); err != nil {
		return nil, fmt.Errorf("failed to create crop in repo: %w", err)
	}
	return crop, nil
}

func (s *listingService) DeleteCrop(ctx context.Context, cropID int64, farmerID int) error {
	deleted, err := s.cropRepo.DeleteOwned(ctx, cropID, farmerID)
	if err != nil {
		return fmt.Errorf("failed to delete crop in repo: %w", err)
	}
	if !deleted {
		return ErrListingNotFound
	}
	return nil
}

func (s *listingService) BrowseProducts(ctx context.Context, filters model.ListingFilters) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to browse products: %w", err)
	}
	return products, nil
}

func (s *listingService) MyProducts(ctx context.Context, vendorID int) ([]model.Product, error) {
	products, err := s.productRepo.FindByOwner(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for vendor %d: %w", vendorID, err)
	}
	return products, nil
}

// PostProduct creates a product listing owned by the authenticated vendor
func (s *listingService) PostProduct(ctx context.Context, owner *utils.JWTClaims, req model.CreateProductRequest) (*model.Product, error) {
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	product := &model.Product{
		VendorID:    owner.UserID,
		VendorName:  owner.FullName,
		ProductName: strings.TrimSpace(req.ProductName),
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Phone:       strings.TrimSpace(req.Phone),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *listingService) DeleteProduct(ctx context.Context, productID int64, vendorID int) error {
	deleted, err := s.productRepo.DeleteOwned(ctx, productID, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	if !deleted {
		return ErrListingNotFound
	}
	return nil
}
