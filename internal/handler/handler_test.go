package handler

import (
	"context"

	"farmlink/internal/middleware"
	"farmlink/internal/model"
	"farmlink/internal/service"
	"farmlink/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// Shared fixtures for handler tests: mock services behind a real router with
// the real JWT and role middleware, so status-code mapping is tested end to
// end.

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	args := m.Called(ctx, phone, password)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockListingService struct{ mock.Mock }

func (m *mockListingService) BrowseCrops(ctx context.Context, filters model.ListingFilters) ([]model.Crop, error) {
	args := m.Called(ctx, filters)
	if c := args.Get(0); c != nil {
		return c.([]model.Crop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingService) MyCrops(ctx context.Context, farmerID int) ([]model.Crop, error) {
	args := m.Called(ctx, farmerID)
	if c := args.Get(0); c != nil {
		return c.([]model.Crop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingService) PostCrop(ctx context.Context, owner *utils.JWTClaims, req model.CreateCropRequest) (*model.Crop, error) {
	args := m.Called(ctx, owner, req)
	if c := args.Get(0); c != nil {
		return c.(*model.Crop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingService) DeleteCrop(ctx context.Context, cropID int64, farmerID int) error {
	args := m.Called(ctx, cropID, farmerID)
	return args.Error(0)
}

func (m *mockListingService) BrowseProducts(ctx context.Context, filters model.ListingFilters) ([]model.Product, error) {
	args := m.Called(ctx, filters)
	if p := args.Get(0); p != nil {
		return p.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingService) MyProducts(ctx context.Context, vendorID int) ([]model.Product, error) {
	args := m.Called(ctx, vendorID)
	if p := args.Get(0); p != nil {
		return p.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingService) PostProduct(ctx context.Context, owner *utils.JWTClaims, req model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, owner, req)
	if p := args.Get(0); p != nil {
		return p.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingService) DeleteProduct(ctx context.Context, productID int64, vendorID int) error {
	args := m.Called(ctx, productID, vendorID)
	return args.Error(0)
}

var testJWT = utils.NewJWTUtil("test-secret", 24)

func newTestRouter(authSvc service.AuthService, listingSvc service.ListingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authMW := middleware.JWTAuthMiddleware(testJWT)
	farmerMW := middleware.FarmerMiddleware()
	vendorMW := middleware.VendorMiddleware()

	apiGroup := router.Group("/api")
	NewAuthHandler(authSvc).RegisterAuthRoutes(apiGroup, authMW)
	NewListingHandler(listingSvc).RegisterListingRoutes(apiGroup, authMW, farmerMW, vendorMW)

	return router
}

func farmerToken() string {
	token, _ := testJWT.GenerateToken(1, "9876543210", model.RoleFarmer, "Asha Patil", "Pune")
	return token
}

func vendorToken() string {
	token, _ := testJWT.GenerateToken(2, "9123456789", model.RoleVendor, "Ravi Kumar", "Nashik")
	return token
}
