package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"farmlink/internal/middleware"
	"farmlink/internal/model"
	"farmlink/internal/service"
	"farmlink/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles crop and product listing requests
type ListingHandler struct {
	service service.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(s service.ListingService) *ListingHandler {
	return &ListingHandler{service: s}
}

// Helper to get the authenticated claims from context
func getAuthClaims(c *gin.Context) (*utils.JWTClaims, error) {
	claimsVal, exists := c.Get(middleware.AuthClaimsKey)
	if !exists {
		return nil, errors.New("authentication claims not found in context")
	}
	claims, ok := claimsVal.(*utils.JWTClaims)
	if !ok {
		return nil, errors.New("invalid claims type in context")
	}
	return claims, nil
}

func listingFilters(c *gin.Context) model.ListingFilters {
	var filters model.ListingFilters
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}
	return filters
}

// --- Crops ---

func (h *ListingHandler) BrowseCrops(c *gin.Context) {
	crops, err := h.service.BrowseCrops(c.Request.Context(), listingFilters(c))
	if err != nil {
		log.Printf("Error browsing crops: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to retrieve crops"})
		return
	}
	if crops == nil {
		crops = []model.Crop{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "crops": crops})
}

func (h *ListingHandler) MyCrops(c *gin.Context) {
	claims, err := getAuthClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	crops, err := h.service.MyCrops(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("Error getting farmer crops: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to retrieve crops"})
		return
	}
	if crops == nil {
		crops = []model.Crop{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "crops": crops})
}

func (h *ListingHandler) PostCrop(c *gin.Context) {
	claims, err := getAuthClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	var req model.CreateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "all fields are required and price must be valid"})
		return
	}

	crop, err := h.service.PostCrop(c.Request.Context(), claims, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("Error posting crop: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to post crop"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "crop posted successfully", "id": crop.ID})
}

func (h *ListingHandler) DeleteCrop(c *gin.Context) {
	claims, err := getAuthClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	cropID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid crop ID"})
		return
	}

	if err := h.service.DeleteCrop(c.Request.Context(), cropID, claims.UserID); err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "crop not found or unauthorized"})
			return
		}
		log.Printf("Error deleting crop: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete crop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "crop deleted"})
}

// --- Products ---

func (h *ListingHandler) BrowseProducts(c *gin.Context) {
	products, err := h.service.BrowseProducts(c.Request.Context(), listingFilters(c))
	if err != nil {
		log.Printf("Error browsing products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to retrieve products"})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *ListingHandler) MyProducts(c *gin.Context) {
	claims, err := getAuthClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	products, err := h.service.MyProducts(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("Error getting vendor products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to retrieve products"})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *ListingHandler) PostProduct(c *gin.Context) {
	claims, err := getAuthClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "product name, price, location, and phone are required"})
		return
	}

	product, err := h.service.PostProduct(c.Request.Context(), claims, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("Error posting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to post product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "product posted successfully", "id": product.ID})
}

func (h *ListingHandler) DeleteProduct(c *gin.Context) {
	claims, err := getAuthClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid product ID"})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), productID, claims.UserID); err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found or unauthorized"})
			return
		}
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product deleted"})
}

// RegisterListingRoutes registers crop and product routes. Browsing only
// needs a login; posting, listing your own and deleting are role gated.
func (h *ListingHandler) RegisterListingRoutes(rg *gin.RouterGroup, authMW, farmerMW, vendorMW gin.HandlerFunc) {
	cropRoutes := rg.Group("")
	cropRoutes.Use(authMW)
	{
		cropRoutes.GET("/crops", h.BrowseCrops)
		cropRoutes.GET("/my-crops", farmerMW, h.MyCrops)
		cropRoutes.POST("/crops", farmerMW, h.PostCrop)
		cropRoutes.DELETE("/crops/:id", farmerMW, h.DeleteCrop)
	}

	productRoutes := rg.Group("")
	productRoutes.Use(authMW)
	{
		productRoutes.GET("/products", h.BrowseProducts)
		productRoutes.GET("/my-products", vendorMW, h.MyProducts)
		productRoutes.POST("/products", vendorMW, h.PostProduct)
		productRoutes.DELETE("/products/:id", vendorMW, h.DeleteProduct)
	}
}
