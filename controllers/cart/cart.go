package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomdemo/storefront-api/middleware"
	"github.com/ecomdemo/storefront-api/services"
)

type AddItemInput struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type SetQtyInput struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// GET /api/cart
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.GetCart(middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /api/cart — add with merge-by-productId semantics.
func AddItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing productId"})
			return
		}

		cart, err := carts.AddItem(middleware.UserID(c), input.ProductID, input.Qty)
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing productId"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		default:
			c.JSON(http.StatusOK, cart)
		}
	}
}

// PUT /api/cart — absolute quantity; qty ≤ 0 removes the line.
func SetItemQty(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQtyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		cart, err := carts.SetItemQty(middleware.UserID(c), input.ProductID, input.Qty)
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		default:
			c.JSON(http.StatusOK, cart)
		}
	}
}

// DELETE /api/cart/:productId — idempotent for absent items; 404 only
// when the user has no cart at all.
func RemoveItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.RemoveItem(middleware.UserID(c), c.Param("productId"))
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		default:
			c.JSON(http.StatusOK, cart)
		}
	}
}

// GET /api/cart/totals — prices the caller's cart against the current
// catalog.
func GetTotals(carts *services.CartService, catalog *services.CatalogService, totals *services.TotalsCalculator) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.GetCart(middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		products, err := catalog.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, totals.Compute(cart, products).Rounded())
	}
}
