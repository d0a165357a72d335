package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomdemo/storefront-api/services"
)

type CreateProductInput struct {
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// GET /api/products
func GetProducts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Param("id"))
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		default:
			c.JSON(http.StatusOK, product)
		}
	}
}

// POST /api/products
//
// Deliberately unauthenticated, replicating the demo scaffold this API
// mirrors. A real deployment puts this behind the same bearer-token
// middleware as the cart routes.
func CreateProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" || input.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or price"})
			return
		}

		product, err := catalog.CreateProduct(input.Title, *input.Price, input.Description, input.Image)
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or price"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		default:
			c.JSON(http.StatusOK, product)
		}
	}
}
