package shippingControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomdemo/storefront-api/services"
)

// GET /api/shipping
func GetShippingOptions(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := catalog.ListShipping()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping options"})
			return
		}
		c.JSON(http.StatusOK, options)
	}
}
