package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomdemo/storefront-api/middleware"
	"github.com/ecomdemo/storefront-api/models"
	"github.com/ecomdemo/storefront-api/services"
)

type PlaceOrderInput struct {
	Shipping string             `json:"shipping"`
	Payment  models.PaymentStub `json:"payment"`
}

// POST /api/orders
func PlaceOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		// shipping and payment are both optional stubs
		_ = c.ShouldBindJSON(&input)

		order, err := orders.PlaceOrder(middleware.UserID(c), input.Shipping, input.Payment)
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			broadcastNewOrder(order)
			c.JSON(http.StatusOK, order)
		}
	}
}

// GET /api/orders
func GetOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrders(middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
