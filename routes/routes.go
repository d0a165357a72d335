package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authControllers "github.com/ecomdemo/storefront-api/controllers/auth"
	cartControllers "github.com/ecomdemo/storefront-api/controllers/cart"
	orderControllers "github.com/ecomdemo/storefront-api/controllers/order"
	productcontroller "github.com/ecomdemo/storefront-api/controllers/product"
	shippingControllers "github.com/ecomdemo/storefront-api/controllers/shipping"
	"github.com/ecomdemo/storefront-api/middleware"
	"github.com/ecomdemo/storefront-api/services"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Credentials *services.CredentialService
	Catalog     *services.CatalogService
	Carts       *services.CartService
	Orders      *services.OrderService
	Totals      *services.TotalsCalculator
	JWTSecret   []byte
}

// SetupRoutes is the single entry-point that wires up every /api route
// group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")

	// ──────────────── Public ────────────────
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Credentials)) // POST /api/auth/register
		authGroup.POST("/login", authControllers.Login(deps.Credentials))       // POST /api/auth/login
	}

	api.GET("/products", productcontroller.GetProducts(deps.Catalog))            // GET  /api/products
	api.GET("/products/export", productcontroller.ExportProductsToExcel(deps.Catalog)) // GET  /api/products/export
	api.GET("/products/:id", productcontroller.GetProductByID(deps.Catalog))     // GET  /api/products/:id
	api.POST("/products", productcontroller.CreateProduct(deps.Catalog))         // POST /api/products (open; demo gap)
	api.GET("/shipping", shippingControllers.GetShippingOptions(deps.Catalog))   // GET  /api/shipping
	api.GET("/orders/ws", orderControllers.OrderWebSocket)                       // GET  /api/orders/ws

	// ──────────────── Bearer-token protected ────────────────
	protected := api.Group("")
	protected.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		cartGroup := protected.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Carts))              // GET    /api/cart
			cartGroup.GET("/totals", cartControllers.GetTotals(deps.Carts, deps.Catalog, deps.Totals)) // GET /api/cart/totals
			cartGroup.POST("", cartControllers.AddItem(deps.Carts))             // POST   /api/cart
			cartGroup.PUT("", cartControllers.SetItemQty(deps.Carts))           // PUT    /api/cart
			cartGroup.DELETE("/:productId", cartControllers.RemoveItem(deps.Carts)) // DELETE /api/cart/:productId
		}

		protected.POST("/orders", orderControllers.PlaceOrder(deps.Orders)) // POST /api/orders
		protected.GET("/orders", orderControllers.GetOrders(deps.Orders))   // GET  /api/orders
	}
}
