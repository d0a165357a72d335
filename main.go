package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ecomdemo/storefront-api/routes"
	"github.com/ecomdemo/storefront-api/services"
	"github.com/ecomdemo/storefront-api/store"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	jwtSecret := []byte(getenv("JWT_SECRET", "change_this_to_a_strong_secret"))

	// Open the flat-file record store (creates and seeds on first run)
	dataFile := getenv("DATA_FILE", "data/db.json")
	st, err := store.Open(dataFile)
	if err != nil {
		log.Fatalf("❌ Failed to open data file: %v", err)
	}

	totals := totalsFromEnv()

	deps := routes.Deps{
		Credentials: services.NewCredentialService(st, jwtSecret),
		Catalog:     services.NewCatalogService(st),
		Carts:       services.NewCartService(st),
		Orders:      services.NewOrderService(st, totals),
		Totals:      totals,
		JWTSecret:   jwtSecret,
	}

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	port := getenv("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// totalsFromEnv builds the pricing policy, falling back to the defaults
// (6% tax, free shipping above 100, else 9.99) on absent or bad values.
func totalsFromEnv() *services.TotalsCalculator {
	totals := services.NewTotalsCalculator()

	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil {
			totals.TaxRate = rate
		} else {
			log.Printf("⚠️ Ignoring bad TAX_RATE %q", v)
		}
	}

	threshold := decimal.NewFromInt(100)
	fee := decimal.RequireFromString("9.99")
	if v := os.Getenv("FREE_SHIPPING_THRESHOLD"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			threshold = d
		} else {
			log.Printf("⚠️ Ignoring bad FREE_SHIPPING_THRESHOLD %q", v)
		}
	}
	if v := os.Getenv("FLAT_SHIPPING_FEE"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			fee = d
		} else {
			log.Printf("⚠️ Ignoring bad FLAT_SHIPPING_FEE %q", v)
		}
	}
	totals.Shipping = services.ThresholdShipping(threshold, fee)

	return totals
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
