package store

import "github.com/ecomdemo/storefront-api/models"

// Seed fills in static reference data when the collections are empty.
// Shipping options are fixed reference rows; the sample products give a
// fresh install something to browse.
func Seed(db *models.Dataset) {
	if len(db.Shipping) == 0 {
		db.Shipping = []models.ShippingOption{
			{Code: "PK", Name: "Pakistan", Flag: "🇵🇰", Cost: 5.00},
			{Code: "US", Name: "United States", Flag: "🇺🇸", Cost: 15.00},
			{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧", Cost: 12.00},
		}
	}
	if len(db.Products) == 0 {
		db.Products = []models.Product{
			{ID: "p1", Title: "Sample Product 1", Price: 29.99, Image: "/assets/sample1.jpg", Description: "Demo product 1"},
			{ID: "p2", Title: "Sample Product 2", Price: 49.99, Image: "/assets/sample2.jpg", Description: "Demo product 2"},
		}
	}
}
