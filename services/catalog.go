package services

import (
	"github.com/google/uuid"

	"github.com/ecomdemo/storefront-api/models"
	"github.com/ecomdemo/storefront-api/store"
)

// CatalogService exposes the product table: read-mostly listing/lookup
// plus admin-style creation.
type CatalogService struct {
	Store *store.Store
}

func NewCatalogService(s *store.Store) *CatalogService {
	return &CatalogService{Store: s}
}

// ListProducts returns all products in stored order.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	db, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	if db.Products == nil {
		return []models.Product{}, nil
	}
	return db.Products, nil
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	db, err := s.Store.Load()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range db.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// CreateProduct validates and stores a new product. Title and price are
// required and the price must be non-negative; a negative price is
// rejected, never clamped.
func (s *CatalogService) CreateProduct(title string, price float64, description, image string) (models.Product, error) {
	if title == "" || price < 0 {
		return models.Product{}, ErrInvalidInput
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Title:       title,
		Price:       price,
		Description: description,
		Image:       image,
	}

	err := s.Store.Update(func(db *models.Dataset) error {
		db.Products = append(db.Products, product)
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ListShipping returns the static shipping options.
func (s *CatalogService) ListShipping() ([]models.ShippingOption, error) {
	db, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	if db.Shipping == nil {
		return []models.ShippingOption{}, nil
	}
	return db.Shipping, nil
}
