package services

import (
	"github.com/ecomdemo/storefront-api/models"
	"github.com/ecomdemo/storefront-api/store"
)

// CartService maintains one cart per authenticated user. All mutations
// run inside a single store.Update so read-modify-write cycles never
// interleave.
//
// Adds do NOT validate the product against the catalog: a line for a
// since-deleted product is accepted here and reconciled at totals/order
// time.
type CartService struct {
	Store *store.Store
}

func NewCartService(s *store.Store) *CartService {
	return &CartService{Store: s}
}

// GetCart returns the user's cart, or an empty one if none exists yet.
// The empty cart is not persisted until the first mutation, so
// browse-only users never cause a write.
func (s *CartService) GetCart(userID string) (models.Cart, error) {
	db, err := s.Store.Load()
	if err != nil {
		return models.Cart{}, err
	}
	for _, c := range db.Carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
}

// AddItem adds qty of a product to the cart, merging with any existing
// line for the same product by summing quantities. A qty ≤ 0 is a
// deliberate clamp to 1 (lenient add), not a validation failure.
func (s *CartService) AddItem(userID, productID string, qty int) (models.Cart, error) {
	if productID == "" {
		return models.Cart{}, ErrInvalidInput
	}
	if qty <= 0 {
		qty = 1
	}

	var out models.Cart
	err := s.Store.Update(func(db *models.Dataset) error {
		idx := findCart(db.Carts, userID)
		if idx < 0 {
			db.Carts = append(db.Carts, models.Cart{UserID: userID, Items: []models.CartItem{}})
			idx = len(db.Carts) - 1
		}
		cart := &db.Carts[idx]

		merged := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Qty += qty
				merged = true
				break
			}
		}
		if !merged {
			cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Qty: qty})
		}
		out = *cart
		return nil
	})
	return out, err
}

// SetItemQty sets an absolute quantity on an existing line. A qty ≤ 0
// removes the line entirely; zero or negative quantities are never
// stored.
func (s *CartService) SetItemQty(userID, productID string, qty int) (models.Cart, error) {
	var out models.Cart
	err := s.Store.Update(func(db *models.Dataset) error {
		idx := findCart(db.Carts, userID)
		if idx < 0 {
			return ErrNotFound
		}
		cart := &db.Carts[idx]

		found := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Qty = qty
				found = true
				break
			}
		}
		if !found {
			return ErrNotFound
		}

		kept := cart.Items[:0]
		for _, it := range cart.Items {
			if it.Qty > 0 {
				kept = append(kept, it)
			}
		}
		cart.Items = kept
		out = *cart
		return nil
	})
	return out, err
}

// RemoveItem deletes a line from the cart. Removing an absent product is
// not an error: the call is idempotent and returns the cart unchanged.
func (s *CartService) RemoveItem(userID, productID string) (models.Cart, error) {
	var out models.Cart
	err := s.Store.Update(func(db *models.Dataset) error {
		idx := findCart(db.Carts, userID)
		if idx < 0 {
			return ErrNotFound
		}
		cart := &db.Carts[idx]

		kept := cart.Items[:0]
		for _, it := range cart.Items {
			if it.ProductID != productID {
				kept = append(kept, it)
			}
		}
		cart.Items = kept
		out = *cart
		return nil
	})
	return out, err
}

func findCart(carts []models.Cart, userID string) int {
	for i := range carts {
		if carts[i].UserID == userID {
			return i
		}
	}
	return -1
}
