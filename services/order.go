package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecomdemo/storefront-api/models"
	"github.com/ecomdemo/storefront-api/store"
)

// OrderService turns a user's current cart into an immutable order.
type OrderService struct {
	Store  *store.Store
	Totals *TotalsCalculator
}

func NewOrderService(s *store.Store, totals *TotalsCalculator) *OrderService {
	return &OrderService{Store: s, Totals: totals}
}

// PlaceOrder snapshots the caller's cart by value, prices it, records
// the order and clears the cart — all inside one store.Update, so no
// state where the order exists but the cart survives (or the reverse) is
// ever durable.
//
// Fails with ErrEmptyCart when there is nothing to order. Lines whose
// product has been deleted since being added are snapshotted with the
// captured product fields empty and contribute zero to the totals.
func (s *OrderService) PlaceOrder(userID, shipping string, payment models.PaymentStub) (models.Order, error) {
	var out models.Order
	err := s.Store.Update(func(db *models.Dataset) error {
		idx := findCart(db.Carts, userID)
		if idx < 0 || len(db.Carts[idx].Items) == 0 {
			return ErrEmptyCart
		}
		cart := db.Carts[idx]

		byID := make(map[string]models.Product, len(db.Products))
		for _, p := range db.Products {
			byID[p.ID] = p
		}

		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			line := models.OrderItem{ProductID: it.ProductID, Qty: it.Qty}
			if p, ok := byID[it.ProductID]; ok {
				line.Title = p.Title
				line.Price = p.Price
				line.Image = p.Image
			}
			items = append(items, line)
		}

		totals := s.Totals.Compute(cart, db.Products).Rounded()

		out = models.Order{
			ID:           uuid.NewString(),
			UserID:       userID,
			Items:        items,
			Shipping:     shipping,
			Payment:      payment,
			Subtotal:     totals.Subtotal,
			ShippingCost: totals.Shipping,
			Tax:          totals.Tax,
			Total:        totals.Total,
			Status:       models.OrderStatusCreated,
			CreatedAt:    time.Now(),
		}
		db.Orders = append(db.Orders, out)

		// clear the cart in the same write
		db.Carts = append(db.Carts[:idx], db.Carts[idx+1:]...)
		return nil
	})
	return out, err
}

// ListOrders returns the caller's orders only. There is no cross-user
// visibility.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	db, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	for _, o := range db.Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
