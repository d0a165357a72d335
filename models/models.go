package models

import "time"

// User is created on registration and never mutated afterwards.
// PasswordHash is a bcrypt hash; the plaintext is never stored.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the view of a User safe to return to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// CartItem holds one product line. A cart never holds two lines for the
// same product: adds merge by summing quantities.
type CartItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Cart is the per-user server cart. One cart per user.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

type OrderStatus string

// Orders are terminal in this scope: no transitions after creation.
const OrderStatusCreated OrderStatus = "created"

// PaymentStub records what the caller claimed about payment. No processing
// happens; this is a demo field only.
type PaymentStub struct {
	Method    string `json:"method,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// OrderItem is a by-value snapshot of a cart line at placement time.
// Title/price/image are captured from the catalog so a later product
// change or deletion cannot corrupt the historical order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}

type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	Items        []OrderItem `json:"items"`
	Shipping     string      `json:"shipping,omitempty"`
	Payment      PaymentStub `json:"payment"`
	Subtotal     float64     `json:"subtotal"`
	ShippingCost float64     `json:"shipping_cost"`
	Tax          float64     `json:"tax"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// ShippingOption is static reference data, seeded once if absent.
type ShippingOption struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Flag string  `json:"flag"`
	Cost float64 `json:"cost"`
}

// Dataset is the whole record store: every mutation reads it in full,
// changes one collection and writes it back in full.
type Dataset struct {
	Users    []User           `json:"users"`
	Products []Product        `json:"products"`
	Carts    []Cart           `json:"carts"`
	Orders   []Order          `json:"orders"`
	Shipping []ShippingOption `json:"shipping"`
}
