package client

import (
	"errors"

	"github.com/ecomdemo/storefront-api/models"
)

var (
	ErrNoSession      = errors.New("not logged in")
	ErrEmptyGuestCart = errors.New("cart is empty")
)

// GuestItem is a guest-cart line. Title, price and image are captured
// when the item is added and never re-fetched; the mirror trusts that
// snapshot even when the catalog has since changed. That staleness is a
// documented behavior of the guest cart, not a bug.
type GuestItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"img,omitempty"`
	Qty       int     `json:"qty"`
}

// Mirror is the browser-local cache: guest cart, session, last-viewed
// product and the small UI preferences, all persisted through a
// LocalStore. While anonymous it operates entirely offline; once logged
// in, the server cart is the source of truth and SyncOnLogin folds the
// guest cart into it.
type Mirror struct {
	LS *LocalStore
}

func NewMirror(ls *LocalStore) *Mirror {
	return &Mirror{LS: ls}
}

// ──────────────── Guest cart ────────────────

func (m *Mirror) Cart() ([]GuestItem, error) {
	var items []GuestItem
	if _, err := m.LS.Get(KeyCart, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []GuestItem{}
	}
	return items, nil
}

// AddItem merges by productId exactly like the server cart: an existing
// line gains qty, a new line is appended. qty ≤ 0 clamps to 1.
func (m *Mirror) AddItem(p models.Product, qty int) ([]GuestItem, error) {
	if qty <= 0 {
		qty = 1
	}
	items, err := m.Cart()
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, GuestItem{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Image:     p.Image,
			Qty:       qty,
		})
	}
	return items, m.LS.Set(KeyCart, items)
}

// SetQty sets an absolute quantity; qty ≤ 0 drops the line.
func (m *Mirror) SetQty(productID string, qty int) ([]GuestItem, error) {
	items, err := m.Cart()
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ProductID == productID {
			it.Qty = qty
		}
		if it.Qty > 0 {
			kept = append(kept, it)
		}
	}
	return kept, m.LS.Set(KeyCart, kept)
}

// RemoveItem drops a line; removing an absent product is a no-op.
func (m *Mirror) RemoveItem(productID string) ([]GuestItem, error) {
	items, err := m.Cart()
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return kept, m.LS.Set(KeyCart, kept)
}

func (m *Mirror) ClearCart() error {
	return m.LS.Set(KeyCart, []GuestItem{})
}

// ──────────────── Session ────────────────

func (m *Mirror) Session() (Session, bool, error) {
	var s Session
	ok, err := m.LS.Get(KeyCurrentUser, &s)
	if err != nil {
		return Session{}, false, err
	}
	return s, ok && s.Token != "", nil
}

func (m *Mirror) SetSession(s Session) error {
	return m.LS.Set(KeyCurrentUser, s)
}

func (m *Mirror) Logout() error {
	return m.LS.Delete(KeyCurrentUser)
}

// Login authenticates against the server, stores the session and folds
// the guest cart into the server cart.
func (m *Mirror) Login(api *API, email, password string) (Session, error) {
	s, err := api.Login(email, password)
	if err != nil {
		return Session{}, err
	}
	if err := m.SetSession(s); err != nil {
		return Session{}, err
	}
	if err := m.SyncOnLogin(api); err != nil {
		return Session{}, err
	}
	return s, nil
}

// SyncOnLogin merges the guest cart into the server cart: union with
// quantity-sum. Each guest line is replayed through the server's add
// operation, whose merge rule is already quantity-sum, so neither the
// guest cart nor the pre-existing server cart loses a line. The guest
// cart is cleared only after every line has been accepted.
func (m *Mirror) SyncOnLogin(api *API) error {
	s, ok, err := m.Session()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSession
	}

	items, err := m.Cart()
	if err != nil {
		return err
	}
	for _, it := range items {
		if _, err := api.AddCartItem(s.Token, it.ProductID, it.Qty); err != nil {
			return err
		}
	}
	return m.ClearCart()
}

// ──────────────── Checkout ────────────────

// Checkout blocks without a session or with an empty cart; the caller
// surfaces those as explicit prompts, never a silent pass-through. On
// success the local cart is cleared unconditionally.
func (m *Mirror) Checkout(api *API, shipping string, payment models.PaymentStub) (models.Order, error) {
	s, ok, err := m.Session()
	if err != nil {
		return models.Order{}, err
	}
	if !ok {
		return models.Order{}, ErrNoSession
	}

	items, err := m.Cart()
	if err != nil {
		return models.Order{}, err
	}
	serverCart, err := api.GetCart(s.Token)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 && len(serverCart.Items) == 0 {
		return models.Order{}, ErrEmptyGuestCart
	}

	// any guest lines added since login go along with the order
	for _, it := range items {
		if _, err := api.AddCartItem(s.Token, it.ProductID, it.Qty); err != nil {
			return models.Order{}, err
		}
	}

	order, err := api.PlaceOrder(s.Token, shipping, payment)
	if err != nil {
		return models.Order{}, err
	}
	return order, m.ClearCart()
}

// ──────────────── UI state keys ────────────────

func (m *Mirror) SetViewProduct(p models.Product) error {
	return m.LS.Set(KeyViewProduct, p)
}

func (m *Mirror) ViewProduct() (models.Product, bool, error) {
	var p models.Product
	ok, err := m.LS.Get(KeyViewProduct, &p)
	return p, ok, err
}

func (m *Mirror) SetShipTo(code string) error {
	return m.LS.Set(KeyShipTo, code)
}

func (m *Mirror) ShipTo() (string, error) {
	var code string
	_, err := m.LS.Get(KeyShipTo, &code)
	return code, err
}

func (m *Mirror) SetLang(lang string) error {
	return m.LS.Set(KeyLang, lang)
}

func (m *Mirror) Lang() (string, error) {
	var lang string
	_, err := m.LS.Get(KeyLang, &lang)
	return lang, err
}

func (m *Mirror) SetSearchQuery(q string) error {
	return m.LS.Set(KeySearchQuery, q)
}

func (m *Mirror) SearchQuery() (string, error) {
	var q string
	_, err := m.LS.Get(KeySearchQuery, &q)
	return q, err
}

func (m *Mirror) SetSubscribed(v bool) error {
	return m.LS.Set(KeySubscribed, v)
}

func (m *Mirror) Subscribed() (bool, error) {
	var v bool
	_, err := m.LS.Get(KeySubscribed, &v)
	return v, err
}
