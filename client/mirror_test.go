package client_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomdemo/storefront-api/client"
	"github.com/ecomdemo/storefront-api/models"
	"github.com/ecomdemo/storefront-api/routes"
	"github.com/ecomdemo/storefront-api/services"
	"github.com/ecomdemo/storefront-api/store"
)

var (
	p1 = models.Product{ID: "p1", Title: "Sample Product 1", Price: 29.99, Image: "/assets/sample1.jpg"}
	p2 = models.Product{ID: "p2", Title: "Sample Product 2", Price: 49.99}
)

func newMirror(t *testing.T) *client.Mirror {
	t.Helper()
	ls, err := client.OpenLocalStore(filepath.Join(t.TempDir(), "local"))
	require.NoError(t, err)
	return client.NewMirror(ls)
}

// startServer runs the real router over the flat-file store so the
// mirror talks to the same code paths production does.
func startServer(t *testing.T) *client.API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	secret := []byte("mirror-test-secret")
	totals := services.NewTotalsCalculator()
	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Credentials: services.NewCredentialService(st, secret),
		Catalog:     services.NewCatalogService(st),
		Carts:       services.NewCartService(st),
		Orders:      services.NewOrderService(st, totals),
		Totals:      totals,
		JWTSecret:   secret,
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return client.NewAPI(srv.URL)
}

func TestGuestCartMergesByProductID(t *testing.T) {
	m := newMirror(t)

	_, err := m.AddItem(p1, 2)
	require.NoError(t, err)
	items, err := m.AddItem(p1, 1)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Qty)
	// snapshot captured at add time
	assert.Equal(t, "Sample Product 1", items[0].Title)
	assert.Equal(t, 29.99, items[0].Price)

	// clamp mirrors the server's lenient add
	items, err = m.AddItem(p2, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[1].Qty)
}

func TestGuestCartSnapshotIsNotRefreshed(t *testing.T) {
	m := newMirror(t)

	_, err := m.AddItem(p1, 1)
	require.NoError(t, err)

	// price changes after the add; a second add merges qty but keeps the
	// captured snapshot
	changed := p1
	changed.Price = 99.99
	items, err := m.AddItem(changed, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 29.99, items[0].Price)
}

func TestGuestCartSetQtyAndRemove(t *testing.T) {
	m := newMirror(t)

	_, err := m.AddItem(p1, 2)
	require.NoError(t, err)

	items, err := m.SetQty("p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Qty)

	items, err = m.SetQty("p1", 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	// removing an absent item is a no-op
	items, err = m.RemoveItem("p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGuestCartSurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "local")

	ls, err := client.OpenLocalStore(dir)
	require.NoError(t, err)
	m := client.NewMirror(ls)
	_, err = m.AddItem(p1, 2)
	require.NoError(t, err)

	ls2, err := client.OpenLocalStore(dir)
	require.NoError(t, err)
	items, err := client.NewMirror(ls2).Cart()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}

func TestCheckoutRequiresSession(t *testing.T) {
	m := newMirror(t)
	api := startServer(t)

	_, err := m.AddItem(p1, 1)
	require.NoError(t, err)

	_, err = m.Checkout(api, "PK", models.PaymentStub{})
	require.ErrorIs(t, err, client.ErrNoSession)

	// the cart must not have been touched by the failed checkout
	items, err := m.Cart()
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	m := newMirror(t)
	api := startServer(t)

	s, err := api.Register("Test", "empty@x.com", "pw123")
	require.NoError(t, err)
	require.NoError(t, m.SetSession(s))

	_, err = m.Checkout(api, "PK", models.PaymentStub{})
	require.ErrorIs(t, err, client.ErrEmptyGuestCart)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	m := newMirror(t)
	api := startServer(t)

	s, err := api.Register("Test", "buyer@x.com", "pw123")
	require.NoError(t, err)
	require.NoError(t, m.SetSession(s))

	_, err = m.AddItem(p1, 2)
	require.NoError(t, err)

	order, err := m.Checkout(api, "PK", models.PaymentStub{Method: "card"})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Qty)
	assert.Equal(t, models.OrderStatusCreated, order.Status)

	// local cart cleared unconditionally on success
	items, err := m.Cart()
	require.NoError(t, err)
	assert.Empty(t, items)

	// server cart cleared too
	serverCart, err := api.GetCart(s.Token)
	require.NoError(t, err)
	assert.Empty(t, serverCart.Items)
}

func TestLoginMergesGuestCartWithoutLoss(t *testing.T) {
	m := newMirror(t)
	api := startServer(t)

	// server cart gets p1×1 while logged in elsewhere
	s, err := api.Register("Test", "merge@x.com", "pw123")
	require.NoError(t, err)
	_, err = api.AddCartItem(s.Token, "p1", 1)
	require.NoError(t, err)

	// guest adds p1×2 and p2×1 locally
	_, err = m.AddItem(p1, 2)
	require.NoError(t, err)
	_, err = m.AddItem(p2, 1)
	require.NoError(t, err)

	// login merges: union with quantity-sum, nothing dropped
	logged, err := m.Login(api, "merge@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, s.User.ID, logged.User.ID)

	serverCart, err := api.GetCart(logged.Token)
	require.NoError(t, err)
	require.Len(t, serverCart.Items, 2)

	qty := map[string]int{}
	for _, it := range serverCart.Items {
		qty[it.ProductID] = it.Qty
	}
	assert.Equal(t, 3, qty["p1"], "guest qty summed into server qty")
	assert.Equal(t, 1, qty["p2"], "guest-only line carried over")

	// guest cart cleared after the merge
	items, err := m.Cart()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUIStateKeys(t *testing.T) {
	m := newMirror(t)

	require.NoError(t, m.SetViewProduct(p1))
	p, ok, err := m.ViewProduct()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	require.NoError(t, m.SetShipTo("US"))
	ship, err := m.ShipTo()
	require.NoError(t, err)
	assert.Equal(t, "US", ship)

	require.NoError(t, m.SetLang("en"))
	lang, err := m.Lang()
	require.NoError(t, err)
	assert.Equal(t, "en", lang)

	require.NoError(t, m.SetSearchQuery("headphones"))
	q, err := m.SearchQuery()
	require.NoError(t, err)
	assert.Equal(t, "headphones", q)

	require.NoError(t, m.SetSubscribed(true))
	sub, err := m.Subscribed()
	require.NoError(t, err)
	assert.True(t, sub)
}

func TestLogoutDropsSessionOnly(t *testing.T) {
	m := newMirror(t)

	require.NoError(t, m.SetSession(client.Session{Token: "tok", User: models.PublicUser{ID: "u1"}}))
	_, err := m.AddItem(p1, 1)
	require.NoError(t, err)

	require.NoError(t, m.Logout())

	_, ok, err := m.Session()
	require.NoError(t, err)
	assert.False(t, ok)

	// the guest cart stays
	items, err := m.Cart()
	require.NoError(t, err)
	require.Len(t, items, 1)
}
