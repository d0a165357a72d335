package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ecomdemo/storefront-api/models"
)

// API is a thin client for the storefront HTTP surface.
type API struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{BaseURL: baseURL, HTTP: http.DefaultClient}
}

// Session is the authenticated identity the mirror stores locally.
type Session struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type apiError struct {
	Error string `json:"error"`
}

func (a *API) Register(name, email, password string) (Session, error) {
	var out Session
	err := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	}, &out)
	return out, err
}

func (a *API) Login(email, password string) (Session, error) {
	var out Session
	err := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	}, &out)
	return out, err
}

func (a *API) GetProduct(id string) (models.Product, error) {
	var out models.Product
	err := a.do(http.MethodGet, "/api/products/"+id, "", nil, &out)
	return out, err
}

func (a *API) AddCartItem(token, productID string, qty int) (models.Cart, error) {
	var out models.Cart
	err := a.do(http.MethodPost, "/api/cart", token, map[string]any{
		"productId": productID, "qty": qty,
	}, &out)
	return out, err
}

func (a *API) GetCart(token string) (models.Cart, error) {
	var out models.Cart
	err := a.do(http.MethodGet, "/api/cart", token, nil, &out)
	return out, err
}

func (a *API) PlaceOrder(token, shipping string, payment models.PaymentStub) (models.Order, error) {
	var out models.Order
	err := a.do(http.MethodPost, "/api/orders", token, map[string]any{
		"shipping": shipping, "payment": payment,
	}, &out)
	return out, err
}

func (a *API) do(method, path, token string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, a.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
