// Package client is the browser-side half of the storefront expressed as
// a Go library: a local persistent key-value mirror of cart/session
// state (what the web UI keeps in localStorage) plus a thin HTTP client
// for the /api surface.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys, one JSON value each. The _v1 suffix is the version tag;
// a format change bumps the suffix instead of migrating in place.
const (
	KeyCurrentUser = "ecom_current_user_v1"
	KeyCart        = "ecom_cart_v1"
	KeyViewProduct = "ecom_view_product_v1"
	KeyShipTo      = "ecom_ship_v1"
	KeyLang        = "ecom_lang_v1"
	KeySearchQuery = "ecom_search_q_v1"
	KeySubscribed  = "ecom_subscribed_v1"
)

// LocalStore is a localStorage analogue: one JSON file per key under a
// directory. Last writer wins; concurrent use of the same directory from
// multiple processes is unguarded, same as multi-tab localStorage.
type LocalStore struct {
	dir string
}

func OpenLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Get decodes the value stored under key into out. Returns false when
// the key has never been set.
func (ls *LocalStore) Get(key string, out any) (bool, error) {
	raw, err := os.ReadFile(ls.file(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode key %s: %w", key, err)
	}
	return true, nil
}

func (ls *LocalStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode key %s: %w", key, err)
	}
	if err := os.WriteFile(ls.file(key), raw, 0o644); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

func (ls *LocalStore) Delete(key string) error {
	err := os.Remove(ls.file(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (ls *LocalStore) file(key string) string {
	return filepath.Join(ls.dir, key+".json")
}
