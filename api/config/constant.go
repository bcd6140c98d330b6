package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ProdDbId is the identifier for the production database
	ProdDbId = "old-cloud"

	// LiveKeyPrefix marks a Stripe key that moves real money.
	LiveKeyPrefix = "sk_live_"
)

// CheckNotProdDB returns an error if dsn is empty or points at the production database.
// Tests that touch the webhook journal call it before connecting.
func CheckNotProdDB(dsn string) error {
	if dsn == "" {
		return errors.New("DatabaseURL is not configured")
	}
	if strings.Contains(dsn, ProdDbId) {
		return fmt.Errorf("tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
	return nil
}

// CheckNotLiveKey returns an error for live-mode secret keys.
// Integration tests that create objects on Stripe call it first.
func CheckNotLiveKey(key string) error {
	if strings.HasPrefix(key, LiveKeyPrefix) || strings.HasPrefix(key, "rk_live_") {
		return errors.New("tests aborted: STRIPE_SECRET_KEY is a live-mode key")
	}
	return nil
}
