package storage

import (
	"context"
	"encoding/json"
)

// Storage keys: one JSON document per collection.
const (
	KeyUsers        = "fuel_users"
	KeyVehicles     = "fuel_vehicles"
	KeyRequests     = "fuel_requests"
	KeyTransactions = "fuel_transactions"
	KeyInventory    = "fuel_inventory"
	KeySettings     = "fuel_settings"
	KeySyncConfig   = "fuel_sync_config"
	KeyLastSync     = "fuel_last_sync"
	KeyLowAlerted   = "fuel_low_alerted"
)

// Store is a thin get/set/remove adapter over a persistent key-value area.
// Each call is independently atomic only with respect to itself; there is no
// multi-key transaction. Failures are reported through the return values,
// never panicked; callers must check them.
type Store interface {
	// Read returns the raw JSON document under key, or ok=false when the key
	// is absent or the read failed.
	Read(ctx context.Context, key string) (json.RawMessage, bool)
	// Write serializes value and persists it under key, replacing any
	// previous document. Returns false on serialization or storage failure.
	Write(ctx context.Context, key string, value any) bool
	// Remove deletes the document under key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) bool
}

// ReadJSON reads key and unmarshals it into out. Returns false when the key
// is absent or the stored document does not decode.
func ReadJSON(ctx context.Context, s Store, key string, out any) bool {
	raw, ok := s.Read(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}
