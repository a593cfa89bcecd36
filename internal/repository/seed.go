package repository

import (
	"context"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// EnsureSeedData writes default collections for any storage key that is still
// absent. Existing data is never touched, so it is safe to run on every boot.
func EnsureSeedData(ctx context.Context, store storage.Store) {
	if _, ok := store.Read(ctx, storage.KeyUsers); !ok {
		store.Write(ctx, storage.KeyUsers, model.DefaultUsers(time.Now()))
	}
	if _, ok := store.Read(ctx, storage.KeyVehicles); !ok {
		store.Write(ctx, storage.KeyVehicles, model.DefaultVehicles())
	}
	if _, ok := store.Read(ctx, storage.KeyInventory); !ok {
		store.Write(ctx, storage.KeyInventory, model.DefaultInventory())
	}
	if _, ok := store.Read(ctx, storage.KeyRequests); !ok {
		store.Write(ctx, storage.KeyRequests, []model.FuelRequest{})
	}
	if _, ok := store.Read(ctx, storage.KeyTransactions); !ok {
		store.Write(ctx, storage.KeyTransactions, []model.Transaction{})
	}
}
