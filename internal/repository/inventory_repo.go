package repository

import (
	"context"

	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// InventoryRepository defines data access for the inventory document. Levels
// are adjustable only through Adjust and the administrative Set; the workflow
// engine owns when each is legal.
type InventoryRepository interface {
	Get(ctx context.Context) model.Inventory
	// Adjust adds delta liters (negative for dispense) to the bucket,
	// clamping the result at zero. Returns false for an unknown fuel type or
	// a failed write.
	Adjust(ctx context.Context, fuelType string, delta float64) bool
	// Set overwrites the bucket's current level. Administrative override.
	Set(ctx context.Context, fuelType string, amount float64) bool
	Replace(ctx context.Context, inv model.Inventory) bool
}

type inventoryRepository struct {
	store storage.Store
}

// NewInventoryRepository returns an InventoryRepository over the given store.
func NewInventoryRepository(store storage.Store) InventoryRepository {
	return &inventoryRepository{store: store}
}

func (r *inventoryRepository) Get(ctx context.Context) model.Inventory {
	var inv model.Inventory
	if !storage.ReadJSON(ctx, r.store, storage.KeyInventory, &inv) {
		return model.DefaultInventory()
	}
	return inv
}

func (r *inventoryRepository) Adjust(ctx context.Context, fuelType string, delta float64) bool {
	inv := r.Get(ctx)
	level, ok := inv[fuelType]
	if !ok {
		return false
	}
	level.Current += delta
	if level.Current < 0 {
		level.Current = 0
	}
	inv[fuelType] = level
	return r.store.Write(ctx, storage.KeyInventory, inv)
}

func (r *inventoryRepository) Set(ctx context.Context, fuelType string, amount float64) bool {
	inv := r.Get(ctx)
	level, ok := inv[fuelType]
	if !ok {
		return false
	}
	level.Current = amount
	inv[fuelType] = level
	return r.store.Write(ctx, storage.KeyInventory, inv)
}

func (r *inventoryRepository) Replace(ctx context.Context, inv model.Inventory) bool {
	return r.store.Write(ctx, storage.KeyInventory, inv)
}
