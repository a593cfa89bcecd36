package repository

import (
	"context"
	"fmt"

	"fueldepot/internal/idgen"
	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// VehicleRepository defines data access for the vehicle registry.
type VehicleRepository interface {
	GetAll(ctx context.Context) []model.Vehicle
	GetByID(ctx context.Context, id string) (model.Vehicle, bool)
	GetByPlate(ctx context.Context, plate string) (model.Vehicle, bool)
	GetActive(ctx context.Context) []model.Vehicle
	GetByFuelType(ctx context.Context, fuelType string) []model.Vehicle
	Add(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, bool)
	Update(ctx context.Context, id string, apply func(*model.Vehicle)) bool
	Delete(ctx context.Context, id string) bool
	ReplaceAll(ctx context.Context, vehicles []model.Vehicle) bool
}

type vehicleRepository struct {
	store storage.Store
}

// NewVehicleRepository returns a VehicleRepository over the given store.
func NewVehicleRepository(store storage.Store) VehicleRepository {
	return &vehicleRepository{store: store}
}

func (r *vehicleRepository) GetAll(ctx context.Context) []model.Vehicle {
	var vehicles []model.Vehicle
	storage.ReadJSON(ctx, r.store, storage.KeyVehicles, &vehicles)
	return vehicles
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (model.Vehicle, bool) {
	for _, v := range r.GetAll(ctx) {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (model.Vehicle, bool) {
	for _, v := range r.GetAll(ctx) {
		if v.Plate == plate {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

func (r *vehicleRepository) GetActive(ctx context.Context) []model.Vehicle {
	var active []model.Vehicle
	for _, v := range r.GetAll(ctx) {
		if v.Active {
			active = append(active, v)
		}
	}
	return active
}

func (r *vehicleRepository) GetByFuelType(ctx context.Context, fuelType string) []model.Vehicle {
	var out []model.Vehicle
	for _, v := range r.GetActive(ctx) {
		if v.FuelType == fuelType {
			out = append(out, v)
		}
	}
	return out
}

func (r *vehicleRepository) Add(ctx context.Context, vehicle model.Vehicle) (model.Vehicle, bool) {
	vehicles := r.GetAll(ctx)
	vehicle.ID = idgen.New("V")
	vehicle.Active = true
	vehicles = append(vehicles, vehicle)
	return vehicle, r.store.Write(ctx, storage.KeyVehicles, vehicles)
}

func (r *vehicleRepository) Update(ctx context.Context, id string, apply func(*model.Vehicle)) bool {
	vehicles := r.GetAll(ctx)
	for i := range vehicles {
		if vehicles[i].ID == id {
			apply(&vehicles[i])
			return r.store.Write(ctx, storage.KeyVehicles, vehicles)
		}
	}
	return false
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) bool {
	vehicles := r.GetAll(ctx)
	kept := vehicles[:0]
	for _, v := range vehicles {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	return r.store.Write(ctx, storage.KeyVehicles, kept)
}

func (r *vehicleRepository) ReplaceAll(ctx context.Context, vehicles []model.Vehicle) bool {
	return r.store.Write(ctx, storage.KeyVehicles, vehicles)
}

// Options returns dropdown entries for active vehicles, optionally filtered
// by fuel type.
func Options(ctx context.Context, r VehicleRepository, fuelType string) []model.VehicleOption {
	vehicles := r.GetActive(ctx)
	if fuelType != "" {
		vehicles = r.GetByFuelType(ctx, fuelType)
	}
	opts := make([]model.VehicleOption, 0, len(vehicles))
	for _, v := range vehicles {
		opts = append(opts, model.VehicleOption{
			Value: v.Plate,
			Label: fmt.Sprintf("%s - %s (%s)", v.Plate, v.Type, v.Department),
		})
	}
	return opts
}
