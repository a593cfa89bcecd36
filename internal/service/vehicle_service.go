package service

import (
	"context"
	"fmt"

	"fueldepot/internal/model"
	"fueldepot/internal/repository"
)

// DTOs
type CreateVehicleRequest struct {
	Plate      string `json:"plate" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Brand      string `json:"brand"`
	FuelType   string `json:"fuelType" binding:"required,oneof=diesel benzin95 benzin91"`
	Department string `json:"department"`
}

type UpdateVehicleRequest struct {
	Plate      string `json:"plate"`
	Type       string `json:"type"`
	Brand      string `json:"brand"`
	FuelType   string `json:"fuelType"`
	Department string `json:"department"`
	Active     *bool  `json:"active"`
}

// VehicleService manages the vehicle registry. Plates are captured by value
// on requests, so registry edits have no cascading effect on history.
type VehicleService interface {
	List(ctx context.Context, fuelType string, activeOnly bool) []model.Vehicle
	GetByID(ctx context.Context, id string) (model.Vehicle, error)
	Options(ctx context.Context, fuelType string) []model.VehicleOption
	Create(ctx context.Context, req CreateVehicleRequest) (model.Vehicle, error)
	Update(ctx context.Context, id string, req UpdateVehicleRequest) (model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type vehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService returns a VehicleService over the given repository.
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) List(ctx context.Context, fuelType string, activeOnly bool) []model.Vehicle {
	switch {
	case fuelType != "":
		return s.repo.GetByFuelType(ctx, fuelType)
	case activeOnly:
		return s.repo.GetActive(ctx)
	default:
		return s.repo.GetAll(ctx)
	}
}

func (s *vehicleService) GetByID(ctx context.Context, id string) (model.Vehicle, error) {
	v, found := s.repo.GetByID(ctx, id)
	if !found {
		return model.Vehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	return v, nil
}

func (s *vehicleService) Options(ctx context.Context, fuelType string) []model.VehicleOption {
	return repository.Options(ctx, s.repo, fuelType)
}

func (s *vehicleService) Create(ctx context.Context, req CreateVehicleRequest) (model.Vehicle, error) {
	if !model.ValidFuelType(req.FuelType) {
		return model.Vehicle{}, fmt.Errorf("unknown fuel type %q", req.FuelType)
	}

	vehicle, ok := s.repo.Add(ctx, model.Vehicle{
		Plate:      req.Plate,
		Type:       req.Type,
		Brand:      req.Brand,
		FuelType:   req.FuelType,
		Department: req.Department,
	})
	if !ok {
		return model.Vehicle{}, fmt.Errorf("save vehicle: %w", ErrStorageFailure)
	}
	return vehicle, nil
}

func (s *vehicleService) Update(ctx context.Context, id string, req UpdateVehicleRequest) (model.Vehicle, error) {
	if req.FuelType != "" && !model.ValidFuelType(req.FuelType) {
		return model.Vehicle{}, fmt.Errorf("unknown fuel type %q", req.FuelType)
	}

	ok := s.repo.Update(ctx, id, func(v *model.Vehicle) {
		if req.Plate != "" {
			v.Plate = req.Plate
		}
		if req.Type != "" {
			v.Type = req.Type
		}
		if req.Brand != "" {
			v.Brand = req.Brand
		}
		if req.FuelType != "" {
			v.FuelType = req.FuelType
		}
		if req.Department != "" {
			v.Department = req.Department
		}
		if req.Active != nil {
			v.Active = *req.Active
		}
	})
	if !ok {
		return model.Vehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}

	vehicle, _ := s.repo.GetByID(ctx, id)
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	if _, found := s.repo.GetByID(ctx, id); !found {
		return fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	if !s.repo.Delete(ctx, id) {
		return fmt.Errorf("delete vehicle: %w", ErrStorageFailure)
	}
	return nil
}
