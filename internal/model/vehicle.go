package model

// Vehicle is a registered unit vehicle. The plate is copied by value onto
// requests at submission time, so edits here never rewrite history.
type Vehicle struct {
	ID         string `json:"id"`
	Plate      string `json:"plate"`
	Type       string `json:"type"`
	Brand      string `json:"brand"`
	FuelType   string `json:"fuelType"`
	Department string `json:"department"`
	Active     bool   `json:"active"`
}

// VehicleOption is a plate plus display label for selection lists.
type VehicleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DefaultVehicles returns the registry seeded into an empty store.
func DefaultVehicles() []Vehicle {
	return []Vehicle{
		{ID: "V001", Plate: "HQ 1234", Type: "Jeep", Brand: "Toyota", FuelType: FuelDiesel, Department: "Headquarters", Active: true},
		{ID: "V002", Plate: "HQ 5678", Type: "Truck", Brand: "Isuzu", FuelType: FuelDiesel, Department: "1st Company", Active: true},
		{ID: "V003", Plate: "HQ 9012", Type: "Van", Brand: "Toyota", FuelType: FuelBenzin95, Department: "2nd Company", Active: true},
		{ID: "V004", Plate: "HQ 3456", Type: "Sedan", Brand: "Honda", FuelType: FuelBenzin91, Department: "Admin Section", Active: true},
	}
}
