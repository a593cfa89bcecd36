package model

import "time"

// Fuel type constants
const (
	FuelDiesel   = "diesel"
	FuelBenzin95 = "benzin95"
	FuelBenzin91 = "benzin91"
)

// FuelTypes lists the fixed set of inventory buckets in display order.
var FuelTypes = []string{FuelDiesel, FuelBenzin95, FuelBenzin91}

// ValidFuelType reports whether t names a known bucket.
func ValidFuelType(t string) bool {
	return t == FuelDiesel || t == FuelBenzin95 || t == FuelBenzin91
}

// FuelLevel is one inventory bucket. Capacity is advisory: receiving may
// exceed it, only low-fuel alerting reads it. Current must never go negative.
type FuelLevel struct {
	Current  float64 `json:"current"`
	Capacity float64 `json:"capacity"`
	Unit     string  `json:"unit"`
}

// Inventory maps fuel type to its bucket.
type Inventory map[string]FuelLevel

// DefaultInventory returns the levels seeded into an empty store.
func DefaultInventory() Inventory {
	return Inventory{
		FuelDiesel:   {Current: 5000, Capacity: 10000, Unit: "liters"},
		FuelBenzin95: {Current: 2000, Capacity: 5000, Unit: "liters"},
		FuelBenzin91: {Current: 1500, Capacity: 5000, Unit: "liters"},
	}
}

// Snapshot is the full-collection export/import envelope. Ledger order is
// preserved across a round-trip.
type Snapshot struct {
	Users        []User        `json:"users"`
	Vehicles     []Vehicle     `json:"vehicles,omitempty"`
	Requests     []FuelRequest `json:"requests"`
	Transactions []Transaction `json:"transactions"`
	Inventory    Inventory     `json:"inventory"`
	ExportedAt   time.Time     `json:"exportedAt"`
}
