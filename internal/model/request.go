package model

import "time"

// FuelRequest status constants. Transitions are one-directional: a request
// never regresses out of a terminal status. The dispensing path moves
// pending -> completed directly; "approved" remains a legal stored value.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// FuelRequest is a requisition for fuel. Requester name and vehicle plate are
// snapshots captured at submission so the record stays stable if the source
// entities later change.
type FuelRequest struct {
	ID            string     `json:"id"`
	RequesterID   string     `json:"requesterId"`
	RequesterName string     `json:"requesterName"`
	VehiclePlate  string     `json:"vehiclePlate"`
	FuelType      string     `json:"fuelType"`
	Liters        float64    `json:"liters"`
	Status        string     `json:"status"`
	RequestDate   time.Time  `json:"requestDate"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
	ApprovedDate  *time.Time `json:"approvedDate,omitempty"`
	ActualLiters  float64    `json:"actualLiters,omitempty"`
}

// Terminal reports whether the request reached a final status.
func (r FuelRequest) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusRejected
}
