package model

import "time"

// Transaction type constants
const (
	TxDispense = "dispense"
	TxReceive  = "receive"
)

// Transaction is one ledger entry. The ledger is append-only and is the sole
// audit trail of inventory movement; entries are never mutated post-creation.
// RequestID is empty for direct stock receipts.
type Transaction struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"requestId,omitempty"`
	FuelType        string    `json:"fuelType"`
	Liters          float64   `json:"liters"`
	VehiclePlate    string    `json:"vehiclePlate,omitempty"`
	RequesterID     string    `json:"requesterId,omitempty"`
	RequesterName   string    `json:"requesterName,omitempty"`
	OfficerID       string    `json:"officerId"`
	Type            string    `json:"type"`
	Note            string    `json:"note,omitempty"`
	TransactionDate time.Time `json:"transactionDate"`
}
