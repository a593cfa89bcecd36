// Package notify formats chat notifications and hands them to the sheet
// relay for dispatch. Every send is best-effort; failures are logged and
// reported, never propagated as faults.
package notify

import (
	"context"
	"fmt"
	"log"
	"math"

	"fueldepot/internal/model"
	"fueldepot/internal/sheets"
)

// Notifier sends formatted Telegram messages through the relay.
type Notifier struct {
	relay *sheets.Client
}

// New returns a Notifier over the given relay client.
func New(relay *sheets.Client) *Notifier {
	return &Notifier{relay: relay}
}

func (n *Notifier) send(ctx context.Context, message string) {
	if err := n.relay.SendTelegram(ctx, message); err != nil {
		if err != sheets.ErrNotConfigured {
			log.Printf("notify: send failed: %v", err)
		}
	}
}

// NewRequest announces a freshly submitted fuel request.
func (n *Notifier) NewRequest(ctx context.Context, req model.FuelRequest) {
	n.send(ctx, fmt.Sprintf(
		"🛢️ *New fuel request*\n\n📋 ID: `%s`\n👤 Requester: %s\n⛽ Type: %s\n📊 Amount: %.0f liters\n🚗 Plate: %s",
		req.ID, req.RequesterName, model.FuelTypeName(req.FuelType), req.Liters, req.VehiclePlate))
}

// Approved announces a completed dispense with the actual liters paid out.
func (n *Notifier) Approved(ctx context.Context, req model.FuelRequest, actualLiters float64) {
	n.send(ctx, fmt.Sprintf(
		"✅ *Fuel request approved*\n\n📋 ID: `%s`\n👤 Requester: %s\n⛽ Type: %s\n📊 Dispensed: %.0f liters\n🚗 Plate: %s",
		req.ID, req.RequesterName, model.FuelTypeName(req.FuelType), actualLiters, req.VehiclePlate))
}

// LowFuel warns that a bucket dropped to or below the alert threshold.
func (n *Notifier) LowFuel(ctx context.Context, fuelType string, current, capacity float64) {
	percent := 0
	if capacity > 0 {
		percent = int(math.Round(current / capacity * 100))
	}
	n.send(ctx, fmt.Sprintf(
		"⚠️ *Low fuel warning!*\n\n⛽ %s\n📊 Remaining: %.0f liters (%d%%)\n🔴 Please restock soon",
		model.FuelTypeName(fuelType), current, percent))
}

// FuelReceived announces stock added to inventory.
func (n *Notifier) FuelReceived(ctx context.Context, fuelType string, liters float64, note string) {
	if note == "" {
		note = "-"
	}
	n.send(ctx, fmt.Sprintf(
		"📥 *Fuel received*\n\n⛽ %s\n📊 Amount: %.0f liters\n📝 %s",
		model.FuelTypeName(fuelType), liters, note))
}
