// Package autosync periodically mirrors the full data snapshot to the sheet
// relay and raises low-fuel alerts. Everything here is best-effort; a missed
// tick or failed push is logged and retried on the next interval only.
package autosync

import (
	"context"
	"log"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/notify"
	"fueldepot/internal/repository"
	"fueldepot/internal/service"
	"fueldepot/internal/sheets"
	"fueldepot/internal/storage"
)

const (
	// DefaultInterval between snapshot pushes.
	DefaultInterval = 5 * time.Minute
	// LowFuelThreshold is the fraction of capacity at or below which a
	// bucket is considered low.
	LowFuelThreshold = 0.2
)

// Runner drives the periodic sync loop.
type Runner struct {
	relay     *sheets.Client
	notifier  *notify.Notifier
	reports   service.ReportService
	inventory repository.InventoryRepository
	store     storage.Store
	interval  time.Duration
}

// New returns a Runner with the default interval.
func New(
	relay *sheets.Client,
	notifier *notify.Notifier,
	reports service.ReportService,
	inventory repository.InventoryRepository,
	store storage.Store,
) *Runner {
	return &Runner{
		relay:     relay,
		notifier:  notifier,
		reports:   reports,
		inventory: inventory,
		store:     store,
		interval:  DefaultInterval,
	}
}

// Run blocks until ctx is cancelled, ticking at the configured interval. An
// initial low-fuel check runs shortly after start.
func (r *Runner) Run(ctx context.Context) {
	log.Printf("autosync: started (every %s)", r.interval)

	startup := time.NewTimer(2 * time.Second)
	defer startup.Stop()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("autosync: stopped")
			return
		case <-startup.C:
			r.CheckLowFuel(ctx)
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick performs one sync pass: snapshot push when configured, then the
// low-fuel check.
func (r *Runner) Tick(ctx context.Context) {
	if r.relay.Config().SheetConfigured() {
		if err := r.relay.SyncAll(ctx, r.reports.ExportAll(ctx)); err != nil {
			log.Printf("autosync: snapshot push failed: %v", err)
		}
	}
	r.CheckLowFuel(ctx)
}

// CheckLowFuel alerts at most once per calendar day per fuel type. The dedupe
// state is a small fuelType -> day-string document in the store.
func (r *Runner) CheckLowFuel(ctx context.Context) {
	inv := r.inventory.Get(ctx)

	alerted := map[string]string{}
	storage.ReadJSON(ctx, r.store, storage.KeyLowAlerted, &alerted)
	today := time.Now().Format("2006-01-02")
	changed := false

	for _, fuelType := range model.FuelTypes {
		level, ok := inv[fuelType]
		if !ok || level.Capacity <= 0 {
			continue
		}
		if level.Current/level.Capacity > LowFuelThreshold {
			continue
		}
		if alerted[fuelType] == today {
			continue
		}

		log.Printf("autosync: low fuel: %s at %.0f/%.0f", fuelType, level.Current, level.Capacity)
		r.notifier.LowFuel(ctx, fuelType, level.Current, level.Capacity)
		alerted[fuelType] = today
		changed = true
	}

	if changed {
		r.store.Write(ctx, storage.KeyLowAlerted, alerted)
	}
}
