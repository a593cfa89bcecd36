package repository

import (
	"context"
	"strings"
	"testing"

	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

func TestRequestRepoNewestFirst(t *testing.T) {
	repo := NewRequestRepository(storage.NewMemStore())
	ctx := context.Background()

	first, _ := repo.Add(ctx, model.FuelRequest{RequesterID: "U003", FuelType: model.FuelDiesel, Liters: 10})
	second, _ := repo.Add(ctx, model.FuelRequest{RequesterID: "U003", FuelType: model.FuelDiesel, Liters: 20})
	third, _ := repo.Add(ctx, model.FuelRequest{RequesterID: "U001", FuelType: model.FuelBenzin95, Liters: 30})

	all := repo.GetAll(ctx)
	if len(all) != 3 {
		t.Fatalf("len = %d", len(all))
	}
	if all[0].ID != third.ID || all[2].ID != first.ID {
		t.Errorf("order wrong: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}

	mine := repo.GetByRequester(ctx, "U003")
	if len(mine) != 2 || mine[0].ID != second.ID {
		t.Errorf("requester scope wrong: %+v", mine)
	}
}

func TestRequestRepoAddDefaults(t *testing.T) {
	repo := NewRequestRepository(storage.NewMemStore())
	req, ok := repo.Add(context.Background(), model.FuelRequest{RequesterID: "U003", FuelType: model.FuelDiesel, Liters: 10})
	if !ok {
		t.Fatal("add refused")
	}
	if !strings.HasPrefix(req.ID, "REQ-") {
		t.Errorf("id = %q", req.ID)
	}
	if req.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", req.Status)
	}
	if req.RequestDate.IsZero() {
		t.Error("request date zero")
	}
}

func TestRequestRepoUpdateMiss(t *testing.T) {
	repo := NewRequestRepository(storage.NewMemStore())
	ctx := context.Background()
	repo.Add(ctx, model.FuelRequest{RequesterID: "U003", FuelType: model.FuelDiesel, Liters: 10})

	if repo.Update(ctx, "REQ-NOPE", func(r *model.FuelRequest) { r.Status = model.StatusCompleted }) {
		t.Error("update of missing id reported success")
	}
	for _, r := range repo.GetAll(ctx) {
		if r.Status != model.StatusPending {
			t.Errorf("unrelated record modified: %+v", r)
		}
	}
}

func TestTransactionRepoNewestFirst(t *testing.T) {
	repo := NewTransactionRepository(storage.NewMemStore())
	ctx := context.Background()

	repo.Add(ctx, model.Transaction{FuelType: model.FuelDiesel, Liters: 10, Type: model.TxReceive, OfficerID: "U002"})
	latest, _ := repo.Add(ctx, model.Transaction{FuelType: model.FuelDiesel, Liters: 20, Type: model.TxDispense, OfficerID: "U002"})

	all := repo.GetAll(ctx)
	if len(all) != 2 || all[0].ID != latest.ID {
		t.Errorf("newest entry not first: %+v", all)
	}
	if !strings.HasPrefix(latest.ID, "TXN-") {
		t.Errorf("id = %q", latest.ID)
	}
	if latest.TransactionDate.IsZero() {
		t.Error("transaction date zero")
	}
}

func TestInventoryRepoDefaultsAndClamp(t *testing.T) {
	repo := NewInventoryRepository(storage.NewMemStore())
	ctx := context.Background()

	inv := repo.Get(ctx)
	if inv[model.FuelDiesel].Current != 5000 || inv[model.FuelBenzin91].Capacity != 5000 {
		t.Errorf("defaults wrong: %+v", inv)
	}

	if !repo.Adjust(ctx, model.FuelDiesel, -99999) {
		t.Fatal("adjust refused")
	}
	if got := repo.Get(ctx)[model.FuelDiesel].Current; got != 0 {
		t.Errorf("level after over-draw = %v, want clamp to 0", got)
	}

	repo.Adjust(ctx, model.FuelDiesel, 250)
	if got := repo.Get(ctx)[model.FuelDiesel].Current; got != 250 {
		t.Errorf("level = %v, want 250", got)
	}

	if repo.Adjust(ctx, "kerosene", 10) {
		t.Error("adjust of unknown fuel type reported success")
	}
}

func TestVehicleRepoOptions(t *testing.T) {
	store := storage.NewMemStore()
	repo := NewVehicleRepository(store)
	ctx := context.Background()

	vehicles := model.DefaultVehicles()
	vehicles[1].Active = false // HQ 5678, diesel
	repo.ReplaceAll(ctx, vehicles)

	opts := Options(ctx, repo, model.FuelDiesel)
	if len(opts) != 1 {
		t.Fatalf("options = %+v, want only the active diesel vehicle", opts)
	}
	if opts[0].Value != "HQ 1234" {
		t.Errorf("value = %q", opts[0].Value)
	}
	if !strings.Contains(opts[0].Label, "HQ 1234") {
		t.Errorf("label = %q", opts[0].Label)
	}
}

func TestEnsureSeedDataIdempotent(t *testing.T) {
	store := storage.NewMemStore()
	ctx := context.Background()

	EnsureSeedData(ctx, store)
	users := NewUserRepository(store)
	if got := len(users.GetAll(ctx)); got != 3 {
		t.Fatalf("seeded users = %d, want 3", got)
	}

	users.Update(ctx, "U001", func(u *model.User) { u.Name = "Renamed" })
	EnsureSeedData(ctx, store)

	after := users.GetAll(ctx)
	if len(after) != 3 {
		t.Errorf("re-seed changed user count: %d", len(after))
	}
	u, _ := users.GetByID(ctx, "U001")
	if u.Name != "Renamed" {
		t.Error("re-seed overwrote existing data")
	}
}
