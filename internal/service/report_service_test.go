package service

import (
	"bytes"
	"context"
	"reflect"
	"testing"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/repository"
	"fueldepot/internal/storage"

	"github.com/shopspring/decimal"
)

type reportFixture struct {
	svc       ReportService
	store     *storage.MemStore
	users     repository.UserRepository
	vehicles  repository.VehicleRepository
	requests  repository.RequestRepository
	txs       repository.TransactionRepository
	inventory repository.InventoryRepository
}

func newReportFixture() reportFixture {
	store := storage.NewMemStore()
	f := reportFixture{
		store:     store,
		users:     repository.NewUserRepository(store),
		vehicles:  repository.NewVehicleRepository(store),
		requests:  repository.NewRequestRepository(store),
		txs:       repository.NewTransactionRepository(store),
		inventory: repository.NewInventoryRepository(store),
	}
	f.svc = NewReportService(f.users, f.vehicles, f.requests, f.txs, f.inventory)
	return f
}

func TestSummary(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	f.requests.ReplaceAll(ctx, []model.FuelRequest{
		{ID: "REQ-1", FuelType: model.FuelDiesel, Liters: 100, Status: model.StatusPending, RequestDate: now},
		{ID: "REQ-2", FuelType: model.FuelDiesel, Liters: 50, Status: model.StatusPending, RequestDate: now},
		{ID: "REQ-3", FuelType: model.FuelBenzin95, Liters: 30, Status: model.StatusCompleted, RequestDate: now, ApprovedDate: &now},
		{ID: "REQ-4", FuelType: model.FuelBenzin95, Liters: 30, Status: model.StatusCompleted, RequestDate: yesterday, ApprovedDate: &yesterday},
		{ID: "REQ-5", FuelType: model.FuelDiesel, Liters: 10, Status: model.StatusRejected, RequestDate: now},
	})

	stats := f.svc.Summary(ctx)
	if stats.TotalRequests != 5 {
		t.Errorf("totalRequests = %d, want 5", stats.TotalRequests)
	}
	if stats.PendingRequests != 2 {
		t.Errorf("pendingRequests = %d, want 2", stats.PendingRequests)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("completedToday = %d, want 1", stats.CompletedToday)
	}
	if got := stats.Inventory[model.FuelDiesel].Current; got != 5000 {
		t.Errorf("inventory snapshot diesel = %v, want seeded 5000", got)
	}
}

func TestMonthlyTransactionsCalendarFilter(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	march := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)
	f.txs.ReplaceAll(ctx, []model.Transaction{
		{ID: "TXN-1", FuelType: model.FuelDiesel, Liters: 10, Type: model.TxDispense, TransactionDate: march},
		{ID: "TXN-2", FuelType: model.FuelDiesel, Liters: 20, Type: model.TxDispense, TransactionDate: march.AddDate(0, 0, 13)},
		{ID: "TXN-3", FuelType: model.FuelDiesel, Liters: 30, Type: model.TxDispense, TransactionDate: march.AddDate(0, 1, 0)},
		{ID: "TXN-4", FuelType: model.FuelDiesel, Liters: 40, Type: model.TxDispense, TransactionDate: march.AddDate(-1, 0, 0)},
	})

	got := f.svc.MonthlyTransactions(ctx, 2026, time.March)
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].ID != "TXN-1" || got[1].ID != "TXN-2" {
		t.Errorf("wrong slice: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestMonthlyReportTotals(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	day := time.Date(2026, time.July, 3, 9, 0, 0, 0, time.Local)
	// Three 0.1 dispenses must sum to exactly 0.3.
	f.txs.ReplaceAll(ctx, []model.Transaction{
		{ID: "TXN-1", FuelType: model.FuelDiesel, Liters: 0.1, Type: model.TxDispense, TransactionDate: day},
		{ID: "TXN-2", FuelType: model.FuelDiesel, Liters: 0.1, Type: model.TxDispense, TransactionDate: day},
		{ID: "TXN-3", FuelType: model.FuelDiesel, Liters: 0.1, Type: model.TxDispense, TransactionDate: day},
		{ID: "TXN-4", FuelType: model.FuelDiesel, Liters: 100, Type: model.TxReceive, TransactionDate: day},
		{ID: "TXN-5", FuelType: model.FuelBenzin91, Liters: 25, Type: model.TxDispense, TransactionDate: day},
	})

	report := f.svc.MonthlyReport(ctx, 2026, time.July)
	if report.Year != 2026 || report.Month != 7 {
		t.Errorf("report period %d-%d", report.Year, report.Month)
	}
	if len(report.Totals) != len(model.FuelTypes) {
		t.Fatalf("totals rows = %d, want %d", len(report.Totals), len(model.FuelTypes))
	}

	byFuel := map[string]FuelTotals{}
	for _, row := range report.Totals {
		byFuel[row.FuelType] = row
	}
	if !byFuel[model.FuelDiesel].Dispensed.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("diesel dispensed = %s, want 0.3", byFuel[model.FuelDiesel].Dispensed)
	}
	if !byFuel[model.FuelDiesel].Received.Equal(decimal.NewFromInt(100)) {
		t.Errorf("diesel received = %s, want 100", byFuel[model.FuelDiesel].Received)
	}
	if !byFuel[model.FuelBenzin91].Dispensed.Equal(decimal.NewFromInt(25)) {
		t.Errorf("benzin91 dispensed = %s, want 25", byFuel[model.FuelBenzin91].Dispensed)
	}
	if !byFuel[model.FuelBenzin95].Dispensed.IsZero() {
		t.Errorf("benzin95 dispensed = %s, want 0", byFuel[model.FuelBenzin95].Dispensed)
	}
}

func TestTransactionsCSV(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	day := time.Date(2026, time.May, 20, 14, 30, 0, 0, time.Local)
	f.txs.ReplaceAll(ctx, []model.Transaction{
		{ID: "TXN-1", FuelType: model.FuelDiesel, Liters: 12.5, Type: model.TxDispense, VehiclePlate: "34-5678", RequesterName: "Requester 1", OfficerID: "U002", RequestID: "REQ-1", TransactionDate: day},
	})

	out, err := f.svc.TransactionsCSV(ctx, 2026, time.May)
	if err != nil {
		t.Fatalf("TransactionsCSV: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\uFEFF")) {
		t.Error("missing BOM")
	}
	lines := bytes.Split(bytes.TrimRight(out, "\n"), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row", len(lines))
	}
	if !bytes.Contains(lines[1], []byte("12.5")) || !bytes.Contains(lines[1], []byte("34-5678")) {
		t.Errorf("row missing fields: %s", lines[1])
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newReportFixture()
	ctx := context.Background()
	repository.EnsureSeedData(ctx, src.store)

	src.requests.Add(ctx, model.FuelRequest{RequesterID: "U003", RequesterName: "Requester 1", VehiclePlate: "34-5678", FuelType: model.FuelDiesel, Liters: 120})
	src.txs.Add(ctx, model.Transaction{FuelType: model.FuelDiesel, Liters: 120, OfficerID: "U002", Type: model.TxDispense})
	src.txs.Add(ctx, model.Transaction{FuelType: model.FuelBenzin95, Liters: 500, OfficerID: "U002", Type: model.TxReceive})

	snapshot := src.svc.ExportAll(ctx)
	if snapshot.ExportedAt.IsZero() {
		t.Error("exportedAt not set")
	}

	dst := newReportFixture()
	if err := dst.svc.ImportAll(ctx, snapshot); err != nil {
		t.Fatalf("ImportAll: %v", err)
	}

	if !reflect.DeepEqual(dst.requests.GetAll(ctx), src.requests.GetAll(ctx)) {
		t.Error("requests differ after round-trip")
	}
	if !reflect.DeepEqual(dst.txs.GetAll(ctx), src.txs.GetAll(ctx)) {
		t.Error("ledger differs after round-trip")
	}
	if !reflect.DeepEqual(dst.inventory.Get(ctx), src.inventory.Get(ctx)) {
		t.Error("inventory differs after round-trip")
	}

	// Ledger order must survive: newest entry first.
	ledger := dst.txs.GetAll(ctx)
	if len(ledger) != 2 || ledger[0].Type != model.TxReceive {
		t.Errorf("ledger order lost: %+v", ledger)
	}
}

func TestImportAllSkipsAbsentCollections(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	f.requests.Add(ctx, model.FuelRequest{RequesterID: "U003", RequesterName: "R", VehiclePlate: "P", FuelType: model.FuelDiesel, Liters: 10})

	err := f.svc.ImportAll(ctx, model.Snapshot{
		Inventory: model.Inventory{model.FuelDiesel: {Current: 42, Capacity: 10000, Unit: "liters"}},
	})
	if err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	if got := len(f.requests.GetAll(ctx)); got != 1 {
		t.Errorf("absent requests collection was replaced, len = %d", got)
	}
	if got := f.inventory.Get(ctx)[model.FuelDiesel].Current; got != 42 {
		t.Errorf("inventory not imported: %v", got)
	}
}
