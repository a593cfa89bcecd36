package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/repository"

	"github.com/shopspring/decimal"
)

// SummaryStats is the dashboard aggregate.
type SummaryStats struct {
	TotalRequests   int             `json:"totalRequests"`
	PendingRequests int             `json:"pendingRequests"`
	CompletedToday  int             `json:"completedToday"`
	Inventory       model.Inventory `json:"inventory"`
}

// FuelTotals is the per-fuel movement sum of a month. Sums are computed with
// decimal arithmetic so ledger totals do not drift.
type FuelTotals struct {
	FuelType  string          `json:"fuelType"`
	Dispensed decimal.Decimal `json:"dispensed"`
	Received  decimal.Decimal `json:"received"`
}

// MonthlyReport is the month-scoped ledger slice plus totals.
type MonthlyReport struct {
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	Transactions []model.Transaction `json:"transactions"`
	Totals       []FuelTotals        `json:"totals"`
}

// ReportService derives read-only aggregates from the ledger and collections,
// and owns the full-snapshot export/import round-trip.
type ReportService interface {
	MonthlyTransactions(ctx context.Context, year int, month time.Month) []model.Transaction
	MonthlyReport(ctx context.Context, year int, month time.Month) MonthlyReport
	Summary(ctx context.Context) SummaryStats
	TransactionsCSV(ctx context.Context, year int, month time.Month) ([]byte, error)
	ExportAll(ctx context.Context) model.Snapshot
	ImportAll(ctx context.Context, snapshot model.Snapshot) error
}

type reportService struct {
	users     repository.UserRepository
	vehicles  repository.VehicleRepository
	requests  repository.RequestRepository
	txs       repository.TransactionRepository
	inventory repository.InventoryRepository
}

// NewReportService returns a ReportService over the given repositories.
func NewReportService(
	users repository.UserRepository,
	vehicles repository.VehicleRepository,
	requests repository.RequestRepository,
	txs repository.TransactionRepository,
	inventory repository.InventoryRepository,
) ReportService {
	return &reportService{users: users, vehicles: vehicles, requests: requests, txs: txs, inventory: inventory}
}

// MonthlyTransactions filters the ledger by calendar year and month of the
// transaction timestamp, local time. Not a rolling window.
func (s *reportService) MonthlyTransactions(ctx context.Context, year int, month time.Month) []model.Transaction {
	var out []model.Transaction
	for _, tx := range s.txs.GetAll(ctx) {
		d := tx.TransactionDate.Local()
		if d.Year() == year && d.Month() == month {
			out = append(out, tx)
		}
	}
	return out
}

func (s *reportService) MonthlyReport(ctx context.Context, year int, month time.Month) MonthlyReport {
	txs := s.MonthlyTransactions(ctx, year, month)

	dispensed := make(map[string]decimal.Decimal)
	received := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		liters := decimal.NewFromFloat(tx.Liters)
		switch tx.Type {
		case model.TxDispense:
			dispensed[tx.FuelType] = dispensed[tx.FuelType].Add(liters)
		case model.TxReceive:
			received[tx.FuelType] = received[tx.FuelType].Add(liters)
		}
	}

	totals := make([]FuelTotals, 0, len(model.FuelTypes))
	for _, ft := range model.FuelTypes {
		totals = append(totals, FuelTotals{
			FuelType:  ft,
			Dispensed: dispensed[ft],
			Received:  received[ft],
		})
	}

	return MonthlyReport{
		Year:         year,
		Month:        int(month),
		Transactions: txs,
		Totals:       totals,
	}
}

// Summary counts requests and snapshots the inventory. "Completed today"
// compares the approval date's calendar day to the current one, local time.
func (s *reportService) Summary(ctx context.Context) SummaryStats {
	requests := s.requests.GetAll(ctx)
	now := time.Now()

	stats := SummaryStats{
		TotalRequests: len(requests),
		Inventory:     s.inventory.Get(ctx),
	}
	for _, r := range requests {
		if r.Status == model.StatusPending {
			stats.PendingRequests++
		}
		if r.Status == model.StatusCompleted && r.ApprovedDate != nil {
			ay, am, ad := r.ApprovedDate.Local().Date()
			ny, nm, nd := now.Date()
			if ay == ny && am == nm && ad == nd {
				stats.CompletedToday++
			}
		}
	}
	return stats
}

// TransactionsCSV renders the month's ledger slice as CSV with a BOM so
// spreadsheet tools pick up the encoding.
func (s *reportService) TransactionsCSV(ctx context.Context, year int, month time.Month) ([]byte, error) {
	txs := s.MonthlyTransactions(ctx, year, month)

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "date", "type", "fuelType", "liters", "vehiclePlate", "requesterName", "officerId", "requestId", "note"}); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		rec := []string{
			tx.ID,
			tx.TransactionDate.Local().Format("2006-01-02 15:04"),
			tx.Type,
			model.FuelTypeName(tx.FuelType),
			strconv.FormatFloat(tx.Liters, 'f', -1, 64),
			tx.VehiclePlate,
			tx.RequesterName,
			tx.OfficerID,
			tx.RequestID,
			tx.Note,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportAll collects every collection into one snapshot, ledger order intact.
func (s *reportService) ExportAll(ctx context.Context) model.Snapshot {
	return model.Snapshot{
		Users:        s.users.GetAll(ctx),
		Vehicles:     s.vehicles.GetAll(ctx),
		Requests:     s.requests.GetAll(ctx),
		Transactions: s.txs.GetAll(ctx),
		Inventory:    s.inventory.Get(ctx),
		ExportedAt:   time.Now(),
	}
}

// ImportAll replaces collections present in the snapshot. Absent collections
// are left untouched. Each collection is one independent write; there is no
// cross-key atomicity.
func (s *reportService) ImportAll(ctx context.Context, snapshot model.Snapshot) error {
	if snapshot.Users != nil {
		if !s.users.ReplaceAll(ctx, snapshot.Users) {
			return fmt.Errorf("import users: %w", ErrStorageFailure)
		}
	}
	if snapshot.Vehicles != nil {
		if !s.vehicles.ReplaceAll(ctx, snapshot.Vehicles) {
			return fmt.Errorf("import vehicles: %w", ErrStorageFailure)
		}
	}
	if snapshot.Requests != nil {
		if !s.requests.ReplaceAll(ctx, snapshot.Requests) {
			return fmt.Errorf("import requests: %w", ErrStorageFailure)
		}
	}
	if snapshot.Transactions != nil {
		if !s.txs.ReplaceAll(ctx, snapshot.Transactions) {
			return fmt.Errorf("import transactions: %w", ErrStorageFailure)
		}
	}
	if snapshot.Inventory != nil {
		if !s.inventory.Replace(ctx, snapshot.Inventory) {
			return fmt.Errorf("import inventory: %w", ErrStorageFailure)
		}
	}
	return nil
}
