package service

import (
	"context"
	"fmt"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/notify"
	"fueldepot/internal/repository"
	"fueldepot/internal/sheets"
	ws "fueldepot/internal/websocket"
)

// DTOs
type SubmitRequestInput struct {
	RequesterID   string  `json:"requesterId" binding:"required"`
	RequesterName string  `json:"requesterName" binding:"required"`
	VehiclePlate  string  `json:"vehiclePlate" binding:"required"`
	FuelType      string  `json:"fuelType" binding:"required,oneof=diesel benzin95 benzin91"`
	Liters        float64 `json:"liters" binding:"required,gt=0"`
}

type ReceiveStockInput struct {
	FuelType string  `json:"fuelType" binding:"required,oneof=diesel benzin95 benzin91"`
	Liters   float64 `json:"liters" binding:"required,gt=0"`
	Note     string  `json:"note"`
}

// WorkflowService is the requisition workflow engine: it owns every
// controlled mutation of requests, the ledger and inventory levels.
//
// The create -> approve/dispense -> ledger-record sequence is a chain of
// independent storage writes with no cross-key transaction; a crash between
// steps leaves inconsistent state. Accepted for the single-operator
// deployment model; a multi-client deployment needs explicit serialization
// as a deliberate redesign, not a patch here.
type WorkflowService interface {
	SubmitRequest(ctx context.Context, in SubmitRequestInput) (model.FuelRequest, error)
	ProcessRequest(ctx context.Context, requestID, officerID string, actualLiters float64) (model.FuelRequest, error)
	RejectRequest(ctx context.Context, requestID, officerID string) (model.FuelRequest, error)
	ReceiveStock(ctx context.Context, in ReceiveStockInput, officerID string) (model.Transaction, error)
	SetInventory(ctx context.Context, fuelType string, liters float64, actorRole string) (model.Inventory, error)
	Inventory(ctx context.Context) model.Inventory
}

type workflowService struct {
	requests  repository.RequestRepository
	txs       repository.TransactionRepository
	inventory repository.InventoryRepository
	relay     *sheets.Client
	notifier  *notify.Notifier
	hub       *ws.Hub
}

// NewWorkflowService wires the engine. relay, notifier and hub may be nil in
// tests; all side effects through them are best-effort.
func NewWorkflowService(
	requests repository.RequestRepository,
	txs repository.TransactionRepository,
	inventory repository.InventoryRepository,
	relay *sheets.Client,
	notifier *notify.Notifier,
	hub *ws.Hub,
) WorkflowService {
	return &workflowService{
		requests:  requests,
		txs:       txs,
		inventory: inventory,
		relay:     relay,
		notifier:  notifier,
		hub:       hub,
	}
}

// sideEffect runs fn detached from the request lifecycle with its own
// bounded context. Outbound mirroring and notifications must never delay or
// fail the local write that already happened.
func (s *workflowService) sideEffect(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		fn(ctx)
	}()
}

func (s *workflowService) publish(event string, data any) {
	if s.hub != nil {
		s.hub.Publish(ws.Event{Event: event, Data: data})
	}
}

// SubmitRequest records a pending request. There is no stock check at
// submission time; sufficiency is decided when an officer dispenses.
func (s *workflowService) SubmitRequest(ctx context.Context, in SubmitRequestInput) (model.FuelRequest, error) {
	if !model.ValidFuelType(in.FuelType) {
		return model.FuelRequest{}, fmt.Errorf("unknown fuel type %q", in.FuelType)
	}
	if in.Liters <= 0 {
		return model.FuelRequest{}, fmt.Errorf("liters must be positive")
	}

	req, ok := s.requests.Add(ctx, model.FuelRequest{
		RequesterID:   in.RequesterID,
		RequesterName: in.RequesterName,
		VehiclePlate:  in.VehiclePlate,
		FuelType:      in.FuelType,
		Liters:        in.Liters,
	})
	if !ok {
		return model.FuelRequest{}, fmt.Errorf("save request: %w", ErrStorageFailure)
	}

	s.publish(ws.EventRequestCreated, req)
	if s.relay != nil {
		s.sideEffect(func(ctx context.Context) { _ = s.relay.PushRequest(ctx, req) })
	}
	if s.notifier != nil {
		s.sideEffect(func(ctx context.Context) { s.notifier.NewRequest(ctx, req) })
	}
	return req, nil
}

// ProcessRequest approves and dispenses in one move: the request goes
// pending -> completed, inventory is decremented and a dispense ledger entry
// is appended. actualLiters may differ from the requested amount.
func (s *workflowService) ProcessRequest(ctx context.Context, requestID, officerID string, actualLiters float64) (model.FuelRequest, error) {
	req, found := s.requests.GetByID(ctx, requestID)
	if !found {
		return model.FuelRequest{}, fmt.Errorf("request %s: %w", requestID, ErrNotFound)
	}
	if req.Terminal() {
		return model.FuelRequest{}, fmt.Errorf("request %s is already %s", requestID, req.Status)
	}
	if actualLiters <= 0 {
		return model.FuelRequest{}, fmt.Errorf("actual liters must be positive")
	}

	inv := s.inventory.Get(ctx)
	level, ok := inv[req.FuelType]
	if !ok {
		return model.FuelRequest{}, fmt.Errorf("unknown fuel type %q", req.FuelType)
	}
	if level.Current < actualLiters {
		return model.FuelRequest{}, fmt.Errorf("%s: %w", req.FuelType, ErrInsufficientStock)
	}

	now := time.Now()
	if !s.requests.Update(ctx, requestID, func(r *model.FuelRequest) {
		r.Status = model.StatusCompleted
		r.ApprovedBy = officerID
		r.ApprovedDate = &now
		r.ActualLiters = actualLiters
	}) {
		return model.FuelRequest{}, fmt.Errorf("update request: %w", ErrStorageFailure)
	}

	// Clamped at zero inside Adjust; unreachable after the check above.
	if !s.inventory.Adjust(ctx, req.FuelType, -actualLiters) {
		return model.FuelRequest{}, fmt.Errorf("adjust inventory: %w", ErrStorageFailure)
	}

	tx, ok := s.txs.Add(ctx, model.Transaction{
		RequestID:     requestID,
		FuelType:      req.FuelType,
		Liters:        actualLiters,
		VehiclePlate:  req.VehiclePlate,
		RequesterID:   req.RequesterID,
		RequesterName: req.RequesterName,
		OfficerID:     officerID,
		Type:          model.TxDispense,
	})
	if !ok {
		return model.FuelRequest{}, fmt.Errorf("record transaction: %w", ErrStorageFailure)
	}

	processed, _ := s.requests.GetByID(ctx, requestID)
	s.publish(ws.EventRequestCompleted, processed)
	s.publish(ws.EventInventoryChanged, s.inventory.Get(ctx))
	if s.relay != nil {
		s.sideEffect(func(ctx context.Context) { _ = s.relay.PushTransaction(ctx, tx) })
	}
	if s.notifier != nil {
		s.sideEffect(func(ctx context.Context) { s.notifier.Approved(ctx, processed, actualLiters) })
	}
	return processed, nil
}

// RejectRequest moves a pending request to rejected. Terminal statuses never
// regress.
func (s *workflowService) RejectRequest(ctx context.Context, requestID, officerID string) (model.FuelRequest, error) {
	req, found := s.requests.GetByID(ctx, requestID)
	if !found {
		return model.FuelRequest{}, fmt.Errorf("request %s: %w", requestID, ErrNotFound)
	}
	if req.Terminal() {
		return model.FuelRequest{}, fmt.Errorf("request %s is already %s", requestID, req.Status)
	}

	now := time.Now()
	if !s.requests.Update(ctx, requestID, func(r *model.FuelRequest) {
		r.Status = model.StatusRejected
		r.ApprovedBy = officerID
		r.ApprovedDate = &now
	}) {
		return model.FuelRequest{}, fmt.Errorf("update request: %w", ErrStorageFailure)
	}

	rejected, _ := s.requests.GetByID(ctx, requestID)
	s.publish(ws.EventRequestRejected, rejected)
	return rejected, nil
}

// ReceiveStock adds externally sourced fuel and appends a receive ledger
// entry. Capacity is not enforced; the level may exceed it.
func (s *workflowService) ReceiveStock(ctx context.Context, in ReceiveStockInput, officerID string) (model.Transaction, error) {
	if !model.ValidFuelType(in.FuelType) {
		return model.Transaction{}, fmt.Errorf("unknown fuel type %q", in.FuelType)
	}
	if in.Liters <= 0 {
		return model.Transaction{}, fmt.Errorf("liters must be positive")
	}

	if !s.inventory.Adjust(ctx, in.FuelType, in.Liters) {
		return model.Transaction{}, fmt.Errorf("adjust inventory: %w", ErrStorageFailure)
	}

	tx, ok := s.txs.Add(ctx, model.Transaction{
		FuelType:  in.FuelType,
		Liters:    in.Liters,
		OfficerID: officerID,
		Type:      model.TxReceive,
		Note:      in.Note,
	})
	if !ok {
		return model.Transaction{}, fmt.Errorf("record transaction: %w", ErrStorageFailure)
	}

	s.publish(ws.EventInventoryChanged, s.inventory.Get(ctx))
	if s.relay != nil {
		s.sideEffect(func(ctx context.Context) { _ = s.relay.PushTransaction(ctx, tx) })
	}
	if s.notifier != nil {
		s.sideEffect(func(ctx context.Context) { s.notifier.FuelReceived(ctx, in.FuelType, in.Liters, in.Note) })
	}
	return tx, nil
}

// SetInventory is the administrative override. It bypasses the ledger
// entirely, so no movement record is written, and is therefore restricted
// to admins.
func (s *workflowService) SetInventory(ctx context.Context, fuelType string, liters float64, actorRole string) (model.Inventory, error) {
	if actorRole != model.RoleAdmin {
		return nil, fmt.Errorf("inventory override: %w", ErrUnauthorized)
	}
	if !model.ValidFuelType(fuelType) {
		return nil, fmt.Errorf("unknown fuel type %q", fuelType)
	}
	if liters < 0 {
		return nil, fmt.Errorf("level must not be negative")
	}

	if !s.inventory.Set(ctx, fuelType, liters) {
		return nil, fmt.Errorf("set inventory: %w", ErrStorageFailure)
	}

	inv := s.inventory.Get(ctx)
	s.publish(ws.EventInventoryChanged, inv)
	return inv, nil
}

func (s *workflowService) Inventory(ctx context.Context) model.Inventory {
	return s.inventory.Get(ctx)
}
