package repository

import (
	"context"
	"time"

	"fueldepot/internal/idgen"
	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// RequestRepository defines data access for fuel requests. The collection is
// stored newest-first; there is no delete in the normal flow, only the
// controlled update path.
type RequestRepository interface {
	GetAll(ctx context.Context) []model.FuelRequest
	GetByID(ctx context.Context, id string) (model.FuelRequest, bool)
	GetByStatus(ctx context.Context, status string) []model.FuelRequest
	GetByRequester(ctx context.Context, requesterID string) []model.FuelRequest
	Add(ctx context.Context, req model.FuelRequest) (model.FuelRequest, bool)
	Update(ctx context.Context, id string, apply func(*model.FuelRequest)) bool
	ReplaceAll(ctx context.Context, reqs []model.FuelRequest) bool
}

type requestRepository struct {
	store storage.Store
}

// NewRequestRepository returns a RequestRepository over the given store.
func NewRequestRepository(store storage.Store) RequestRepository {
	return &requestRepository{store: store}
}

func (r *requestRepository) GetAll(ctx context.Context) []model.FuelRequest {
	var reqs []model.FuelRequest
	storage.ReadJSON(ctx, r.store, storage.KeyRequests, &reqs)
	return reqs
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (model.FuelRequest, bool) {
	for _, req := range r.GetAll(ctx) {
		if req.ID == id {
			return req, true
		}
	}
	return model.FuelRequest{}, false
}

func (r *requestRepository) GetByStatus(ctx context.Context, status string) []model.FuelRequest {
	var out []model.FuelRequest
	for _, req := range r.GetAll(ctx) {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out
}

func (r *requestRepository) GetByRequester(ctx context.Context, requesterID string) []model.FuelRequest {
	var out []model.FuelRequest
	for _, req := range r.GetAll(ctx) {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out
}

// Add assigns id, pending status and the request timestamp, and prepends the
// record so reads come back newest-first.
func (r *requestRepository) Add(ctx context.Context, req model.FuelRequest) (model.FuelRequest, bool) {
	reqs := r.GetAll(ctx)
	req.ID = idgen.New("REQ")
	req.Status = model.StatusPending
	req.RequestDate = time.Now()
	reqs = append([]model.FuelRequest{req}, reqs...)
	return req, r.store.Write(ctx, storage.KeyRequests, reqs)
}

func (r *requestRepository) Update(ctx context.Context, id string, apply func(*model.FuelRequest)) bool {
	reqs := r.GetAll(ctx)
	for i := range reqs {
		if reqs[i].ID == id {
			apply(&reqs[i])
			return r.store.Write(ctx, storage.KeyRequests, reqs)
		}
	}
	return false
}

func (r *requestRepository) ReplaceAll(ctx context.Context, reqs []model.FuelRequest) bool {
	return r.store.Write(ctx, storage.KeyRequests, reqs)
}
