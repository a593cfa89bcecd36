package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// relayRecorder captures every envelope posted to the fake web app.
type relayRecorder struct {
	mu        sync.Mutex
	envelopes []map[string]any
}

func (r *relayRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodGet {
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": model.Snapshot{
					Inventory: model.Inventory{model.FuelDiesel: {Current: 777, Capacity: 10000, Unit: "liters"}},
				},
			})
			return
		}
		var env map[string]any
		json.NewDecoder(req.Body).Decode(&env)
		r.mu.Lock()
		r.envelopes = append(r.envelopes, env)
		r.mu.Unlock()
		w.Write([]byte(`{"success":true}`))
	}
}

func (r *relayRecorder) last(t *testing.T) map[string]any {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.envelopes) == 0 {
		t.Fatal("no envelope received")
	}
	return r.envelopes[len(r.envelopes)-1]
}

func (r *relayRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.envelopes)
}

func newTestClient(t *testing.T, webAppURL, botToken, chatID string) (*Client, storage.Store) {
	t.Helper()
	store := storage.NewMemStore()
	c := NewClient(context.Background(), store, model.SyncConfig{})
	if webAppURL != "" || botToken != "" {
		if _, err := c.SetConfig(context.Background(), webAppURL, botToken, chatID); err != nil {
			t.Fatalf("SetConfig: %v", err)
		}
	}
	return c, store
}

func TestPushNotConfigured(t *testing.T) {
	c, _ := newTestClient(t, "", "", "")
	ctx := context.Background()

	if err := c.PushRequest(ctx, model.FuelRequest{ID: "REQ-1"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("PushRequest err = %v, want ErrNotConfigured", err)
	}
	if err := c.SyncAll(ctx, model.Snapshot{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("SyncAll err = %v, want ErrNotConfigured", err)
	}
	if _, err := c.FetchAll(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("FetchAll err = %v, want ErrNotConfigured", err)
	}
}

func TestSyncAllRecordsLastSync(t *testing.T) {
	rec := &relayRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, "", "")
	ctx := context.Background()

	if _, ok := c.LastSync(ctx); ok {
		t.Error("last sync set before any push")
	}
	if err := c.SyncAll(ctx, model.Snapshot{Inventory: model.DefaultInventory()}); err != nil {
		t.Fatalf("SyncAll: %v", err)
	}

	env := rec.last(t)
	if env["action"] != "sync" {
		t.Errorf("action = %v, want sync", env["action"])
	}
	if id, _ := env["syncId"].(string); id == "" {
		t.Error("syncId missing")
	}
	if _, ok := env["data"]; !ok {
		t.Error("data payload missing")
	}
	if _, ok := c.LastSync(ctx); !ok {
		t.Error("last sync not recorded")
	}
}

func TestPushEnvelopes(t *testing.T) {
	rec := &relayRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, "", "")
	ctx := context.Background()

	if err := c.PushRequest(ctx, model.FuelRequest{ID: "REQ-1", FuelType: model.FuelDiesel}); err != nil {
		t.Fatalf("PushRequest: %v", err)
	}
	if rec.last(t)["action"] != "addRequest" {
		t.Errorf("action = %v, want addRequest", rec.last(t)["action"])
	}

	if err := c.PushTransaction(ctx, model.Transaction{ID: "TXN-1"}); err != nil {
		t.Fatalf("PushTransaction: %v", err)
	}
	if rec.last(t)["action"] != "addTransaction" {
		t.Errorf("action = %v, want addTransaction", rec.last(t)["action"])
	}
}

func TestSendTelegram(t *testing.T) {
	rec := &relayRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	ctx := context.Background()

	// Web app configured but no bot credentials.
	partial, _ := newTestClient(t, srv.URL, "", "")
	if err := partial.SendTelegram(ctx, "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}

	c, _ := newTestClient(t, srv.URL, "bot-token", "chat-42")
	if err := c.SendTelegram(ctx, "hello"); err != nil {
		t.Fatalf("SendTelegram: %v", err)
	}
	env := rec.last(t)
	if env["action"] != "sendTelegram" || env["botToken"] != "bot-token" || env["chatId"] != "chat-42" || env["message"] != "hello" {
		t.Errorf("envelope wrong: %v", env)
	}
}

func TestFetchAll(t *testing.T) {
	rec := &relayRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, "", "")
	snap, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if snap.Inventory[model.FuelDiesel].Current != 777 {
		t.Errorf("snapshot = %+v", snap.Inventory)
	}
	if rec.count() != 0 {
		t.Error("getData should not post an envelope")
	}
}

func TestFetchAllRelayRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "sheet locked"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, "", "")
	_, err := c.FetchAll(context.Background())
	if err == nil || err.Error() != "sheet locked" {
		t.Errorf("err = %v, want relay message", err)
	}
}

func TestConfigVersioningAndReload(t *testing.T) {
	store := storage.NewMemStore()
	ctx := context.Background()

	c := NewClient(ctx, store, model.SyncConfig{WebAppURL: "https://example.invalid/app"})
	if got := c.Config().Version; got != 1 {
		t.Errorf("seeded version = %d, want 1", got)
	}

	cfg, err := c.SetConfig(ctx, "https://example.invalid/v2", "tok", "chat")
	if err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if cfg.Version != 2 {
		t.Errorf("version = %d, want 2", cfg.Version)
	}

	// A second client over the same store sees the persisted record.
	other := NewClient(ctx, store, model.SyncConfig{})
	if got := other.Config().WebAppURL; got != "https://example.invalid/v2" {
		t.Errorf("other client url = %q", got)
	}
	if got := other.Reload(ctx).Version; got != 2 {
		t.Errorf("reloaded version = %d, want 2", got)
	}
}
