// Package sheets talks to the external spreadsheet web-app relay. Outbound
// pushes are best-effort: one attempt, bounded timeout, response body ignored.
// Delivery is not guaranteed and a push may land ahead of or behind the
// latest local mutation.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/storage"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when an operation needs the relay but no
// web-app URL is configured.
var ErrNotConfigured = errors.New("sheets relay not configured")

const defaultTimeout = 10 * time.Second

// Client holds the relay configuration and HTTP plumbing. The configuration
// is a single versioned record in the store; Reload re-reads it explicitly
// instead of the caller probing multiple locations.
type Client struct {
	store storage.Store
	httpc *http.Client

	mu  sync.RWMutex
	cfg model.SyncConfig
}

// NewClient loads the persisted configuration, seeding it from defaults when
// no record exists yet.
func NewClient(ctx context.Context, store storage.Store, defaults model.SyncConfig) *Client {
	c := &Client{
		store: store,
		httpc: &http.Client{Timeout: defaultTimeout},
	}

	var cfg model.SyncConfig
	if storage.ReadJSON(ctx, store, storage.KeySyncConfig, &cfg) {
		c.cfg = cfg
		return c
	}

	defaults.Version = 1
	defaults.SavedAt = time.Now()
	store.Write(ctx, storage.KeySyncConfig, defaults)
	c.cfg = defaults
	return c
}

// Config returns the current in-memory configuration.
func (c *Client) Config() model.SyncConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Reload re-reads the persisted record and returns the result.
func (c *Client) Reload(ctx context.Context) model.SyncConfig {
	var cfg model.SyncConfig
	if storage.ReadJSON(ctx, c.store, storage.KeySyncConfig, &cfg) {
		c.mu.Lock()
		c.cfg = cfg
		c.mu.Unlock()
	}
	return c.Config()
}

// SetConfig persists a new configuration version and makes it current.
func (c *Client) SetConfig(ctx context.Context, webAppURL, botToken, chatID string) (model.SyncConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := model.SyncConfig{
		WebAppURL:        webAppURL,
		TelegramBotToken: botToken,
		TelegramChatID:   chatID,
		Version:          c.cfg.Version + 1,
		SavedAt:          time.Now(),
	}
	if !c.store.Write(ctx, storage.KeySyncConfig, cfg) {
		return model.SyncConfig{}, fmt.Errorf("persist sync config: write refused")
	}
	c.cfg = cfg
	return cfg, nil
}

// post sends one fire-and-forget envelope. The response body is drained and
// discarded; only transport-level failures surface.
func (c *Client) post(ctx context.Context, payload map[string]any) error {
	cfg := c.Config()
	if !cfg.SheetConfigured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WebAppURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// SyncAll pushes a full data snapshot. On success the last-sync timestamp is
// recorded in the store.
func (c *Client) SyncAll(ctx context.Context, snapshot model.Snapshot) error {
	err := c.post(ctx, map[string]any{
		"action": "sync",
		"syncId": uuid.NewString(),
		"data":   snapshot,
	})
	if err != nil {
		return err
	}
	c.store.Write(ctx, storage.KeyLastSync, time.Now())
	return nil
}

// fetchResponse is the inbound pull envelope.
type fetchResponse struct {
	Success bool           `json:"success"`
	Data    model.Snapshot `json:"data"`
	Message string         `json:"message"`
}

// FetchAll pulls the full snapshot from the relay.
func (c *Client) FetchAll(ctx context.Context) (model.Snapshot, error) {
	cfg := c.Config()
	if !cfg.SheetConfigured() {
		return model.Snapshot{}, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.WebAppURL+"?action=getData", nil)
	if err != nil {
		return model.Snapshot{}, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return model.Snapshot{}, err
	}
	defer resp.Body.Close()

	var fr fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode relay response: %w", err)
	}
	if !fr.Success {
		msg := fr.Message
		if msg == "" {
			msg = "relay refused getData"
		}
		return model.Snapshot{}, errors.New(msg)
	}
	return fr.Data, nil
}

// PushRequest mirrors a single fuel request to the sheet.
func (c *Client) PushRequest(ctx context.Context, req model.FuelRequest) error {
	return c.post(ctx, map[string]any{"action": "addRequest", "request": req})
}

// PushTransaction mirrors a single ledger entry to the sheet.
func (c *Client) PushTransaction(ctx context.Context, tx model.Transaction) error {
	return c.post(ctx, map[string]any{"action": "addTransaction", "transaction": tx})
}

// SendTelegram asks the relay to dispatch a chat message. The relay owns the
// actual Telegram API call.
func (c *Client) SendTelegram(ctx context.Context, message string) error {
	cfg := c.Config()
	if !cfg.TelegramConfigured() {
		return ErrNotConfigured
	}
	return c.post(ctx, map[string]any{
		"action":   "sendTelegram",
		"botToken": cfg.TelegramBotToken,
		"chatId":   cfg.TelegramChatID,
		"message":  message,
	})
}

// LastSync returns the recorded time of the last successful snapshot push.
func (c *Client) LastSync(ctx context.Context) (time.Time, bool) {
	var t time.Time
	if !storage.ReadJSON(ctx, c.store, storage.KeyLastSync, &t) {
		return time.Time{}, false
	}
	return t, true
}
