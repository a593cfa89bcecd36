package model

import "time"

// SyncConfig is the single versioned record holding the external relay
// settings. It lives under one storage key; env values only seed it when the
// record is absent.
type SyncConfig struct {
	WebAppURL        string    `json:"webAppUrl"`
	TelegramBotToken string    `json:"telegramBotToken,omitempty"`
	TelegramChatID   string    `json:"telegramChatId,omitempty"`
	Version          int       `json:"version"`
	SavedAt          time.Time `json:"savedAt"`
}

// SheetConfigured reports whether snapshot pushes can be attempted.
func (c SyncConfig) SheetConfigured() bool { return c.WebAppURL != "" }

// TelegramConfigured reports whether chat notifications can be attempted.
// Dispatch still goes through the sheet relay, so that must be configured too.
func (c SyncConfig) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}
