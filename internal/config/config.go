package config

import (
	"os"
	"strings"
)

// Config is the explicit process configuration, assembled once at boot from
// the environment. Relay settings given here only seed the persisted sync
// config record when no record exists yet.
type Config struct {
	Port             string
	DatabaseDSN      string
	JWTSecret        string
	SheetWebAppURL   string
	TelegramBotToken string
	TelegramChatID   string
	AllowOrigins     []string
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment with development fallbacks.
func Load() Config {
	dbHost := env("DB_HOST", "localhost")
	dbPort := env("DB_PORT", "5432")
	dbUser := env("DB_USER", "postgres")
	dbPassword := env("DB_PASSWORD", "postgres")
	dbName := env("DB_NAME", "postgres")
	dbSslMode := env("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return Config{
		Port:             env("PORT", "8080"),
		DatabaseDSN:      dsn,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		SheetWebAppURL:   os.Getenv("SHEET_WEBAPP_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		AllowOrigins:     origins,
	}
}
