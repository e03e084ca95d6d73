package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	Timezone  string
	DBPath    string
	JWTSecret string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		Timezone:  get("TZ", "America/Mexico_City"),
		DBPath:    get("DB_PATH", "bitacora.db"),
		JWTSecret: get("JWT_SECRET", "default-secret-key-change-it"),
	}
	log.Printf("[cfg] port=%s db=%s tz=%s", cfg.Port, cfg.DBPath, cfg.Timezone)
	return cfg
}
