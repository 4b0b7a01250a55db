package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string

	MongoURI      string
	MongoDatabase string
	RemoteTimeout time.Duration

	AuthURL    string
	AuthSecret string
}

// Load reads configuration from a .env file (if present) and the environment.
// MONGO_URI and AUTH_URL may be empty: the planner then runs fully offline
// against the local store.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DATABASE_PATH", "data/menu-planner.db")
	v.SetDefault("MONGO_DATABASE", "menuplanner")
	v.SetDefault("REMOTE_TIMEOUT", 10*time.Second)
	v.AutomaticEnv()

	cfg := &Config{
		DatabasePath:  v.GetString("DATABASE_PATH"),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		RemoteTimeout: v.GetDuration("REMOTE_TIMEOUT"),
		AuthURL:       v.GetString("AUTH_URL"),
		AuthSecret:    v.GetString("AUTH_SECRET"),
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if cfg.AuthURL != "" && cfg.AuthSecret == "" {
		return nil, fmt.Errorf("AUTH_SECRET must be set when AUTH_URL is configured")
	}

	return cfg, nil
}
