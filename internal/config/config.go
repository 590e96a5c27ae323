package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	DataDir       string
	ServerPort    string
	SessionSecret string

	GenesysClientID     string
	GenesysClientSecret string
	GenesysRegion       string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		DataDir:       os.Getenv("DATA_DIR"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		GenesysClientID:     os.Getenv("GENESYS_CLIENT_ID"),
		GenesysClientSecret: os.Getenv("GENESYS_CLIENT_SECRET"),
		GenesysRegion:       os.Getenv("GENESYS_REGION"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.GenesysRegion == "" {
		cfg.GenesysRegion = "us-east-1"
	}

	return cfg
}
