package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	AppPort   string
	AppEnv    string
	DataDir   string
	WSOrigins string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   os.Getenv("MONGO_DB"),
		AppPort:   os.Getenv("APP_PORT"),
		AppEnv:    os.Getenv("APP_ENV"),
		DataDir:   os.Getenv("DATA_DIR"),
		WSOrigins: os.Getenv("WS_ALLOWED_ORIGINS"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("Environment variables not loaded properly: MONGO_URI is required")
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "quanngon"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	return cfg
}
