package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	Env        string
	StoreURL   string
	StoreToken string
}

func Load() Config {
	// Missing .env is fine; containers inject the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),
		StoreURL:   os.Getenv("STORE_URL"),
		StoreToken: os.Getenv("STORE_TOKEN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StoreURL == "" {
		cfg.StoreURL = "http://localhost:1337"
	}
	return cfg
}
