package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmorrow/inkwell/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ContentAPIConfig struct {
	ContentDir string
}

func (as *AppConfig) Load() (*ContentAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/content_api/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		slog.Error("CONTENT_DIR environment variable is not set")
		return nil, fmt.Errorf("CONTENT_DIR environment variable is not set")
	}

	return &ContentAPIConfig{
		ContentDir: contentDir,
	}, nil
}
