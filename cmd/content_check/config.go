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

type ContentCheckConfig struct {
	ContentDir   string
	ReportFormat string
}

func (as *AppConfig) Load() (*ContentCheckConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/content_check/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		slog.Error("CONTENT_DIR environment variable is not set")
		return nil, fmt.Errorf("CONTENT_DIR environment variable is not set")
	}

	format := os.Getenv("REPORT_FORMAT")
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("REPORT_FORMAT must be text or json, got %q", format)
	}

	return &ContentCheckConfig{
		ContentDir:   contentDir,
		ReportFormat: format,
	}, nil
}
