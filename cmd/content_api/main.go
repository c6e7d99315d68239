package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmorrow/inkwell/internal/catalog"
	"github.com/lmorrow/inkwell/internal/pipeline"
	"github.com/lmorrow/inkwell/internal/router"
	"github.com/lmorrow/inkwell/internal/server"
	pkgserver "github.com/lmorrow/inkwell/pkg/server"
)

// content_api validates the content tree once at startup and serves
// the resulting catalog for previewing entries while writing.
func main() {
	// AppConfig.Load pulls in the .env file; every config after it
	// reads the environment directly.
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	cat := catalog.New()
	p := pipeline.NewForDir(cfg.ContentDir, cat, pipeline.WithName("content-api"))

	report, err := p.Run(context.Background())
	if err != nil {
		slog.Error("Failed to load content", "error", err)
		os.Exit(1)
	}
	if !report.OK() {
		slog.Warn("Serving with invalid entries skipped",
			"failed", report.Failed,
			"runId", report.RunID,
		)
	}

	health := pkgserver.FuncHealthChecker(func(ctx context.Context) bool {
		books, news := cat.Counts()
		return books+news > 0
	})

	s := server.New(sCfg, health)

	contentRouter := router.NewContentRouter(s.Echo, cat)
	contentRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
