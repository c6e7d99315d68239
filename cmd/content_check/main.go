package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmorrow/inkwell/internal/catalog"
	"github.com/lmorrow/inkwell/internal/pipeline"
)

// content_check validates every content file once and exits non-zero
// when any record is invalid, so a broken entry never reaches a build.
func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat := catalog.New()
	p := pipeline.NewForDir(cfg.ContentDir, cat, pipeline.WithName("content-check"))

	report, err := p.Run(ctx)
	if err != nil {
		slog.Error("failed to run content check", "error", err)
		os.Exit(1)
	}

	if cfg.ReportFormat == "json" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			slog.Error("failed to encode report", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		printReport(report)
	}

	if !report.OK() {
		os.Exit(1)
	}
}

func printReport(report *pipeline.Report) {
	fmt.Printf("run %s: %d valid, %d invalid\n", report.RunID, report.Processed, report.Failed)

	for _, f := range report.Failures {
		fmt.Printf("\n%s/%s:\n", f.Collection, f.Slug)
		if f.Err != "" {
			fmt.Printf("  %s\n", f.Err)
			continue
		}
		for _, v := range f.Violations {
			fmt.Printf("  %s: %s\n", v.Path, v.Reason)
		}
	}
}
