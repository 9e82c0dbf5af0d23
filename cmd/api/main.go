package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/xyloai/xylo/internal/analysis"
	analysisStore "github.com/xyloai/xylo/internal/analysis/store"
	"github.com/xyloai/xylo/internal/config"
	"github.com/xyloai/xylo/internal/database"
	"github.com/xyloai/xylo/internal/erp"
	erpStore "github.com/xyloai/xylo/internal/erp/store"
	xyloHttp "github.com/xyloai/xylo/internal/http"
	decisionHandler "github.com/xyloai/xylo/internal/http/decision"
	invoiceHandler "github.com/xyloai/xylo/internal/http/invoice"
	"github.com/xyloai/xylo/internal/ingest"
	"github.com/xyloai/xylo/internal/risk"
	"github.com/xyloai/xylo/internal/screening"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	decisionStore := analysisStore.New(db)

	var (
		erpService       = erp.NewService(erpStore.New(db))
		screeningService = screening.NewService(erpService, decisionStore)
		engine           = risk.NewEngine(cfg.Risk.ApprovedThreshold, cfg.Risk.ReviewThreshold)
		ingestService    = ingest.NewService(cfg.OCR.Languages)
		analysisService  = analysis.NewService(ingestService, screeningService, engine, decisionStore)
	)

	var (
		invoicesH  = invoiceHandler.NewHandler(analysisService)
		decisionsH = decisionHandler.NewHandler(analysisService)
	)

	router := xyloHttp.New(invoicesH, decisionsH, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
