package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ruimartins/billow/internal/config"
	"github.com/ruimartins/billow/internal/database"
	"github.com/ruimartins/billow/internal/document"
	docStore "github.com/ruimartins/billow/internal/document/store"
	"github.com/ruimartins/billow/internal/export"
	billowHttp "github.com/ruimartins/billow/internal/http"
	docHandler "github.com/ruimartins/billow/internal/http/document"
	exportHandler "github.com/ruimartins/billow/internal/http/export"
	importHandler "github.com/ruimartins/billow/internal/http/importcsv"
	statusHandler "github.com/ruimartins/billow/internal/http/status"
	"github.com/ruimartins/billow/internal/importer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, slog.Default()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		documentService = document.NewService(docStore.New(db), document.ContextNavigator{})
		importService   = importer.NewService(docStore.New(db), "EUR")
		exportService   = export.NewService(documentService)
	)

	var (
		documentH = docHandler.NewHandler(documentService)
		statusH   = statusHandler.NewHandler(documentService)
		importH   = importHandler.NewHandler(importService)
		exportH   = exportHandler.NewHandler(exportService)
	)

	router := billowHttp.New(documentH, statusH, importH, exportH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
