package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/easel-ai/easel/config"
	"github.com/easel-ai/easel/pkg/otel"
	"github.com/easel-ai/easel/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "server address")

	flag.Parse()

	ctx := context.Background()

	if otel.EnableTelemetry {
		if err := otel.Setup(ctx, "easel", version); err != nil {
			slog.Error("failed to set up telemetry", "error", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	h, err := api.New(cfg)

	if err != nil {
		slog.Error("failed to create handler", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h.Attach(r)

	slog.Info("starting server", "address", cfg.Address)

	server := otelhttp.NewHandler(r, "server")

	if err := http.ListenAndServe(cfg.Address, server); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
