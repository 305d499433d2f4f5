package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/KavinVetrivel/eshipz-mcp/internal/api/tool"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/service"
	"github.com/KavinVetrivel/eshipz-mcp/internal/infrastructure/config"
	"github.com/KavinVetrivel/eshipz-mcp/internal/infrastructure/eshipz"
	opshttp "github.com/KavinVetrivel/eshipz-mcp/internal/infrastructure/http"
	"github.com/KavinVetrivel/eshipz-mcp/internal/infrastructure/pincode"
	"github.com/KavinVetrivel/eshipz-mcp/pkg/logger"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client := eshipz.NewClient(eshipz.Config{
		BaseURL:        cfg.Eshipz.BaseURL,
		Token:          cfg.Eshipz.Token,
		PerformanceURL: cfg.Eshipz.PerformanceURL,
		OrdersURL:      cfg.Eshipz.OrdersURL,
		Timeout:        cfg.Eshipz.Timeout,
	}, log)
	pincodes := pincode.NewClient(log)

	trackingSvc := service.NewTrackingService(client, log)
	performanceSvc := service.NewPerformanceService(client, log)
	shipmentSvc := service.NewShipmentService(client, pincodes, log)
	orderSvc := service.NewOrderService(client, shipmentSvc, log)

	srv := tool.NewServer(version, tool.Deps{
		Tracking:    trackingSvc,
		Performance: performanceSvc,
		Shipments:   shipmentSvc,
		Orders:      orderSvc,
		Logger:      log,
	})

	// Ops surface (health + metrics) lives on its own listener so the MCP
	// transport stays protocol-only.
	ops := opshttp.NewRouter(cfg.Eshipz.Token != "")
	go func() {
		if err := ops.Start(cfg.OpsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", cfg.OpsAddr).Msg("ops server stopped")
		}
	}()

	switch cfg.Transport {
	case "sse":
		log.Info().Str("addr", cfg.SSEAddr).Msg("starting MCP server on SSE transport")
		sse := mcpserver.NewSSEServer(srv)
		if err := sse.Start(cfg.SSEAddr); err != nil {
			log.Fatal().Err(err).Msg("SSE server failed")
		}
	default:
		log.Info().Msg("starting MCP server on stdio transport")
		if err := mcpserver.ServeStdio(srv); err != nil {
			log.Fatal().Err(err).Msg("stdio server failed")
		}
	}
}
