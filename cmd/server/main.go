package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"stockmcp/internal/config"
	"stockmcp/internal/httpx"
	"stockmcp/internal/mcpserver"
	"stockmcp/internal/stock"
	"stockmcp/internal/twelvedata"
)

func main() {
	// stdout carries the protocol; all diagnostics go to stderr.
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to start Stock MCP Server: %v", err)
	}

	httpClient := httpx.New(cfg.RequestTimeout())
	client, err := twelvedata.NewClient(cfg.APIKey,
		twelvedata.WithBaseURL(cfg.BaseURL),
		twelvedata.WithHTTPClient(httpClient),
	)
	if err != nil {
		log.Fatalf("Failed to start Stock MCP Server: %v", err)
	}

	handler := stock.NewHandler(client, log)
	srv := mcpserver.New(handler, log)

	log.Info("Starting Stock MCP Server")
	log.Info("Resources available: stock://{symbol}, stock://{symbol}/closingdate/{date}")
	log.Info("Tools available: get_current_stock_price, get_historical_stock_price")
	log.Info("Prompts available: stock_current_price, stock_historical_price, stock_usage_guide")

	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("Failed to start Stock MCP Server: %v", err)
	}
	log.Info("Server shutdown requested by user")
}
