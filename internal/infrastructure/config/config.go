package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env       string `env:"ENV,           default=development"`
	LogLevel  string `env:"LOG_LEVEL,     default=info"`
	Transport string `env:"MCP_TRANSPORT, default=stdio"`
	SSEAddr   string `env:"SSE_ADDR,      default=:10000"`
	OpsAddr   string `env:"OPS_ADDR,      default=:9090"`

	Eshipz EshipzConfig
}

// EshipzConfig holds the upstream API endpoints and credential.
// ESHIPZ_TOKEN has no default: a missing credential is a startup failure,
// not a per-request one.
type EshipzConfig struct {
	BaseURL        string        `env:"API_BASE_URL,           default=https://app.eshipz.com"`
	Token          string        `env:"ESHIPZ_TOKEN,           required"`
	PerformanceURL string        `env:"ESHIPZ_PERFORMANCE_URL, default=https://ds.eshipz.com/performance_score/cps_scores/v2/"`
	OrdersURL      string        `env:"ESHIPZ_ORDERS_URL,      default=https://orders.eshipz.com/api/v1/orders"`
	Timeout        time.Duration `env:"ESHIPZ_TIMEOUT,         default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
