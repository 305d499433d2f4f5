// Package pincode resolves Indian pincodes to city/state via the public
// India Post API. Lookups are best-effort enrichment: callers treat a nil
// result as "unknown" and carry on.
package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/api/metrics"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.postalpincode.in/pincode/"
	lookupTimeout  = 5 * time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: lookupTimeout},
		logger:  logger,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL string, logger zerolog.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = baseURL
	return c
}

type postOfficeResult struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

// Lookup resolves city/state/district for a 6-digit pincode. Returns
// (nil, nil) when the pincode is unknown to the postal API.
func (c *Client) Lookup(ctx context.Context, pin string) (*ports.PincodeInfo, error) {
	if !domain.ValidPincode(pin) {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pin, nil)
	if err != nil {
		return nil, fmt.Errorf("build pincode request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues("pincode").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("pincode", "network").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	var results []postOfficeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("pincode", "parse").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	if len(results) == 0 || results[0].Status != "Success" || len(results[0].PostOffice) == 0 {
		c.logger.Debug().Str("pincode", pin).Msg("pincode not found")
		return nil, nil
	}

	office := results[0].PostOffice[0]
	return &ports.PincodeInfo{
		Pincode:  pin,
		City:     strings.TrimSpace(office.District),
		State:    strings.TrimSpace(office.State),
		District: strings.TrimSpace(office.District),
		Country:  "IN",
	}, nil
}
