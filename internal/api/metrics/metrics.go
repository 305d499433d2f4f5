// Package metrics defines and registers all custom Prometheus metrics for
// the eShipz MCP server. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register against the default registry at package
// init; the ops server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eshipz"

// ---------------------------------------------------------------------------
// Tool metrics
// ---------------------------------------------------------------------------

// ToolCallsTotal counts MCP tool invocations.
// Labels:
//   - tool: the tool name (e.g. "track_shipment")
//   - outcome: "ok", "invalid_input", "not_found", "unauthorized",
//     "remote_error", "network_error", "parse_error", or "error"
var ToolCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_calls_total",
		Help:      "Total number of MCP tool invocations, by tool and outcome.",
	},
	[]string{"tool", "outcome"},
)

// ToolCallDuration measures end-to-end tool handling time, including the
// upstream API round trip.
// Label:
//   - tool: the tool name
var ToolCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tool_call_duration_seconds",
		Help:      "Duration of MCP tool calls from dispatch to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"tool"},
)

// ---------------------------------------------------------------------------
// Upstream metrics
// ---------------------------------------------------------------------------

// UpstreamRequestDuration measures one outbound HTTP round trip to an eShipz
// endpoint.
// Label:
//   - endpoint: "tracking", "performance", "create_shipment", "docket", "orders", "pincode"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound requests to upstream APIs.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// UpstreamErrorsTotal counts failed upstream requests.
// Labels:
//   - endpoint: as above
//   - kind: "not_found", "unauthorized", "remote", "network", "parse"
var UpstreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Total number of failed upstream requests, by endpoint and failure kind.",
	},
	[]string{"endpoint", "kind"},
)
