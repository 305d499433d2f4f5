package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

// recommendationGap is the minimum overall-score lead (on the 0-5 scale)
// before the top carrier is called out as a recommendation.
const recommendationGap = 0.5

type PerformanceService struct {
	client ports.PerformanceClient
	logger zerolog.Logger
}

func NewPerformanceService(client ports.PerformanceClient, logger zerolog.Logger) *PerformanceService {
	return &PerformanceService{client: client, logger: logger}
}

// Compare fetches carrier performance scores for a pincode route and renders
// them ranked by overall score, best first.
func (s *PerformanceService) Compare(ctx context.Context, sourcePin, destinationPin string) (string, error) {
	if !domain.ValidPincode(sourcePin) || !domain.ValidPincode(destinationPin) {
		return "", fmt.Errorf("%w: source and destination must be valid 6-digit pincodes", domain.ErrInvalidInput)
	}

	route, err := s.client.CarrierPerformance(ctx, sourcePin, destinationPin)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", sourcePin).Str("destination", destinationPin).Msg("carrier performance fetch failed")
		return "", err
	}
	if len(route.Carriers) == 0 {
		return fmt.Sprintf("No carriers found for route %s to %s", sourcePin, destinationPin), nil
	}

	s.logger.Info().
		Str("source", sourcePin).
		Str("destination", destinationPin).
		Int("carriers", len(route.Carriers)).
		Msg("carrier performance compared")

	return renderPerformance(route), nil
}

func renderPerformance(route *ports.RoutePerformance) string {
	carriers := make([]ports.CarrierScore, len(route.Carriers))
	copy(carriers, route.Carriers)
	sort.SliceStable(carriers, func(i, j int) bool {
		return scoreValue(carriers[i].Overall) > scoreValue(carriers[j].Overall)
	})

	var b strings.Builder
	b.WriteString("CARRIER PERFORMANCE ANALYSIS\n")
	fmt.Fprintf(&b, "Route: %s to %s\n", route.SourcePin, route.DestinationPin)
	fmt.Fprintf(&b, "Carriers analyzed: %d\n", len(carriers))
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	for idx, c := range carriers {
		fmt.Fprintf(&b, "%d. %s", idx+1, carrierLabel(c.Slug))
		if c.Overall != nil {
			// 0-5 scale, also shown as 0-100 with a rating word
			score100 := *c.Overall * 20
			fmt.Fprintf(&b, "\n   Overall Score: %.1f/5.0 (%.0f/100 - %s)", *c.Overall, score100, rating(score100))
		}
		if c.Delivery != nil {
			fmt.Fprintf(&b, "\n   Delivery Score: %.1f/5.0", *c.Delivery)
		}
		if c.Pickup != nil {
			fmt.Fprintf(&b, "\n   Pickup Score: %.1f/5.0", *c.Pickup)
		}
		if c.RTO != nil {
			fmt.Fprintf(&b, "\n   RTO Score: %.1f/5.0", *c.RTO)
		}
		b.WriteString("\n\n")
	}

	if len(carriers) > 1 {
		lead := scoreValue(carriers[0].Overall) - scoreValue(carriers[1].Overall)
		if scoreValue(carriers[0].Overall) > 0 && scoreValue(carriers[1].Overall) > 0 && lead >= recommendationGap {
			b.WriteString(strings.Repeat("-", 60) + "\n")
			fmt.Fprintf(&b, "RECOMMENDATION: %s\n", carrierLabel(carriers[0].Slug))
			b.WriteString("Reason: Highest overall performance score on this route")
		}
	}
	return b.String()
}

func scoreValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func rating(score100 float64) string {
	switch {
	case score100 >= 80:
		return "Excellent"
	case score100 >= 60:
		return "Good"
	case score100 >= 40:
		return "Fair"
	default:
		return "Below Average"
	}
}
