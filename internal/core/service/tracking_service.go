package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KavinVetrivel/eshipz-mcp/internal/core/domain"
	"github.com/KavinVetrivel/eshipz-mcp/internal/core/ports"
)

type TrackingService struct {
	client ports.TrackingClient
	logger zerolog.Logger
}

func NewTrackingService(client ports.TrackingClient, logger zerolog.Logger) *TrackingService {
	return &TrackingService{client: client, logger: logger}
}

// Track fetches the tracking history for one shipment, classifies it, and
// renders the status summary. One outbound request, no retries: a failed
// attempt is reported immediately and the caller may re-invoke.
func (s *TrackingService) Track(ctx context.Context, trackingID string) (*ports.TrackingReport, error) {
	id := strings.TrimSpace(trackingID)
	if id == "" {
		return nil, fmt.Errorf("%w: tracking ID must not be empty", domain.ErrInvalidInput)
	}

	snap, err := s.client.Track(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("tracking_id", id).Msg("tracking fetch failed")
		return nil, err
	}

	status, summary := RenderSnapshot(snap)
	s.logger.Info().
		Str("tracking_id", id).
		Str("status", string(status)).
		Int("events", len(snap.Events)).
		Msg("shipment tracked")

	return &ports.TrackingReport{Status: status, Summary: summary}, nil
}
