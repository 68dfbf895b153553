package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/surf-spot-etl/internal/domain"
	"github.com/couchcryptid/surf-spot-etl/internal/icon"
	"github.com/couchcryptid/surf-spot-etl/internal/observability"
)

// SpotTransformer parses a raw spot record, attaches icon geometry, optionally
// geocodes it and serializes the result.
type SpotTransformer struct {
	icons    icon.Config
	geocoder domain.Geocoder
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewTransformer creates a SpotTransformer. Pass a nil geocoder to disable
// geocoding enrichment.
func NewTransformer(icons icon.Config, geocoder domain.Geocoder, metrics *observability.Metrics, logger *slog.Logger) *SpotTransformer {
	return &SpotTransformer{
		icons:    icons,
		geocoder: geocoder,
		metrics:  metrics,
		logger:   logger,
	}
}

func (t *SpotTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	spot, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	spot, err = domain.EnrichSurfSpot(t.icons, spot)
	if err != nil {
		var fieldErr *domain.DirectionFieldError
		if errors.As(err, &fieldErr) {
			t.metrics.InvalidDirections.WithLabelValues(fieldErr.Field).Inc()
		}
		return domain.OutputEvent{}, err
	}

	spot = domain.EnrichWithGeocoding(ctx, spot, t.geocoder, t.logger)
	return domain.SerializeSurfSpot(spot)
}
