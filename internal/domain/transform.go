package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/geometry"
	"github.com/couchcryptid/surf-spot-etl/internal/icon"
)

// Direction field names reported in DirectionFieldError.
const (
	FieldSwell = "swell"
	FieldWind  = "wind"
)

// ParseRawEvent deserializes a RawEvent's value into a SurfSpot.
func ParseRawEvent(raw RawEvent) (SurfSpot, error) {
	var rec RawSpotRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return SurfSpot{}, fmt.Errorf("parse raw event: %w", err)
	}

	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = generateID(rec.Name, rec.Lat, rec.Lon)
	}

	return SurfSpot{
		ID:             id,
		Name:           rec.Name,
		Region:         rec.Region,
		Country:        rec.Country,
		BreakType:      rec.BreakType,
		Geo:            Geo{Lat: rec.Lat, Lon: rec.Lon},
		SwellDirection: rec.SwellDirection,
		WindDirection:  rec.WindDirection,

		RawPayload: raw.Value,
	}, nil
}

// generateID produces a deterministic ID from the spot's name and position so
// that replaying a record without an upstream ID yields the same key.
func generateID(name string, lat, lon float64) string {
	input := fmt.Sprintf("%s|%.4f|%.4f", strings.ToLower(strings.TrimSpace(name)), lat, lon)
	hash := sha256.Sum256([]byte(input))
	return "spot-" + hex.EncodeToString(hash[:8])
}

// EnrichSurfSpot normalizes text fields and attaches swell and wind icon
// geometry built with cfg. An invalid direction range fails the whole spot.
func EnrichSurfSpot(cfg icon.Config, spot SurfSpot) (SurfSpot, error) {
	spot.Name = strings.TrimSpace(spot.Name)
	spot.Region = strings.TrimSpace(spot.Region)
	spot.Country = strings.ToUpper(strings.TrimSpace(spot.Country))
	spot.BreakType = normalizeBreakType(spot.BreakType)
	spot.SwellDirection = strings.TrimSpace(spot.SwellDirection)
	spot.WindDirection = strings.TrimSpace(spot.WindDirection)

	spot.Swell = nil
	if spot.SwellDirection != "" {
		rng, err := geometry.ParseRange(spot.SwellDirection)
		if err != nil {
			return spot, &DirectionFieldError{Field: FieldSwell, Err: err}
		}
		swell := icon.Swell(cfg, rng)
		spot.Swell = &swell
	}

	spot.Wind = nil
	if spot.WindDirection != "" {
		rng, err := geometry.ParseRange(spot.WindDirection)
		if err != nil {
			return spot, &DirectionFieldError{Field: FieldWind, Err: err}
		}
		wind := icon.Wind(cfg, rng)
		spot.Wind = &wind
	}

	spot.ProcessedAt = clock.Now()
	return spot, nil
}

// normalizeBreakType maps free-form break types onto the four known values.
// "River Mouth", "river-mouth" and "rivermouth" are the same break.
func normalizeBreakType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(v)
	switch v {
	case "beach", "reef", "point", "rivermouth":
		return v
	default:
		return ""
	}
}

// SerializeSurfSpot marshals an enriched spot into an OutputEvent keyed by ID.
func SerializeSurfSpot(spot SurfSpot) (OutputEvent, error) {
	data, err := json.Marshal(spot)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize surf spot: %w", err)
	}
	return OutputEvent{
		Key:   []byte(spot.ID),
		Value: data,
		Headers: map[string]string{
			"break_type":   spot.BreakType,
			"processed_at": spot.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
