package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/icon"
)

// RawSpotRecord is the JSON structure published by the web application.
type RawSpotRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	BreakType      string  `json:"break_type"`
	SwellDirection string  `json:"swell_direction"`
	WindDirection  string  `json:"wind_direction"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`
}

// SurfSpot is the enriched spot published to the sink topic.
type SurfSpot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Region    string `json:"region,omitempty"`
	Country   string `json:"country,omitempty"`
	BreakType string `json:"break_type,omitempty"`
	Geo       Geo    `json:"geo"`

	SwellDirection string          `json:"swell_direction,omitempty"`
	WindDirection  string          `json:"wind_direction,omitempty"`
	Swell          *icon.SwellIcon `json:"swell,omitempty"`
	Wind           *icon.WindIcon  `json:"wind,omitempty"`

	// Geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceName        string  `json:"place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "forward", "reverse", "original", "failed"

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
