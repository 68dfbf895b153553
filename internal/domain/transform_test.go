package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/geometry"
	"github.com/couchcryptid/surf-spot-etl/internal/icon"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPipelineRecord = `{"id":"spot-42","name":" Pipeline ","region":"Oahu","country":"us","lat":21.665,"lon":-158.053,"break_type":"Reef","swell_direction":"NW-N","wind_direction":"SE"}`

func TestParseRawEvent(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		raw := RawEvent{Value: []byte(testPipelineRecord)}
		spot, err := ParseRawEvent(raw)

		require.NoError(t, err)
		assert.Equal(t, "spot-42", spot.ID)
		assert.Equal(t, " Pipeline ", spot.Name, "parse does not normalize")
		assert.Equal(t, "Oahu", spot.Region)
		assert.Equal(t, 21.665, spot.Geo.Lat)
		assert.Equal(t, -158.053, spot.Geo.Lon)
		assert.Equal(t, "NW-N", spot.SwellDirection)
		assert.Equal(t, "SE", spot.WindDirection)
		assert.Nil(t, spot.Swell)
		assert.True(t, spot.ProcessedAt.IsZero())
		assert.Equal(t, raw.Value, spot.RawPayload)
	})

	t.Run("missing id is derived", func(t *testing.T) {
		raw := RawEvent{Value: []byte(`{"name":"Uluwatu","lat":-8.815,"lon":115.088}`)}
		spot, err := ParseRawEvent(raw)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(spot.ID, "spot-"))

		again, err := ParseRawEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, spot.ID, again.ID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte("{invalid json")})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw event")
	})

	t.Run("empty JSON", func(t *testing.T) {
		spot, err := ParseRawEvent(RawEvent{Value: []byte("{}")})

		require.NoError(t, err)
		assert.Empty(t, spot.Name)
		assert.NotEmpty(t, spot.ID)
	})
}

func TestGenerateID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, generateID("Uluwatu", -8.815, 115.088), generateID("Uluwatu", -8.815, 115.088))
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		assert.Equal(t, generateID("Uluwatu", -8.815, 115.088), generateID(" uluwatu ", -8.815, 115.088))
	})

	t.Run("different positions produce different IDs", func(t *testing.T) {
		assert.NotEqual(t, generateID("Uluwatu", -8.815, 115.088), generateID("Uluwatu", -8.816, 115.088))
	})
}

func TestNormalizeBreakType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"beach", "beach"},
		{" Reef ", "reef"},
		{"POINT", "point"},
		{"River Mouth", "rivermouth"},
		{"river-mouth", "rivermouth"},
		{"slab", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeBreakType(tt.in))
		})
	}
}

func TestEnrichSurfSpot(t *testing.T) {
	fixedTime := time.Date(2024, 4, 26, 12, 30, 45, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	cfg := icon.DefaultConfig()

	t.Run("swell and wind ranges", func(t *testing.T) {
		spot, err := ParseRawEvent(RawEvent{Value: []byte(testPipelineRecord)})
		require.NoError(t, err)

		result, err := EnrichSurfSpot(cfg, spot)
		require.NoError(t, err)

		assert.Equal(t, "Pipeline", result.Name)
		assert.Equal(t, "US", result.Country)
		assert.Equal(t, "reef", result.BreakType)
		assert.Equal(t, fixedTime, result.ProcessedAt)

		require.NotNil(t, result.Swell)
		assert.Equal(t, "NW-N", result.Swell.Range)
		assert.Equal(t, geometry.CompassAngle(315), result.Swell.Start)
		assert.Equal(t, geometry.CompassAngle(0), result.Swell.End)
		assert.Equal(t, geometry.CompassAngle(337.5), result.Swell.Mid)
		assert.False(t, result.Swell.Wrapped, "NW-N stays below 360 in the SVG frame")
		assert.Len(t, result.Swell.Rings, cfg.RingCount)

		require.NotNil(t, result.Wind)
		assert.Equal(t, "SE", result.Wind.Range)
		assert.Equal(t, 135.0, result.Wind.Rotation)
	})

	t.Run("empty directions produce no icons", func(t *testing.T) {
		result, err := EnrichSurfSpot(cfg, SurfSpot{ID: "spot-1", Name: "Flat Spell"})
		require.NoError(t, err)
		assert.Nil(t, result.Swell)
		assert.Nil(t, result.Wind)
	})

	t.Run("whitespace around ranges is trimmed", func(t *testing.T) {
		result, err := EnrichSurfSpot(cfg, SurfSpot{SwellDirection: " S-W ", WindDirection: "\tE"})
		require.NoError(t, err)
		assert.Equal(t, "S-W", result.SwellDirection)
		require.NotNil(t, result.Wind)
		assert.Equal(t, geometry.CompassAngle(90), result.Wind.Mid)
	})

	t.Run("invalid swell direction", func(t *testing.T) {
		_, err := EnrichSurfSpot(cfg, SurfSpot{SwellDirection: "NNW", WindDirection: "E"})

		var fieldErr *DirectionFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, FieldSwell, fieldErr.Field)

		var dirErr *geometry.InvalidDirectionError
		require.ErrorAs(t, err, &dirErr)
		assert.Equal(t, "NNW", dirErr.Token)
		assert.Contains(t, err.Error(), "parse swell direction")
	})

	t.Run("invalid wind direction", func(t *testing.T) {
		_, err := EnrichSurfSpot(cfg, SurfSpot{SwellDirection: "W", WindDirection: "E-east"})

		var fieldErr *DirectionFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, FieldWind, fieldErr.Field)
	})

	t.Run("stale icons are replaced", func(t *testing.T) {
		stale := icon.Swell(cfg, geometry.SingleDirection(geometry.North))
		result, err := EnrichSurfSpot(cfg, SurfSpot{Swell: &stale})
		require.NoError(t, err)
		assert.Nil(t, result.Swell)
	})
}

func TestSerializeSurfSpot(t *testing.T) {
	processed := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	spot := SurfSpot{
		ID:          "spot-42",
		Name:        "Pipeline",
		BreakType:   "reef",
		Geo:         Geo{Lat: 21.665, Lon: -158.053},
		ProcessedAt: processed,
		RawPayload:  []byte("ignored"),
	}

	out, err := SerializeSurfSpot(spot)
	require.NoError(t, err)

	assert.Equal(t, []byte("spot-42"), out.Key)
	assert.Equal(t, "reef", out.Headers["break_type"])
	assert.Equal(t, processed.Format(time.RFC3339), out.Headers["processed_at"])
	assert.NotContains(t, string(out.Value), "ignored")

	var roundtrip SurfSpot
	require.NoError(t, json.Unmarshal(out.Value, &roundtrip))
	assert.Equal(t, spot.ID, roundtrip.ID)
	assert.Equal(t, spot.Geo, roundtrip.Geo)
}

func TestDirectionFieldError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &DirectionFieldError{Field: FieldWind, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "parse wind direction: boom", err.Error())
}
