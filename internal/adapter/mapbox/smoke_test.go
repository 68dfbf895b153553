//go:build mapbox

package mapbox

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real Mapbox API and require a valid MAPBOX_TOKEN env var.
// Run with: go test -tags=mapbox ./internal/adapter/mapbox/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		t.Fatal("MAPBOX_TOKEN must be set to run smoke tests")
	}
	return NewClient(token, 10*time.Second, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_ForwardGeocode(t *testing.T) {
	c := smokeClient(t)

	result, err := c.ForwardGeocode(context.Background(), "Huntington Beach", "California")
	require.NoError(t, err)

	assert.InDelta(t, 33.66, result.Lat, 0.2, "lat should be near Huntington Beach")
	assert.InDelta(t, -118.0, result.Lon, 0.2, "lon should be near Huntington Beach")
	assert.Contains(t, result.FormattedAddress, "Huntington Beach")
	assert.Greater(t, result.Confidence, 0.5)
}

func TestSmoke_ReverseGeocode(t *testing.T) {
	c := smokeClient(t)

	// Pipeline, North Shore of Oahu
	result, err := c.ReverseGeocode(context.Background(), 21.665, -158.053)
	require.NoError(t, err)

	assert.NotEmpty(t, result.FormattedAddress)
	assert.NotEmpty(t, result.PlaceName)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestSmoke_ForwardGeocode_LowRelevance(t *testing.T) {
	c := smokeClient(t)

	// Fuzzy matching may still return something for nonsense; only check for no error.
	_, err := c.ForwardGeocode(context.Background(), "XYZNONEXISTENT99", "ZZ")
	require.NoError(t, err)
}

func TestSmoke_CachedGeocoder(t *testing.T) {
	c := smokeClient(t)
	cached, err := NewCachedGeocoder(c, 10, observability.NewMetricsForTesting())
	require.NoError(t, err)

	r1, err := cached.ForwardGeocode(context.Background(), "Santa Cruz", "California")
	require.NoError(t, err)
	assert.Contains(t, r1.FormattedAddress, "Santa Cruz")

	r2, err := cached.ForwardGeocode(context.Background(), "Santa Cruz", "California")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
