package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attempts to enrich a spot with geocoding data.
// If geocoder is nil or geocoding fails, the spot is returned with
// GeoSource set accordingly (graceful degradation).
func EnrichWithGeocoding(ctx context.Context, spot SurfSpot, geocoder Geocoder, logger *slog.Logger) SurfSpot {
	if geocoder == nil {
		return spot
	}

	hasCoords := spot.Geo.Lat != 0 || spot.Geo.Lon != 0

	// Forward geocode: spot name → coordinates (when coords are missing).
	if !hasCoords && spot.Name != "" {
		result, err := geocoder.ForwardGeocode(ctx, spot.Name, spot.Region)
		if err != nil {
			logger.Warn("forward geocoding failed",
				"spot_id", spot.ID,
				"name", spot.Name,
				"region", spot.Region,
				"error", err,
			)
			spot.GeoSource = "failed"
			return spot
		}
		if result.Lat != 0 || result.Lon != 0 {
			spot.Geo.Lat = result.Lat
			spot.Geo.Lon = result.Lon
			spot.FormattedAddress = result.FormattedAddress
			spot.PlaceName = result.PlaceName
			spot.GeoConfidence = result.Confidence
			spot.GeoSource = "forward"
			return spot
		}
		spot.GeoSource = "original"
		return spot
	}

	// Reverse geocode: coordinates → nearest place (when coords are present).
	if hasCoords {
		result, err := geocoder.ReverseGeocode(ctx, spot.Geo.Lat, spot.Geo.Lon)
		if err != nil {
			logger.Warn("reverse geocoding failed",
				"spot_id", spot.ID,
				"lat", spot.Geo.Lat,
				"lon", spot.Geo.Lon,
				"error", err,
			)
			spot.GeoSource = "failed"
			return spot
		}
		if result.FormattedAddress != "" {
			spot.FormattedAddress = result.FormattedAddress
			spot.PlaceName = result.PlaceName
			spot.GeoConfidence = result.Confidence
			spot.GeoSource = "reverse"
			return spot
		}
		spot.GeoSource = "original"
		return spot
	}

	spot.GeoSource = "original"
	return spot
}
