// Command validate checks the spot fixtures end to end: seed records parse,
// the enriched fixture matches a fresh transformation, and every generated
// path is well-formed SVG with the expected arc flags.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -raw data/mock/surf_spots.json \
//	  -enriched data/mock/surf_spots_enriched.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/domain"
	"github.com/couchcryptid/surf-spot-etl/internal/geometry"
	"github.com/couchcryptid/surf-spot-etl/internal/icon"
	"github.com/couchcryptid/surf-spot-etl/internal/svgpath"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// fixtureTime matches cmd/genmock.
var fixtureTime = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	rawPath := flag.String("raw", "data/mock/surf_spots.json", "seed spot records")
	enrichedPath := flag.String("enriched", "", "enriched fixture written by genmock")
	iconConfig := flag.String("icon-config", "", "icon config used when the fixture was generated")
	flag.Parse()

	if *enrichedPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(run(afero.NewOsFs(), *rawPath, *enrichedPath, *iconConfig))
}

func run(fs afero.Fs, rawPath, enrichedPath, iconConfig string) int {
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	fmt.Println("=== Surf Spot Fixture Validation ===")
	fmt.Println()

	cfg, err := icon.LoadConfig(fs, iconConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}
	raw, err := loadJSON[json.RawMessage](fs, rawPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw records: %v\n", err)
		return 1
	}
	enriched, err := loadJSON[domain.SurfSpot](fs, enrichedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load enriched fixture: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateRawRecords(raw),
		validateEnrichment(cfg, raw, enriched),
		validatePaths(enriched),
		validateSelector(cfg),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d raw, %d enriched\n", len(raw), len(enriched))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](fs afero.Fs, path string) ([]T, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Raw records ──

func validateRawRecords(raw []json.RawMessage) *phase {
	p := &phase{name: "Phase 1: Raw Records"}
	for i, r := range raw {
		spot, err := domain.ParseRawEvent(domain.RawEvent{Value: r})
		if err != nil {
			p.errorf("record %d: %v", i, err)
			continue
		}
		if spot.Name == "" {
			p.errorf("record %d (%s): name is empty", i, spot.ID)
		}
		if math.Abs(spot.Geo.Lat) > 90 || math.Abs(spot.Geo.Lon) > 180 {
			p.errorf("record %d (%s): coordinates out of range (%g, %g)", i, spot.ID, spot.Geo.Lat, spot.Geo.Lon)
		}
		for field, value := range map[string]string{domain.FieldSwell: spot.SwellDirection, domain.FieldWind: spot.WindDirection} {
			if value == "" {
				continue
			}
			if _, err := geometry.ParseRange(value); err != nil {
				p.errorf("record %d (%s): %s: %v", i, spot.ID, field, err)
			}
		}
	}
	return p
}

// ── Phase 2: Enrichment parity ──

func validateEnrichment(cfg icon.Config, raw []json.RawMessage, enriched []domain.SurfSpot) *phase {
	p := &phase{name: "Phase 2: Enrichment Parity"}

	byID := make(map[string]*domain.SurfSpot, len(enriched))
	for i := range enriched {
		byID[enriched[i].ID] = &enriched[i]
	}
	if len(enriched) != len(raw) {
		p.errorf("count: %d raw records, %d enriched spots", len(raw), len(enriched))
	}

	for i, r := range raw {
		spot, err := domain.ParseRawEvent(domain.RawEvent{Value: r})
		if err != nil {
			continue // reported in phase 1
		}
		want, err := domain.EnrichSurfSpot(cfg, spot)
		if err != nil {
			continue
		}
		got, ok := byID[want.ID]
		if !ok {
			p.errorf("record %d: ID %q not found in enriched fixture", i, want.ID)
			continue
		}
		compareSpots(p, want, got)
	}
	return p
}

func compareSpots(p *phase, want domain.SurfSpot, got *domain.SurfSpot) {
	id := want.ID
	if got.Name != want.Name {
		p.errorf("ID %s: name: expected %q, got %q", id, want.Name, got.Name)
	}
	if got.BreakType != want.BreakType {
		p.errorf("ID %s: break_type: expected %q, got %q", id, want.BreakType, got.BreakType)
	}

	switch {
	case (want.Swell == nil) != (got.Swell == nil):
		p.errorf("ID %s: swell icon presence mismatch", id)
	case want.Swell != nil:
		if got.Swell.Wrapped != want.Swell.Wrapped {
			p.errorf("ID %s: swell wrapped: expected %t, got %t", id, want.Swell.Wrapped, got.Swell.Wrapped)
		}
		if len(got.Swell.Rings) != len(want.Swell.Rings) {
			p.errorf("ID %s: swell rings: expected %d, got %d", id, len(want.Swell.Rings), len(got.Swell.Rings))
			break
		}
		for k := range want.Swell.Rings {
			if got.Swell.Rings[k] != want.Swell.Rings[k] {
				p.errorf("ID %s: swell ring %d: expected %q, got %q", id, k, want.Swell.Rings[k], got.Swell.Rings[k])
			}
		}
	}

	switch {
	case (want.Wind == nil) != (got.Wind == nil):
		p.errorf("ID %s: wind icon presence mismatch", id)
	case want.Wind != nil:
		if math.Abs(got.Wind.Rotation-want.Wind.Rotation) > 1e-9 {
			p.errorf("ID %s: wind rotation: expected %g, got %g", id, want.Wind.Rotation, got.Wind.Rotation)
		}
	}
}

// ── Phase 3: Path geometry ──

func validatePaths(spots []domain.SurfSpot) *phase {
	p := &phase{name: "Phase 3: SVG Path Geometry"}
	for i := range spots {
		s := &spots[i]
		if s.Swell == nil {
			continue
		}
		wantLarge := clockwiseSpan(s.Swell.Start, s.Swell.End) > 180
		for k, ring := range s.Swell.Rings {
			flags, err := svgpath.ArcFlags(ring)
			if err != nil {
				p.errorf("ID %s ring %d: %v", s.ID, k, err)
				continue
			}
			if len(flags) != 1 {
				p.errorf("ID %s ring %d: expected 1 arc, found %d", s.ID, k, len(flags))
				continue
			}
			if flags[0].Sweep {
				p.errorf("ID %s ring %d: sweep flag must be 0", s.ID, k)
			}
			if flags[0].LargeArc != wantLarge {
				p.errorf("ID %s ring %d: large-arc flag %t for range %s", s.ID, k, flags[0].LargeArc, s.Swell.Range)
			}
		}
	}
	return p
}

// clockwiseSpan returns the degrees swept clockwise from start to end.
func clockwiseSpan(start, end geometry.CompassAngle) float64 {
	return math.Mod(float64(end-start)+360, 360)
}

// ── Phase 4: Selector ──

func validateSelector(cfg icon.Config) *phase {
	p := &phase{name: "Phase 4: Direction Selector"}
	segments := icon.Selector(cfg)
	if len(segments) != len(geometry.Directions()) {
		p.errorf("expected %d segments, got %d", len(geometry.Directions()), len(segments))
	}
	for _, seg := range segments {
		flags, err := svgpath.ArcFlags(seg.Path)
		if err != nil {
			p.errorf("%s: %v", seg.Direction, err)
			continue
		}
		if len(flags) != 1 || flags[0].LargeArc || flags[0].Sweep {
			p.errorf("%s: unexpected arc flags %+v", seg.Direction, flags)
		}
	}
	return p
}
