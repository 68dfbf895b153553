// Command genmock runs the seed spot records through the real domain
// transformation and writes the enriched fixture consumed by downstream test
// suites. A fixed clock keeps ProcessedAt reproducible.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -in data/mock/surf_spots.json \
//	  -out data/mock/surf_spots_enriched.json \
//	  -icon-config icons.yaml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/surf-spot-etl/internal/domain"
	"github.com/couchcryptid/surf-spot-etl/internal/icon"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// fixtureTime is the ProcessedAt stamped on every generated spot; cmd/validate
// uses the same instant.
var fixtureTime = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "data/mock/surf_spots.json", "seed spot records (JSON array)")
	out := flag.String("out", "", "output path for the enriched fixture")
	iconConfig := flag.String("icon-config", "", "optional YAML or TOML icon config")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	fs := afero.NewOsFs()
	cfg, err := icon.LoadConfig(fs, *iconConfig)
	if err != nil {
		return err
	}

	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	data, err := afero.ReadFile(fs, *in)
	if err != nil {
		return fmt.Errorf("read seed records: %w", err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode seed records: %w", err)
	}

	spots := make([]domain.SurfSpot, 0, len(records))
	for i, rec := range records {
		spot, err := domain.ParseRawEvent(domain.RawEvent{Value: rec})
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		spot, err = domain.EnrichSurfSpot(cfg, spot)
		if err != nil {
			return fmt.Errorf("record %d (%s): %w", i, spot.ID, err)
		}
		spots = append(spots, spot)
	}
	log.Printf("transformed %d spots", len(spots))

	if err := writeJSON(fs, *out, spots); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(spots)
	return nil
}

func writeJSON(fs afero.Fs, path string, v any) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return afero.WriteFile(fs, path, data, 0o600)
}

// printStats prints the counts the fixture-driven tests assert on.
func printStats(spots []domain.SurfSpot) {
	breaks := map[string]int{}
	var wrapped, withWind, withSwell int
	for i := range spots {
		s := &spots[i]
		breaks[s.BreakType]++
		if s.Swell != nil {
			withSwell++
			if s.Swell.Wrapped {
				wrapped++
			}
		}
		if s.Wind != nil {
			withWind++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(spots))
	fmt.Printf("With swell icon: %d (wrapped: %d)\n", withSwell, wrapped)
	fmt.Printf("With wind icon: %d\n", withWind)

	names := make([]string, 0, len(breaks))
	for b := range breaks {
		names = append(names, b)
	}
	sort.Strings(names)
	fmt.Print("Break types:")
	for _, b := range names {
		label := b
		if label == "" {
			label = "<unknown>"
		}
		fmt.Printf(" %s=%d", label, breaks[b])
	}
	fmt.Println()
}
