package domain

import "github.com/jonboulle/clockwork"

// clock stamps ProcessedAt on enriched spots.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used by EnrichSurfSpot. Pass nil to restore
// the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}
