// Package domain models surf spot records published by the surf-spot web
// application and enriches them with condition icon geometry.
//
// # Data Source
//
// The web application publishes a spot record to the Kafka source topic
// whenever a spot is created or edited. Each message value is flat JSON:
//
//	{"id":"spot-42","name":"Pipeline","region":"Oahu","country":"US",
//	 "lat":21.6650,"lon":-158.0530,"break_type":"reef",
//	 "swell_direction":"NW-N","wind_direction":"SE"}
//
// # Direction Conventions
//
// Swell and wind preferences are direction ranges over the eight compass
// points, written "<start>-<end>" (clockwise from start to end) or a single
// point meaning that point plus one neighbour either side:
//
//	"NW-N"   swell from north-west round to north
//	"SE"     wind from east through south-east to south
//
// Tokens are case-sensitive. Surrounding whitespace is trimmed; anything else
// that is not a valid range fails the record with a [DirectionFieldError].
// An empty field means "no preference" and produces no icon.
//
// Break types are normalised to beach, reef, point or rivermouth. Unknown
// values are dropped rather than rejected.
//
// # ID Generation
//
// Records normally carry the web application's ID. When it is missing the ID
// is a deterministic SHA-256 of name|lat|lon so replays produce the same key.
// See [generateID].
package domain
