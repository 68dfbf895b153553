package geometry

import "fmt"

// InvalidDirectionError reports a token that is not one of the eight compass
// direction names.
type InvalidDirectionError struct {
	Input string // full range string, empty when a single token was parsed
	Token string
}

func (e *InvalidDirectionError) Error() string {
	if e.Input == "" || e.Input == e.Token {
		return fmt.Sprintf("invalid direction %q", e.Token)
	}
	return fmt.Sprintf("invalid direction %q in range %q", e.Token, e.Input)
}
