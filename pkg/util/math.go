package util

import (
	"strconv"
)

// MustParseFloat parses a decimal string from a provider payload.
// Malformed numbers from an API are a programming error, not a user
// error, so this panics instead of returning.
func MustParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}

	return v
}
