// Package validation holds the pure parameter checks run before any
// storage access. Nothing here touches the database.
package validation

import (
	"encoding/json"
	"strconv"
)

// IsValidID reports whether raw parses as a numeric identifier.
// Identifiers are integer primary keys, so non-integer input is
// rejected here rather than by the storage layer.
func IsValidID(raw string) bool {
	_, ok := ParseID(raw)
	return ok
}

// ParseID returns the numeric value of an identifier path segment
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParseCount parses a page or limit query value
func ParseCount(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsValidSortOrder reports whether order is absent, "asc" or "desc"
func IsValidSortOrder(order string) bool {
	return order == "" || order == "asc" || order == "desc"
}

// IsValidVoteDelta reports whether the decoded JSON value v is
// numeric-coercible. Integers, floats and numeric strings are accepted.
func IsValidVoteDelta(v any) bool {
	_, ok := VoteDelta(v)
	return ok
}

// VoteDelta coerces a decoded JSON value to an integer vote delta.
// Floats are truncated, since votes is an integer accumulator.
func VoteDelta(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}
