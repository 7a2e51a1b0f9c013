package validation

import (
	"encoding/json"
	"testing"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"simple numeric id", "7", true},
		{"large id", "123456789012", true},
		{"zero", "0", true},
		{"negative id parses", "-3", true},
		{"word", "bananas", false},
		{"empty string", "", false},
		{"float id", "7.5", false},
		{"trailing garbage", "7abc", false},
		{"whitespace", " 7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.raw); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	if !ok {
		t.Fatal("ParseID(\"42\") should succeed")
	}
	if id != 42 {
		t.Errorf("ParseID(\"42\") = %d, want 42", id)
	}

	if _, ok := ParseID("not-an-id"); ok {
		t.Error("ParseID(\"not-an-id\") should fail")
	}
}

func TestIsValidSortOrder(t *testing.T) {
	tests := []struct {
		name  string
		order string
		want  bool
	}{
		{"absent order", "", true},
		{"ascending", "asc", true},
		{"descending", "desc", true},
		{"uppercase rejected", "ASC", false},
		{"arbitrary word", "sideways", false},
		{"sql fragment", "desc; DROP TABLE articles", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSortOrder(tt.order); got != tt.want {
				t.Errorf("IsValidSortOrder(%q) = %v, want %v", tt.order, got, tt.want)
			}
		})
	}
}

func TestVoteDelta(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{"json number", float64(5), 5, true},
		{"negative", float64(-200), -200, true},
		{"float truncated", float64(1.9), 1, true},
		{"numeric string", "12", 12, true},
		{"float string", "-3.7", -3, true},
		{"json.Number", json.Number("8"), 8, true},
		{"missing value", nil, 0, false},
		{"word", "cat", 0, false},
		{"bool", true, 0, false},
		{"object", map[string]any{"x": 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VoteDelta(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("VoteDelta(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("VoteDelta(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsValidVoteDelta(t *testing.T) {
	if !IsValidVoteDelta(float64(3)) {
		t.Error("a number should be a valid vote delta")
	}
	if IsValidVoteDelta(nil) {
		t.Error("a missing value is not a valid vote delta")
	}
	if IsValidVoteDelta("lots") {
		t.Error("a non-numeric string is not a valid vote delta")
	}
}
