package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "foreign key violation becomes referential violation",
			err:      &pq.Error{Code: "23503"},
			wantKind: KindReferentialViolation,
			wantMsg:  "Unprocessable entity",
		},
		{
			name:     "undefined column becomes invalid query",
			err:      &pq.Error{Code: "42703"},
			wantKind: KindInvalidQuery,
			wantMsg:  "Invalid query parameter",
		},
		{
			name:     "already classified error passes through",
			err:      NotFound("Article not found"),
			wantKind: KindNotFound,
			wantMsg:  "Article not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if KindOf(got) != tt.wantKind {
				t.Errorf("Classify() kind = %v, want %v", KindOf(got), tt.wantKind)
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Classify() message = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClassifyPassthrough(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}

	// Unrecognized pq codes and plain errors are not re-tagged
	unrelated := &pq.Error{Code: "53300"}
	if got := Classify(unrelated); got != unrelated {
		t.Errorf("Classify() rewrapped an unrecognized pq error: %v", got)
	}

	plain := errors.New("connection refused")
	if got := Classify(plain); got != plain {
		t.Errorf("Classify() rewrapped a plain error: %v", got)
	}
	if KindOf(Classify(plain)) != KindUnknown {
		t.Error("a plain error should stay unclassified")
	}
}

func TestClassifyWrappedPqError(t *testing.T) {
	wrapped := fmt.Errorf("inserting comment: %w", &pq.Error{Code: "23503"})
	if KindOf(Classify(wrapped)) != KindReferentialViolation {
		t.Error("Classify should see through wrapped pq errors")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", InvalidID("Invalid article id"), http.StatusBadRequest},
		{"invalid query", InvalidQuery("Invalid order query"), http.StatusBadRequest},
		{"invalid vote delta", InvalidVoteDelta("inc_votes must be a number"), http.StatusBadRequest},
		{"invalid comment", InvalidComment("You can't post an empty comment!"), http.StatusBadRequest},
		{"not found", NotFound("Comment not found"), http.StatusNotFound},
		{"referential violation", ReferentialViolation("Unprocessable entity"), http.StatusUnprocessableEntity},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("listing articles: %w", NotFound("Topic not found"))
	if KindOf(err) != KindNotFound {
		t.Error("KindOf should unwrap classified errors")
	}
}
