package markup

import (
	"errors"
	"testing"
)

func expectHTML(t *testing.T, r interface{ HTML() string }, want string) {
	t.Helper()
	if got := r.HTML(); got != want {
		t.Errorf("HTML() =\n  %q\nwant\n  %q", got, want)
	}
}

func expectErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want %v", err, target)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
