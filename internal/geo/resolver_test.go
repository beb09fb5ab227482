package geo

import (
	"errors"
	"testing"
)

func TestResolver_Unconfigured(t *testing.T) {
	r := NewResolver("")

	if r.Configured() {
		t.Error("resolver without an API key must report unconfigured")
	}
	if _, err := r.Resolve("Paris", "FR"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
