package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}

	err := fmt.Errorf("storage not initialized")
	if got := Format(err); got != "Error: storage not initialized" {
		t.Errorf("unexpected format: %q", got)
	}
}

func TestFatal_NilIsNoOp(t *testing.T) {
	// Fatal sits on every command's return path, so nil must not exit.
	Fatal(nil)
}

func TestFormatf(t *testing.T) {
	got := Formatf("unknown block id: %s", "siesta")
	if got != "Error: unknown block id: siesta" {
		t.Errorf("unexpected format: %q", got)
	}
}
