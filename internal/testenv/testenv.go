package testenv

import (
	"os"
	"testing"
)

func Slow(t *testing.T) {
	t.Helper()
	if os.Getenv("TUPLE_SLOW") == "" {
		t.Skip("skipping slow tests: set TUPLE_SLOW environment variable to run")
	}
}
