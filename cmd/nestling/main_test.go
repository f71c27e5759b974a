package main

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("NESTLING_TEST_KEY", "")
	if got := getEnv("NESTLING_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for empty value, got %q", got)
	}

	t.Setenv("NESTLING_TEST_KEY", "value")
	if got := getEnv("NESTLING_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %q", got)
	}
}

func TestMustLoadLocation(t *testing.T) {
	if got := mustLoadLocation("UTC"); got != time.UTC {
		t.Fatalf("expected UTC, got %v", got)
	}
	if got := mustLoadLocation("Not/AZone"); got != time.UTC {
		t.Fatalf("expected fallback to UTC for an invalid zone, got %v", got)
	}
}
