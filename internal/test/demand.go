package test

import "testing"

func DemandEquality[T comparable](t *testing.T, v T, expected T) {
	t.Helper()
	if v != expected {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expected)
	}
}

func DemandSuccess(t *testing.T, v any) {
	t.Helper()
	if !ExpectSuccess(t, v) {
		t.FailNow()
	}
}

func DemandFailure(t *testing.T, v any) {
	t.Helper()
	if !ExpectFailure(t, v) {
		t.FailNow()
	}
}
