// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and let the test continue. The Demand
// functions stop the test immediately.
package test

import (
	"reflect"
	"testing"
)

// ExpectEquality fails the test if v is not equal to expected.
func ExpectEquality[T comparable](t *testing.T, v T, expected T) bool {
	t.Helper()
	if v != expected {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expected)
		return false
	}
	return true
}

// ExpectDeepEquality is ExpectEquality for slices, maps and structs holding
// them.
func ExpectDeepEquality(t *testing.T, v any, expected any) bool {
	t.Helper()
	if !reflect.DeepEqual(v, expected) {
		t.Errorf("deep equality test of type %T failed:\n got: %#v\nwant: %#v", v, v, expected)
		return false
	}
	return true
}

// ExpectSuccess tests v for a success condition suitable for its type:
//
//	bool -> bool == true
//	error -> error == nil
//
// A nil value is a success.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectFailure tests v for a failure condition suitable for its type:
//
//	bool -> bool == false
//	error -> error != nil
//
// A nil value is not a failure.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}

	case nil:
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}
