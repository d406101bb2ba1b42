package test_test

import (
	"errors"
	"testing"

	"github.com/Pavel7004/goLinkerMap/internal/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	var err error
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("hello "))
	w.Write([]byte("world"))
	test.ExpectSuccess(t, w.Compare("hello world"))

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
