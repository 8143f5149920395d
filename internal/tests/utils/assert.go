package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal fails the test when got and want differ.
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	assert.Equal(t, want, got)
}

// NilError fails the test when err is non-nil.
func NilError(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}
