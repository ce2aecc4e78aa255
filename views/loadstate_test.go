package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadStateOnlyFailedCarriesError(t *testing.T) {
	var zero LoadState
	assert.Equal(t, Idle, zero.Phase())
	assert.Empty(t, zero.Error())

	assert.True(t, loading().IsLoading())
	assert.Empty(t, loading().Error())
	assert.Empty(t, loaded().Error())

	f := failed("boom")
	assert.False(t, f.IsLoading())
	assert.Equal(t, "boom", f.Error())
	assert.Equal(t, "failed", f.Phase().String())
}
