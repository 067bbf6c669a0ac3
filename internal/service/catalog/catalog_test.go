package catalog

import (
	"testing"

	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	svc := NewService()

	entry, err := svc.Get("MacBook Pro M3")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, entry.UnitPrice)
	assert.Equal(t, 75.0, entry.EcoScore)
	assert.Equal(t, 5, entry.LifespanYears)

	_, err = svc.Get("Unknown Device")
	assert.ErrorIs(t, err, constants.ErrUnknownCategory)

	// Lookup is exact, no case folding.
	_, err = svc.Get("macbook pro m3")
	assert.ErrorIs(t, err, constants.ErrUnknownCategory)
}

func TestList(t *testing.T) {
	svc := NewService()

	listed := svc.List()
	require.Len(t, listed, 10)
	assert.Equal(t, "iPhone 15 Pro", listed[0].Category)
	assert.Equal(t, "Lenovo ThinkPad", listed[9].Category)

	// Mutating the returned slice must not leak into the service.
	listed[0].Category = "mutated"
	again := svc.List()
	assert.Equal(t, "iPhone 15 Pro", again[0].Category)
}
