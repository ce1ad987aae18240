package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCurrent(t *testing.T) {
	e := New()
	m := NewManager(e)
	assert.Same(t, e, m.Current())
}

func TestManagerResetSwapsEngine(t *testing.T) {
	seeded, err := NewSeeded()
	require.NoError(t, err)
	m := NewManager(seeded)

	_, err = m.Current().Allocate(testRequest(30))
	require.NoError(t, err)
	require.Equal(t, 1, m.Current().Stats().TotalBookings)

	fresh, err := m.Reset()
	require.NoError(t, err)

	assert.Same(t, fresh, m.Current())
	assert.NotSame(t, seeded, m.Current(), "reset must build a new engine, not clear the old one")
	assert.Equal(t, 7, m.Current().RoomCount())
	assert.Zero(t, m.Current().Stats().TotalBookings)

	assert.Equal(t, 1, seeded.Stats().TotalBookings, "the replaced engine is untouched")
}
