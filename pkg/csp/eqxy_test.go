package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqXYPropagates(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(-2, 128, "y")
	require.NoError(t, err)

	require.NoError(t, m.Post(EqXY(x, y)))
	assert.Equal(t, 8, x.Min())
	assert.Equal(t, 128, x.Max())
	assert.Equal(t, 8, y.Min())
	assert.Equal(t, 128, y.Max())
}

func TestEqXYCPropagates(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(-2, 128, "y")
	require.NoError(t, err)

	require.NoError(t, m.Post(EqXYC(x, y, 2)))
	assert.Equal(t, 8, x.Min())
	assert.Equal(t, 130, x.Max())
	assert.Equal(t, 6, y.Min())
	assert.Equal(t, 128, y.Max())
}

func TestEqXCPropagates(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)

	require.NoError(t, m.Post(EqXC(x, 42)))
	assert.Equal(t, 42, x.Min())
	assert.Equal(t, 42, x.Max())
	assert.True(t, x.IsInstantiated())
}

func TestEqXCOutsideDomainFails(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)

	err = m.Post(EqXC(x, 300))
	assert.ErrorIs(t, err, ErrInconsistent)
	assert.True(t, m.Failed())
}

func TestNeqXCPropagates(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)

	require.NoError(t, m.Post(NeqXC(x, 9)))
	require.NoError(t, m.Post(NeqXC(x, 10)))
	require.NoError(t, m.Post(NeqXC(x, 8)))
	assert.Equal(t, 11, x.Min())
	assert.Equal(t, 255, x.Max())
}

func TestNeqXYCAgainstInstantiated(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(-2, -2, "y")
	require.NoError(t, err)

	require.NoError(t, m.Post(NeqXYC(x, y, 257)))
	assert.Equal(t, 8, x.Min())
	assert.Equal(t, 254, x.Max())
	assert.Equal(t, -2, y.Min())
	assert.Equal(t, -2, y.Max())
}

func TestNeqXYCPunchesHolesAndShiftsBounds(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(-2, 255, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(10, 10, "y")
	require.NoError(t, err)

	// interior removal: bounds stay, -1 becomes a hole
	require.NoError(t, m.Post(NeqXYC(x, y, -11)))
	assert.Equal(t, -2, x.Min())
	assert.Equal(t, 255, x.Max())
	assert.False(t, x.Contains(-1))

	// removal at the minimum skips over the fresh hole
	require.NoError(t, m.Post(NeqXYC(x, y, -12)))
	assert.Equal(t, 0, x.Min())
	assert.Equal(t, 255, x.Max())

	// removal at the maximum
	require.NoError(t, m.Post(NeqXYC(x, y, 245)))
	assert.Equal(t, 0, x.Min())
	assert.Equal(t, 254, x.Max())
}

func TestNeqXYWakesOnInstantiation(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(8, 255, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(-2, 128, "y")
	require.NoError(t, err)

	require.NoError(t, m.Post(NeqXY(x, y)))
	require.NoError(t, m.Post(EqXC(x, 128)))

	assert.Equal(t, 128, x.Min())
	assert.Equal(t, 128, x.Max())
	assert.Equal(t, -2, y.Min())
	assert.Equal(t, 127, y.Max())
}

func TestNeqXYBothOpenDoesNothing(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(0, 9, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(0, 9, "y")
	require.NoError(t, err)

	require.NoError(t, m.Post(NeqXY(x, y)))
	assert.Equal(t, 0, x.Min())
	assert.Equal(t, 9, x.Max())
	assert.Equal(t, 0, y.Min())
	assert.Equal(t, 9, y.Max())

	// the propagator stays subscribed on both instantiation slots
	assert.Equal(t, []int{0}, m.waitingOn(y.ID(), EventIns))
	assert.Equal(t, []int{0}, m.waitingOn(x.ID(), EventIns))
}

func TestNeqRetiresAfterFiring(t *testing.T) {
	m := newTestModel(t)
	x, err := m.NewVariable(0, 9, "x")
	require.NoError(t, err)
	y, err := m.NewVariable(0, 9, "y")
	require.NoError(t, err)

	require.NoError(t, m.Post(NeqXY(x, y)))
	require.NoError(t, m.Post(EqXC(x, 4)))

	assert.False(t, y.Contains(4))
	assert.Empty(t, m.waitingOn(x.ID(), EventIns))
	assert.Empty(t, m.waitingOn(y.ID(), EventIns))

	// later instantiation of y finds nobody waiting
	require.NoError(t, m.Post(EqXC(y, 7)))
	assert.Equal(t, 4, x.Min())
	assert.Equal(t, 4, x.Max())
}
