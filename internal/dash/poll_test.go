package dash

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCadencePeriods(t *testing.T) {
	assert.Equal(t, 30*time.Second, cadenceIdle.period())
	assert.Equal(t, 5*time.Second, cadenceActive.period())
}

func TestInitialStatusProgramsCadence(t *testing.T) {
	m := newTestModel(&stubService{})
	m, cmd := apply(t, m, monitorStatusMsg{running: true})
	require.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Equal(t, cadenceActive, m.cadence)

	m = newTestModel(&stubService{})
	m, cmd = apply(t, m, monitorStatusMsg{running: false})
	require.NotNil(t, cmd)
	assert.False(t, m.running)
	assert.Equal(t, cadenceIdle, m.cadence)
}

func TestStatusQueryFailurePresumesIdle(t *testing.T) {
	m := newTestModel(&stubService{})
	m, cmd := apply(t, m, monitorStatusMsg{err: errors.New("connection refused")})

	// Logged only: polling still starts and no notification is raised.
	require.NotNil(t, cmd)
	assert.False(t, m.running)
	assert.Equal(t, cadenceIdle, m.cadence)
	assert.Empty(t, m.notice.text)
}

func TestStaleTickIsDropped(t *testing.T) {
	m := newTestModel(&stubService{})
	m, _ = apply(t, m, monitorStatusMsg{running: true})
	staleGen := m.pollGen

	m, _ = apply(t, m, monitorStoppedMsg{})
	require.NotEqual(t, staleGen, m.pollGen)

	// A tick from the superseded chain neither reloads nor reschedules.
	_, cmd := apply(t, m, pollTickMsg{gen: staleGen})
	assert.Nil(t, cmd)

	// The live chain keeps going.
	_, cmd = apply(t, m, pollTickMsg{gen: m.pollGen})
	assert.NotNil(t, cmd)
}

func TestStartThenStopReturnsIdleCadence(t *testing.T) {
	m := newTestModel(&stubService{})
	m, _ = apply(t, m, monitorStatusMsg{running: false})

	m, _ = apply(t, m, monitorStartedMsg{interval: 60})
	assert.True(t, m.running)
	assert.Equal(t, cadenceActive, m.cadence)

	m, _ = apply(t, m, monitorStoppedMsg{})
	assert.False(t, m.running)
	assert.Equal(t, cadenceIdle, m.cadence)
}
