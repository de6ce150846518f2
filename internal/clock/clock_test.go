package clock_test

import (
	"testing"
	"time"

	"github.com/AndrewDonelson/sera/internal/clock"
	"github.com/stretchr/testify/assert"
)

func TestReal_Now(t *testing.T) {
	before := time.Now()
	got := clock.Real{}.Now()
	after := time.Now()
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestMock(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := clock.NewMock(start)
	assert.Equal(t, start, m.Now())

	m.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), m.Now())

	reset := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	m.Set(reset)
	assert.Equal(t, reset, m.Now())
}

func TestMock_ZeroTimeDefault(t *testing.T) {
	m := clock.NewMock(time.Time{})
	assert.False(t, m.Now().IsZero())
}
