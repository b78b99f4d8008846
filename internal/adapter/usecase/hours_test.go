package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinHours(t *testing.T) {
	tests := []struct {
		hour, start, end int
		want             bool
	}{
		{hour: 7, start: 8, end: 18, want: false},
		{hour: 8, start: 8, end: 18, want: true},
		{hour: 17, start: 8, end: 18, want: true},
		{hour: 18, start: 8, end: 18, want: false},
		{hour: 23, start: 0, end: 24, want: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WithinHours(tt.hour, tt.start, tt.end), "hour %d in [%d,%d)", tt.hour, tt.start, tt.end)
	}
}

func TestGateWindowFallsBackToDefault(t *testing.T) {
	g := NewBusinessHoursGate(time.UTC, 8, 18, nil)

	tests := []struct {
		name       string
		start, end *int
		wantStart  int
		wantEnd    int
	}{
		{name: "unset", wantStart: 8, wantEnd: 18},
		{name: "declared", start: ptr(6), end: ptr(20), wantStart: 6, wantEnd: 20},
		{name: "only start", start: ptr(10), wantStart: 10, wantEnd: 18},
		{name: "midnight start is valid", start: ptr(0), end: ptr(5), wantStart: 0, wantEnd: 5},
		{name: "inverted", start: ptr(20), end: ptr(10), wantStart: 8, wantEnd: 18},
		{name: "empty", start: ptr(9), end: ptr(9), wantStart: 8, wantEnd: 18},
		{name: "out of range", start: ptr(-1), end: ptr(30), wantStart: 8, wantEnd: 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := g.Window(tt.start, tt.end)
			assert.Equal(t, tt.wantStart, s)
			assert.Equal(t, tt.wantEnd, e)
		})
	}
}

func TestGateUsesReferenceZone(t *testing.T) {
	loc := chicago(t)

	// 14:00 UTC is 09:00 CDT.
	morning := NewBusinessHoursGate(loc, 8, 18, func() time.Time {
		return time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)
	})
	assert.True(t, morning.Open())
	assert.Equal(t, 9, morning.Now().Hour())
	assert.False(t, morning.Allowed(ptr(10), ptr(12)))

	// 23:30 UTC is 18:30 CDT.
	evening := NewBusinessHoursGate(loc, 8, 18, func() time.Time {
		return time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	})
	assert.False(t, evening.Open())
	assert.False(t, evening.Allowed(nil, nil))
	assert.True(t, evening.Allowed(ptr(18), ptr(22)))
}

func TestGateRejectsInvalidDefault(t *testing.T) {
	g := NewBusinessHoursGate(time.UTC, 18, 8, nil)
	s, e := g.Window(nil, nil)
	assert.Equal(t, 8, s)
	assert.Equal(t, 18, e)
}
