package usecase

import "time"

// BusinessHoursGate decides whether campaign activity is permitted right now.
// Hours are compared in one reference time zone, not the server's.
type BusinessHoursGate struct {
	loc          *time.Location
	defaultStart int
	defaultEnd   int
	now          func() time.Time
}

// NewBusinessHoursGate returns a gate for loc. defaultStart and defaultEnd
// form the window used when a campaign declares none or an invalid one. A
// nil now uses time.Now.
func NewBusinessHoursGate(loc *time.Location, defaultStart, defaultEnd int, now func() time.Time) *BusinessHoursGate {
	if now == nil {
		now = time.Now
	}
	if !validWindow(defaultStart, defaultEnd) {
		defaultStart, defaultEnd = 8, 18
	}
	return &BusinessHoursGate{loc: loc, defaultStart: defaultStart, defaultEnd: defaultEnd, now: now}
}

// Now returns the current time in the reference zone.
func (g *BusinessHoursGate) Now() time.Time {
	return g.now().In(g.loc)
}

// Location returns the reference zone.
func (g *BusinessHoursGate) Location() *time.Location {
	return g.loc
}

// Window resolves a campaign's declared hours. A missing bound is taken from
// the default window; a pair that still does not form a window falls back to
// the default window entirely.
func (g *BusinessHoursGate) Window(start, end *int) (int, int) {
	s, e := g.defaultStart, g.defaultEnd
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	if !validWindow(s, e) {
		return g.defaultStart, g.defaultEnd
	}
	return s, e
}

// Allowed reports whether the current reference-zone hour lies in
// [start, end) for the given campaign window.
func (g *BusinessHoursGate) Allowed(start, end *int) bool {
	s, e := g.Window(start, end)
	return WithinHours(g.Now().Hour(), s, e)
}

// Open reports whether the default window is open right now.
func (g *BusinessHoursGate) Open() bool {
	return WithinHours(g.Now().Hour(), g.defaultStart, g.defaultEnd)
}

// WithinHours reports whether hour lies in the half-open window [start, end).
func WithinHours(hour, start, end int) bool {
	return hour >= start && hour < end
}

func validWindow(start, end int) bool {
	return start >= 0 && start <= 23 && end >= 1 && end <= 24 && start < end
}
