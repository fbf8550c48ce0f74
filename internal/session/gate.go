package session

import (
	"fmt"
	"time"
)

// Reason explains a gate decision so the caller can log why a live run
// was skipped instead of only seeing a boolean.
type Reason string

const (
	ReasonOpen         Reason = "OPEN"
	ReasonWeekend      Reason = "WEEKEND"
	ReasonOutsideHours Reason = "OUTSIDE_HOURS"
)

// Gate decides whether the instrument's official trading session is
// open at a given instant. Regular US equity hours: Mon-Fri,
// 09:30:00-16:00:00 in the exchange's home timezone, both ends inclusive.
type Gate struct {
	loc *time.Location
}

// NewGate builds a gate for the named timezone. An unrecognized name is
// a configuration error, raised here before the gate is ever consulted.
func NewGate(timezone string) (*Gate, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load market timezone %q: %w", timezone, err)
	}
	return &Gate{loc: loc}, nil
}

// Check reports whether the session is open at the given instant, plus
// the reason for the decision. Pure and deterministic, no I/O.
func (g *Gate) Check(now time.Time) (bool, Reason) {
	local := now.In(g.loc)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false, ReasonWeekend
	}

	secs := local.Hour()*3600 + local.Minute()*60 + local.Second()
	const open = 9*3600 + 30*60 // 09:30:00
	const close = 16 * 3600     // 16:00:00
	if secs < open || secs > close {
		return false, ReasonOutsideHours
	}
	return true, ReasonOpen
}

// Location exposes the gate's timezone, used to anchor daily indicator
// resets to the same calendar as the session check.
func (g *Gate) Location() *time.Location { return g.loc }
