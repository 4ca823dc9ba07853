package domain

import (
	"errors"
	"time"
)

// Customer numbers double as display identity on the rink board; the valid
// range caps how many customers can be tracked at once.
const (
	MinCustomerNumber = 1
	MaxCustomerNumber = 999
)

var (
	ErrInvalidCustomerNumber = errors.New("customer number must be between 1 and 999")
	ErrInvalidSkateMinutes   = errors.New("skate minutes must be positive")
	ErrCustomerNotFound      = errors.New("customer not on the rink")
)

// ValidCustomerNumber reports whether n is in the accepted 1–999 range.
func ValidCustomerNumber(n int) bool {
	return n >= MinCustomerNumber && n <= MaxCustomerNumber
}

// RinkRecord tracks one customer's purchased skating time.
//
// A record is either running (ScheduledExit is live, RemainingOnPause stale)
// or paused (RemainingOnPause is the frozen countdown, ScheduledExit stale).
// The two interpretations are never mixed.
type RinkRecord struct {
	CustomerNumber   int           `json:"customer_number"`
	EntryTime        time.Time     `json:"entry_time"`
	ScheduledExit    time.Time     `json:"scheduled_exit"`
	TotalMinutes     int           `json:"total_minutes"`
	Paused           bool          `json:"paused"`
	RemainingOnPause time.Duration `json:"remaining_on_pause"`
	PauseStartedAt   *time.Time    `json:"pause_started_at,omitempty"`
}

// NewRinkRecord starts tracking a customer checked in at now for the given
// number of minutes.
func NewRinkRecord(number, minutes int, now time.Time) RinkRecord {
	return RinkRecord{
		CustomerNumber: number,
		EntryTime:      now,
		ScheduledExit:  now.Add(time.Duration(minutes) * time.Minute),
		TotalMinutes:   minutes,
	}
}

// Remaining returns the live countdown value. Negative when the purchased
// window has already elapsed.
func (r RinkRecord) Remaining(now time.Time) time.Duration {
	if r.Paused {
		return r.RemainingOnPause
	}
	return r.ScheduledExit.Sub(now)
}

// TopUp adds minutes to an existing record, preserving whatever time is still
// pending. While paused the frozen countdown is extended directly; while
// running the exit is recomputed from remaining+added so the pending window
// is added to, not reset.
func (r *RinkRecord) TopUp(minutes int, now time.Time) {
	added := time.Duration(minutes) * time.Minute
	if r.Paused {
		r.RemainingOnPause += added
	} else {
		r.ScheduledExit = now.Add(r.ScheduledExit.Sub(now) + added)
	}
	r.TotalMinutes += minutes
}

// Pause freezes the countdown. No-op when already paused.
func (r *RinkRecord) Pause(now time.Time) {
	if r.Paused {
		return
	}
	r.RemainingOnPause = r.ScheduledExit.Sub(now)
	r.Paused = true
	t := now
	r.PauseStartedAt = &t
}

// Resume restarts the countdown from the frozen remaining value: the exit is
// rebuilt as now+remaining, which is the stale exit shifted forward by the
// paused duration, plus any minutes topped up while paused. No-op when
// running.
func (r *RinkRecord) Resume(now time.Time) {
	if !r.Paused {
		return
	}
	r.ScheduledExit = now.Add(r.RemainingOnPause)
	r.Paused = false
	r.PauseStartedAt = nil
	r.RemainingOnPause = 0
}
