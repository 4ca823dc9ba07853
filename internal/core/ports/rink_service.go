package ports

import (
	"context"
	"time"
)

// RinkSnapshot is the display-facing view of one tracked customer, with the
// countdown already computed against the service clock.
type RinkSnapshot struct {
	CustomerNumber int           `json:"customer_number"`
	EntryTime      time.Time     `json:"entry_time"`
	ScheduledExit  time.Time     `json:"scheduled_exit"`
	TotalMinutes   int           `json:"total_minutes"`
	Paused         bool          `json:"paused"`
	Remaining      time.Duration `json:"-"`
}

// CheckInResult reports what a check-in did: a fresh record or a top-up of
// an existing one.
type CheckInResult struct {
	Snapshot RinkSnapshot
	TopUp    bool
}

// RinkService tracks timed rink check-ins for up to 999 customers, with
// pause/resume and live countdown computation. It is independent of the
// auth model.
type RinkService interface {
	// CheckIn starts tracking a customer, or tops up the pending time when
	// the number is already tracked (never resets the window).
	CheckIn(ctx context.Context, customerNumber, minutes int) (*CheckInResult, error)

	// CheckOut stops tracking a customer.
	CheckOut(ctx context.Context, customerNumber int) error

	// Inspect returns the live snapshot for one customer.
	Inspect(customerNumber int) (*RinkSnapshot, error)

	// TogglePause flips one customer's pause state.
	TogglePause(ctx context.Context, customerNumber int) (*RinkSnapshot, error)

	// TogglePauseAll pauses every record unless all are already paused, in
	// which case it resumes all. Returns true when the bulk action paused.
	TogglePauseAll(ctx context.Context) (paused bool, err error)

	// List returns live snapshots for every tracked customer, ordered by
	// customer number.
	List() []RinkSnapshot
}
