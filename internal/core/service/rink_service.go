package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

const refreshInterval = time.Second

// RinkService tracks timed check-ins with pause/resume semantics. Records are
// held in memory behind a mutex (request handlers and the refresh ticker
// must never observe a partial mutation) and written through to the durable
// store before each in-memory commit, so a persistence failure leaves the
// tracked state untouched.
type RinkService struct {
	mu      sync.Mutex
	records map[int]domain.RinkRecord

	repo ports.RinkRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewRinkService(repo ports.RinkRepository, log zerolog.Logger) *RinkService {
	return NewRinkServiceWithClock(repo, log, time.Now)
}

// NewRinkServiceWithClock injects the clock; tests use it to simulate
// elapsed skating time.
func NewRinkServiceWithClock(repo ports.RinkRepository, log zerolog.Logger, now func() time.Time) *RinkService {
	return &RinkService{
		records: make(map[int]domain.RinkRecord),
		repo:    repo,
		now:     now,
		log:     log,
	}
}

// Load hydrates the tracked records from the durable store. Called once at
// startup; corrupt persisted entries have already been discarded by the
// repository (fail-soft load).
func (s *RinkService) Load(ctx context.Context) error {
	recs, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = recs
	s.mu.Unlock()

	if len(recs) > 0 {
		s.log.Info().Int("customers", len(recs)).Msg("rink records restored")
	}
	return nil
}

func (s *RinkService) CheckIn(ctx context.Context, customerNumber, minutes int) (*ports.CheckInResult, error) {
	if !domain.ValidCustomerNumber(customerNumber) {
		return nil, domain.ErrInvalidCustomerNumber
	}
	if minutes <= 0 {
		return nil, domain.ErrInvalidSkateMinutes
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec, tracked := s.records[customerNumber]
	if tracked {
		// Re-checking-in an active number is a top-up, never a reset.
		rec.TopUp(minutes, now)
	} else {
		rec = domain.NewRinkRecord(customerNumber, minutes, now)
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.records[customerNumber] = rec

	if tracked {
		s.log.Info().Int("customer", customerNumber).Int("added_minutes", minutes).Int("total_minutes", rec.TotalMinutes).Msg("rink time topped up")
	} else {
		s.log.Info().Int("customer", customerNumber).Int("minutes", minutes).Msg("rink check-in")
	}

	return &ports.CheckInResult{Snapshot: snapshot(rec, now), TopUp: tracked}, nil
}

func (s *RinkService) CheckOut(ctx context.Context, customerNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[customerNumber]; !ok {
		return domain.ErrCustomerNotFound
	}

	if err := s.repo.Delete(ctx, customerNumber); err != nil {
		return err
	}
	delete(s.records, customerNumber)

	s.log.Info().Int("customer", customerNumber).Msg("rink check-out")
	return nil
}

func (s *RinkService) Inspect(customerNumber int) (*ports.RinkSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[customerNumber]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	snap := snapshot(rec, s.now())
	return &snap, nil
}

func (s *RinkService) TogglePause(ctx context.Context, customerNumber int) (*ports.RinkSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[customerNumber]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	now := s.now()
	if rec.Paused {
		rec.Resume(now)
	} else {
		rec.Pause(now)
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.records[customerNumber] = rec

	s.log.Info().Int("customer", customerNumber).Bool("paused", rec.Paused).Msg("rink pause toggled")
	snap := snapshot(rec, now)
	return &snap, nil
}

// TogglePauseAll applies one rule to every record: resume all only when all
// are already paused, otherwise pause all (already-paused records stay
// paused). Mixed state therefore pauses.
func (s *RinkService) TogglePauseAll(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return false, nil
	}

	allPaused := true
	for _, rec := range s.records {
		if !rec.Paused {
			allPaused = false
			break
		}
	}

	now := s.now()
	updated := make(map[int]domain.RinkRecord, len(s.records))
	for n, rec := range s.records {
		if allPaused {
			rec.Resume(now)
		} else {
			rec.Pause(now)
		}
		updated[n] = rec
	}

	if err := s.repo.SaveAll(ctx, updated); err != nil {
		return false, err
	}
	s.records = updated

	s.log.Info().Bool("paused", !allPaused).Int("customers", len(updated)).Msg("rink bulk toggle")
	return !allPaused, nil
}

func (s *RinkService) List() []ports.RinkSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots(s.now())
}

// Run recomputes the display-facing countdowns once per second and feeds
// them to observe (gauges, expiry logging). It reads a consistent snapshot
// under the lock and never mutates records; cancel ctx to stop the ticker.
func (s *RinkService) Run(ctx context.Context, observe func([]ports.RinkSnapshot)) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	expired := make(map[int]bool)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			snaps := s.snapshots(s.now())
			s.mu.Unlock()

			for _, snap := range snaps {
				if snap.Remaining < 0 && !snap.Paused && !expired[snap.CustomerNumber] {
					expired[snap.CustomerNumber] = true
					s.log.Info().Int("customer", snap.CustomerNumber).Msg("rink time expired")
				}
			}
			// Forget customers that checked out or were topped back up.
			for n := range expired {
				if !stillExpired(snaps, n) {
					delete(expired, n)
				}
			}

			if observe != nil {
				observe(snaps)
			}
		}
	}
}

func stillExpired(snaps []ports.RinkSnapshot, customerNumber int) bool {
	for _, snap := range snaps {
		if snap.CustomerNumber == customerNumber {
			return snap.Remaining < 0 && !snap.Paused
		}
	}
	return false
}

// snapshots must be called with the lock held.
func (s *RinkService) snapshots(now time.Time) []ports.RinkSnapshot {
	out := make([]ports.RinkSnapshot, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, snapshot(rec, now))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerNumber < out[j].CustomerNumber })
	return out
}

func snapshot(rec domain.RinkRecord, now time.Time) ports.RinkSnapshot {
	return ports.RinkSnapshot{
		CustomerNumber: rec.CustomerNumber,
		EntryTime:      rec.EntryTime,
		ScheduledExit:  rec.ScheduledExit,
		TotalMinutes:   rec.TotalMinutes,
		Paused:         rec.Paused,
		Remaining:      rec.Remaining(now),
	}
}
