package timer

import (
	"time"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/model"
)

// Service runs game stopwatches against an injectable clock
type Service struct {
	clock clock.Clock
}

// New creates a new timer Service
func New(clk clock.Clock) *Service {
	return &Service{clock: clk}
}

// Start begins counting. Starting a running timer has no effect.
func (s *Service) Start(t *model.Timer) {
	if t.Running {
		return
	}
	t.Running = true
	t.StartedAt = s.clock.Now()
}

// Stop pauses counting and keeps the elapsed time
func (s *Service) Stop(t *model.Timer) {
	if !t.Running {
		return
	}
	t.Accumulated += s.clock.Since(t.StartedAt)
	t.Running = false
	t.StartedAt = time.Time{}
}

// Reset stops the timer and zeroes it
func (s *Service) Reset(t *model.Timer) {
	*t = model.Timer{}
}

// Elapsed returns the total time counted so far
func (s *Service) Elapsed(t *model.Timer) time.Duration {
	if !t.Running {
		return t.Accumulated
	}
	return t.Accumulated + s.clock.Since(t.StartedAt)
}

// Seconds returns the elapsed time in whole seconds, as shown to the player
func (s *Service) Seconds(t *model.Timer) int {
	return int(s.Elapsed(t) / time.Second)
}

// Interface for dependency injection
type ServiceInterface interface {
	Start(t *model.Timer)
	Stop(t *model.Timer)
	Reset(t *model.Timer)
	Elapsed(t *model.Timer) time.Duration
	Seconds(t *model.Timer) int
}

var _ ServiceInterface = (*Service)(nil)
