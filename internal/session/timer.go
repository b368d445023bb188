package session

import (
	"time"

	"github.com/verte-zerg/typesprint/internal/model"
)

// indicatorCircumference is the dash length of the circular countdown
// indicator (r=70).
const indicatorCircumference = 451.0

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// timerHandle identifies the tick source owned by an Active attempt. A
// handle is live from activation until the attempt ends, restarts, or the
// session is closed.
type timerHandle struct {
	id   uint64
	live bool
}

func (s *Session) acquireTimer() {
	s.lastTimerID++
	s.timer = timerHandle{id: s.lastTimerID, live: true}
}

func (s *Session) releaseTimer() {
	s.timer.live = false
}

// Timer returns the id of the current tick source and whether the driver
// should keep delivering ticks for it.
func (s *Session) Timer() (id uint64, live bool) {
	return s.timer.id, s.timer.live
}

// Tick advances the countdown by one second for the tick source id. Ticks
// from released handles are ignored and reported as not applied. When the
// clock reaches zero the attempt ends and is scored.
func (s *Session) Tick(id uint64) bool {
	if !s.timer.live || s.timer.id != id {
		return false
	}
	if s.phase != model.PhaseActive || s.remaining <= 0 {
		return false
	}
	s.remaining -= TickInterval
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.progressOffset = progressOffset(s.remaining, s.cfg.Duration)
	s.notify(EventTick)
	if s.remaining == 0 {
		s.end()
	}
	return true
}

// Remaining returns the time left on the countdown.
func (s *Session) Remaining() time.Duration { return s.remaining }

func progressOffset(remaining, total time.Duration) float64 {
	if total <= 0 {
		return indicatorCircumference
	}
	return indicatorCircumference - float64(remaining)/float64(total)*indicatorCircumference
}
