// Package session implements the typing test state machine: prompt, input,
// countdown and scoring for one attempt at a time.
//
// A Session is not safe for concurrent use. All events (ticks, input,
// restarts) are expected to be delivered from a single goroutine, which is
// how the Bubble Tea runtime calls Update.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// TextSource produces space separated words.
type TextSource interface {
	Generate(count int) string
}

// Event identifies a state change reported to an Observer.
type Event int

const (
	EventStarted Event = iota
	EventActivated
	EventExtended
	EventTick
	EventEnded
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventActivated:
		return "activated"
	case EventExtended:
		return "extended"
	case EventTick:
		return "tick"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Observer is notified after every state change.
type Observer func(Event, model.Snapshot)

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the wall clock used for start and end timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithObserver registers a state change callback.
func WithObserver(obs Observer) Option {
	return func(s *Session) {
		s.observer = obs
	}
}

// WithIDSource overrides how session ids are generated.
func WithIDSource(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// Session holds the state of the current attempt.
type Session struct {
	cfg      model.Config
	gen      TextSource
	now      func() time.Time
	newID    func() string
	observer Observer

	id             string
	prompt         []rune
	input          []rune
	startedAt      time.Time
	endedAt        time.Time
	remaining      time.Duration
	phase          model.Phase
	results        model.Results
	progressOffset float64

	timer       timerHandle
	lastTimerID uint64
}

// New creates a session and starts its first attempt. Zero or negative
// settings in cfg fall back to the defaults.
func New(gen TextSource, cfg model.Config, opts ...Option) *Session {
	s := &Session{
		cfg:   normalize(cfg),
		gen:   gen,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Start()
	return s
}

func normalize(cfg model.Config) model.Config {
	if cfg.Duration <= 0 {
		cfg.Duration = model.DefaultDuration
	}
	if cfg.InitialWords <= 0 {
		cfg.InitialWords = model.DefaultInitialWords
	}
	if cfg.ExtendWords <= 0 {
		cfg.ExtendWords = model.DefaultExtendWords
	}
	if cfg.Lookahead < 0 {
		cfg.Lookahead = model.DefaultLookahead
	}
	return cfg
}

// Start resets every field to a fresh NotStarted attempt. Any live timer
// handle is released, so ticks scheduled for the previous attempt are ignored.
func (s *Session) Start() {
	s.releaseTimer()
	s.id = s.newID()
	s.prompt = []rune(s.gen.Generate(s.cfg.InitialWords))
	s.input = nil
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.remaining = s.cfg.Duration
	s.phase = model.PhaseNotStarted
	s.results = model.Results{}
	s.progressOffset = 0
	s.notify(EventStarted)
}

// Ready is the "view is ready" trigger. It activates the attempt if it has
// not been started yet and reports whether it did.
func (s *Session) Ready() bool {
	return s.activate()
}

// Close releases the timer handle. It is safe to call more than once.
func (s *Session) Close() {
	s.releaseTimer()
}

func (s *Session) activate() bool {
	if s.phase != model.PhaseNotStarted || !s.startedAt.IsZero() {
		return false
	}
	s.startedAt = s.now()
	s.phase = model.PhaseActive
	s.acquireTimer()
	s.notify(EventActivated)
	return true
}

func (s *Session) end() {
	if s.phase != model.PhaseActive {
		return
	}
	s.releaseTimer()
	s.phase = model.PhaseEnded
	s.endedAt = s.now()
	if !s.startedAt.IsZero() {
		s.results = stats.Score(s.prompt, s.input, s.endedAt.Sub(s.startedAt))
	}
	s.notify(EventEnded)
}

// ID returns the id of the current attempt.
func (s *Session) ID() string { return s.id }

// Phase returns the lifecycle phase of the current attempt.
func (s *Session) Phase() model.Phase { return s.phase }

// Results returns the final score; zero until the attempt has ended.
func (s *Session) Results() model.Results { return s.results }

// Config returns the effective settings.
func (s *Session) Config() model.Config { return s.cfg }

// Snapshot returns a read-only view of the current attempt.
func (s *Session) Snapshot() model.Snapshot {
	return model.Snapshot{
		SessionID:      s.id,
		Prompt:         string(s.prompt),
		Input:          string(s.input),
		Remaining:      s.remaining,
		Duration:       s.cfg.Duration,
		Phase:          s.phase,
		Results:        s.results,
		StartedAt:      s.startedAt,
		ProgressOffset: s.progressOffset,
	}
}

// Round summarizes a finished attempt. ok is false until the attempt ended
// after having been started.
func (s *Session) Round() (model.Round, bool) {
	if s.phase != model.PhaseEnded || s.startedAt.IsZero() {
		return model.Round{}, false
	}
	return model.Round{
		SessionID: s.id,
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
		Typed:     len(s.input),
		Correct:   stats.CorrectCount(s.prompt, s.input),
		Results:   s.results,
	}, true
}

func (s *Session) notify(ev Event) {
	if s.observer != nil {
		s.observer(ev, s.Snapshot())
	}
}
