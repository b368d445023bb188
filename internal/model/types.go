// Package model defines shared data structures.
package model

import "time"

// Default session settings.
const (
	DefaultDuration     = 60 * time.Second
	DefaultInitialWords = 10
	DefaultExtendWords  = 5
	DefaultLookahead    = 20
)

// Config defines session settings.
type Config struct {
	Duration     time.Duration
	InitialWords int
	ExtendWords  int
	Lookahead    int
	AutoStart    bool
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	WordListPath string
	ASCIIOnly    bool
	LogFile      string
}

// DefaultConfig returns the reference settings: a 60 second session, ten
// initial words, five words per extension and a 20 character lookahead.
func DefaultConfig() Config {
	return Config{
		Duration:     DefaultDuration,
		InitialWords: DefaultInitialWords,
		ExtendWords:  DefaultExtendWords,
		Lookahead:    DefaultLookahead,
		AutoStart:    true,
	}
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseActive
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Results holds the final score of a session. The zero value is reported
// until the session ends.
type Results struct {
	WPM      int
	Accuracy int
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	SessionID      string
	Prompt         string
	Input          string
	Remaining      time.Duration
	Duration       time.Duration
	Phase          Phase
	Results        Results
	StartedAt      time.Time
	ProgressOffset float64
}

// Elapsed returns the fraction of the session budget already spent, in [0,1].
func (s Snapshot) Elapsed() float64 {
	if s.Duration <= 0 {
		return 0
	}
	f := 1 - float64(s.Remaining)/float64(s.Duration)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Round captures a finished session, kept in memory for the exit summary.
type Round struct {
	SessionID string
	StartedAt time.Time
	EndedAt   time.Time
	Typed     int
	Correct   int
	Results   Results
}
