package session

import "github.com/verte-zerg/typesprint/internal/model"

var deletionKeys = map[string]struct{}{
	"backspace":     {},
	"delete":        {},
	"ctrl+h":        {},
	"ctrl+w":        {},
	"ctrl+u":        {},
	"alt+backspace": {},
}

// InterceptKey reports whether key must be swallowed by the caller. Every
// key that would remove typed text is intercepted.
func (s *Session) InterceptKey(key string) bool {
	_, ok := deletionKeys[key]
	return ok
}

// Input replaces the typed text with value. The new value must extend the
// current input; shorter or rewritten values are rejected, as is any input
// after the attempt ended. The first typed character activates the attempt.
func (s *Session) Input(value string) bool {
	if s.phase == model.PhaseEnded {
		return false
	}
	runes := []rune(value)
	if !hasPrefix(runes, s.input) {
		return false
	}
	if len(s.input) == 0 && len(runes) > 0 {
		s.activate()
	}
	s.input = runes
	s.extend()
	return true
}

// Type appends runes to the current input.
func (s *Session) Type(runes ...rune) bool {
	if len(runes) == 0 {
		return false
	}
	next := make([]rune, 0, len(s.input)+len(runes))
	next = append(next, s.input...)
	next = append(next, runes...)
	return s.Input(string(next))
}

// extend keeps at least Lookahead untyped prompt runes ahead of the caret.
func (s *Session) extend() {
	extended := false
	for len(s.input) >= len(s.prompt)-s.cfg.Lookahead {
		s.prompt = append(s.prompt, ' ')
		s.prompt = append(s.prompt, []rune(s.gen.Generate(s.cfg.ExtendWords))...)
		extended = true
	}
	if extended {
		s.notify(EventExtended)
	}
}

func hasPrefix(value, prefix []rune) bool {
	if len(value) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if value[i] != r {
			return false
		}
	}
	return true
}
