package tui

import (
	"strings"
	"testing"
)

func plainRunes(text string) []styledRune {
	out := make([]styledRune, 0, len(text))
	for i, r := range []rune(text) {
		out = append(out, styledRune{idx: i, s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapLinesBreaksAtSpaces(t *testing.T) {
	lines := wrapLines(plainRunes("one two three four"), 9)
	got := make([]string, len(lines))
	for i, line := range lines {
		got[i] = renderStyledRunes(line)
	}
	want := []string{"one two", "three", "four"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapLinesHardBreaksLongWord(t *testing.T) {
	lines := wrapLines(plainRunes("abcdefgh"), 3)
	if renderLines(lines) != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", renderLines(lines))
	}
}

func TestWrapLinesZeroWidth(t *testing.T) {
	lines := wrapLines(plainRunes("a b"), 0)
	if len(lines) != 1 || renderStyledRunes(lines[0]) != "a b" {
		t.Fatalf("expected a single unwrapped line")
	}
}

func TestCursorLine(t *testing.T) {
	lines := wrapLines(plainRunes("one two three four"), 9)
	cases := map[int]int{0: 0, 6: 0, 7: 1, 8: 1, 12: 1, 13: 2, 14: 2, 17: 2, 99: 2}
	for cursor, want := range cases {
		if got := cursorLine(lines, cursor); got != want {
			t.Fatalf("cursor %d: expected line %d, got %d", cursor, want, got)
		}
	}
}

func TestVisibleLines(t *testing.T) {
	lines := wrapLines(plainRunes("a b c d e f"), 1)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if got := renderLines(visibleLines(lines, 0, 3)); got != "a\nb\nc" {
		t.Fatalf("unexpected window at top: %q", got)
	}
	if got := renderLines(visibleLines(lines, 3, 3)); got != "c\nd\ne" {
		t.Fatalf("unexpected window in middle: %q", got)
	}
	if got := renderLines(visibleLines(lines, 5, 3)); got != "d\ne\nf" {
		t.Fatalf("unexpected window at bottom: %q", got)
	}
	if got := visibleLines(lines, 2, 0); len(got) != 6 {
		t.Fatalf("expected all lines without a height limit")
	}
}

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	input := []rune("a")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, len(input))
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style showing the target rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	input := []rune("o")

	runes := buildStyledRunes(target, input, len(input))
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, len(input))
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render(string(wrongSpaceGlyph)) {
		t.Fatalf("expected dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected wrong space to keep its break position")
	}
}

func TestFindWords(t *testing.T) {
	words := findWords([]rune(" ab  cd "))
	if len(words) != 2 || words[0] != (wordRange{1, 3}) || words[1] != (wordRange{5, 7}) {
		t.Fatalf("unexpected words: %+v", words)
	}
	if w := wordForCursor(words, 4); w == nil || *w != words[1] {
		t.Fatalf("cursor between words should select the next word")
	}
	if w := wordForCursor(words, 20); w == nil || *w != words[1] {
		t.Fatalf("cursor past the end should select the last word")
	}
}
