package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsUsable(t *testing.T) {
	words := Default()
	if len(words) < 100 {
		t.Fatalf("expected embedded list with at least 100 words, got %d", len(words))
	}
	if len(Filter(words, FilterForLang("en"))) != len(words) {
		t.Fatalf("expected embedded list to be lower-case ascii")
	}
	words[0] = "changed"
	if Default()[0] == "changed" {
		t.Fatalf("expected Default to return a fresh copy")
	}
}

func TestLoadWordsTrimsAndSkipsBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("  one\n\n two \nthree\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(words) != 3 || words[0] != "one" || words[1] != "two" || words[2] != "three" {
		t.Fatalf("unexpected words: %q", words)
	}
}

func TestLoadWordsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestResolveASCIIOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.txt")
	if err := os.WriteFile(path, []byte("café\nÜber\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Resolve(path, true); err == nil {
		t.Fatalf("expected error when no ascii words remain")
	}
	words, err := Resolve(path, false)
	if err != nil || len(words) != 2 {
		t.Fatalf("expected 2 words without filter, got %v (%v)", words, err)
	}
	words, err = Resolve("", true)
	if err != nil || len(words) == 0 {
		t.Fatalf("expected embedded words, got %d (%v)", len(words), err)
	}
}
