// Package wordlist loads word lists from files or the embedded default.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns a copy of the embedded English word list.
func Default() []string {
	words, err := parseWords(strings.NewReader(defaultWords))
	if err != nil {
		return nil
	}
	return words
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return parseWords(file)
}

// Resolve returns the words at path, or the embedded list when path is empty.
// When asciiOnly is set, words outside a-z are dropped.
func Resolve(path string, asciiOnly bool) ([]string, error) {
	var (
		words []string
		err   error
	)
	if path == "" {
		words = Default()
	} else {
		words, err = LoadWords(path)
		if err != nil {
			return nil, err
		}
	}
	if asciiOnly {
		words = Filter(words, FilterForLang("en"))
		if len(words) == 0 {
			return nil, fmt.Errorf("word list has no ascii words")
		}
	}
	return words, nil
}

func parseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
