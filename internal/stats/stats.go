// Package stats contains scoring and summary reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/verte-zerg/typesprint/internal/model"
)

// charsPerWord is the standard word length used for WPM.
const charsPerWord = 5.0

// CorrectCount returns the number of positions where input matches prompt.
// Positions past the end of prompt are mismatches.
func CorrectCount(prompt, input []rune) int {
	correct := 0
	for i, r := range input {
		if i < len(prompt) && prompt[i] == r {
			correct++
		}
	}
	return correct
}

// Score computes the final results for a session that ran for elapsed.
func Score(prompt, input []rune, elapsed time.Duration) model.Results {
	typed := len(input)
	if typed == 0 {
		return model.Results{}
	}
	var res model.Results
	if minutes := elapsed.Minutes(); minutes > 0 {
		res.WPM = int(math.Round(float64(typed) / charsPerWord / minutes))
	}
	res.Accuracy = int(math.Round(100 * float64(CorrectCount(prompt, input)) / float64(typed)))
	return res
}

// SessionMetrics computes unrounded WPM, CPM, and accuracy (0-1) from the
// number of typed characters.
func SessionMetrics(correct, typed int, durationMs int64) (wpm, cpm, accuracy float64) {
	if typed > 0 {
		accuracy = float64(correct) / float64(typed)
	}
	if durationMs <= 0 {
		return 0, 0, accuracy
	}
	minutes := float64(durationMs) / 60000.0
	wpm = (float64(typed) / charsPerWord) / minutes
	cpm = float64(typed) / minutes
	return wpm, cpm, accuracy
}

// RenderSummary prints a table of the rounds played in this run.
func RenderSummary(w io.Writer, rounds []model.Round) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No finished sessions.")
		return err
	}
	var totalWPM, totalAcc float64
	best := 0
	rows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		totalWPM += float64(r.Results.WPM)
		totalAcc += float64(r.Results.Accuracy)
		if r.Results.WPM > best {
			best = r.Results.WPM
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.EndedAt.Format("15:04:05"),
			fmt.Sprintf("%d", r.Results.WPM),
			fmt.Sprintf("%d%%", r.Results.Accuracy),
			fmt.Sprintf("%d/%d", r.Correct, r.Typed),
		})
	}
	count := float64(len(rounds))

	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	headers := []string{"#", "Ended", "WPM", "Accuracy", "Correct"}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(rounds)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d\n", best); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", totalAcc/count); err != nil {
		return err
	}
	return nil
}
