// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/logging"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/tui"
	"github.com/verte-zerg/typesprint/internal/wordlist"
)

const (
	defaultDurationSec = 60
	defaultCaps        = 0
	defaultPunct       = 0
	defaultPunctSet    = ".,!?;:"
)

var (
	testDuration  int
	testWords     int
	testExtend    int
	testLookahead int
	testAutoStart bool
	testCaps      float64
	testPunct     float64
	testPunctSet  string
	testWordList  string
	testASCIIOnly bool
	testLogFile   string
	testSummary   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typesprint",
		Short:         "Timed typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	addSessionFlags(rootCmd)
	rootCmd.Flags().StringVar(&testLogFile, "log-file", "", "write a JSON debug log to this file")
	rootCmd.Flags().BoolVar(&testSummary, "summary", true, "print a summary of finished sessions on exit")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&testDuration, "duration", defaultDurationSec, "session length in seconds")
	cmd.Flags().IntVar(&testWords, "words", model.DefaultInitialWords, "words in the initial prompt")
	cmd.Flags().IntVar(&testExtend, "extend-words", model.DefaultExtendWords, "words appended on each prompt extension")
	cmd.Flags().IntVar(&testLookahead, "lookahead", model.DefaultLookahead, "untyped characters kept ahead of the caret")
	cmd.Flags().BoolVar(&testAutoStart, "auto-start", true, "start the countdown as soon as the test opens")
	cmd.Flags().Float64Var(&testCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&testPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&testPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	cmd.Flags().StringVar(&testWordList, "wordlist", "", "word list file, one word per line (default: embedded list)")
	cmd.Flags().BoolVar(&testASCIIOnly, "ascii-only", false, "drop words outside a-z from the word list")
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	words, err := wordlist.Resolve(cfg.WordListPath, cfg.ASCIIOnly)
	if err != nil {
		return wordListLoadError(cfg.WordListPath, err)
	}
	gen, err := generator.New(words, generator.WithCaps(cfg.CapsPct), generator.WithPunct(cfg.PunctPct, cfg.PunctSet))
	if err != nil {
		return fmt.Errorf("failed to build text generator: %w", err)
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("typesprint needs an interactive terminal")
	}

	log, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	sess := session.New(gen, cfg, session.WithObserver(logging.SessionObserver(log)))
	defer sess.Close()
	log.Info().Int("words", len(words)).Dur("duration", cfg.Duration).Msg("typing test opened")

	m := tui.NewModel(sess, log)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if testSummary {
		if err := stats.RenderSummary(cmd.OutOrStdout(), m.Rounds()); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// loadConfig merges the config file into unset flags and validates the result.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := buildConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func buildConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	s := fileCfg.Session
	applyConfig(cmd, "duration", &testDuration, s.DurationSec)
	applyConfig(cmd, "words", &testWords, s.Words)
	applyConfig(cmd, "extend-words", &testExtend, s.ExtendWords)
	applyConfig(cmd, "lookahead", &testLookahead, s.Lookahead)
	applyConfig(cmd, "auto-start", &testAutoStart, s.AutoStart)
	applyConfig(cmd, "caps", &testCaps, s.CapsPct)
	applyConfig(cmd, "punct", &testPunct, s.PunctPct)
	applyConfig(cmd, "punct-set", &testPunctSet, s.PunctSet)
	applyConfig(cmd, "wordlist", &testWordList, s.WordList)
	applyConfig(cmd, "ascii-only", &testASCIIOnly, s.ASCIIOnly)
	applyConfig(cmd, "log-file", &testLogFile, s.LogFile)

	return model.Config{
		Duration:     time.Duration(testDuration) * time.Second,
		InitialWords: testWords,
		ExtendWords:  testExtend,
		Lookahead:    testLookahead,
		AutoStart:    testAutoStart,
		CapsPct:      testCaps,
		PunctPct:     testPunct,
		PunctSet:     testPunctSet,
		WordListPath: expandHome(testWordList),
		ASCIIOnly:    testASCIIOnly,
		LogFile:      expandHome(testLogFile),
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the effective word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&testWordList, "wordlist", "", "word list file (default: embedded list)")
	cmd.Flags().BoolVar(&testASCIIOnly, "ascii-only", false, "drop words outside a-z")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	path := expandHome(testWordList)
	words, err := wordlist.Resolve(path, testASCIIOnly)
	if err != nil {
		return wordListLoadError(path, err)
	}
	for _, w := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), w); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# duration = %d            # Session length in seconds
# words = %d               # Words in the initial prompt
# extend-words = %d         # Words appended on each prompt extension
# lookahead = %d           # Untyped characters kept ahead of the caret
# auto-start = true        # Start the countdown as soon as the test opens
# caps = %.2f              # Probability of capitalized first letter (0-1)
# punct = %.2f             # Punctuation probability per word (0-1)
# punct-set = %q       # Punctuation set
# wordlist = ""            # Word list file, one word per line
# ascii-only = false       # Drop words outside a-z
# log-file = %q
`,
		defaultDurationSec,
		model.DefaultInitialWords,
		model.DefaultExtendWords,
		model.DefaultLookahead,
		float64(defaultCaps),
		float64(defaultPunct),
		defaultPunctSet,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration < time.Second {
		return fmt.Errorf("--duration must be >= 1")
	}
	if cfg.InitialWords <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.ExtendWords <= 0 {
		return fmt.Errorf("--extend-words must be > 0")
	}
	if cfg.Lookahead < 0 {
		return fmt.Errorf("--lookahead must be >= 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func wordListLoadError(path string, err error) error {
	if path == "" {
		return fmt.Errorf("failed to load embedded word list: %w", err)
	}
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		"Run without --wordlist to use the embedded list",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
