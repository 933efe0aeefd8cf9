package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flipdash/internal/platform/tui"
	"github.com/vovakirdan/flipdash/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and high scores",
	Long: `Display recorded runs. In a terminal this opens an interactive table
with Top and Recent tabs; --plain prints the top runs instead.

Examples:
  flipdash scores
  flipdash scores --plain --limit 5
  flipdash scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs for --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearRuns(os.Stdout, store)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(os.Stdout, os.Stderr, store, flagLimit)
}

func clearRuns(out io.Writer, store *storage.Store) error {
	if err := store.ClearRuns(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Run history cleared.")
	return nil
}

// printScores writes the top runs as a plain table. A stats failure is
// reported on errOut without failing the command.
func printScores(out, errOut io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Flip Dash")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flipdash play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Coins", "Time", "Skin", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Coins, tui.FormatDuration(r.Duration), r.Skin, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(errOut, "Warning: could not compute stats: %v\n", err)
		return nil
	}
	fmt.Fprintln(out, tui.StatsLine(stats))
	return nil
}
