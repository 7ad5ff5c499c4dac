package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/cleaner"
	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a trade log without modifying it",
	Long: `Stats loads a trade log, raw or cleaned, and prints the summary the
clean command would print: win rate, P&L totals, profit factor, exit
reasons, and a sample of trades. Nothing is written.

For an already-cleaned log the envelope metadata (when it was cleaned,
how many records each filter removed) is shown as well.

Example:
  tradelog stats -f trade_log.json`,
	RunE: runStats,
}

var statsFile string

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsFile, "file", "f", config.DefaultLogPath, "path to the trade log")
}

func runStats(cmd *cobra.Command, args []string) error {
	log, err := journal.Load(statsFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if log.Cleaned() {
		fmt.Fprintln(out, "==================================================")
		fmt.Fprintln(out, " Cleaning Header")
		fmt.Fprintln(out, "==================================================")
		fmt.Fprintf(out, "Version:          %s\n", log.Version)
		fmt.Fprintf(out, "Cleaned At:       %s\n", log.CleanedAt)
		fmt.Fprintf(out, "Original Count:   %d\n", log.OriginalCount)
		fmt.Fprintf(out, "Removed Fakes:    %d\n", log.RemovedFakeTrades)
		fmt.Fprintf(out, "Removed Outliers: %d\n", log.RemovedOutliers)
		fmt.Fprintln(out)
	}

	cleaner.PrintSummary(out, cleaner.Summarize(log.Trades))
	return nil
}
