package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "Clean and inspect the scalping bot's JSON trade logs",
	Long: `Tradelog maintains the trade_log.json files the scalping bot writes.

It provides tools for:
  - Cleaning a log in place: no-op scans, absurd P&L outliers, and
    duplicate records are dropped
  - Backing up the original file before every rewrite
  - Summary statistics: win rate, total/average P&L, profit factor,
    exit reason breakdown
  - Read-only inspection of raw or cleaned logs

Complete documentation is available at https://github.com/rustyeddy/tradelog`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
