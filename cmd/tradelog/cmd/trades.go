package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List the trades in a log",
	Long: `Trades prints the records of a trade log, raw or cleaned, one line per
trade. --pair and --reason narrow the listing; --org renders Org-mode
blocks ready to paste into a review journal.

Examples:
  tradelog trades -f trade_log.json
  tradelog trades -f trade_log.json --reason stop_loss
  tradelog trades -f trade_log.json --pair SOL/USD --org`,
	RunE: runTrades,
}

var (
	tradesFile   string
	tradesPair   string
	tradesReason string
	tradesOrg    bool
	tradesLimit  int
)

func init() {
	rootCmd.AddCommand(tradesCmd)

	tradesCmd.Flags().StringVarP(&tradesFile, "file", "f", config.DefaultLogPath, "path to the trade log")
	tradesCmd.Flags().StringVar(&tradesPair, "pair", "", "only trades for this pair")
	tradesCmd.Flags().StringVar(&tradesReason, "reason", "", "only trades with this exit reason")
	tradesCmd.Flags().BoolVar(&tradesOrg, "org", false, "render Org-mode blocks instead of plain lines")
	tradesCmd.Flags().IntVarP(&tradesLimit, "limit", "n", 0, "stop after this many trades (0 = all)")
}

func runTrades(cmd *cobra.Command, args []string) error {
	log, err := journal.Load(tradesFile)
	if err != nil {
		return err
	}

	var recs []journal.TradeRecord
	for _, t := range log.Trades {
		if tradesPair != "" && t.Pair != tradesPair {
			continue
		}
		if tradesReason != "" && t.Reason != tradesReason {
			continue
		}
		recs = append(recs, t)
		if tradesLimit > 0 && len(recs) == tradesLimit {
			break
		}
	}

	out := cmd.OutOrStdout()

	if tradesOrg {
		fmt.Fprintln(out, journal.FormatTradesOrg(recs))
		return nil
	}

	for _, t := range recs {
		fmt.Fprintf(out, "%s: $%.6f -> $%.6f, P&L: $%.2f, %s\n",
			t.Pair, t.Entry, t.Exit, t.PnL, t.Reason)
	}
	fmt.Fprintf(out, "%d trades\n", len(recs))
	return nil
}
