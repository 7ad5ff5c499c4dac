package cleaner

import (
	"fmt"
	"io"
	"sort"

	"github.com/rustyeddy/tradelog/journal"
)

// SampleSize caps how many trades a report carries for display.
const SampleSize = 10

// Report is a lightweight summary of a trade sequence, normally the
// survivors of a cleaning pass.
type Report struct {
	Trades int
	Wins   int
	Losses int

	WinRate  float64 // Wins / Trades
	TotalPnL float64
	AvgPnL   float64

	GrossProfit  float64 // sum of winning P&L
	GrossLoss    float64 // |sum of losing P&L|
	ProfitFactor float64 // GrossProfit / GrossLoss, 0 when no losses

	// Reasons counts trades per exit reason.
	Reasons map[string]int

	// Sample holds the first SampleSize trades, in log order.
	Sample []journal.TradeRecord
}

// Summarize aggregates trades into a Report. An empty input yields a Report
// with Trades == 0 and no derived ratios.
func Summarize(trades []journal.TradeRecord) Report {
	r := Report{
		Trades:  len(trades),
		Reasons: make(map[string]int, 4),
	}

	for _, t := range trades {
		r.TotalPnL += t.PnL
		if t.Win() {
			r.Wins++
			r.GrossProfit += t.PnL
		} else {
			r.Losses++
			r.GrossLoss += -t.PnL
		}

		reason := t.Reason
		if reason == "" {
			reason = journal.DefaultReason
		}
		r.Reasons[reason]++
	}

	if r.Trades == 0 {
		return r
	}

	r.WinRate = float64(r.Wins) / float64(r.Trades)
	r.AvgPnL = r.TotalPnL / float64(r.Trades)
	if r.GrossLoss > 0 {
		r.ProfitFactor = r.GrossProfit / r.GrossLoss
	}
	r.Sample = trades[:min(SampleSize, len(trades))]

	return r
}

// PrintSummary writes a human-readable report to w. The layout is
// informational only; nothing downstream should parse it.
func PrintSummary(w io.Writer, r Report) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trade Log Summary")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Trades:        %d\n", r.Trades)

	if r.Trades == 0 {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "Wins:          %d\n", r.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", r.Losses)
	fmt.Fprintf(w, "Win Rate:      %.1f%%\n", r.WinRate*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "P&L")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total P&L:     $%.2f\n", r.TotalPnL)
	fmt.Fprintf(w, "Avg P&L:       $%.2f\n", r.AvgPnL)
	fmt.Fprintf(w, "Gross Profit:  $%.2f\n", r.GrossProfit)
	fmt.Fprintf(w, "Gross Loss:    $%.2f\n", r.GrossLoss)
	if r.ProfitFactor > 0 {
		fmt.Fprintf(w, "Profit Factor: %.2f\n", r.ProfitFactor)
	}

	if len(r.Reasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Exit Reasons")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, rc := range sortReasons(r.Reasons) {
			fmt.Fprintf(w, "%-14s %d\n", rc.name, rc.count)
		}
	}

	if len(r.Sample) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sample Trades (first %d)\n", len(r.Sample))
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, t := range r.Sample {
			fmt.Fprintf(w, "  %s: $%.6f -> $%.6f, P&L: $%.2f, %s\n",
				t.Pair, t.Entry, t.Exit, t.PnL, t.Reason)
		}
	}

	fmt.Fprintln(w)
}

type reasonCount struct {
	name  string
	count int
}

// sortReasons orders a reason breakdown by count descending, then name, so
// the printed report is stable run to run.
func sortReasons(reasons map[string]int) []reasonCount {
	out := make([]reasonCount, 0, len(reasons))
	for name, count := range reasons {
		out = append(out, reasonCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}
