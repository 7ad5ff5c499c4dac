package cleaner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/journal"
)

func TestSummarizeSingleWinner(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		{Pair: "SOL/USD", Entry: 20, Exit: 22, PnL: 10, Reason: "take_profit"},
	}

	r := Summarize(trades)

	assert.Equal(t, 1, r.Trades)
	assert.Equal(t, 1, r.Wins)
	assert.Equal(t, 0, r.Losses)
	assert.Equal(t, 1.0, r.WinRate)
	assert.Equal(t, 10.0, r.TotalPnL)
	assert.Equal(t, 10.0, r.AvgPnL)
	assert.Equal(t, map[string]int{"take_profit": 1}, r.Reasons)
	require.Len(t, r.Sample, 1)
	assert.Equal(t, "SOL/USD", r.Sample[0].Pair)
}

func TestSummarizeMixed(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		{Pair: "A", Entry: 1, Exit: 2, PnL: 10, Reason: "take_profit"},
		{Pair: "B", Entry: 1, Exit: 2, PnL: 5, Reason: "take_profit"},
		{Pair: "C", Entry: 1, Exit: 2, PnL: -3, Reason: "stop_loss"},
		{Pair: "D", Entry: 1, Exit: 2, PnL: 0, Reason: "timeout"},
	}

	r := Summarize(trades)

	assert.Equal(t, 4, r.Trades)
	assert.Equal(t, 2, r.Wins)
	assert.Equal(t, 2, r.Losses) // break-even counts as a loss
	assert.InDelta(t, 0.5, r.WinRate, 1e-9)
	assert.InDelta(t, 12.0, r.TotalPnL, 1e-9)
	assert.InDelta(t, 3.0, r.AvgPnL, 1e-9)
	assert.InDelta(t, 15.0, r.GrossProfit, 1e-9)
	assert.InDelta(t, 3.0, r.GrossLoss, 1e-9)
	assert.InDelta(t, 5.0, r.ProfitFactor, 1e-9)
	assert.Equal(t, map[string]int{"take_profit": 2, "stop_loss": 1, "timeout": 1}, r.Reasons)
}

func TestSummarizeNoLosses(t *testing.T) {
	t.Parallel()

	r := Summarize([]journal.TradeRecord{
		{Pair: "A", Entry: 1, Exit: 2, PnL: 1, Reason: "take_profit"},
	})

	assert.Zero(t, r.GrossLoss)
	assert.Zero(t, r.ProfitFactor) // undefined without losses
}

func TestSummarizeReasonDefault(t *testing.T) {
	t.Parallel()

	// Records built in memory may not have gone through Parse; an empty
	// reason still lands in the unknown bucket.
	r := Summarize([]journal.TradeRecord{
		{Pair: "A", Entry: 1, Exit: 2, PnL: 1},
	})

	assert.Equal(t, map[string]int{journal.DefaultReason: 1}, r.Reasons)
}

func TestSummarizeSampleCap(t *testing.T) {
	t.Parallel()

	trades := make([]journal.TradeRecord, 0, 15)
	for i := 0; i < 15; i++ {
		trades = append(trades, journal.TradeRecord{
			Pair:  "A",
			Entry: 1,
			Exit:  2,
			PnL:   float64(i + 1),
		})
	}

	r := Summarize(trades)

	require.Len(t, r.Sample, SampleSize)
	for i, tr := range r.Sample {
		assert.Equal(t, float64(i+1), tr.PnL)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	r := Summarize(nil)

	assert.Zero(t, r.Trades)
	assert.Zero(t, r.WinRate)
	assert.Zero(t, r.TotalPnL)
	assert.Zero(t, r.AvgPnL)
	assert.Empty(t, r.Reasons)
	assert.Empty(t, r.Sample)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	r := Summarize([]journal.TradeRecord{
		{Pair: "BTC/USD", Entry: 101.5, Exit: 103.2, PnL: 10, Reason: "take_profit"},
		{Pair: "ETH/USD", Entry: 2500, Exit: 2490, PnL: -4, Reason: "stop_loss"},
	})

	var buf bytes.Buffer
	PrintSummary(&buf, r)
	out := buf.String()

	assert.Contains(t, out, " Trade Log Summary")
	assert.Contains(t, out, "Trades:        2")
	assert.Contains(t, out, "Wins:          1")
	assert.Contains(t, out, "Losses:        1")
	assert.Contains(t, out, "Win Rate:      50.0%")
	assert.Contains(t, out, "Total P&L:     $6.00")
	assert.Contains(t, out, "Avg P&L:       $3.00")
	assert.Contains(t, out, "Gross Profit:  $10.00")
	assert.Contains(t, out, "Gross Loss:    $4.00")
	assert.Contains(t, out, "Profit Factor: 2.50")
	assert.Contains(t, out, "Exit Reasons")
	assert.Contains(t, out, "take_profit")
	assert.Contains(t, out, "Sample Trades (first 2)")
	assert.Contains(t, out, "  BTC/USD: $101.500000 -> $103.200000, P&L: $10.00, take_profit")
}

func TestPrintSummaryEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintSummary(&buf, Summarize(nil))
	out := buf.String()

	assert.Contains(t, out, "Trades:        0")
	assert.NotContains(t, out, "Win Rate")
	assert.NotContains(t, out, "Sample Trades")
}

func TestPrintSummaryReasonOrder(t *testing.T) {
	t.Parallel()

	r := Summarize([]journal.TradeRecord{
		{Pair: "A", Entry: 1, Exit: 2, PnL: 1, Reason: "timeout"},
		{Pair: "B", Entry: 1, Exit: 3, PnL: 2, Reason: "take_profit"},
		{Pair: "C", Entry: 1, Exit: 4, PnL: 3, Reason: "take_profit"},
		{Pair: "D", Entry: 1, Exit: 5, PnL: 4, Reason: "stop_loss"},
	})

	var buf bytes.Buffer
	PrintSummary(&buf, r)
	out := buf.String()

	// Highest count first, ties alphabetical.
	tp := strings.Index(out, "take_profit")
	sl := strings.Index(out, "stop_loss")
	to := strings.Index(out, "timeout")
	require.NotEqual(t, -1, tp)
	require.NotEqual(t, -1, sl)
	require.NotEqual(t, -1, to)
	assert.Less(t, tp, sl)
	assert.Less(t, sl, to)
}
