// Package cleaner removes synthetic entries from a bot trade log and reports
// on what survives.
//
// Three filters run in a fixed order, each trade judged on its own:
//
//  1. no-op trades: entry == exit means no position was ever taken, the bot
//     logged a scan rather than a trade
//  2. outliers: |P&L| above MaxAbsPnL is not achievable with the position
//     sizes the bot runs, so the record is bad data
//  3. duplicates: same pair, entry, exit, and P&L (rounded, see dedupKey);
//     the first occurrence wins
//
// The thresholds are policy, not configuration.
package cleaner

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradelog/journal"
)

// MaxAbsPnL is the outlier bound in account currency. Anything beyond it is
// treated as a logging artifact, not a real fill.
const MaxAbsPnL = 50.0

// pnlKeyDecimals is how many decimal places of P&L take part in the dedup
// key. Rounding to 4 places deliberately collapses near-identical floating
// point P&Ls into one record.
const pnlKeyDecimals = 4

// Clean runs the filter pipeline over trades and wraps the survivors in a
// cleaned envelope stamped with at. Survivors keep their relative input
// order.
//
// The removed counts are taken over the full input: a no-op trade counts as
// fake even when its P&L is also absurd, and a duplicate of a fake counts as
// fake again. Duplicates themselves are dropped without being counted, so
// removed_fake_trades + removed_outliers + total_trades can fall short of
// original_count. The envelope has always reported its counts this way; do
// not close the gap here.
func Clean(trades []journal.TradeRecord, at time.Time) *journal.TradeLog {
	valid := make([]journal.TradeRecord, 0, len(trades))
	seen := make(map[string]struct{}, len(trades))

	fakes := 0
	outliers := 0

	for _, t := range trades {
		if t.Entry == t.Exit {
			fakes++
			continue
		}
		if math.Abs(t.PnL) > MaxAbsPnL {
			outliers++
			continue
		}

		key := dedupKey(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		valid = append(valid, t)
	}

	return &journal.TradeLog{
		Version:           journal.CleanedVersion,
		TotalTrades:       len(valid),
		CleanedAt:         at.Format(time.RFC3339),
		OriginalCount:     len(trades),
		RemovedFakeTrades: fakes,
		RemovedOutliers:   outliers,
		Trades:            valid,
	}
}

// dedupKey identifies a trade for duplicate detection. Entry and exit are
// keyed on their exact float values; P&L goes through decimal rounding to
// pnlKeyDecimals places first, so two fills that differ only in float noise
// produce the same key.
func dedupKey(t journal.TradeRecord) string {
	return strings.Join([]string{
		t.Pair,
		strconv.FormatFloat(t.Entry, 'f', -1, 64),
		strconv.FormatFloat(t.Exit, 'f', -1, 64),
		decimal.NewFromFloat(t.PnL).Round(pnlKeyDecimals).String(),
	}, "|")
}
