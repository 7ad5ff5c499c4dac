// journal/journal.go
package journal

// CleanedVersion tags a log that has been through the cleaning pass.
const CleanedVersion = "2.0-cleaned"

// DefaultReason stands in for records logged without an exit reason.
const DefaultReason = "unknown"

// TradeRecord is one logged trade attempt.
type TradeRecord struct {
	Pair   string  `json:"pair"`
	Entry  float64 `json:"entry"`
	Exit   float64 `json:"exit"`
	PnL    float64 `json:"pnl"`
	Reason string  `json:"reason"`
}

// Win reports whether the trade closed profitable.
func (t TradeRecord) Win() bool {
	return t.PnL > 0
}

// TradeLog is the on-disk envelope around a trade sequence. A raw bot log
// carries only Trades; a cleaned log carries the full metadata header. Field
// order here matches the serialized key order.
type TradeLog struct {
	Version           string        `json:"version,omitempty"`
	TotalTrades       int           `json:"total_trades"`
	CleanedAt         string        `json:"cleaned_at,omitempty"`
	OriginalCount     int           `json:"original_count"`
	RemovedFakeTrades int           `json:"removed_fake_trades"`
	RemovedOutliers   int           `json:"removed_outliers"`
	Trades            []TradeRecord `json:"trades"`
}

// Cleaned reports whether the log carries a cleaning header.
func (l *TradeLog) Cleaned() bool {
	return l.Version != ""
}
