package cleaner

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rustyeddy/tradelog/journal"
)

// Runner executes one cleaning pass over a trade log file: read, back up,
// parse, filter, summarize, rewrite in place.
type Runner struct {
	// Source is the trade log to clean. It is overwritten on success.
	Source string

	// BackupDir overrides where the pre-clean backup lands. Empty means
	// alongside Source.
	BackupDir string

	// DryRun reports what cleaning would do without writing anything, not
	// even the backup.
	DryRun bool

	// Now stamps the envelope and the backup name. Nil means time.Now.
	Now func() time.Time

	// Out receives progress lines and the summary. Nil discards them.
	Out io.Writer
}

// Outcome bundles what one run produced. BackupPath is empty on dry runs.
type Outcome struct {
	Log        *journal.TradeLog
	Report     Report
	BackupPath string
}

// Run executes the pass. The backup is written from the raw source bytes
// before they are even parsed, so a corrupt log is preserved too; after the
// backup exists, any later failure leaves the original recoverable. There
// are no retries and no partial writes.
func (r *Runner) Run() (*Outcome, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	data, err := os.ReadFile(r.Source)
	if err != nil {
		return nil, fmt.Errorf("read trade log: %w", err)
	}

	at := now()

	var backupPath string
	if !r.DryRun {
		backupPath, err = journal.Backup(r.Source, r.BackupDir, data, at)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "✓ Backup saved to: %s\n", backupPath)
	}

	log, err := journal.Parse(data)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Original trades: %d\n", len(log.Trades))

	cleaned := Clean(log.Trades, at)
	rep := Summarize(cleaned.Trades)
	fmt.Fprintf(out, "Valid trades after filtering: %d\n", cleaned.TotalTrades)

	if rep.Trades > 0 {
		fmt.Fprintln(out)
		PrintSummary(out, rep)
	}

	if r.DryRun {
		fmt.Fprintf(out, "Dry run: %s left untouched\n", r.Source)
		return &Outcome{Log: cleaned, Report: rep}, nil
	}

	if err := cleaned.Save(r.Source); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "✓ Saved %d cleaned trades to %s\n", cleaned.TotalTrades, r.Source)

	return &Outcome{Log: cleaned, Report: rep, BackupPath: backupPath}, nil
}
