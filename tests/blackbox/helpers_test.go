//go:build blackbox

package blackbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// rawLog is what the bot writes: five trades of which only two survive
// cleaning (one no-op, one outlier, one duplicate).
const rawLog = `{
  "trades": [
    {"pair": "BTC/USD", "entry": 101.5, "exit": 103.2, "pnl": 1.7, "reason": "take_profit"},
    {"pair": "BTC/USD", "entry": 101.5, "exit": 101.5, "pnl": 0.0, "reason": "timeout"},
    {"pair": "ETH/USD", "entry": 2500.0, "exit": 2700.0, "pnl": 200.0, "reason": "manual"},
    {"pair": "BTC/USD", "entry": 101.5, "exit": 103.2, "pnl": 1.7, "reason": "take_profit"},
    {"pair": "SOL/USD", "entry": 20.0, "exit": 22.0, "pnl": 10.0, "reason": "take_profit"}
  ]
}`

func writeLog(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "trade_log.json")
	if err := os.WriteFile(path, []byte(rawLog), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// backups lists the timestamped backup copies sitting in dir.
func backups(t *testing.T, dir string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "trade_log_backup_*.json"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}
