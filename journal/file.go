package journal

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes a trade log from its JSON form. Both the raw bot shape
// {"trades": [...]} and the cleaned envelope are accepted; metadata fields
// absent from the input are left at their zero values. Records without an
// exit reason get DefaultReason, so every parsed record carries one.
func Parse(data []byte) (*TradeLog, error) {
	l := &TradeLog{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse trade log: %w", err)
	}
	if l.Trades == nil {
		return nil, fmt.Errorf("parse trade log: missing %q key", "trades")
	}

	for i := range l.Trades {
		if l.Trades[i].Reason == "" {
			l.Trades[i].Reason = DefaultReason
		}
	}
	return l, nil
}

// Load reads and parses the trade log at path.
func Load(path string) (*TradeLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trade log: %w", err)
	}
	return Parse(data)
}

// Save writes the log to path as indented JSON, overwriting whatever is
// there. Callers are expected to have backed up the previous contents first.
func (l *TradeLog) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trade log: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write trade log: %w", err)
	}
	return nil
}
