package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// backupStamp is the timestamp layout embedded in backup file names.
const backupStamp = "20060102_150405"

// BackupPath returns where the backup of the log at path lands at the given
// time, e.g. logs/trade_log.json -> logs/trade_log_backup_20260102_150405.json.
// A non-empty dir overrides the destination directory.
func BackupPath(path, dir string, at time.Time) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := fmt.Sprintf("%s_backup_%s%s", stem, at.Format(backupStamp), ext)
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(dir, name)
}

// Backup writes data, the raw bytes of the log at path, to the timestamped
// backup location and returns that location. The copy is byte for byte and is
// meant to happen before any cleaning, so the original survives even if the
// rewrite that follows fails.
func Backup(path, dir string, data []byte, at time.Time) (string, error) {
	bp := BackupPath(path, dir, at)
	if err := os.WriteFile(bp, data, 0644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return bp, nil
}
