package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/cleaner"
	"github.com/rustyeddy/tradelog/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a trade log in place",
	Long: `Clean rewrites a trade log with the synthetic entries removed.

Three filters run in order over the recorded trades:
  1. no-op trades: entry == exit, the bot logged a scan, not a position
  2. outliers: |P&L| > $50, unrealistic for the bot's position sizing
  3. duplicates: same pair, entry, exit, and P&L rounded to 4 decimals;
     the first occurrence is kept

The original file is copied to a timestamped backup before anything is
rewritten, so a failed run never loses data.

Examples:
  tradelog clean -f trade_log.json
  tradelog clean --config examples/tradelog.yaml
  tradelog clean -f trade_log.json --backup-dir ./backups --dry-run`,
	RunE: runClean,
}

var (
	cleanFile      string
	cleanBackupDir string
	cleanConfig    string
	cleanDryRun    bool
)

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanFile, "file", "f", config.DefaultLogPath, "path to the trade log")
	cleanCmd.Flags().StringVar(&cleanBackupDir, "backup-dir", "", "directory for the backup copy (default: next to the log)")
	cleanCmd.Flags().StringVarP(&cleanConfig, "config", "c", "", "config file supplying path defaults (YAML or JSON)")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "report what would be removed without writing anything")
}

func runClean(cmd *cobra.Command, args []string) error {
	file := cleanFile
	backupDir := cleanBackupDir

	// Explicit flags win over config file values.
	if cleanConfig != "" {
		cfg, err := config.LoadFromFile(cleanConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cmd.Flags().Changed("file") {
			file = cfg.Log.Path
		}
		if !cmd.Flags().Changed("backup-dir") {
			backupDir = cfg.Log.BackupDir
		}
	}

	r := cleaner.Runner{
		Source:    file,
		BackupDir: backupDir,
		DryRun:    cleanDryRun,
		Out:       cmd.OutOrStdout(),
	}
	_, err := r.Run()
	return err
}
