package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-matcher/internal/config"
)

var cfg *config.Config

// Exit codes: 0 success, 1 argument error, 2 I/O error.
const (
	exitSuccess     = 0
	exitArgError    = 1
	exitIOError     = 2
)

var rootCmd = &cobra.Command{
	Use:   "prospect-matcher",
	Short: "Matches SEC EDGAR filings against a prospect list for fundraising signals",
	Long:  "Scans a directory of EDGAR filings for mentions of a prospect list's names and companies, fuses structured and text-based evidence into signal records, and writes debug and client-facing reports.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		bindFlag(cmd, "prospects", &cfg.Prospects)
		bindFlag(cmd, "filings", &cfg.Filings)
		bindFlag(cmd, "out", &cfg.Out)
		bindIntFlag(cmd, "max-files", &cfg.MaxFiles)
		bindBoolFlag(cmd, "recursive", &cfg.Recursive)

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = zap.L().Sync()
	},
}

func bindFlag(cmd *cobra.Command, name string, dst *string) {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		*dst = v
	}
}

func bindIntFlag(cmd *cobra.Command, name string, dst *int) {
	if v, err := cmd.Flags().GetInt(name); err == nil && cmd.Flags().Changed(name) {
		*dst = v
	}
}

func bindBoolFlag(cmd *cobra.Command, name string, dst *bool) {
	if v, err := cmd.Flags().GetBool(name); err == nil && cmd.Flags().Changed(name) {
		*dst = v
	}
}

func init() {
	rootCmd.PersistentFlags().String("prospects", "", "path to the prospect CSV file")
	rootCmd.PersistentFlags().String("filings", "", "directory of EDGAR filing .txt files")
	rootCmd.PersistentFlags().String("out", "", "output directory for reports and checkpoints")
	rootCmd.PersistentFlags().Int("max-files", 0, "cap the number of filings processed (0 = unlimited)")
	rootCmd.PersistentFlags().Bool("recursive", false, "walk the filings directory recursively")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := exitArgError
		if ec, ok := err.(exitCoder); ok {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}

// exitCoder lets a command report a specific exit code (0/1/2) instead
// of the default argument-error code.
type exitCoder interface {
	error
	ExitCode() int
}
