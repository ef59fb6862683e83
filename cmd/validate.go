package cmd

import (
	"fmt"
	"time"

	"github.com/mezonai/blockmine/block"
	"github.com/mezonai/blockmine/config"
	"github.com/mezonai/blockmine/exception"
	"github.com/mezonai/blockmine/loader"
	"github.com/mezonai/blockmine/logx"
	"github.com/mezonai/blockmine/mine"
	"github.com/mezonai/blockmine/monitoring"
	"github.com/mezonai/blockmine/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errInvalidStream = errors.New("stream contains invalid blocks")

type ValidateConfig struct {
	ConfigPath  string
	WindowSize  int
	Engine      string
	All         bool
	Format      string
	MetricsFile string
}

var validateConfig ValidateConfig

var validateCmd = &cobra.Command{
	Use:   "validate <block-file>",
	Short: "Validate a block stream",
	Long: `Validate a newline-separated stream of decimal blocks. The first
window-size blocks seed the mine, every later block must be the sum of two
blocks at distinct positions among the previous window-size accepted blocks.
Examples:
  # Validate with a window of 100, stop at the first invalid block
  validate -w 100 challenge_input.txt

  # Report every invalid block as JSON using the sorted-scan engine
  validate -w 25 -e sorted-scan --all -f json blocks.txt
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveMineConfig(cmd)
		if err != nil {
			return err
		}
		return validateStream(cmd, cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateConfig.ConfigPath, "config", "c", "", "mine config file (.ini or .yml)")
	validateCmd.Flags().IntVarP(&validateConfig.WindowSize, "window", "w", config.DefaultWindowSize, "window size")
	validateCmd.Flags().StringVarP(&validateConfig.Engine, "engine", "e", "sum-index", "validation engine: sum-index or sorted-scan")
	validateCmd.Flags().BoolVar(&validateConfig.All, "all", false, "keep probing after the first invalid block")
	validateCmd.Flags().StringVarP(&validateConfig.Format, "format", "f", config.FormatText, "output format: text or json")
	validateCmd.Flags().StringVar(&validateConfig.MetricsFile, "metrics-file", "", "write prometheus metrics to this file")
}

// resolveMineConfig starts from the defaults or the config file and applies
// the flags that were set explicitly.
func resolveMineConfig(cmd *cobra.Command) (*config.MineConfig, error) {
	cfg := config.DefaultMineConfig()
	if validateConfig.ConfigPath != "" {
		loaded, err := config.LoadMineConfig(validateConfig.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("window") || validateConfig.ConfigPath == "" {
		cfg.WindowSize = validateConfig.WindowSize
	}
	if flags.Changed("engine") || validateConfig.ConfigPath == "" {
		cfg.Engine = validateConfig.Engine
	}
	if flags.Changed("all") {
		cfg.StopOnFirstInvalid = !validateConfig.All
	}
	if flags.Changed("format") || validateConfig.ConfigPath == "" {
		cfg.Format = validateConfig.Format
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = validateConfig.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateStream(cmd *cobra.Command, cfg *config.MineConfig, path string) error {
	monitoring.InitMetrics()

	blocks, err := loader.ReadFile(path)
	if err != nil {
		return err
	}
	if len(blocks) < cfg.WindowSize {
		return errors.Wrapf(mine.ErrInvalidInitialWindow, "%s holds %d blocks, window needs %d", path, len(blocks), cfg.WindowSize)
	}
	logx.Info("VALIDATE", fmt.Sprintf("Loaded %d blocks from %s, window=%d engine=%s", len(blocks), path, cfg.WindowSize, cfg.Engine))

	summary, err := runMine(cfg, blocks[:cfg.WindowSize], blocks[cfg.WindowSize:])
	if err != nil && summary == nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if merr := monitoring.WriteTextfile(cfg.MetricsFile); merr != nil {
			logx.Warn("VALIDATE", "Failed to write metrics: ", merr)
		}
	}

	out := cmd.OutOrStdout()
	if cfg.Format == config.FormatJSON {
		if werr := summary.WriteJSON(out); werr != nil {
			return werr
		}
	} else if werr := summary.WriteText(out); werr != nil {
		return werr
	}

	if err != nil {
		return err
	}
	if !summary.Valid() {
		logx.Warn("VALIDATE", fmt.Sprintf("%d invalid blocks, first at position %d", len(summary.Failures), summary.Failures[0].Position))
		return errInvalidStream
	}
	logx.Info("VALIDATE", fmt.Sprintf("All %d candidates valid", summary.Checked))
	return nil
}

func runMine(cfg *config.MineConfig, seed, candidates []block.Block) (*report.Summary, error) {
	var summary *report.Summary
	err := exception.Guard("validate", func() error {
		start := time.Now()
		m, err := mine.New(cfg.WindowSize, seed, mine.WithEngine(cfg.EngineKind()))
		if err != nil {
			return err
		}
		monitoring.RecordSeed(cfg.Engine, time.Since(start))

		var runErr error
		summary, runErr = report.Run(m, candidates, cfg.StopOnFirstInvalid)
		return runErr
	})
	return summary, err
}
