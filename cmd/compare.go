package cmd

import (
	"fmt"

	"github.com/mezonai/blockmine/engine"
	"github.com/mezonai/blockmine/exception"
	"github.com/mezonai/blockmine/loader"
	"github.com/mezonai/blockmine/logx"
	"github.com/mezonai/blockmine/mine"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errEnginesDisagree = errors.New("engines disagree")

var compareWindow int

var compareCmd = &cobra.Command{
	Use:   "compare <block-file>",
	Short: "Run every engine over a stream and check they agree",
	Long: `Feed the same stream to a mine per engine, one candidate at a time,
and stop at the first candidate where their outcomes differ.
Examples:
  compare -w 5 example.txt
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return exception.Guard("compare", func() error {
			return compareEngines(cmd, args[0], compareWindow)
		})
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVarP(&compareWindow, "window", "w", 100, "window size")
}

func compareEngines(cmd *cobra.Command, path string, size int) error {
	blocks, err := loader.ReadFile(path)
	if err != nil {
		return err
	}
	if len(blocks) < size {
		return errors.Wrapf(mine.ErrInvalidInitialWindow, "%s holds %d blocks, window needs %d", path, len(blocks), size)
	}

	kinds := engine.Kinds()
	mines := make([]*mine.Mine, len(kinds))
	for i, kind := range kinds {
		mines[i], err = mine.New(size, blocks[:size], mine.WithEngine(kind))
		if err != nil {
			return err
		}
	}

	invalid := 0
	for i, candidate := range blocks[size:] {
		outcomes := make([]error, len(mines))
		for j, m := range mines {
			outcomes[j] = m.TryExtendOne(candidate)
		}
		for j := 1; j < len(outcomes); j++ {
			if (outcomes[0] == nil) != (outcomes[j] == nil) {
				logx.Error("COMPARE", fmt.Sprintf("candidate %d (%s): %s=%v %s=%v",
					i, candidate.Dec(), kinds[0], outcomes[0], kinds[j], outcomes[j]))
				return errors.Wrapf(errEnginesDisagree, "at candidate %d", i)
			}
		}
		if outcomes[0] != nil {
			if _, ok := mine.IsInvalidBlock(outcomes[0]); !ok {
				return outcomes[0]
			}
			invalid++
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d engines agree on %d candidates (%d invalid)\n", len(kinds), len(blocks)-size, invalid)
	return err
}
