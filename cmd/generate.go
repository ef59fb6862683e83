package cmd

import (
	"os"

	"github.com/mezonai/blockmine/block"
	"github.com/mezonai/blockmine/blockgen"
	"github.com/mezonai/blockmine/loader"
	"github.com/mezonai/blockmine/logx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type GenerateConfig struct {
	WindowSize int
	Count      int
	Seed       string
	CorruptAt  []int
	Out        string
}

var generateConfig GenerateConfig

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate a valid block stream",
	Long: `Generate a stream whose blocks after the seed are each the sum of the
two oldest blocks of their window, optionally corrupting some positions.
Examples:
  # 1000 blocks for a window of 100
  generate -w 100 -n 1000 -o blocks.txt

  # Sequential seed, corrupt the 31st block (index 30)
  generate -w 25 -n 200 --seed sequential --corrupt-at 30
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateStream(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateConfig.WindowSize, "window", "w", 100, "window size")
	generateCmd.Flags().IntVarP(&generateConfig.Count, "count", "n", 1000, "total blocks, seed included")
	generateCmd.Flags().StringVar(&generateConfig.Seed, "seed", "fixed", "seed window: fixed or sequential")
	generateCmd.Flags().IntSliceVar(&generateConfig.CorruptAt, "corrupt-at", nil, "0-based stream indexes to replace with invalid blocks")
	generateCmd.Flags().StringVarP(&generateConfig.Out, "out", "o", "", "output file (default stdout)")
}

func generateStream(cmd *cobra.Command) error {
	var seed []block.Block
	switch generateConfig.Seed {
	case "fixed":
		seed = blockgen.Seed(generateConfig.WindowSize)
	case "sequential":
		seed = blockgen.Sequential(generateConfig.WindowSize)
	default:
		return errors.Errorf("unknown seed %q", generateConfig.Seed)
	}

	stream, err := blockgen.Valid(seed, generateConfig.Count)
	if err != nil {
		return errors.Wrap(err, "generate stream")
	}
	for _, i := range generateConfig.CorruptAt {
		if err := blockgen.Corrupt(stream, generateConfig.WindowSize, i); err != nil {
			return errors.Wrapf(err, "corrupt index %d", i)
		}
	}

	out := cmd.OutOrStdout()
	if generateConfig.Out != "" {
		f, err := os.Create(generateConfig.Out)
		if err != nil {
			return errors.Wrap(err, "create output file")
		}
		defer f.Close()
		out = f
	}
	if err := loader.Write(out, stream); err != nil {
		return errors.Wrap(err, "write stream")
	}
	logx.Info("GENERATE", "Generated ", len(stream), " blocks, window ", generateConfig.WindowSize)
	return nil
}
