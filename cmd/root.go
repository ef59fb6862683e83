package cmd

import (
	"os"

	"github.com/mezonai/blockmine/logx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "blockmine",
	Short:         "Sliding-window block stream validator",
	Long:          "Validates streams where every block must be the sum of two of the previous window blocks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
