package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trading2024/hardhat/rlog"
)

var (
	flagProjectRoot string
	flagRemappings  []string
	flagVerbose     bool

	logger = rlog.New(os.Stderr)
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hardhat-resolve",
		Short: "Resolve the import graph of a Solidity-style compilation unit",
	}

	root.PersistentFlags().StringVar(&flagProjectRoot, "project-root", "", "project root directory (defaults to the current directory)")
	root.PersistentFlags().StringArrayVar(&flagRemappings, "remap", nil, "a context:prefix=target remapping; may be repeated")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newResolveCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
