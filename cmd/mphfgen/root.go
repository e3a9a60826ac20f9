// Command mphfgen builds a minimal perfect hash function from a word file
// and prints its pseudo-code rendering, or builds one and re-checks its
// bijectivity over the same word file.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mphfgen",
		Short: "Build minimal perfect hash functions from word lists",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit debug-level build diagnostics")
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newVerifyCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
