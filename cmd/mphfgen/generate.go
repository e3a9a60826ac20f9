package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mphf"
	"github.com/katalvlaran/mphf/hashalgo"
	"github.com/katalvlaran/mphf/wordlist"
)

func newGenerateCmd() *cobra.Command {
	var (
		wordsPath string
		elc       int
		radix     int
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build an MPHF from a word file and print its pseudo-code",
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := wordlist.LoadFile(wordsPath)
			if err != nil {
				return err
			}

			algo := hashalgo.NewElc(elc, radix)
			logrus.WithFields(logrus.Fields{
				"words": wl.Len(),
				"elc":   elc,
				"radix": radix,
			}).Debug("mphfgen: starting build")

			data, err := mphf.Generate(wl, algo)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), data.String)
				return err
			}

			return os.WriteFile(outPath, []byte(data.String), 0o644)
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "path to the newline-delimited word file (required)")
	cmd.Flags().IntVar(&elc, "elc", 1, "ElcAlgorithm window size")
	cmd.Flags().IntVar(&radix, "radix", 26, "ElcAlgorithm digit radix")
	cmd.Flags().StringVar(&outPath, "out", "", "write the pseudo-code here instead of stdout")
	cmd.MarkFlagRequired("words")

	return cmd
}
