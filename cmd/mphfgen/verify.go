package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mphf"
	"github.com/katalvlaran/mphf/hashalgo"
	"github.com/katalvlaran/mphf/wordlist"
)

func newVerifyCmd() *cobra.Command {
	var (
		wordsPath string
		elc       int
		radix     int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Build an MPHF and re-check bijectivity over its own word file",
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := wordlist.LoadFile(wordsPath)
			if err != nil {
				return err
			}

			algo := hashalgo.NewElc(elc, radix)
			data, err := mphf.Generate(wl, algo)
			if err != nil {
				return err
			}

			seen := make(map[int]bool, wl.Len())
			for _, w := range wl.Words() {
				v := data.Closure(w)
				if seen[v] {
					return fmt.Errorf("mphfgen: word %q collides at %d", w, v)
				}
				seen[v] = true
			}

			logrus.WithField("words", wl.Len()).Debug("mphfgen: verify re-check complete")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "verified %d words onto [0, %d)\n", len(seen), wl.Len())

			return err
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "path to the newline-delimited word file (required)")
	cmd.Flags().IntVar(&elc, "elc", 1, "ElcAlgorithm window size")
	cmd.Flags().IntVar(&radix, "radix", 26, "ElcAlgorithm digit radix")
	cmd.MarkFlagRequired("words")

	return cmd
}
