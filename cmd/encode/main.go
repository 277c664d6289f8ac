// Command encode Huffman-compresses every *.txt file in the current
// directory and bundles the results into compressed_files.bin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kelbwah/unihuff/internal/logging"
	"github.com/kelbwah/unihuff/internal/pipeline"
)

func main() {
	root := &cobra.Command{
		Use:           "encode",
		Short:         "Huffman-encode every *.txt file in the working directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(os.Stderr)

			dir, err := os.Getwd()
			if err != nil {
				return err
			}

			stats, err := pipeline.RunEncode(dir, log)
			if err != nil {
				return err
			}
			log.Info().Int64("elapsed_ns", stats.ElapsedNanos).Msg("encode complete")
			return nil
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}
