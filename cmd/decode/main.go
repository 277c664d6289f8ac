// Command decode explodes compressed_files.bin in the current directory
// and reconstructs the original texts under ./decoded/.
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
		Use:           "decode",
		Short:         "Reconstruct *.txt files from compressed_files.bin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(os.Stderr)

			dir, err := os.Getwd()
			if err != nil {
				return err
			}

			stats, err := pipeline.RunDecode(dir, log)
			if err != nil {
				return err
			}
			log.Info().Int64("elapsed_ns", stats.ElapsedNanos).Msg("decode complete")
			return nil
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}
}
