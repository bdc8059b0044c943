package cmd

import (
	"fmt"

	"github.com/KaramelBytes/seatboard/internal/sheets"
	"github.com/KaramelBytes/seatboard/internal/utils"
	"github.com/spf13/cobra"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the residents sheet response for offline use (--file)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fetchOutput == "" {
			return fmt.Errorf("--output is required")
		}
		f := newFetcher()
		body, err := f.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		tbl, err := sheets.ParsePayload(body)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(fetchOutput, body); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %d rows from %s to %s\n", len(tbl.Rows), f.URL(), fetchOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "path to write the raw response (use a .gviz extension)")
}
