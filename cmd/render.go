package cmd

import (
	"bytes"
	"fmt"

	"github.com/KaramelBytes/seatboard/internal/pipeline"
	"github.com/KaramelBytes/seatboard/internal/render"
	"github.com/KaramelBytes/seatboard/internal/utils"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderPage   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the seating dashboard as HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := pipeline.Run(cmd.Context(), newSource(), logger)
		if err != nil {
			return err
		}
		hostPage := renderPage
		if hostPage == "" {
			hostPage = cfg.HostPage
		}
		page, err := render.LoadPageFile(hostPage)
		if err != nil {
			return err
		}
		if err := page.Mount(res.Groups); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := page.Render(&buf); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
		if renderOutput == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := utils.SafeWriteFile(renderOutput, buf.Bytes()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote dashboard to %s (%d present, %d tables)\n",
			renderOutput, len(res.Groups.Present), len(res.Groups.Tables()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "path to write the HTML (default stdout)")
	renderCmd.Flags().StringVar(&renderPage, "page", "", "host HTML page with #tables and #attributes (overrides config)")
}
