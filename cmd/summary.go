package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/seatboard/internal/pipeline"
	"github.com/KaramelBytes/seatboard/internal/render"
	"github.com/KaramelBytes/seatboard/internal/seating"
	"github.com/KaramelBytes/seatboard/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryJSON bool

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Width(28)
	countStyle   = lipgloss.NewStyle().Bold(true)
	tableStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print attendance counts and table assignments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := pipeline.Run(cmd.Context(), newSource(), logger)
		if err != nil {
			return err
		}
		sum := res.Groups.Summary()
		if summaryJSON {
			b, err := utils.PrettyJSON(sum)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}
		writeSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

func writeSummary(w io.Writer, sum seating.Summary) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Present: %d", sum.Present)))
	for _, c := range sum.Counts {
		fmt.Fprintf(w, "  %s%s\n", labelStyle.Render(render.IconFor(c.Attribute).Label), countStyle.Render(fmt.Sprint(c.Count)))
	}
	fmt.Fprintln(w)
	for _, t := range sum.Tables {
		fmt.Fprintln(w, tableStyle.Render(fmt.Sprintf("Table %d", t.Number)))
		for _, p := range t.People {
			marks := make([]string, 0, len(p.Indicators))
			for _, a := range p.Indicators {
				marks = append(marks, string(a))
			}
			line := "  " + p.Name
			if len(marks) > 0 {
				line += " " + mutedStyle.Render("["+strings.Join(marks, " ")+"]")
			}
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w, mutedStyle.Render(render.MissingTablesNote))
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print the summary as JSON")
}
