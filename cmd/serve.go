package cmd

import (
	"fmt"

	"github.com/KaramelBytes/seatboard/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and task list over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.ListenAddr
		}
		if addr == "" {
			addr = ":8080"
		}
		srv := server.New(server.Options{
			Source:   newSource(),
			HostPage: cfg.HostPage,
			Logger:   logger,
			DevMode:  debug,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Serving dashboard on %s\n", addr)
		return srv.Run(cmd.Context(), addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config listen_addr)")
}
