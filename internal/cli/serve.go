package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser-based cube solver server",
	Long: `Serve starts the web server: it builds the pattern databases once at
startup, then serves the static UI and a /api/solve endpoint backed by the
same engine the solve subcommand uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetString("port")
		addr := fmt.Sprintf("%s:%s", host, port)

		server := web.NewServer()
		if err := server.Start(addr); err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
}
