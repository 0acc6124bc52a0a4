package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/internal/server"
)

// serveCommand creates the serve command that runs the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Endpoints:
  POST /v1/layout   pattern snapshot → layout JSON
  POST /v1/render   pattern snapshot or layout → svg, png, pdf, json or dot
  POST /v1/cycles   pattern snapshot → prerequisite cycles
  GET  /healthz     build information

Layouts and artifacts are cached with the backend from patternmap.toml
(file, redis or none). Stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			runner, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.WithDefaults(cfg.ApplyDefaults))
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
