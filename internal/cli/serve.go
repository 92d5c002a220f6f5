package cli

import (
	"github.com/spf13/cobra"

	"github.com/creatorlab/canvas/internal/server"
)

// serveCommand starts the HTTP preview and export service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render and template API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd, false)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return server.New(runner, cfg, c.Logger).ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
