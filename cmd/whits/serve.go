package main

import (
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/elevensolutions/whits/internal/build"
	"github.com/elevensolutions/whits/internal/metrics"
	"github.com/elevensolutions/whits/internal/preview"
)

func (c *cli) serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview pages from a local server",
		Long: `Start a server that renders the matching document on every request.

Pages are served under their output names, so pages/blog/post.json is at
/blog/post.html. Prometheus metrics are served at /metrics.

Examples:
  whits serve
  whits serve --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				c.config.Serve.Host = host
			}
			if cmd.Flags().Changed("port") {
				c.config.Serve.Port = port
			}

			m := metrics.New()
			builder := build.New(c.config, nil, build.Options{
				Metrics: m,
				Tracer:  otel.Tracer(tracerName),
			})

			c.success("Serving %s on http://%s", c.config.SourcePath(), c.config.Address())
			return preview.New(c.config, builder, m).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default from whits.toml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from whits.toml)")
	return cmd
}
