package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/elevensolutions/whits/internal/build"
	"github.com/elevensolutions/whits/internal/config"
	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/internal/publish"
)

const tracerName = "github.com/elevensolutions/whits"

func (c *cli) buildCmd() *cobra.Command {
	var (
		output     string
		clean      bool
		noManifest bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every document",
		Long: `Render every document in the source directory and publish the pages.

A document that fails is reported and the build continues with the
others. The command exits with status 1 if any page failed.

Examples:
  whits build
  whits build --out public --clean
  WHITS_PUBLISH_TARGET=s3 WHITS_PUBLISH_BUCKET=my-site whits build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				c.config.Output.Dir = output
				c.config.Publish.Target = config.PublishDir
			}

			builder := build.New(c.config, publish.FromConfig(c.config), build.Options{
				Clean:    clean,
				Manifest: !noManifest,
				Tracer:   otel.Tracer(tracerName),
				OnProgress: func(step string) {
					if c.verbosity > 0 {
						c.info("%s", step)
					}
				},
			})

			result, err := builder.Build(cmd.Context())
			if result == nil {
				return err
			}

			for _, page := range result.Pages {
				if page.Err == nil {
					c.info("%s → %s (%s)", page.Source, page.Output, formatBytes(int64(page.Size)))
				}
			}
			for _, page := range result.Failed() {
				c.failure("%s", errors.FromError(page.Err, errors.CodeRenderFailed).FormatCompact())
			}

			ok := len(result.Pages) - len(result.Failed())
			if len(result.Pages) == 0 {
				c.warn("No documents found in %s", c.config.SourcePath())
			} else {
				c.success("Built %d of %d pages in %s", ok, len(result.Pages), result.Duration.Round(1000000))
			}
			if err != nil {
				return errors.New(errors.CodeBuildFailed).
					WithDetail(fmt.Sprintf("%d of %d pages failed to build.", len(result.Failed()), len(result.Pages)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from whits.toml)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove previous output first")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "Do not write manifest.json")

	return cmd
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
