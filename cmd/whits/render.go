package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/elevensolutions/whits/internal/build"
	"github.com/elevensolutions/whits/internal/errors"
)

func (c *cli) renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render one document",
		Long: `Render a single document and write the page to stdout or a file.

Examples:
  whits render pages/index.html.yaml
  whits render icon.svg.xml -o icon.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := build.New(c.config, nil, build.Options{}).RenderFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return errors.New(errors.CodeOutputWrite).WithFile(output).Wrap(err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
