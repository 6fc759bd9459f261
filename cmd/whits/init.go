package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/elevensolutions/whits/internal/config"
	"github.com/elevensolutions/whits/internal/errors"
)

const samplePage = `# Rendered to index.html by "whits build".
rootAttributes:
  lang: en
content:
  - tag: head
    children:
      - tag: meta
        attrs: {charset: utf-8}
      - tag: title
        children: [Hello from whits]
  - tag: body
    children:
      - tag: main.page
        children:
          - markdown: |
              # Hello

              Edit *pages/index.html.yaml* and run **whits serve**.
`

func (c *cli) initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init [DIR]",
		Short:       "Create whits.toml and a sample page",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"config": "skip"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if config.Exists(dir) && !force {
				return errors.New(errors.CodeConfigSave).
					WithFile(filepath.Join(dir, config.ConfigFileName)).
					WithDetail("The file already exists.").
					WithSuggestion("Use --force to overwrite it.")
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.New(errors.CodeConfigSave).WithFile(dir).Wrap(err)
			}
			cfg := config.New()
			path := filepath.Join(dir, config.ConfigFileName)
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			c.success("Created %s", path)

			pages := filepath.Join(dir, cfg.Source.Dir)
			if _, err := os.Stat(pages); os.IsNotExist(err) {
				if err := os.MkdirAll(pages, 0o755); err != nil {
					return errors.New(errors.CodeConfigSave).WithFile(pages).Wrap(err)
				}
				sample := filepath.Join(pages, "index.html.yaml")
				if err := os.WriteFile(sample, []byte(samplePage), 0o644); err != nil {
					return errors.New(errors.CodeConfigSave).WithFile(sample).Wrap(err)
				}
				c.success("Created %s", sample)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing whits.toml")
	return cmd
}
