package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/elevensolutions/whits/internal/config"
	"github.com/elevensolutions/whits/internal/errors"
	"github.com/elevensolutions/whits/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// cli holds state shared by the commands.
type cli struct {
	configPath string
	verbosity  int
	color      bool

	config *config.Config
	out    io.Writer
	errOut io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{out: stdout, errOut: stderr}
	if f, ok := stdout.(*os.File); ok {
		c.color = isatty.IsTerminal(f.Fd())
	}
	if !c.color {
		errors.DisableColors()
	}

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		errors.Fprint(stderr, err)
		return 1
	}
	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whits",
		Short: "Render HTML pages from structured documents",
		Long: `whits renders HTML and SVG pages from YAML, JSON, TOML, msgpack
and XML documents.

Each document describes a page as a tree of elements, text, raw markup,
Markdown and highlighted code. Pages can be written to a directory,
uploaded to S3 or previewed from a local server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerTo(c.errOut, c.verbosity)
			if cmd.Annotations["config"] == "skip" {
				return nil
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("verbose") && cfg.Log.Verbosity > 0 {
				c.verbosity = cfg.Log.Verbosity
				logging.SetupLoggerTo(c.errOut, c.verbosity)
			}
			c.config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Configuration file (default ./whits.toml)")
	cmd.PersistentFlags().CountVarP(&c.verbosity, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")

	cmd.AddCommand(
		c.buildCmd(),
		c.renderCmd(),
		c.serveCmd(),
		c.initCmd(),
		c.versionCmd(),
	)
	return cmd
}

func (c *cli) paint(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}

// success prints a success message.
func (c *cli) success(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(successStyle, "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func (c *cli) info(format string, args ...any) {
	fmt.Fprintf(c.out, "  %s\n", c.paint(dimStyle, fmt.Sprintf(format, args...)))
}

// warn prints a warning message.
func (c *cli) warn(format string, args ...any) {
	fmt.Fprintf(c.errOut, "%s %s\n", c.paint(warnStyle, "⚠"), fmt.Sprintf(format, args...))
}

// failure prints an error message.
func (c *cli) failure(format string, args ...any) {
	fmt.Fprintf(c.errOut, "%s %s\n", c.paint(failStyle, "✗"), fmt.Sprintf(format, args...))
}
