package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techstack/pkg/buildinfo"
	"github.com/matzehuels/techstack/pkg/config"
	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "techstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // Report destination

	// Root returns the project root. Defaults to the working directory.
	Root func() (string, error)
}

// New creates a new CLI instance. Diagnostics go to errOut, the report to out.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Out:    out,
		Root:   os.Getwd,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The command takes no
// arguments and no flags besides --help and --version: the working
// directory is always the project root.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Techstack reports the languages, dependencies and frameworks of a project",
		Long: `Techstack inspects the current directory and prints a single report with three
sections: tech_stack (detected frameworks and languages), languages (share of
source bytes per language) and dependencies (declared in package.json,
requirements.txt, go.mod, Cargo.toml, pom.xml, CMakeLists.txt, vcpkg.json,
pyproject.toml, Gemfile and composer.json).

Settings are read from .techstack.{yaml,yml,toml,json} in the project root and
TECHSTACK_* environment variables.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.analyze(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	return root
}

// analyze loads settings, runs the pipeline and writes the report.
func (c *CLI) analyze(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	dir, err := c.Root()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "determine project root")
	}

	cfg, err := config.Load(dir)
	if err != nil {
		c.Logger.Warn("ignoring project config", "err", errors.UserMessage(err))
	}
	c.SetLogLevel(cfg.LogLevel())

	ctx = withLogger(ctx, c.Logger)
	result, err := c.run(ctx, dir, cfg)
	if err != nil {
		return err
	}

	return result.Report.Write(c.Out, cfg.Format(), cfg.Output.Indent)
}

func (c *CLI) run(ctx context.Context, dir string, cfg *config.Config) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(nil, logger)
	result, err := runner.Analyze(ctx, dir, pipeline.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	prog.done("analyzed project")
	return result, nil
}
