// Package commands implements the CLI commands for typeget.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/typeget/internal/app"
	"go.trai.ch/typeget/internal/build"
)

// CLI represents the command line interface for typeget.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Plan(opts app.RunOptions) (app.Plan, error)
	List(plan app.Plan, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "typeget",
		Short:         "Install the @types package of every dependency in package.json",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := runOptions(cmd)
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
			return c.app.Run(cmd.Context(), opts)
		},
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Directory containing package.json")
	flags.StringP("package-manager", "p", "", "Package manager executable (default from .typeget.yaml, else npm)")
	flags.IntP("jobs", "j", 0, "Number of concurrent installs (default from .typeget.yaml, else CPU count)")
	flags.Duration("timeout", 0, "Timeout for a single install, 0 for none")
	flags.Bool("log-json", false, "Write logs as JSON")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Print the type packages instead of installing them")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	dir, _ := cmd.Flags().GetString("dir")
	manager, _ := cmd.Flags().GetString("package-manager")
	jobs, _ := cmd.Flags().GetInt("jobs")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	return app.RunOptions{
		Dir:            dir,
		PackageManager: manager,
		Jobs:           jobs,
		Timeout:        timeout,
		LogJSON:        logJSON,
	}
}
