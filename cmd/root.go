// Package cmd wires the cozy subcommands into the root command.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	configcmd "github.com/LegacyCodeHQ/cozy/cmd/config"
	convertcmd "github.com/LegacyCodeHQ/cozy/cmd/convert"
	exportcmd "github.com/LegacyCodeHQ/cozy/cmd/export"
	"github.com/LegacyCodeHQ/cozy/config"
	"github.com/LegacyCodeHQ/cozy/internal/cli"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// envFiles are dotenv files read from the working directory.
var envFiles = []string{".env"}

type rootOptions struct {
	configFile string
	verbose    bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cozy",
		Short: "Turn SVG folders into React components and barrel files",
		Long: `cozy converts directories of SVG files into typed React components and
keeps a barrel module re-exporting them up to date.

Use 'cozy --help' to see all available commands, or 'cozy <command> --help'
for detailed information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadEnv(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is $HOME/.cozyutils/config.json)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable verbose output")

	cmd.AddCommand(convertcmd.NewCommand())
	cmd.AddCommand(exportcmd.NewCommand())
	cmd.AddCommand(configcmd.NewCommand())

	return cmd
}

// loadEnv resolves configuration once and hands it to the running subcommand.
func loadEnv(cmd *cobra.Command, opts *rootOptions) error {
	fs := afero.NewOsFs()
	cfg, path, err := config.Load(fs, config.LoadOptions{
		ConfigFilePath: opts.configFile,
		EnvFiles:       envFiles,
	})
	if err != nil {
		return err
	}

	cmd.SetContext(cli.WithEnv(cmd.Context(), &cli.Env{
		Fs:         fs,
		Config:     cfg,
		ConfigPath: path,
		Verbose:    opts.verbose,
	}))
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
