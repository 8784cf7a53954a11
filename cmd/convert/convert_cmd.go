package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/cozy/convert"
	"github.com/LegacyCodeHQ/cozy/internal/cli"
	"github.com/LegacyCodeHQ/cozy/scan"
)

const usageLine = "Usage: cozy convert <directory> [--ext=.svg] [--dry-run] [--force] [--no-move] [--barrel=index.ts] [--watch]"

type convertOptions struct {
	extensions string
	dryRun     bool
	force      bool
	noMove     bool
	barrel     string
	watch      bool
}

// NewCommand returns a new convert command instance.
func NewCommand() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:     "convert <directory>",
		Aliases: []string{"svg2tsx"},
		Short:   "Convert SVG files in a directory to React components",
		Long: `Convert every SVG file in a directory into a typed React component
(<Name>.tsx), then regenerate the directory's barrel module.

Attributes are rewritten for JSX: dashed names become camelCase, fill and
stroke colors become currentColor, and class becomes className. Converted
sources are moved into <directory>/original unless --no-move is given.

Examples:
  cozy convert ./icons
  cozy convert ./icons --dry-run
  cozy convert ./icons --force --no-move
  cozy convert ./icons --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.extensions, "ext", "", "Override extensions to include (comma-separated, e.g. .svg,.svgz)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print planned changes only")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite existing output files")
	cmd.Flags().BoolVar(&opts.noMove, "no-move", false, "Keep original SVGs in place")
	cmd.Flags().StringVar(&opts.barrel, "barrel", "", "Barrel file to regenerate (default from config, index.ts)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Keep running and convert new SVG files as they appear")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	if len(args) == 0 || args[0] == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Missing required argument. Expected: <directory>")
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return nil
	}

	env := cli.FromContext(cmd.Context())
	runOpts := buildRunOptions(env, args[0], opts)
	runOpts.Logger = env.Logger(cmd.ErrOrStderr())

	if _, err := convert.Run(env.Fs, runOpts); err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}
	return watchDir(cmd.Context(), env.Fs, runOpts)
}

// buildRunOptions merges command flags over the configured defaults.
func buildRunOptions(env *cli.Env, dir string, opts *convertOptions) convert.Options {
	defaults := env.Config.Convert

	extensions := scan.ParseExtensions(opts.extensions)
	if extensions == nil {
		extensions = defaults.Extensions
	}

	barrel := opts.barrel
	if barrel == "" {
		barrel = defaults.Barrel
	}

	return convert.Options{
		Dir:           dir,
		Extensions:    extensions,
		DryRun:        opts.dryRun,
		Force:         opts.force,
		MoveOriginals: defaults.MoveOriginals && !opts.noMove,
		Barrel:        barrel,
	}
}
