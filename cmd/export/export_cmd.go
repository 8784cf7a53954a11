package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/cozy/barrel"
	"github.com/LegacyCodeHQ/cozy/internal/cli"
	"github.com/LegacyCodeHQ/cozy/scan"
)

const usageLine = "Usage: cozy export <directory> <output-file> [--ext=.svg,.png] [--dry-run]"

type exportOptions struct {
	extensions string
	dryRun     bool
}

// NewCommand returns a new export command instance.
func NewCommand() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:     "export <directory> <output-file>",
		Aliases: []string{"img2export"},
		Short:   "Export image files in a directory as named exports",
		Long: `Write <directory>/<output-file> re-exporting the default export of every
matching file in the directory. Identifiers are derived from file names;
duplicates get a numeric suffix (Card, Card2, ...). The output file is
overwritten on every run.

Examples:
  cozy export ./assets index.ts
  cozy export ./assets index.ts --ext=.svg,.png
  cozy export ./assets index.ts --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.extensions, "ext", "", "Override extensions to include (comma-separated, e.g. .svg,.png)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print planned changes only")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *exportOptions) error {
	if len(args) < 2 || args[0] == "" || args[1] == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Missing required arguments. Expected: <directory> <output-file>")
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return nil
	}

	env := cli.FromContext(cmd.Context())

	extensions := scan.ParseExtensions(opts.extensions)
	if extensions == nil {
		extensions = env.Config.Export.Extensions
	}

	_, err := barrel.Generate(env.Fs, barrel.Options{
		Dir:        args[0],
		Output:     args[1],
		Extensions: extensions,
		DryRun:     opts.dryRun,
		Logger:     env.Logger(cmd.ErrOrStderr()),
	})
	return err
}
