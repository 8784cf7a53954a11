package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/cozy/internal/cli"
)

// NewCommand returns a new config command instance.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show where configuration was loaded from and the defaults the convert
and export commands will use. The API key itself is never printed.

Examples:
  cozy config
  cozy config --config ./cozy.json`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	env := cli.FromContext(cmd.Context())
	return printConfig(cmd.OutOrStdout(), env)
}

func printConfig(w io.Writer, env *cli.Env) error {
	source := env.ConfigPath
	if source == "" {
		source = "(defaults)"
	}

	apiKey := "not set"
	if _, ok := env.Config.APIKey(); ok {
		apiKey = "set"
	}

	cfg := env.Config
	rows := [][2]string{
		{"Config file:", source},
		{"convert.extensions:", strings.Join(cfg.Convert.Extensions, ", ")},
		{"convert.barrel:", cfg.Convert.Barrel},
		{"convert.move_originals:", strconv.FormatBool(cfg.Convert.MoveOriginals)},
		{"export.extensions:", strings.Join(cfg.Export.Extensions, ", ")},
		{"gemini_api_key:", apiKey},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-24s%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}
