package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/LegacyCodeHQ/cozy/config"
	"github.com/LegacyCodeHQ/cozy/internal/cli"
)

func TestConfigCommand_Defaults(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	expected := `Config file:            (defaults)
convert.extensions:     .svg
convert.barrel:         index.ts
convert.move_originals: true
export.extensions:      .svg, .jpg, .jpeg, .png, .gif, .webp, .tsx
gemini_api_key:         not set
`
	assert.Equal(t, expected, out.String())
}

func TestConfigCommand_NeverPrintsSecret(t *testing.T) {
	cfg := appconfig.DefaultConfig()
	cfg.GeminiAPIKey = "super-secret"
	env := &cli.Env{Fs: afero.NewMemMapFs(), Config: cfg, ConfigPath: "/home/dev/.cozyutils/config.json"}

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(cli.WithEnv(context.Background(), env)))

	assert.NotContains(t, out.String(), "super-secret")
	assert.Contains(t, out.String(), "gemini_api_key:         set")
	assert.Contains(t, out.String(), "Config file:            /home/dev/.cozyutils/config.json")
}
