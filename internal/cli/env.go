// Package cli carries the state the root command resolves for its subcommands.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/LegacyCodeHQ/cozy/config"
	"github.com/LegacyCodeHQ/cozy/internal/diag"
)

// Env is the resolved filesystem, configuration and verbosity for a command run.
type Env struct {
	Fs         afero.Fs
	Config     *config.Config
	ConfigPath string
	Verbose    bool
}

type envKey struct{}

// DefaultEnv uses the OS filesystem and built-in configuration.
func DefaultEnv() *Env {
	return &Env{
		Fs:     afero.NewOsFs(),
		Config: config.DefaultConfig(),
	}
}

// WithEnv returns a copy of ctx carrying env.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromContext returns the Env stored in ctx, or DefaultEnv when there is none.
func FromContext(ctx context.Context) *Env {
	if ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*Env); ok && env != nil {
			return env
		}
	}
	return DefaultEnv()
}

// Logger returns a diagnostic logger writing to w.
func (e *Env) Logger(w io.Writer) *log.Logger {
	return diag.New(w, e.Verbose)
}
