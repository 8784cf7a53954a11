// Package config loads user settings for the cozy CLI.
//
// Settings come from a JSON file (default ~/.cozyutils/config.json), an
// optional .env file and the process environment. Nothing here writes
// configuration back to disk.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/LegacyCodeHQ/cozy/barrel"
	"github.com/LegacyCodeHQ/cozy/convert"
)

const (
	// AppDir is the directory under the user's home holding the config file.
	AppDir = ".cozyutils"
	// FileName is the config file name.
	FileName = "config.json"
	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv = "GEMINI_API_KEY"

	keyAPIKey               = "gemini_api_key"
	keyConvertExtensions    = "convert.extensions"
	keyConvertBarrel        = "convert.barrel"
	keyConvertMoveOriginals = "convert.move_originals"
	keyExportExtensions     = "export.extensions"
)

// Config is the resolved user configuration.
type Config struct {
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
	Convert      ConvertConfig `mapstructure:"convert"`
	Export       ExportConfig  `mapstructure:"export"`
}

// ConvertConfig holds defaults for the convert command.
type ConvertConfig struct {
	Extensions    []string `mapstructure:"extensions"`
	Barrel        string   `mapstructure:"barrel"`
	MoveOriginals bool     `mapstructure:"move_originals"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// LoadOptions overrides where Load looks for its inputs.
type LoadOptions struct {
	// ConfigFilePath is used instead of the default path; it must exist.
	ConfigFilePath string
	// HomeDir replaces the user's home directory when resolving the default path.
	HomeDir string
	// EnvFiles are dotenv files consulted for the API key. Missing files are ignored.
	EnvFiles []string
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			Extensions:    append([]string(nil), convert.DefaultExtensions...),
			Barrel:        convert.DefaultBarrel,
			MoveOriginals: true,
		},
		Export: ExportConfig{
			Extensions: append([]string(nil), barrel.DefaultExtensions...),
		},
	}
}

// DefaultPath returns the config file path under homeDir, or under the
// user's home directory when homeDir is empty.
func DefaultPath(homeDir string) (string, error) {
	if homeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		homeDir = home
	}
	return filepath.Join(homeDir, AppDir, FileName), nil
}

// Load resolves the configuration. It returns the config together with the
// path of the file that was read, which is empty when defaults were used.
func Load(fs afero.Fs, opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("json")

	defaults := DefaultConfig()
	v.SetDefault(keyConvertExtensions, defaults.Convert.Extensions)
	v.SetDefault(keyConvertBarrel, defaults.Convert.Barrel)
	v.SetDefault(keyConvertMoveOriginals, defaults.Convert.MoveOriginals)
	v.SetDefault(keyExportExtensions, defaults.Export.Extensions)
	if err := v.BindEnv(keyAPIKey, APIKeyEnv); err != nil {
		return nil, "", fmt.Errorf("failed to bind %s: %w", APIKeyEnv, err)
	}

	path, err := resolvePath(fs, opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if os.Getenv(APIKeyEnv) == "" {
		dotenv, err := readEnvFiles(fs, opts.EnvFiles)
		if err != nil {
			return nil, "", err
		}
		if key := dotenv[APIKeyEnv]; key != "" {
			cfg.GeminiAPIKey = key
		}
	}

	return &cfg, path, nil
}

func resolvePath(fs afero.Fs, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		exists, err := afero.Exists(fs, opts.ConfigFilePath)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", opts.ConfigFilePath, err)
		}
		if !exists {
			return "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	path, err := DefaultPath(opts.HomeDir)
	if err != nil {
		return "", err
	}
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return "", nil
	}
	return path, nil
}

// readEnvFiles merges dotenv files; earlier files win.
func readEnvFiles(fs afero.Fs, files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, file := range files {
		content, err := afero.ReadFile(fs, file)
		if err != nil {
			continue
		}
		values, err := godotenv.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		for k, val := range values {
			if _, ok := merged[k]; !ok {
				merged[k] = val
			}
		}
	}
	return merged, nil
}

// APIKey returns the configured API key, if any.
func (c *Config) APIKey() (string, bool) {
	key := strings.TrimSpace(c.GeminiAPIKey)
	return key, key != ""
}
