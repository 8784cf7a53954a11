// Package scan lists the files of a single directory that match an
// extension filter, in deterministic order.
package scan

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/LegacyCodeHQ/cozy/internal/diag"
)

// NormalizeExtensions trims, lowercases and dot-prefixes each filter entry.
// Blank entries are dropped.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

// ParseExtensions splits a comma-separated --ext value into entries.
// It returns nil for an empty value so callers can fall back to defaults.
func ParseExtensions(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

// HasExtension reports whether name ends with one of the normalized
// extensions, ignoring case.
func HasExtension(name string, normalized []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range normalized {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Dir returns the sorted names of entries in dir that match exts. An empty
// filter matches every entry. A missing or non-directory path is reported
// on logger and yields an empty result.
func Dir(fs afero.Fs, dir string, exts []string, logger *log.Logger) []string {
	logger = diag.OrDiscard(logger)

	info, err := fs.Stat(dir)
	if err != nil {
		logger.Warnf("Directory not found: %s", dir)
		return nil
	}
	if !info.IsDir() {
		logger.Warnf("%s is not a directory.", dir)
		return nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		logger.Warnf("Directory not found: %s", dir)
		return nil
	}

	normalized := NormalizeExtensions(exts)
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if len(normalized) == 0 || HasExtension(name, normalized) {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
