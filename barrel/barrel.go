// Package barrel generates an index module that re-exports the default
// export of every matching file in a directory.
package barrel

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/LegacyCodeHQ/cozy/internal/diag"
	"github.com/LegacyCodeHQ/cozy/naming"
	"github.com/LegacyCodeHQ/cozy/scan"
)

// DefaultExtensions are the asset types exported when no filter is given.
var DefaultExtensions = []string{".svg", ".jpg", ".jpeg", ".png", ".gif", ".webp", ".tsx"}

// Options configures Generate.
type Options struct {
	Dir        string
	Output     string
	Extensions []string
	DryRun     bool
	Logger     *log.Logger
}

// Entry is one export line: an identifier bound to a sibling file.
type Entry struct {
	Name string
	File string
}

// ExportNames derives one identifier per file, in order. Files that map to
// an identifier already taken get a numeric suffix: Card, Card2, Card3.
func ExportNames(files []string) []Entry {
	counts := make(map[string]int, len(files))
	entries := make([]Entry, 0, len(files))

	for _, file := range files {
		base := naming.ComponentName(naming.Stem(file))
		count := counts[base]
		counts[base] = count + 1

		name := base
		if count > 0 {
			name = base + strconv.Itoa(count+1)
		}
		entries = append(entries, Entry{Name: name, File: file})
	}

	return entries
}

// Render returns the barrel source for files.
func Render(files []string) string {
	entries := ExportNames(files)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("export { default as %s } from \"./%s\";", entry.Name, entry.File))
	}
	return strings.Join(lines, "\n") + "\n"
}

// Generate scans opts.Dir and writes the barrel to opts.Dir/opts.Output.
// It returns the path written, or "" when nothing was written.
func Generate(fs afero.Fs, opts Options) (string, error) {
	logger := diag.OrDiscard(opts.Logger)

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	files := scan.Dir(fs, opts.Dir, exts, logger)
	if len(files) == 0 {
		logger.Warnf("No matching files found in %s", opts.Dir)
		return "", nil
	}

	path := filepath.Join(opts.Dir, opts.Output)
	if opts.DryRun {
		logger.Infof("Dry run. Would write %s", path)
		return "", nil
	}

	if err := afero.WriteFile(fs, path, []byte(Render(files)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Infof("Done! Wrote %s", path)
	return path, nil
}
