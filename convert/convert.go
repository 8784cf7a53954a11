// Package convert turns a directory of SVG files into React components and
// regenerates the directory's barrel module.
//
// Files are handled one at a time in sorted order. A read, write or move
// failure aborts the batch; files written before the failure stay on disk.
package convert

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/LegacyCodeHQ/cozy/barrel"
	"github.com/LegacyCodeHQ/cozy/component"
	"github.com/LegacyCodeHQ/cozy/internal/diag"
	"github.com/LegacyCodeHQ/cozy/naming"
	"github.com/LegacyCodeHQ/cozy/rewrite"
	"github.com/LegacyCodeHQ/cozy/scan"
)

const (
	// OriginalsDir is the subdirectory converted sources are moved into.
	OriginalsDir = "original"
	// DefaultBarrel is the barrel file regenerated after a conversion.
	DefaultBarrel = "index.ts"
)

// DefaultExtensions selects the sources converted when no filter is given.
var DefaultExtensions = []string{".svg"}

// Options configures Run.
type Options struct {
	Dir        string
	Extensions []string
	DryRun     bool
	Force      bool
	// MoveOriginals relocates each converted source into Dir/original.
	MoveOriginals bool
	// Barrel is the barrel file name; DefaultBarrel when empty.
	Barrel string
	Logger *log.Logger
}

// Result counts what a run did.
type Result struct {
	Matched int
	Written int
	Skipped int
	Moved   int
	// BarrelPath is the barrel written after the run, if any.
	BarrelPath string
}

// Run converts every matching file in opts.Dir.
func Run(fs afero.Fs, opts Options) (Result, error) {
	var result Result
	logger := diag.OrDiscard(opts.Logger)

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	files := scan.Dir(fs, opts.Dir, exts, logger)
	result.Matched = len(files)
	if len(files) == 0 {
		logger.Warnf("No matching files found in %s", opts.Dir)
		return result, nil
	}

	for _, filename := range files {
		if err := convertFile(fs, opts, logger, filename, &result); err != nil {
			return result, err
		}
	}

	if !opts.DryRun {
		barrelName := opts.Barrel
		if barrelName == "" {
			barrelName = DefaultBarrel
		}
		path, err := barrel.Generate(fs, barrel.Options{
			Dir:        opts.Dir,
			Output:     barrelName,
			Extensions: []string{component.Extension},
			Logger:     logger,
		})
		if err != nil {
			return result, err
		}
		result.BarrelPath = path
	}

	logger.Infof("Done! Processed %d file(s).", len(files))
	return result, nil
}

// convertFile runs read → rewrite → render → write → move for one source.
func convertFile(fs afero.Fs, opts Options, logger *log.Logger, filename string, result *Result) error {
	sourcePath := filepath.Join(opts.Dir, filename)
	content, err := afero.ReadFile(fs, sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	name := naming.ComponentName(naming.Stem(filename))
	source := component.Render(name, rewrite.Apply(string(content)))
	outputName := component.FileName(name)
	outputPath := filepath.Join(opts.Dir, outputName)
	logger.Debug("converting", "source", filename, "component", name)

	exists, err := afero.Exists(fs, outputPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", outputPath, err)
	}
	if exists && !opts.Force {
		logger.Warnf("File %s already exists. Skipping...", outputName)
		result.Skipped++
		return nil
	}

	if opts.DryRun {
		logger.Infof("Dry run. Would write %s", outputPath)
		return nil
	}

	if err := afero.WriteFile(fs, outputPath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	result.Written++

	if !opts.MoveOriginals {
		return nil
	}
	return moveOriginal(fs, opts.Dir, filename, result)
}

func moveOriginal(fs afero.Fs, dir, filename string, result *Result) error {
	originals := filepath.Join(dir, OriginalsDir)
	if err := fs.MkdirAll(originals, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", originals, err)
	}

	from := filepath.Join(dir, filename)
	if err := fs.Rename(from, filepath.Join(originals, filename)); err != nil {
		return fmt.Errorf("failed to move %s: %w", from, err)
	}
	result.Moved++
	return nil
}
