package csscribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/yacobolo/csscribe/internal/logger"
	"github.com/yacobolo/csscribe/internal/stylesheet"
)

// ImportConfig controls a bulk import of stylesheets into the dictionary.
type ImportConfig struct {
	Patterns []string // Glob patterns, "**" supported
	// GitIgnore is the ignore file applied to relative matches. Empty means
	// ".gitignore" in the working directory.
	GitIgnore string
}

// ImportResult summarizes an import run.
type ImportResult struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int // ignored by .gitignore
	Merged          MergeResult
	Warnings        []string // per-file parse failures
}

// Importer merges whole stylesheets into the dictionary, the bulk
// counterpart of Recorder.
type Importer struct {
	Path   string
	Config ImportConfig

	ignoreOnce sync.Once
	ignore     *ignore.GitIgnore
}

// NewImporter returns an Importer writing to the dictionary in storageDir.
func NewImporter(storageDir string, cfg ImportConfig) *Importer {
	return &Importer{Path: DictionaryPath(storageDir), Config: cfg}
}

// Import parses every matching stylesheet and saves the merged dictionary.
// Unlike recording, an unreadable dictionary aborts the import instead of
// being replaced.
func (im *Importer) Import(ctx context.Context) (*ImportResult, error) {
	result := &ImportResult{}

	// 1. Expand patterns
	files, err := im.expand(result)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	// 2. Parse files
	var entries Entries
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sheet, err := stylesheet.ParseFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		result.FilesScanned++

		for _, decl := range sheet.Variables {
			entries.Variables = append(entries.Variables, Variable{Name: decl.Name, Value: decl.Value})
		}
		entries.Classes = append(entries.Classes, sheet.Classes...)

		logger.G(ctx).
			WithField("file", file).
			WithField("variables", len(sheet.Variables)).
			WithField("classes", len(sheet.Classes)).
			Debug("parsed stylesheet")
	}

	// 3. Merge and save
	d, err := LoadDictionary(im.Path)
	if err != nil {
		return nil, err
	}
	result.Merged = d.Merge(entries)
	if err := d.Save(im.Path); err != nil {
		return nil, err
	}

	return result, nil
}

// expand resolves the configured globs to regular files, deduplicated, in
// pattern order.
func (im *Importer) expand(result *ImportResult) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range im.Config.Patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			result.FilesDiscovered++

			if im.shouldSkip(match) {
				result.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, nil
}

// shouldSkip reports whether path is ignored. Absolute paths are outside the
// project and never ignored.
func (im *Importer) shouldSkip(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := im.loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

func (im *Importer) loadGitIgnore() *ignore.GitIgnore {
	im.ignoreOnce.Do(func() {
		name := im.Config.GitIgnore
		if name == "" {
			name = ".gitignore"
		}
		gi, err := ignore.CompileIgnoreFile(name)
		if err != nil {
			// no ignore file is fine
			return
		}
		im.ignore = gi
	})
	return im.ignore
}
