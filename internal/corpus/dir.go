package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nutrition-assistant/internal/lexical"
)

// corpusFile is a corpus file found while scanning a directory.
type corpusFile struct {
	RelPath string // Relative path from the root, slash separated (e.g. "sports/hydration.md")
	AbsPath string
}

// DirProvider loads every corpus file under Root. Files are read in lexical
// order of their relative paths and their entries concatenated, so renaming a
// file moves its entries in the corpus order.
type DirProvider struct {
	Root string
}

// Load scans Root and parses each supported file.
func (p DirProvider) Load(ctx context.Context) ([]lexical.Entry, error) {
	files, err := scanDir(ctx, p.Root)
	if err != nil {
		return nil, err
	}

	var entries []lexical.Entry
	for _, f := range files {
		parsed, err := FileProvider{Path: f.AbsPath}.Load(ctx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, parsed...)
	}
	return entries, nil
}

// ForPath returns a DirProvider when path is a directory and a FileProvider
// otherwise.
func ForPath(path string) Provider {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return DirProvider{Root: path}
	}
	return FileProvider{Path: path}
}

// supported reports whether name has a corpus file extension.
func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".md", ".markdown":
		return true
	}
	return false
}

// hidden reports whether a directory entry should be skipped (".git", ".obsidian", ...).
func hidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}

// scanDir walks root and returns the supported files below it. WalkDir visits
// entries in lexical order, which makes the result deterministic.
func scanDir(ctx context.Context, root string) ([]corpusFile, error) {
	var files []corpusFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path != root && hidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden(d.Name()) || !supported(d.Name()) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		files = append(files, corpusFile{
			RelPath: filepath.ToSlash(relPath),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan corpus directory %s: %w", root, err)
	}

	return files, nil
}
