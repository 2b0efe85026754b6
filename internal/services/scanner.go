package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"culler/internal/domain"
)

// FileScanner discovers images under a root directory and produces the
// ordered descriptor sequence the browsing session consumes. The sequence
// is sorted by absolute path so repeated scans of an unchanged tree yield
// the same order.
type FileScanner struct {
	log zerolog.Logger
}

func NewFileScanner(logger zerolog.Logger) *FileScanner {
	return &FileScanner{log: logger}
}

func (scanner *FileScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	start := time.Now()
	root := filepath.Clean(req.Root)

	result := ScanResult{Root: root}
	var err error
	if req.Recursive {
		err = scanner.scanTree(ctx, root, &result)
	} else {
		err = scanner.scanFlat(ctx, root, &result)
	}
	if err != nil {
		return ScanResult{}, err
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].AbsPath < result.Files[j].AbsPath
	})
	result.Duration = time.Since(start)
	scanner.log.Info().
		Str("root", root).
		Bool("recursive", req.Recursive).
		Int("files", len(result.Files)).
		Int("warnings", len(result.Warnings)).
		Dur("took", result.Duration).
		Msg("scan complete")
	return result, nil
}

func (scanner *FileScanner) scanFlat(ctx context.Context, root string, result *ScanResult) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		name := entry.Name()
		if !domain.IsImageName(name) {
			continue
		}
		result.Files = append(result.Files, domain.File{
			Name:    name,
			RelDir:  "",
			AbsPath: filepath.Join(root, name),
		})
	}
	return nil
}

func (scanner *FileScanner) scanTree(ctx context.Context, root string, result *ScanResult) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if walkErr != nil {
			// One inaccessible branch never aborts the scan, but a root
			// that cannot be read at all does.
			if path == root {
				return walkErr
			}
			scanner.warn(result, walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		// Symlinks are excluded outright, directories and files alike, so
		// cyclic links can never recurse and linked files never move.
		if entry.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		name := entry.Name()
		if !domain.IsImageName(name) {
			return nil
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			scanner.warn(result, err)
			return nil
		}
		if rel == "." {
			rel = ""
		}
		result.Files = append(result.Files, domain.File{
			Name:    name,
			RelDir:  rel,
			AbsPath: path,
		})
		return nil
	})
}

func (scanner *FileScanner) warn(result *ScanResult, err error) {
	scanner.log.Warn().Err(err).Msg("scan branch skipped")
	result.Warnings = append(result.Warnings, err.Error())
}
