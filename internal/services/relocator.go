package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"culler/internal/fsx"
)

// FileRelocator moves a described file into a destination root, recreating
// the originating relative subdirectory so the path under the destination
// mirrors the path under the scan root. Name collisions are resolved with
// numeric suffixes; an existing destination file is never overwritten.
type FileRelocator struct {
	log zerolog.Logger
}

func NewFileRelocator(logger zerolog.Logger) *FileRelocator {
	return &FileRelocator{log: logger}
}

func (relocator *FileRelocator) Relocate(req RelocateRequest) (RelocateResult, error) {
	if req.DestRoot == "" {
		return RelocateResult{}, fmt.Errorf("relocate %s: no destination root", req.File.RelPath())
	}

	destDir := req.DestRoot
	if req.File.RelDir != "" {
		destDir = filepath.Join(req.DestRoot, req.File.RelDir)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return RelocateResult{}, fmt.Errorf("relocate %s: %w", req.File.RelPath(), err)
	}

	target, renamed := freeName(destDir, req.File.Name)
	if err := fsx.Move(req.File.AbsPath, target); err != nil {
		return RelocateResult{}, fmt.Errorf("relocate %s: %w", req.File.RelPath(), err)
	}

	relocator.log.Info().
		Str("file", req.File.RelPath()).
		Str("dest", target).
		Bool("renamed", renamed).
		Msg("relocated")
	return RelocateResult{DestPath: target, Renamed: renamed}, nil
}

// freeName returns the first unoccupied destination path for name inside
// dir, appending _1, _2, ... before the extension until one is free.
func freeName(dir, name string) (string, bool) {
	target := filepath.Join(dir, name)
	if !pathExists(target) {
		return target, false
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
		if !pathExists(target) {
			return target, true
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
