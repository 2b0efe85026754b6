package services

import (
	"context"
	"path/filepath"

	"culler/internal/domain"
)

// MockScanner returns a canned descriptor sequence without touching the
// filesystem. UI tests drive the session with it.
type MockScanner struct {
	Files []domain.File
	Err   error
	Calls int
}

func (scanner *MockScanner) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	scanner.Calls++
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}
	if scanner.Err != nil {
		return ScanResult{}, scanner.Err
	}
	files := append([]domain.File{}, scanner.Files...)
	return ScanResult{Root: req.Root, Files: files}, nil
}

// MockRelocator records relocation requests and reports success unless Err
// is set.
type MockRelocator struct {
	Requests []RelocateRequest
	Err      error
}

func (relocator *MockRelocator) Relocate(req RelocateRequest) (RelocateResult, error) {
	relocator.Requests = append(relocator.Requests, req)
	if relocator.Err != nil {
		return RelocateResult{}, relocator.Err
	}
	dest := filepath.Join(req.DestRoot, req.File.RelDir, req.File.Name)
	return RelocateResult{DestPath: dest}, nil
}
