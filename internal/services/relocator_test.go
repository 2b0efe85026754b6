package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"culler/internal/domain"
	"culler/internal/services"
)

func descriptor(root, relDir, name string) domain.File {
	return domain.File{
		Name:    name,
		RelDir:  relDir,
		AbsPath: filepath.Join(root, relDir, name),
	}
}

func TestRelocatePreservesSubdirectory(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "sub", "b.png"))

	relocator := services.NewFileRelocator(zerolog.Nop())
	result, err := relocator.Relocate(services.RelocateRequest{
		File:     descriptor(src, "sub", "b.png"),
		DestRoot: dest,
	})
	if err != nil {
		t.Fatalf("Relocate: %v", err)
	}

	want := filepath.Join(dest, "sub", "b.png")
	if result.DestPath != want {
		t.Fatalf("DestPath = %q, want %q", result.DestPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("file not at destination: %v", err)
	}
	if _, err := os.Stat(filepath.Join(src, "sub", "b.png")); !os.IsNotExist(err) {
		t.Fatal("source file still present")
	}
}

func TestRelocateResolvesCollisions(t *testing.T) {
	srcA := t.TempDir()
	srcB := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(srcA, "dup.png"))
	writeFile(t, filepath.Join(srcB, "dup.png"))

	relocator := services.NewFileRelocator(zerolog.Nop())

	first, err := relocator.Relocate(services.RelocateRequest{File: descriptor(srcA, "", "dup.png"), DestRoot: dest})
	if err != nil {
		t.Fatal(err)
	}
	if first.Renamed {
		t.Fatal("first move should keep its name")
	}

	second, err := relocator.Relocate(services.RelocateRequest{File: descriptor(srcB, "", "dup.png"), DestRoot: dest})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Renamed {
		t.Fatal("second move should be renamed")
	}
	if second.DestPath != filepath.Join(dest, "dup_1.png") {
		t.Fatalf("DestPath = %q", second.DestPath)
	}
	for _, path := range []string{first.DestPath, second.DestPath} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing %q: %v", path, err)
		}
	}
}

func TestRelocateMissingSourceFails(t *testing.T) {
	dest := t.TempDir()
	relocator := services.NewFileRelocator(zerolog.Nop())

	_, err := relocator.Relocate(services.RelocateRequest{
		File:     domain.File{Name: "ghost.png", AbsPath: filepath.Join(t.TempDir(), "ghost.png")},
		DestRoot: dest,
	})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestRelocateEmptyDestinationFails(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.png"))

	relocator := services.NewFileRelocator(zerolog.Nop())
	if _, err := relocator.Relocate(services.RelocateRequest{File: descriptor(src, "", "a.png")}); err == nil {
		t.Fatal("expected error for empty destination root")
	}
	if _, err := os.Stat(filepath.Join(src, "a.png")); err != nil {
		t.Fatal("source should be untouched after a failed relocation")
	}
}
