package services_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"culler/internal/services"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func sourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.png"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "sub", "b.png"))
	writeFile(t, filepath.Join(root, "sub", "deep", "c.JPG"))
	return root
}

func TestScanFlatListsDirectChildrenOnly(t *testing.T) {
	root := sourceTree(t)
	scanner := services.NewFileScanner(zerolog.Nop())

	result, err := scanner.Scan(context.Background(), services.ScanRequest{Root: root})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 file, got %d: %+v", len(result.Files), result.Files)
	}
	file := result.Files[0]
	if file.Name != "a.png" || file.RelDir != "" {
		t.Fatalf("unexpected descriptor: %+v", file)
	}
	if file.AbsPath != filepath.Join(root, "a.png") {
		t.Fatalf("AbsPath = %q", file.AbsPath)
	}
}

func TestScanRecursivePreservesStructure(t *testing.T) {
	root := sourceTree(t)
	scanner := services.NewFileScanner(zerolog.Nop())

	result, err := scanner.Scan(context.Background(), services.ScanRequest{Root: root, Recursive: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Files) != 3 {
		t.Fatalf("expected 3 files, got %d: %+v", len(result.Files), result.Files)
	}

	byName := map[string]string{}
	for _, file := range result.Files {
		byName[file.Name] = file.RelDir
	}
	if byName["a.png"] != "" {
		t.Fatalf("a.png RelDir = %q", byName["a.png"])
	}
	if byName["b.png"] != "sub" {
		t.Fatalf("b.png RelDir = %q", byName["b.png"])
	}
	if byName["c.JPG"] != filepath.Join("sub", "deep") {
		t.Fatalf("c.JPG RelDir = %q", byName["c.JPG"])
	}
}

func TestScanOrderIsDeterministic(t *testing.T) {
	root := sourceTree(t)
	scanner := services.NewFileScanner(zerolog.Nop())
	req := services.ScanRequest{Root: root, Recursive: true}

	first, err := scanner.Scan(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := scanner.Scan(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first.Files {
		if first.Files[i] != second.Files[i] {
			t.Fatalf("order changed at %d: %+v vs %+v", i, first.Files[i], second.Files[i])
		}
	}
	for i := 1; i < len(first.Files); i++ {
		if first.Files[i-1].AbsPath >= first.Files[i].AbsPath {
			t.Fatalf("not sorted by path: %q before %q", first.Files[i-1].AbsPath, first.Files[i].AbsPath)
		}
	}
}

func TestScanSkipsSymlinkedDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.png"))
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "linked.png"))
	if err := os.Symlink(outside, filepath.Join(root, "loop")); err != nil {
		t.Fatal(err)
	}

	scanner := services.NewFileScanner(zerolog.Nop())
	result, err := scanner.Scan(context.Background(), services.ScanRequest{Root: root, Recursive: true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for _, file := range result.Files {
		if file.Name == "linked.png" {
			t.Fatal("scan followed a symlinked directory")
		}
	}
}

func TestScanContinuesPastUnreadableBranch(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.png"))
	writeFile(t, filepath.Join(root, "locked", "hidden.png"))
	writeFile(t, filepath.Join(root, "open", "b.png"))
	if err := os.Chmod(filepath.Join(root, "locked"), 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(root, "locked"), 0o755) })

	scanner := services.NewFileScanner(zerolog.Nop())
	result, err := scanner.Scan(context.Background(), services.ScanRequest{Root: root, Recursive: true})
	if err != nil {
		t.Fatalf("one unreadable branch aborted the scan: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("expected 2 reachable files, got %d: %+v", len(result.Files), result.Files)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for the unreadable branch")
	}
}

func TestScanCancelled(t *testing.T) {
	root := sourceTree(t)
	scanner := services.NewFileScanner(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := scanner.Scan(ctx, services.ScanRequest{Root: root, Recursive: true}); err == nil {
		t.Fatal("expected cancellation error")
	}
}
