package application_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/hailam/zipfix/internal/adapters/archive"
	"github.com/hailam/zipfix/internal/adapters/factory"
	adapterutils "github.com/hailam/zipfix/internal/adapters/utils"
	"github.com/hailam/zipfix/internal/application"
)

// End-to-end run against an empty directory with the real adapters wired
// in, the way cmd/cli composes them.
func TestFixtureService_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10 MiB fixture generation in short mode")
	}

	outDir := filepath.Join(t.TempDir(), "fixtures")
	service := application.NewFixtureService(factory.NewSeeded(42), adapterutils.NewUtilSizeParser())

	if err := service.GenerateAll(outDir, false, nil); err != nil {
		t.Fatalf("GenerateAll returned unexpected error: %v", err)
	}

	// Exactly the three default fixtures, nothing else.
	dirEntries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	var names []string
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	want := []string{"10mb.zip", "1mb.zip", "corrupted.zip"}
	if len(names) != len(want) {
		t.Fatalf("output directory holds %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("output directory holds %v, want %v", names, want)
		}
	}

	// Both archives satisfy the size bound and open cleanly.
	for _, target := range application.DefaultTargets {
		zr, err := zip.OpenReader(filepath.Join(outDir, target.Name))
		if err != nil {
			t.Fatalf("Failed to open %s: %v", target.Name, err)
		}
		var total int64
		for _, f := range zr.File {
			total += int64(f.UncompressedSize64)
		}
		zr.Close()
		if total < target.Bytes {
			t.Errorf("%s cumulative size = %d, want >= %d", target.Name, total, target.Bytes)
		}
		bound := target.Bytes + int64(archive.MaxChunk)*int64(len(archive.Buckets))
		if total >= bound {
			t.Errorf("%s cumulative size = %d, want < %d", target.Name, total, bound)
		}
	}

	// The corrupted fixture is signature + 1024 garbage bytes and must
	// not open as a ZIP.
	corruptedPath := filepath.Join(outDir, application.CorruptedName)
	info, err := os.Stat(corruptedPath)
	if err != nil {
		t.Fatalf("Failed to stat corrupted fixture: %v", err)
	}
	if info.Size() != 1028 {
		t.Errorf("corrupted fixture size = %d, want 1028", info.Size())
	}
	if zr, err := zip.OpenReader(corruptedPath); err == nil {
		zr.Close()
		t.Errorf("zip.OpenReader accepted the corrupted fixture, want a format error")
	}

	// A second run replaces the files rather than appending to them.
	if err := service.GenerateAll(outDir, false, nil); err != nil {
		t.Fatalf("second GenerateAll returned unexpected error: %v", err)
	}
	dirEntries, err = os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("Failed to re-read output directory: %v", err)
	}
	if len(dirEntries) != 3 {
		t.Errorf("output directory holds %d files after rerun, want 3", len(dirEntries))
	}
}
