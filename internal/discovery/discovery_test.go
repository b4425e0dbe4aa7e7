package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFiles creates the given relative paths under root with dummy
// content, creating parent directories as needed.
func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscoverSnapshots(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"snapshots/cafe.json",
		"snapshots/nested/bakery.yaml",
		"snapshots/garage.yml",
		"florist.profile.json",
		"salon.profile.yaml",
		"notes.txt",
		"unrelated.json",
	)

	fd := NewFileDiscovery(root)
	files, err := fd.DiscoverSnapshots()
	if err != nil {
		t.Fatalf("DiscoverSnapshots() error: %v", err)
	}

	want := []string{
		"florist.profile.json",
		"salon.profile.yaml",
		"snapshots/cafe.json",
		"snapshots/garage.yml",
		"snapshots/nested/bakery.yaml",
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %+v", len(files), len(want), files)
	}
	for i, file := range files {
		if file.RelPath != want[i] {
			t.Errorf("files[%d].RelPath = %q, want %q", i, file.RelPath, want[i])
		}
		if file.Path != filepath.Join(root, want[i]) {
			t.Errorf("files[%d].Path = %q, want full path under root", i, file.Path)
		}
		if file.Size != 2 {
			t.Errorf("files[%d].Size = %d, want 2", i, file.Size)
		}
	}
}

func TestDiscoverSnapshotsEmptyRoot(t *testing.T) {
	fd := NewFileDiscovery(t.TempDir())
	files, err := fd.DiscoverSnapshots()
	if err != nil {
		t.Fatalf("DiscoverSnapshots() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscoverSnapshotsDeduplicates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "snapshots/cafe.json")

	// Overlapping patterns that both match the same file.
	fd := NewFileDiscoveryWithPatterns(root, []string{
		"snapshots/**/*.json",
		"**/*.json",
	})
	files, err := fd.DiscoverSnapshots()
	if err != nil {
		t.Fatalf("DiscoverSnapshots() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 after dedup: %+v", len(files), files)
	}
}

func TestDiscoverSnapshotsCustomPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "exports/a.json", "exports/b.yaml")

	fd := NewFileDiscoveryWithPatterns(root, []string{"exports/*.json"})
	files, err := fd.DiscoverSnapshots()
	if err != nil {
		t.Fatalf("DiscoverSnapshots() error: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "exports/a.json" {
		t.Errorf("files = %+v, want only exports/a.json", files)
	}
}
