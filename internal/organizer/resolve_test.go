package organizer

import (
	"path/filepath"
	"testing"

	"foldean/internal/fsys"
	"foldean/internal/testsupport"
)

func TestResolveDestinationFreeName(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveDestination(fsys.OS{}, dir, "Photo.png")
	if err != nil {
		t.Fatalf("ResolveDestination: %v", err)
	}
	if want := filepath.Join(dir, "Photo.png"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveDestinationSkipsTakenCounters(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteText(t, filepath.Join(dir, "Photo.png"), "a")
	testsupport.WriteText(t, filepath.Join(dir, "Photo (1).png"), "b")

	got, err := ResolveDestination(fsys.OS{}, dir, "Photo.png")
	if err != nil {
		t.Fatalf("ResolveDestination: %v", err)
	}
	if want := filepath.Join(dir, "Photo (2).png"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveDestinationWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteText(t, filepath.Join(dir, "README"), "a")
	testsupport.WriteText(t, filepath.Join(dir, ".env"), "b")

	for name, want := range map[string]string{"README": "README (1)", ".env": ".env (1)"} {
		got, err := ResolveDestination(fsys.OS{}, dir, name)
		if err != nil {
			t.Fatalf("ResolveDestination(%q): %v", name, err)
		}
		if got != filepath.Join(dir, want) {
			t.Fatalf("ResolveDestination(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestResolveDestinationHonoursClaims(t *testing.T) {
	dir := t.TempDir()
	claimed := map[string]struct{}{filepath.Join(dir, "a.tar.gz"): {}}
	got, err := resolveDestination(fsys.OS{}, dir, "a.tar.gz", claimed)
	if err != nil {
		t.Fatalf("resolveDestination: %v", err)
	}
	if want := filepath.Join(dir, "a.tar (1).gz"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct{ in, stem, ext string }{
		{"Photo.png", "Photo", ".png"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".env", ".env", ""},
		{".hidden.json", ".hidden", ".json"},
		{"trailing.", "trailing", "."},
	}
	for _, tt := range tests {
		stem, ext := splitName(tt.in)
		if stem != tt.stem || ext != tt.ext {
			t.Fatalf("splitName(%q) = (%q, %q), want (%q, %q)", tt.in, stem, ext, tt.stem, tt.ext)
		}
	}
}
