package category

import (
	"strings"
	"testing"
)

func TestClassifyDefaultTable(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", "Documents"},
		{"REPORT.PDF", "Documents"},
		{"novel.epub", "Books"},
		{"budget.xlsx", "Sheets"},
		{"deck.key", "Slides"},
		{"Photo.PNG", "Images"},
		{"song.flac", "Audio"},
		{"clip.webm", "Videos"},
		{"main.go", "Code"},
		{"backup.tar.gz", "Archives"},
		{"setup.AppImage", "Installer"},
		{"mock.sketch", "Design"},
		{"mystery.xyz123", Fallback},
		{"README", Fallback},
		{"trailing.", Fallback},
		{"", Fallback},
		{".env", Fallback},
		{".hidden.json", "Code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestExtensionOfLeadingDotName(t *testing.T) {
	tests := map[string]string{
		".env":         "env",
		".hidden.json": "json",
		"archive.TAR":  "tar",
		"README":       "",
		"trailing.":    "",
		"/tmp/.bashrc": "bashrc",
	}
	for name, want := range tests {
		if got := Extension(name); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
	for _, c := range Default().Categories() {
		if contains(c.Extensions, "env") {
			t.Fatalf("%s claims env; .env should fall back", c.Name)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	names := []string{"a.pdf", "b.PNG", "c", "d.unknown", ".profile", "~$report.docx"}
	for _, name := range names {
		first := Classify(name)
		for i := 0; i < 5; i++ {
			if got := Classify(name); got != first {
				t.Fatalf("Classify(%q) changed from %q to %q", name, first, got)
			}
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	table := Default()
	docs, ok := table.Extensions("Documents")
	if !ok || !contains(docs, "pdf") {
		t.Fatalf("expected pdf in Documents, got %v", docs)
	}
	books, ok := table.Extensions("Books")
	if !ok || !contains(books, "pdf") {
		t.Fatalf("expected pdf in Books, got %v", books)
	}
	if got := table.Classify("paper.pdf"); got != "Documents" {
		t.Fatalf("pdf classified as %q, want Documents", got)
	}

	swapped, err := New(
		Category{Name: "Books", Extensions: []string{"pdf"}},
		Category{Name: "Documents", Extensions: []string{"pdf"}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := swapped.Classify("paper.pdf"); got != "Books" {
		t.Fatalf("pdf classified as %q with Books first, want Books", got)
	}
}

func TestExtensionsUniqueWithinCategory(t *testing.T) {
	for _, c := range Default().Categories() {
		seen := map[string]bool{}
		for _, ext := range c.Extensions {
			if seen[ext] {
				t.Fatalf("category %s lists %q twice", c.Name, ext)
			}
			if ext != strings.ToLower(ext) || strings.HasPrefix(ext, ".") {
				t.Fatalf("category %s has non-normalized extension %q", c.Name, ext)
			}
			seen[ext] = true
		}
	}
}

func TestNewNormalizesExtensions(t *testing.T) {
	table, err := New(Category{Name: "Media", Extensions: []string{" .MP4", "mkv", "MKV", ""}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exts, _ := table.Extensions("Media")
	if len(exts) != 2 || exts[0] != "mp4" || exts[1] != "mkv" {
		t.Fatalf("unexpected extensions %v", exts)
	}
	if got := table.Classify("movie.Mp4"); got != "Media" {
		t.Fatalf("Classify = %q, want Media", got)
	}
}

func TestNewRejectsInvalidCategories(t *testing.T) {
	cases := map[string][]Category{
		"empty name": {{Name: "  "}},
		"fallback":   {{Name: "others"}},
		"duplicate":  {{Name: "A"}, {Name: "A"}},
	}
	for name, categories := range cases {
		if _, err := New(categories...); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestNamesAndCategoryFolders(t *testing.T) {
	table := Default()
	names := table.Names()
	if names[0] != "Documents" || names[len(names)-1] != Fallback {
		t.Fatalf("unexpected name order %v", names)
	}
	for _, name := range names {
		if !table.IsCategoryFolder(name) {
			t.Fatalf("expected %q to be a category folder", name)
		}
	}
	for _, name := range []string{"documents", "Projects", ""} {
		if table.IsCategoryFolder(name) {
			t.Fatalf("did not expect %q to be a category folder", name)
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	table := Default()
	cats := table.Categories()
	cats[0].Extensions[0] = "zzz"
	cats[0].Name = "Mutated"
	if got := table.Classify("x.pdf"); got != "Documents" {
		t.Fatalf("table mutated through Categories copy: %q", got)
	}
}

func TestZeroTableFallsBack(t *testing.T) {
	var table Table
	if got := table.Classify("photo.png"); got != Fallback {
		t.Fatalf("zero table Classify = %q, want %q", got, Fallback)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
