package category

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is the category assigned to names no table entry claims.
const Fallback = "Others"

// Category is one destination folder and the extensions routed into it.
type Category struct {
	Name       string
	Extensions []string
}

// Table is an immutable, ordered category lookup.
type Table struct {
	categories []Category
	sets       []map[string]struct{}
}

var defaultTable = mustNew(
	Category{Name: "Documents", Extensions: []string{"pdf", "doc", "docx", "rtf", "txt", "md", "markdown", "odt", "oxps"}},
	Category{Name: "Sheets", Extensions: []string{"xls", "xlsx", "csv", "ods"}},
	Category{Name: "Slides", Extensions: []string{"ppt", "pptx", "key"}},
	Category{Name: "Images", Extensions: []string{"jpg", "jpeg", "png", "gif", "webp", "svg", "bmp", "tiff", "heic"}},
	Category{Name: "Audio", Extensions: []string{"mp3", "wav", "m4a", "flac", "aac", "ogg"}},
	Category{Name: "Videos", Extensions: []string{"mp4", "mov", "mkv", "avi", "webm"}},
	Category{Name: "Code", Extensions: []string{"c", "cpp", "h", "hpp", "rs", "py", "js", "ts", "tsx", "java", "go", "rb", "sh", "yaml", "yml", "json", "toml"}},
	Category{Name: "Books", Extensions: []string{"epub", "mobi", "azw", "azw3", "pdf"}},
	Category{Name: "Archives", Extensions: []string{"zip", "rar", "7z", "tar", "gz", "bz2", "xz"}},
	Category{Name: "Installer", Extensions: []string{"dmg", "pkg", "msi", "exe", "deb", "rpm", "appimage", "app"}},
	Category{Name: "Design", Extensions: []string{"psd", "ai", "xd", "fig", "sketch"}},
)

// Default returns the built-in category table.
func Default() Table {
	return defaultTable
}

// Classify resolves a file name against the default table.
func Classify(filename string) string {
	return defaultTable.Classify(filename)
}

// New builds a table from categories in the given order. Extensions are
// trimmed, stripped of a leading dot and lowercased.
func New(categories ...Category) (Table, error) {
	t := Table{
		categories: make([]Category, 0, len(categories)),
		sets:       make([]map[string]struct{}, 0, len(categories)),
	}
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return Table{}, errors.New("category name must not be empty")
		}
		if strings.EqualFold(name, Fallback) {
			return Table{}, fmt.Errorf("category %q is reserved for unmatched files", name)
		}
		if _, dup := seen[name]; dup {
			return Table{}, fmt.Errorf("category %q declared twice", name)
		}
		seen[name] = struct{}{}

		set := make(map[string]struct{}, len(c.Extensions))
		exts := make([]string, 0, len(c.Extensions))
		for _, raw := range c.Extensions {
			ext := normalizeExtension(raw)
			if ext == "" {
				continue
			}
			if _, ok := set[ext]; ok {
				continue
			}
			set[ext] = struct{}{}
			exts = append(exts, ext)
		}
		t.categories = append(t.categories, Category{Name: name, Extensions: exts})
		t.sets = append(t.sets, set)
	}
	return t, nil
}

func mustNew(categories ...Category) Table {
	t, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify returns the first category in table order that claims the
// extension of filename, or Fallback.
func (t Table) Classify(filename string) string {
	ext := Extension(filename)
	if ext == "" {
		return Fallback
	}
	for i, set := range t.sets {
		if _, ok := set[ext]; ok {
			return t.categories[i].Name
		}
	}
	return Fallback
}

// Categories returns a copy of the declared categories in order.
func (t Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		exts := make([]string, len(c.Extensions))
		copy(exts, c.Extensions)
		out[i] = Category{Name: c.Name, Extensions: exts}
	}
	return out
}

// Names lists every folder name the table can produce, Fallback last.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.categories)+1)
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return append(names, Fallback)
}

// IsCategoryFolder reports whether name is a folder this table writes into.
func (t Table) IsCategoryFolder(name string) bool {
	if name == Fallback {
		return true
	}
	for _, c := range t.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Extensions returns the extensions declared for the named category.
func (t Table) Extensions(name string) ([]string, bool) {
	for _, c := range t.categories {
		if c.Name == name {
			exts := make([]string, len(c.Extensions))
			copy(exts, c.Extensions)
			return exts, true
		}
	}
	return nil, false
}

// Extension returns the lowercased text after the last dot of filename. A
// name without a dot, or ending in one, has no extension.
func Extension(filename string) string {
	filename = filepath.Base(filename)
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return toLower(filename[idx+1:])
}

func normalizeExtension(raw string) string {
	ext := strings.TrimPrefix(strings.TrimSpace(raw), ".")
	return toLower(ext)
}

// A Caser carries state, so each call gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}
