package organizer

import (
	"io/fs"
	"path/filepath"
	"strings"

	"foldean/internal/category"
)

// SkipReason explains why an entry is not planned.
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipCategoryFolder SkipReason = "category_folder"
	SkipHidden         SkipReason = "hidden"
	SkipOfficeLock     SkipReason = "office_lock"
	SkipDirectory      SkipReason = "directory"
	SkipIrregular      SkipReason = "irregular"
	SkipUnreadable     SkipReason = "unreadable"
)

const officeLockPrefix = "~$"

// Entry is one directory entry found while scanning.
type Entry struct {
	Path string
	Name string
	// Root is the directory whose category folders receive this entry.
	Root       string
	Depth      int
	Dir        bool
	Regular    bool
	Hidden     bool
	OfficeLock bool
	Size       int64
}

// Skipped records an entry left out of the plan.
type Skipped struct {
	Path   string     `json:"path"`
	Reason SkipReason `json:"reason"`
}

func newEntry(parent string, depth int, d fs.DirEntry) Entry {
	name := d.Name()
	e := Entry{
		Path:       filepath.Join(parent, name),
		Name:       name,
		Root:       parent,
		Depth:      depth,
		Dir:        d.IsDir(),
		Regular:    d.Type().IsRegular(),
		Hidden:     strings.HasPrefix(name, "."),
		OfficeLock: strings.HasPrefix(name, officeLockPrefix),
	}
	if e.Regular {
		if info, err := d.Info(); err == nil {
			e.Size = info.Size()
		}
	}
	return e
}

// ShouldSkip decides whether e stays out of the plan. Directories always
// report a reason; at depth 0 a SkipDirectory entry is still a candidate for
// descending when the run scans one level deeper.
func ShouldSkip(e Entry, table category.Table, includeHidden bool) (bool, SkipReason) {
	switch {
	case e.Dir && table.IsCategoryFolder(e.Name):
		return true, SkipCategoryFolder
	case e.Hidden && !includeHidden:
		return true, SkipHidden
	case e.OfficeLock && !includeHidden:
		return true, SkipOfficeLock
	case e.Dir:
		return true, SkipDirectory
	case !e.Regular:
		return true, SkipIrregular
	default:
		return false, SkipNone
	}
}
