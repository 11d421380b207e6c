package syntax

import (
	"path/filepath"
	"strings"
)

// FileCategory is a coarse classification of a compilation unit, used to
// scope rule applicability. The host normally supplies it; ClassifyPath
// provides the conventional fallback.
type FileCategory string

// File categories.
const (
	// CategorySource is ordinary application code.
	CategorySource FileCategory = "source"
	// CategoryWidget is UI/widget code.
	CategoryWidget FileCategory = "widget"
	// CategoryTest is test code.
	CategoryTest FileCategory = "test"
)

// ParseFileCategory converts a string to a FileCategory.
func ParseFileCategory(s string) (FileCategory, bool) {
	switch FileCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySource:
		return CategorySource, true
	case CategoryWidget:
		return CategoryWidget, true
	case CategoryTest:
		return CategoryTest, true
	default:
		return CategorySource, false
	}
}

// ClassifyPath infers a file category from path conventions: anything
// under a test directory or ending in _test is test code, anything under
// a widgets directory or ending in _widget is widget code, everything
// else is plain source.
func ClassifyPath(path string) FileCategory {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.ToSlash(filepath.Dir(path))

	switch {
	case strings.HasSuffix(stem, "_test"), hasSegment(dir, "test"), hasSegment(dir, "tests"):
		return CategoryTest
	case strings.HasSuffix(stem, "_widget"), strings.HasSuffix(stem, "_page"),
		strings.HasSuffix(stem, "_screen"), hasSegment(dir, "widgets"), hasSegment(dir, "pages"):
		return CategoryWidget
	default:
		return CategorySource
	}
}

func hasSegment(dir, segment string) bool {
	for _, part := range strings.Split(dir, "/") {
		if part == segment {
			return true
		}
	}
	return false
}

// Unit is one compilation unit: the parsed representation of a single
// source file, the unit of one analysis pass.
type Unit struct {
	// Path of the original source file.
	Path string

	// Source is the full source text the tree was parsed from. Fix
	// edits are validated against this snapshot.
	Source string

	// Category classifies the unit for rule applicability filtering.
	Category FileCategory

	// Root is the top-level node (KindUnit).
	Root *Node
}
