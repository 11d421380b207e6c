// Package textedit validates and applies the textual fixes rules attach
// to diagnostics. A single fix's edits are an atomic batch against one
// immutable snapshot; sequences of independently-sourced fixes are
// re-validated against the shifting text before each application.
package textedit

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/treelint/pkg/lint"
)

// ErrMalformedFix is returned for fixes with overlapping or
// out-of-bounds edits. Such a fix is dropped; its diagnostic is still
// reported.
var ErrMalformedFix = errors.New("malformed fix")

// ErrNoFixes is returned when a sequence application found nothing to
// apply.
var ErrNoFixes = errors.New("no applicable fixes found")

// Validate checks a fix's edits against a source snapshot of srcLen
// bytes: every edit in bounds, no two edits overlapping.
func Validate(f lint.Fix, srcLen int) error {
	if len(f.Edits) == 0 {
		return fmt.Errorf("%w: fix %q has no edits", ErrMalformedFix, f.Description)
	}
	edits := sortedEdits(f.Edits)
	prevEnd := -1
	for _, e := range edits {
		start, end := e.Span.Start.Offset, e.Span.End.Offset
		if start < 0 || end < start || end > srcLen {
			return fmt.Errorf("%w: edit [%d,%d) outside source of %d bytes",
				ErrMalformedFix, start, end, srcLen)
		}
		if start < prevEnd {
			return fmt.Errorf("%w: edits overlap at offset %d", ErrMalformedFix, start)
		}
		prevEnd = end
	}
	return nil
}

// Apply applies one fix to the source snapshot its offsets were computed
// against. All edits are interpreted against the original text and
// applied as one batch, never cascaded, so a later edit's offsets are
// unaffected by an earlier edit's length change.
func Apply(src string, f lint.Fix) (string, error) {
	if err := Validate(f, len(src)); err != nil {
		return "", err
	}
	edits := sortedEdits(f.Edits)

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, e := range edits {
		b.WriteString(src[last:e.Span.Start.Offset])
		b.WriteString(e.NewText)
		last = e.Span.End.Offset
	}
	b.WriteString(src[last:])
	return b.String(), nil
}

func sortedEdits(edits []lint.TextEdit) []lint.TextEdit {
	out := make([]lint.TextEdit, len(edits))
	copy(out, edits)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Span.Start.Offset < out[j].Span.Start.Offset
	})
	return out
}
