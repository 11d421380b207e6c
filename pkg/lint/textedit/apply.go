package textedit

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/treelint/pkg/lint"
)

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	RuleID      string
	Description string
	EditCount   int
}

// SkippedFix records a fix that was dropped, with the reason.
type SkippedFix struct {
	RuleID      string
	Description string
	Reason      string
}

// ChangeSet summarises one sequence application over a snapshot.
type ChangeSet struct {
	Applied []AppliedFix
	Skipped []SkippedFix
}

// appliedRegion tracks one already-applied edit in original-snapshot
// coordinates, with the length delta it introduced.
type appliedRegion struct {
	start, end int
	delta      int
}

// ApplySequence applies at most one fix per diagnostic against src, the
// snapshot every diagnostic's offsets were computed from. Diagnostics
// are processed in the order given (traversal order); within one
// diagnostic the highest-priority valid fix wins, ties keeping author
// order.
//
// Because each applied fix shifts subsequent text, every later fix's
// offsets are re-validated before application: the spans are shifted by
// the accumulated delta and the text found there must still equal the
// original snapshot's text. A fix whose spans overlap an already-edited
// region, or whose shifted text no longer matches, is stale and skipped
// with a reason, never applied blindly.
func ApplySequence(src string, diags []lint.Diagnostic) (string, *ChangeSet, error) {
	cs := &ChangeSet{}
	current := src
	var regions []appliedRegion

	applied := false
	for _, d := range diags {
		if len(d.Fixes) == 0 {
			continue
		}
		fix, reason := selectFix(d, len(src))
		if reason != "" {
			cs.Skipped = append(cs.Skipped, SkippedFix{RuleID: d.RuleID, Reason: reason})
			continue
		}

		next, ok, why := applyShifted(src, current, regions, fix)
		if !ok {
			cs.Skipped = append(cs.Skipped, SkippedFix{
				RuleID:      d.RuleID,
				Description: fix.Description,
				Reason:      why,
			})
			continue
		}
		current = next
		regions = appendRegions(regions, fix)
		cs.Applied = append(cs.Applied, AppliedFix{
			RuleID:      d.RuleID,
			Description: fix.Description,
			EditCount:   len(fix.Edits),
		})
		applied = true
	}

	if !applied && len(cs.Skipped) == 0 {
		return current, cs, ErrNoFixes
	}
	return current, cs, nil
}

// selectFix picks the highest-priority valid fix for a diagnostic.
// Returns a non-empty reason when every fix is malformed.
func selectFix(d lint.Diagnostic, srcLen int) (lint.Fix, string) {
	fixes := make([]lint.Fix, len(d.Fixes))
	copy(fixes, d.Fixes)
	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[i].Priority > fixes[j].Priority
	})

	var lastErr error
	for _, f := range fixes {
		if err := Validate(f, srcLen); err != nil {
			lastErr = err
			continue
		}
		return f, ""
	}
	return lint.Fix{}, fmt.Sprintf("all fixes malformed: %v", lastErr)
}

// applyShifted applies a fix whose offsets refer to the original
// snapshot onto the current text, shifting each edit by the deltas of
// previously applied regions and verifying the target text is unchanged.
func applyShifted(original, current string, regions []appliedRegion, f lint.Fix) (string, bool, string) {
	type shifted struct {
		start, end int
		newText    string
	}
	edits := sortedEdits(f.Edits)
	out := make([]shifted, 0, len(edits))

	for _, e := range edits {
		start, end := e.Span.Start.Offset, e.Span.End.Offset
		for _, r := range regions {
			if start < r.end && r.start < end {
				return "", false, fmt.Sprintf("stale: edit [%d,%d) overlaps an already-applied fix", start, end)
			}
		}
		delta := 0
		for _, r := range regions {
			if r.end <= start {
				delta += r.delta
			}
		}
		s, en := start+delta, end+delta
		if s < 0 || en > len(current) {
			return "", false, fmt.Sprintf("stale: shifted edit [%d,%d) out of bounds", s, en)
		}
		if current[s:en] != original[start:end] {
			return "", false, fmt.Sprintf("stale: text at [%d,%d) changed since diagnosis", start, end)
		}
		out = append(out, shifted{start: s, end: en, newText: e.NewText})
	}

	var b []byte
	last := 0
	for _, e := range out {
		b = append(b, current[last:e.start]...)
		b = append(b, e.newText...)
		last = e.end
	}
	b = append(b, current[last:]...)
	return string(b), true, ""
}

func appendRegions(regions []appliedRegion, f lint.Fix) []appliedRegion {
	for _, e := range sortedEdits(f.Edits) {
		regions = append(regions, appliedRegion{
			start: e.Span.Start.Offset,
			end:   e.Span.End.Offset,
			delta: len(e.NewText) - (e.Span.End.Offset - e.Span.Start.Offset),
		})
	}
	return regions
}
