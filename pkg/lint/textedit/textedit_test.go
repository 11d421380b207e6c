package textedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/textedit"
	"github.com/leapstack-labs/treelint/pkg/syntax"
	"github.com/leapstack-labs/treelint/pkg/token"
)

func edit(src string, start, end int, newText string) lint.TextEdit {
	return lint.TextEdit{
		Span:    syntax.SpanAt(src, start, end),
		NewText: newText,
	}
}

func TestValidate(t *testing.T) {
	src := "hello world"

	tests := []struct {
		name    string
		fix     lint.Fix
		wantErr bool
	}{
		{
			name:    "no edits",
			fix:     lint.Fix{Description: "empty"},
			wantErr: true,
		},
		{
			name: "in bounds",
			fix: lint.Fix{Edits: []lint.TextEdit{
				edit(src, 0, 5, "goodbye"),
			}},
		},
		{
			name: "end past source",
			fix: lint.Fix{Edits: []lint.TextEdit{
				edit(src, 6, 11, "x"),
				{Span: token.Span{Start: token.Position{Offset: 6}, End: token.Position{Offset: 99}}},
			}},
			wantErr: true,
		},
		{
			name: "overlapping edits",
			fix: lint.Fix{Edits: []lint.TextEdit{
				edit(src, 0, 6, "a"),
				edit(src, 4, 8, "b"),
			}},
			wantErr: true,
		},
		{
			name: "adjacent edits allowed",
			fix: lint.Fix{Edits: []lint.TextEdit{
				edit(src, 0, 5, "a"),
				edit(src, 5, 6, "b"),
			}},
		},
		{
			name: "zero-length insertion",
			fix: lint.Fix{Edits: []lint.TextEdit{
				edit(src, 5, 5, ", there"),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := textedit.Validate(tt.fix, len(src))
			if tt.wantErr {
				assert.ErrorIs(t, err, textedit.ErrMalformedFix)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Both edits carry offsets computed against the original snapshot. The
// first replacement grows the text by three bytes; the second edit must
// still land on "world", not three bytes past it.
func TestApplyBatchAgainstOriginalOffsets(t *testing.T) {
	src := "hello world"
	fix := lint.Fix{
		Description: "greet properly",
		Edits: []lint.TextEdit{
			edit(src, 0, 5, "goodbye"),
			edit(src, 6, 11, "moon"),
		},
	}

	out, err := textedit.Apply(src, fix)
	require.NoError(t, err)
	assert.Equal(t, "goodbye moon", out)
}

func TestApplyEditsOutOfOrder(t *testing.T) {
	src := "a b c"
	fix := lint.Fix{Edits: []lint.TextEdit{
		edit(src, 4, 5, "C"),
		edit(src, 0, 1, "A"),
	}}

	out, err := textedit.Apply(src, fix)
	require.NoError(t, err)
	assert.Equal(t, "A b C", out)
}

func diag(ruleID string, fixes ...lint.Fix) lint.Diagnostic {
	return lint.Diagnostic{
		RuleID:   ruleID,
		Severity: lint.SeverityWarning,
		Message:  "m",
		Fixes:    fixes,
	}
}

func TestApplySequenceShiftsLaterFixes(t *testing.T) {
	src := "aa bb cc"
	first := lint.Fix{Description: "widen aa", Edits: []lint.TextEdit{
		edit(src, 0, 2, "aaaa"),
	}}
	second := lint.Fix{Description: "replace cc", Edits: []lint.TextEdit{
		edit(src, 6, 8, "dd"),
	}}

	out, cs, err := textedit.ApplySequence(src, []lint.Diagnostic{
		diag("R1", first),
		diag("R2", second),
	})
	require.NoError(t, err)
	assert.Equal(t, "aaaa bb dd", out)
	require.Len(t, cs.Applied, 2)
	assert.Empty(t, cs.Skipped)
	assert.Equal(t, "R1", cs.Applied[0].RuleID)
	assert.Equal(t, "R2", cs.Applied[1].RuleID)
}

func TestApplySequenceSkipsStaleOverlap(t *testing.T) {
	src := "aa bb cc"
	first := lint.Fix{Description: "rewrite middle", Edits: []lint.TextEdit{
		edit(src, 3, 5, "xx"),
	}}
	overlapping := lint.Fix{Description: "also touch middle", Edits: []lint.TextEdit{
		edit(src, 4, 7, "yy"),
	}}

	out, cs, err := textedit.ApplySequence(src, []lint.Diagnostic{
		diag("R1", first),
		diag("R2", overlapping),
	})
	require.NoError(t, err)
	assert.Equal(t, "aa xx cc", out)
	require.Len(t, cs.Applied, 1)
	require.Len(t, cs.Skipped, 1)
	assert.Equal(t, "R2", cs.Skipped[0].RuleID)
	assert.Contains(t, cs.Skipped[0].Reason, "stale")
}

func TestApplySequencePriority(t *testing.T) {
	src := "value"
	low := lint.Fix{Description: "low", Priority: 1, Edits: []lint.TextEdit{
		edit(src, 0, 5, "lo"),
	}}
	high := lint.Fix{Description: "high", Priority: 10, Edits: []lint.TextEdit{
		edit(src, 0, 5, "hi"),
	}}

	out, cs, err := textedit.ApplySequence(src, []lint.Diagnostic{
		diag("R1", low, high),
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
	require.Len(t, cs.Applied, 1)
	assert.Equal(t, "high", cs.Applied[0].Description)
}

func TestApplySequencePriorityTieKeepsAuthorOrder(t *testing.T) {
	src := "value"
	first := lint.Fix{Description: "first", Priority: 5, Edits: []lint.TextEdit{
		edit(src, 0, 5, "one"),
	}}
	second := lint.Fix{Description: "second", Priority: 5, Edits: []lint.TextEdit{
		edit(src, 0, 5, "two"),
	}}

	out, cs, err := textedit.ApplySequence(src, []lint.Diagnostic{
		diag("R1", first, second),
	})
	require.NoError(t, err)
	assert.Equal(t, "one", out)
	assert.Equal(t, "first", cs.Applied[0].Description)
}

func TestApplySequenceMalformedFixSkipped(t *testing.T) {
	src := "abc"
	bad := lint.Fix{Description: "bad", Edits: []lint.TextEdit{
		{Span: token.Span{Start: token.Position{Offset: 1}, End: token.Position{Offset: 99}}},
	}}

	out, cs, err := textedit.ApplySequence(src, []lint.Diagnostic{
		diag("R1", bad),
	})
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.Empty(t, cs.Applied)
	require.Len(t, cs.Skipped, 1)
	assert.Contains(t, cs.Skipped[0].Reason, "malformed")
}

func TestApplySequenceNoFixes(t *testing.T) {
	src := "abc"
	out, cs, err := textedit.ApplySequence(src, []lint.Diagnostic{
		diag("R1"),
	})
	assert.ErrorIs(t, err, textedit.ErrNoFixes)
	assert.Equal(t, src, out)
	assert.Empty(t, cs.Applied)
}
