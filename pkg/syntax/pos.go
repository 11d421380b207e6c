package syntax

import "github.com/leapstack-labs/treelint/pkg/token"

// SpanAt computes the line/column positions for the byte range
// [start, end) of source. Useful to hosts constructing trees directly
// rather than through a dump.
func SpanAt(source string, start, end int) token.Span {
	idx := newLineIndex(source)
	return token.Span{
		Start: idx.position(start),
		End:   idx.position(end),
	}
}
