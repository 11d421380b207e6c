package syntax

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/treelint/pkg/token"
)

// unitDump mirrors the tree dump format an external parser emits, one
// document per compilation unit.
type unitDump struct {
	Path     string    `json:"path" yaml:"path"`
	Category string    `json:"category,omitempty" yaml:"category,omitempty"`
	Source   string    `json:"source" yaml:"source"`
	Tree     *nodeDump `json:"tree" yaml:"tree"`
}

type nodeDump struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Type     string      `json:"type,omitempty" yaml:"type,omitempty"`
	Super    string      `json:"super,omitempty" yaml:"super,omitempty"`
	Const    bool        `json:"const,omitempty" yaml:"const,omitempty"`
	Span     spanDump    `json:"span" yaml:"span"`
	Children []*nodeDump `json:"children,omitempty" yaml:"children,omitempty"`
}

type spanDump struct {
	Offset int `json:"offset" yaml:"offset"`
	Len    int `json:"len" yaml:"len"`
}

// DecodeUnit decodes a parser tree dump into a Unit. JSON and YAML
// documents are both accepted; the format is sniffed from the payload.
func DecodeUnit(data []byte) (*Unit, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		return DecodeUnitJSON(data)
	}
	return DecodeUnitYAML(data)
}

// DecodeUnitJSON decodes a JSON tree dump into a Unit.
func DecodeUnitJSON(data []byte) (*Unit, error) {
	var dump unitDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("decoding tree dump: %w", err)
	}
	return buildUnit(&dump)
}

// DecodeUnitYAML decodes a YAML tree dump into a Unit.
func DecodeUnitYAML(data []byte) (*Unit, error) {
	var dump unitDump
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("decoding tree dump: %w", err)
	}
	return buildUnit(&dump)
}

func buildUnit(dump *unitDump) (*Unit, error) {
	if dump.Tree == nil {
		return nil, fmt.Errorf("tree dump for %q has no tree", dump.Path)
	}

	category := ClassifyPath(dump.Path)
	if dump.Category != "" {
		parsed, ok := ParseFileCategory(dump.Category)
		if !ok {
			return nil, fmt.Errorf("tree dump for %q: unknown file category %q", dump.Path, dump.Category)
		}
		category = parsed
	}

	idx := newLineIndex(dump.Source)
	root, err := buildNode(dump.Tree, nil, dump.Source, idx)
	if err != nil {
		return nil, fmt.Errorf("tree dump for %q: %w", dump.Path, err)
	}

	return &Unit{
		Path:     dump.Path,
		Source:   dump.Source,
		Category: category,
		Root:     root,
	}, nil
}

func buildNode(dump *nodeDump, parent *Node, source string, idx *lineIndex) (*Node, error) {
	kind, ok := ParseKind(dump.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", dump.Kind)
	}

	start, end := dump.Span.Offset, dump.Span.Offset+dump.Span.Len
	if start < 0 || end < start || end > len(source) {
		return nil, fmt.Errorf("%s node has span [%d,%d) outside source of %d bytes",
			kind, start, end, len(source))
	}

	n := &Node{
		Kind:         kind,
		Name:         dump.Name,
		ResolvedType: dump.Type,
		Super:        dump.Super,
		Const:        dump.Const,
		Text:         source[start:end],
		Parent:       parent,
		Span: token.Span{
			Start: idx.position(start),
			End:   idx.position(end),
		},
	}
	for _, c := range dump.Children {
		child, err := buildNode(c, n, source, idx)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// lineIndex maps byte offsets to 1-based line/column positions.
type lineIndex struct {
	starts []int // byte offset of each line start
}

func newLineIndex(source string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (idx *lineIndex) position(offset int) token.Position {
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
	return token.Position{
		Line:   line,
		Column: offset - idx.starts[line-1] + 1,
		Offset: offset,
	}
}
