package syntax

import "strings"

// Kind identifies the shape of a syntax node.
type Kind int

// Node kinds delivered by the external parser.
const (
	KindUnknown Kind = iota
	KindUnit
	KindClassDecl
	KindMethodDecl
	KindFunctionExpr
	KindFieldDecl
	KindConstDecl
	KindConstructorCall
	KindMethodCall
	KindArgument
	KindIdentifier
	KindNumberLit
	KindStringLit
	KindBoolLit
	KindTryStmt
	KindCatchClause
	KindRethrowStmt
	KindReturnStmt
	KindBlock

	// KindEndOfUnit is synthetic: the dispatcher fires it once after the
	// real tree has been fully visited, so rules that accumulate state
	// across a pass have a final hook.
	KindEndOfUnit
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindUnit:            "unit",
	KindClassDecl:       "class_decl",
	KindMethodDecl:      "method_decl",
	KindFunctionExpr:    "function_expr",
	KindFieldDecl:       "field_decl",
	KindConstDecl:       "const_decl",
	KindConstructorCall: "constructor_call",
	KindMethodCall:      "method_call",
	KindArgument:        "argument",
	KindIdentifier:      "identifier",
	KindNumberLit:       "number_lit",
	KindStringLit:       "string_lit",
	KindBoolLit:         "bool_lit",
	KindTryStmt:         "try_stmt",
	KindCatchClause:     "catch_clause",
	KindRethrowStmt:     "rethrow_stmt",
	KindReturnStmt:      "return_stmt",
	KindBlock:           "block",
	KindEndOfUnit:       "end_of_unit",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the string representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a parser dump kind tag to a Kind.
// Returns KindUnknown and false for unrecognized tags.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// IsLiteral returns true for literal node kinds.
func (k Kind) IsLiteral() bool {
	return k == KindNumberLit || k == KindStringLit || k == KindBoolLit
}

// IsFunctionBoundary returns true for kinds that open a new executable
// scope. Ancestor searches that must not leak across unrelated scopes
// stop here.
func (k Kind) IsFunctionBoundary() bool {
	return k == KindMethodDecl || k == KindFunctionExpr
}
