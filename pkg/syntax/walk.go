// Package syntax defines the node surface the lint engine consumes: node
// kinds, spans, parent/child navigation, and decoding of the tree dumps
// an external parser produces. The package owns no parsing of its own.
package syntax

// Walk traverses a subtree depth-first, parent before children, and
// calls fn for each node. If fn returns false the node's children are
// skipped; traversal continues with siblings.
func Walk(node *Node, fn func(*Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}
