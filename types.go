package ariasnap

import "github.com/mackee/ariasnap/internal/dom"

// TriState represents the three-valued checked/pressed ARIA states.
type TriState string

const (
	TriTrue  TriState = "true"
	TriFalse TriState = "false"
	TriMixed TriState = "mixed"
)

// RoleFragment is the synthetic role of the snapshot root and of a
// wildcard template node (matches any node by role alone).
const RoleFragment = "fragment"

// RoleIframe is always a leaf, regardless of the element's descendants.
const RoleIframe = "iframe"

// AriaNode is one node of a built accessibility tree.
type AriaNode struct {
	Role string
	Name string
	// Ref is only populated in forAI builds.
	Ref string
	// Children holds, in order, either a string (a text child) or a
	// *AriaNode (an element child).
	Children []any
	// Props currently only ever carries "url" for link nodes.
	Props map[string]string

	Checked  *TriState
	Disabled *bool
	Expanded *bool
	Level    int
	Pressed  *TriState
	Selected *bool

	// Element is a non-owning back-reference valid only for the lifetime
	// of the snapshot that produced this node.
	Element *dom.VElement
	Box     dom.Box
	ReceivesPointerEvents bool
}

// StringChildren returns node's children that are text, preserving order
// relative to each other (not their position among element children).
func (n *AriaNode) StringChildren() []string {
	var out []string
	for _, c := range n.Children {
		if s, ok := c.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// NodeChildren returns node's children that are themselves AriaNodes.
func (n *AriaNode) NodeChildren() []*AriaNode {
	var out []*AriaNode
	for _, c := range n.Children {
		if child, ok := c.(*AriaNode); ok {
			out = append(out, child)
		}
	}
	return out
}

// CountAriaNodes counts node and every AriaNode descendant, the way the
// builder's diagnostics log a tree's size after normalization.
func CountAriaNodes(node *AriaNode) int {
	if node == nil {
		return 0
	}
	count := 1
	for _, child := range node.NodeChildren() {
		count += CountAriaNodes(child)
	}
	return count
}

// AriaSnapshot is the output of a Tree Builder pass: a normalized tree
// plus, in forAI mode, the ref->element lookup table used to resolve a
// rendered ref string back to the DOM element it names.
type AriaSnapshot struct {
	Root     *AriaNode
	Elements map[string]*dom.VElement
}
