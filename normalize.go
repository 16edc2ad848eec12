package ariasnap

import (
	"strings"

	"github.com/mackee/ariasnap/internal/util"
)

// normalizeStringChildren folds adjacent string children into one
// whitespace-normalized text node, drops empties, and then drops a node's
// single remaining child when it is text equal to the node's own name (the
// name already subsumes it). Runs bottom-up so a parent's name-subsumption
// check sees its children already coalesced.
func normalizeStringChildren(node *AriaNode) {
	if node == nil {
		return
	}
	for _, child := range node.NodeChildren() {
		normalizeStringChildren(child)
	}

	var coalesced []any
	var buf strings.Builder
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		text := util.NormalizeWhiteSpace(buf.String())
		if text != "" {
			coalesced = append(coalesced, text)
		}
		buf.Reset()
	}
	for _, child := range node.Children {
		if s, ok := child.(string); ok {
			buf.WriteString(s)
			continue
		}
		flush()
		coalesced = append(coalesced, child)
	}
	flush()
	node.Children = coalesced

	if len(node.Children) == 1 {
		if s, ok := node.Children[0].(string); ok && s == node.Name {
			node.Children = nil
		}
	}
}

// normalizeGenericRoles elides generic wrapper nodes in depth-first
// post-order: a generic node with exactly one child, itself an AriaNode
// that currently receives pointer events, is replaced by that single
// child, spliced into the parent in place.
func normalizeGenericRoles(node *AriaNode) {
	if node == nil {
		return
	}

	var rebuilt []any
	for _, child := range node.Children {
		childNode, ok := child.(*AriaNode)
		if !ok {
			rebuilt = append(rebuilt, child)
			continue
		}
		normalizeGenericRoles(childNode)
		if isElidableGeneric(childNode) {
			rebuilt = append(rebuilt, childNode.Children...)
			continue
		}
		rebuilt = append(rebuilt, childNode)
	}
	node.Children = rebuilt
}

func isElidableGeneric(node *AriaNode) bool {
	if node.Role != "generic" || len(node.Children) != 1 {
		return false
	}
	only, ok := node.Children[0].(*AriaNode)
	return ok && only.ReceivesPointerEvents
}
