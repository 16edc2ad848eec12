package ariasnap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mackee/ariasnap/internal/util"
)

// maxNameLength is the longest accessible name the renderer will still
// quote into a node's key line; longer names are omitted entirely.
const maxNameLength = 900

// RenderAriaTree renders snapshot to its canonical two-space-indented YAML
// sequence, in raw (literal) or regex (dynamic-content-generalized) mode
// (spec §4.5).
func RenderAriaTree(snapshot *AriaSnapshot, opts RenderOptions) string {
	if snapshot == nil || snapshot.Root == nil {
		return ""
	}
	var b strings.Builder
	renderChildren(&b, snapshot.Root.Children, 0, opts)
	return strings.TrimRight(b.String(), "\n")
}

func renderChildren(b *strings.Builder, children []any, indent int, opts RenderOptions) {
	for _, child := range children {
		switch c := child.(type) {
		case string:
			renderTextLine(b, "", c, indent, opts)
		case *AriaNode:
			renderNode(b, c, indent, opts)
		}
	}
}

// renderNode emits one AriaNode and, recursively, its subtree. A fragment
// (the snapshot root, or a synthetic diff-target wrapper) emits only its
// children, at the same indent, with no key line of its own.
func renderNode(b *strings.Builder, node *AriaNode, indent int, opts RenderOptions) {
	if node.Role == RoleFragment {
		renderChildren(b, node.Children, indent, opts)
		return
	}

	prefix := strings.Repeat("  ", indent)
	key := renderKeyLine(node, opts)
	hasProps := len(node.Props) > 0

	if !hasProps && len(node.Children) == 1 {
		if text, ok := node.Children[0].(string); ok {
			renderInlineTextNode(b, prefix, key, node.Name, text, opts)
			return
		}
	}

	if len(node.Children) == 0 && !hasProps {
		fmt.Fprintf(b, "%s- %s\n", prefix, key)
		return
	}

	fmt.Fprintf(b, "%s- %s:\n", prefix, key)
	childPrefix := strings.Repeat("  ", indent+1)
	for _, name := range sortedPropNames(node.Props) {
		fmt.Fprintf(b, "%s- /%s: %s\n", childPrefix, name, util.YamlEscapeValueIfNeeded(node.Props[name]))
	}
	for _, child := range node.Children {
		switch c := child.(type) {
		case string:
			renderTextLine(b, node.Name, c, indent+1, opts)
		case *AriaNode:
			renderNode(b, c, indent+1, opts)
		}
	}
}

func renderInlineTextNode(b *strings.Builder, prefix, key, parentName, text string, opts RenderOptions) {
	if opts.Mode == RenderModeRegex {
		if !textContributesInfo(parentName, text) {
			fmt.Fprintf(b, "%s- %s\n", prefix, key)
			return
		}
		fmt.Fprintf(b, "%s- %s: %s\n", prefix, key, convertToBestGuessRegex(text))
		return
	}
	fmt.Fprintf(b, "%s- %s: %s\n", prefix, key, quoteJSON(text))
}

func renderTextLine(b *strings.Builder, parentName, text string, indent int, opts RenderOptions) {
	prefix := strings.Repeat("  ", indent)
	if opts.Mode == RenderModeRegex {
		if !textContributesInfo(parentName, text) {
			return
		}
		fmt.Fprintf(b, "%s- text: %s\n", prefix, convertToBestGuessRegex(text))
		return
	}
	fmt.Fprintf(b, "%s- text: %s\n", prefix, quoteJSON(text))
}

func renderKeyLine(node *AriaNode, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString(node.Role)
	b.WriteString(renderNameToken(node.Name))
	b.WriteString(renderStateBrackets(node))
	b.WriteString(renderRefSuffix(node, opts))
	return b.String()
}

func renderNameToken(name string) string {
	if name == "" || len(name) > maxNameLength {
		return ""
	}
	if len(name) >= 2 && strings.HasPrefix(name, "/") && strings.HasSuffix(name, "/") {
		return " " + name
	}
	return " " + quoteJSON(name)
}

func renderStateBrackets(node *AriaNode) string {
	var b strings.Builder
	if node.Checked != nil {
		switch *node.Checked {
		case TriMixed:
			b.WriteString(" [checked=mixed]")
		case TriTrue:
			b.WriteString(" [checked]")
		}
	}
	if node.Disabled != nil && *node.Disabled {
		b.WriteString(" [disabled]")
	}
	if node.Expanded != nil && *node.Expanded {
		b.WriteString(" [expanded]")
	}
	if node.Level > 0 {
		fmt.Fprintf(&b, " [level=%d]", node.Level)
	}
	if node.Pressed != nil {
		switch *node.Pressed {
		case TriMixed:
			b.WriteString(" [pressed=mixed]")
		case TriTrue:
			b.WriteString(" [pressed]")
		}
	}
	if node.Selected != nil && *node.Selected {
		b.WriteString(" [selected]")
	}
	return b.String()
}

func renderRefSuffix(node *AriaNode, opts RenderOptions) string {
	if !opts.ForAI || !node.ReceivesPointerEvents || node.Ref == "" {
		return ""
	}
	s := fmt.Sprintf(" [ref=%s]", node.Ref)
	if node.Box.Cursor == "pointer" {
		s += " [cursor=pointer]"
	}
	return s
}

func sortedPropNames(props map[string]string) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

func quoteJSON(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(out)
}

// textContributesInfo reports whether text still carries information once
// the parent node's own name is subtracted out — the regex renderer drops
// text whose content is already conveyed by the accessible name (spec
// §4.5). Names/texts over 200 characters are assumed informative and are
// never suppressed this way.
func textContributesInfo(parentName, text string) bool {
	if text == "" {
		return false
	}
	if parentName == "" || len(parentName) > 200 || len(text) > 200 {
		return true
	}

	remainder := text
	for {
		lcs := util.LongestCommonSubstringText(parentName, remainder)
		if lcs == "" {
			break
		}
		remainder = strings.Replace(remainder, lcs, "", 1)
	}
	return float64(len(remainder)) > 0.1*float64(len(text))
}

// convertToBestGuessRegex replaces numeric dynamic content (sizes,
// durations, decimals, multi-digit integers) in text with regex
// alternatives, returning a "/pattern/" string. Text with no dynamic
// content renders as its own JSON-quoted literal instead.
func convertToBestGuessRegex(text string) string {
	if !util.ContainsDynamicContent(text) {
		return quoteJSON(text)
	}
	return "/" + util.ToBestGuessPattern(text) + "/"
}
