package ariasnap

import "github.com/mackee/ariasnap/internal/dom"

// matchesText implements the matcher's scalar comparison (spec §4.3): an
// absent template always matches, empty text never does, a literal
// template compares by equality, a regex template by unanchored search.
func matchesText(text string, template StringOrRegex) bool {
	if template.IsZero() {
		return true
	}
	if text == "" {
		return false
	}
	if template.Regex != nil {
		return template.Regex.MatchString(text)
	}
	return text == template.Literal
}

// matchesNode tests node (a string or *AriaNode) against template. Once
// isDeepEqual is true it stays true for every descendant comparison,
// forcing equal-mode comparisons through the rest of the subtree.
func matchesNode(node any, template *TemplateNode, isDeepEqual bool) bool {
	if template.Kind == TemplateText {
		text, ok := node.(string)
		if !ok {
			return false
		}
		return matchesText(text, template.Text)
	}

	ariaNode, ok := node.(*AriaNode)
	if !ok {
		return false
	}

	if template.Role != RoleFragment && template.Role != ariaNode.Role {
		return false
	}
	if !matchesStateAttributes(ariaNode, template) {
		return false
	}
	if template.Name != nil && !matchesText(ariaNode.Name, *template.Name) {
		return false
	}
	if template.PropsURL != nil && !matchesText(ariaNode.Props["url"], *template.PropsURL) {
		return false
	}

	mode := template.containerMode()
	childIsDeepEqual := isDeepEqual || mode == ContainerDeepEqual
	if isDeepEqual || mode == ContainerDeepEqual {
		mode = ContainerEqual
	}

	switch mode {
	case ContainerEqual:
		return matchesChildrenEqual(ariaNode.Children, template.Children, childIsDeepEqual)
	default:
		return matchesChildrenContain(ariaNode.Children, template.Children)
	}
}

func matchesStateAttributes(node *AriaNode, template *TemplateNode) bool {
	if template.Checked != nil && (node.Checked == nil || *node.Checked != *template.Checked) {
		return false
	}
	if template.Disabled != nil && (node.Disabled == nil || *node.Disabled != *template.Disabled) {
		return false
	}
	if template.Expanded != nil && (node.Expanded == nil || *node.Expanded != *template.Expanded) {
		return false
	}
	if template.Level != nil && node.Level != *template.Level {
		return false
	}
	if template.Pressed != nil && (node.Pressed == nil || *node.Pressed != *template.Pressed) {
		return false
	}
	if template.Selected != nil && (node.Selected == nil || *node.Selected != *template.Selected) {
		return false
	}
	return true
}

// matchesChildrenEqual requires the same length and a pairwise match.
func matchesChildrenEqual(actual []any, templateChildren []*TemplateNode, isDeepEqual bool) bool {
	if len(actual) != len(templateChildren) {
		return false
	}
	for i, t := range templateChildren {
		if !matchesNode(actual[i], t, isDeepEqual) {
			return false
		}
	}
	return true
}

// matchesChildrenContain requires templateChildren to appear as an
// in-order subsequence of actual: advance through actual, greedily
// matching the next template child against the next unmatched actual
// child, failing once actual is exhausted.
func matchesChildrenContain(actual []any, templateChildren []*TemplateNode) bool {
	ai := 0
	for _, t := range templateChildren {
		found := false
		for ai < len(actual) {
			candidate := actual[ai]
			ai++
			if matchesNode(candidate, t, false) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesNodeDeep is the DFS both public entry points share: at every
// node it attempts a full match against template, recording the node (or
// the node owning a matching string child) on hit. With collectAll it
// keeps walking past a hit to find every match; otherwise it stops at the
// first.
func matchesNodeDeep(root *AriaNode, template *TemplateNode, collectAll bool) []*AriaNode {
	var matches []*AriaNode
	done := false

	var walk func(n *AriaNode)
	walk = func(n *AriaNode) {
		if done || n == nil {
			return
		}
		if matchesNode(n, template, false) {
			matches = append(matches, n)
			if !collectAll {
				done = true
				return
			}
		}
		for _, child := range n.Children {
			if done {
				return
			}
			switch c := child.(type) {
			case *AriaNode:
				walk(c)
			case string:
				if matchesNode(c, template, false) {
					matches = append(matches, n)
					if !collectAll {
						done = true
						return
					}
				}
			}
		}
	}
	walk(root)
	return matches
}

// ReceivedSnapshot carries the rendered forms a caller diffs a template's
// own rendering against.
type ReceivedSnapshot struct {
	Raw           string
	Regex         string
	DiffTarget    string
	HasDiffTarget bool
}

// MatchResult is matchesAriaTree's return value (spec §4.3/§4.6).
type MatchResult struct {
	Matches  []*AriaNode
	Received ReceivedSnapshot
}

// MatchesAriaTree builds domRoot into a snapshot and matches it against
// template, filling Received.DiffTarget with the best-candidate subtree
// when nothing matched.
func (e *Engine) MatchesAriaTree(domRoot *dom.VElement, template *TemplateNode, buildOpts BuildOptions, matchOpts MatchOptions) *MatchResult {
	snap := e.Build(domRoot, buildOpts)

	result := &MatchResult{
		Matches: matchesNodeDeep(snap.Root, template, true),
		Received: ReceivedSnapshot{
			Raw:   RenderAriaTree(snap, RenderOptions{Mode: RenderModeRaw, ForAI: buildOpts.ForAI}),
			Regex: RenderAriaTree(snap, RenderOptions{Mode: RenderModeRegex, ForAI: buildOpts.ForAI}),
		},
	}

	if len(result.Matches) == 0 {
		if best := findBestStructuralMatch(snap.Root, template); best != nil {
			diffSnap := &AriaSnapshot{Root: best, Elements: snap.Elements}
			result.Received.DiffTarget = RenderAriaTree(diffSnap, RenderOptions{Mode: RenderModeRaw, ForAI: buildOpts.ForAI})
			result.Received.HasDiffTarget = true
		}
	}

	matchOpts.logger().Debug().
		Int("matches", len(result.Matches)).
		Bool("hasDiffTarget", result.Received.HasDiffTarget).
		Msg("aria match complete")

	return result
}

// GetAllByAria returns the DOM elements backing every subtree matching
// template. Only nodes that carry an Element (i.e. not the synthetic
// fragment root) are returned.
func (e *Engine) GetAllByAria(domRoot *dom.VElement, template *TemplateNode, buildOpts BuildOptions) []*dom.VElement {
	snap := e.Build(domRoot, buildOpts)
	matches := matchesNodeDeep(snap.Root, template, true)

	elements := make([]*dom.VElement, 0, len(matches))
	for _, m := range matches {
		if m.Element != nil {
			elements = append(elements, m.Element)
		}
	}
	return elements
}
