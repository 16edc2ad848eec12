package ariasnap

import (
	"sort"

	"github.com/mackee/ariasnap/internal/util"
)

// Scoring constants for the best-candidate finder (spec §4.4). Only
// exercised when matchesNodeDeep found no hits, so these never affect
// whether a template matches — only which subtree gets shown as a diff.
const (
	scoreExact            = 1000.0
	scoreRoleMatch        = 500.0
	scoreNameMatch        = 400.0
	scoreStateField       = 100.0
	scoreStateAllBonus    = 500.0
	scoreURLMatch         = 100.0
	scoreChildrenAllBonus = 300.0
	scorePositionBonus    = 200.0
	scoreMissingChild     = -50.0
	scoreNoMatch          = -200.0
	scoreDepthBonus       = 20.0
)

// stringSimilarityScore turns util.StringSimilarity's [0,1] ratio into the
// scorer's 0..max point range.
func stringSimilarityScore(a, b string, max float64) float64 {
	return util.StringSimilarity(a, b) * max
}

// scoreTextMatch scores text against template: exact on a regex hit or a
// literal equal, similarity-based only for a literal miss — a regex miss
// scores 0, since comparing text against the pattern's own source string
// is not a text similarity signal.
func scoreTextMatch(text string, template StringOrRegex) float64 {
	if template.Regex != nil {
		if template.Regex.MatchString(text) {
			return scoreExact
		}
		return 0
	}
	if text == template.Literal {
		return scoreExact
	}
	return stringSimilarityScore(text, template.Literal, scoreExact)
}

// scoreNodeMatch scores node (a string or *AriaNode) against template,
// independent of whether it actually satisfies matchesNode.
func scoreNodeMatch(node any, template *TemplateNode) float64 {
	if template.Kind == TemplateText {
		text, ok := node.(string)
		if !ok {
			return scoreNoMatch
		}
		return scoreTextMatch(text, template.Text)
	}

	ariaNode, ok := node.(*AriaNode)
	if !ok {
		return scoreNoMatch
	}

	score := 0.0
	if template.Role == RoleFragment || template.Role == ariaNode.Role {
		score += scoreRoleMatch
	}

	if template.Name != nil {
		if template.Name.IsZero() {
			score += scoreNameMatch
		} else {
			score += scoreTextMatch(ariaNode.Name, *template.Name) * (scoreNameMatch / scoreExact)
		}
	}

	score += scoreStateAttributes(ariaNode, template)

	if template.PropsURL != nil && matchesText(ariaNode.Props["url"], *template.PropsURL) {
		score += scoreURLMatch
	}

	score += scoreChildrenMatch(ariaNode.Children, template.Children)

	return score
}

func scoreStateAttributes(node *AriaNode, template *TemplateNode) float64 {
	specified, matched := 0, 0
	check := func(isSpecified, isEqual bool) {
		if !isSpecified {
			return
		}
		specified++
		if isEqual {
			matched++
		}
	}
	check(template.Checked != nil, template.Checked != nil && node.Checked != nil && *node.Checked == *template.Checked)
	check(template.Disabled != nil, template.Disabled != nil && node.Disabled != nil && *node.Disabled == *template.Disabled)
	check(template.Expanded != nil, template.Expanded != nil && node.Expanded != nil && *node.Expanded == *template.Expanded)
	check(template.Level != nil, template.Level != nil && node.Level == *template.Level)
	check(template.Pressed != nil, template.Pressed != nil && node.Pressed != nil && *node.Pressed == *template.Pressed)
	check(template.Selected != nil, template.Selected != nil && node.Selected != nil && *node.Selected == *template.Selected)

	score := float64(matched) * scoreStateField
	if specified > 0 && matched == specified {
		score += scoreStateAllBonus
	}
	return score
}

func scoreChildrenMatch(children []any, templateChildren []*TemplateNode) float64 {
	_, score := findBestChildrenMatches(children, templateChildren, true)
	return score
}

// findBestChildrenMatches greedily assigns each template child, in order,
// to the highest-scoring unused actual child (ties go to the lower
// actual-index, since the scan is ascending and ties keep the first
// candidate found). With includePositionBonus it also scores index
// agreement and overall completeness (spec §4.4's "score mode"); without
// it, it is used purely to pick which actual indices to show in a
// fragment diff ("subsequence mode").
func findBestChildrenMatches(children []any, templateChildren []*TemplateNode, includePositionBonus bool) ([]int, float64) {
	if len(templateChildren) == 0 {
		return nil, 0
	}
	if len(children) == 0 {
		return nil, float64(len(templateChildren)) * scoreMissingChild
	}

	used := make([]bool, len(children))
	var chosen []int
	total := 0.0
	matchedCount := 0

	for ti, t := range templateChildren {
		bestIdx := -1
		bestScore := 0.0
		for ci, c := range children {
			if used[ci] {
				continue
			}
			s := scoreNodeMatch(c, t)
			if bestIdx == -1 || s > bestScore {
				bestIdx = ci
				bestScore = s
			}
		}
		if bestIdx == -1 {
			if includePositionBonus {
				total += scoreMissingChild
			}
			continue
		}
		used[bestIdx] = true
		chosen = append(chosen, bestIdx)
		matchedCount++
		total += bestScore
		if includePositionBonus && bestIdx == ti {
			total += scorePositionBonus
		}
	}

	if includePositionBonus && matchedCount == len(templateChildren) {
		total += scoreChildrenAllBonus
	}

	sort.Ints(chosen)
	return chosen, total
}

// findBestStructuralMatch walks the whole snapshot picking the subtree
// that scores highest against template, breaking ties toward deeper
// nodes. When template is a multi-child fragment, the candidate at each
// node is a synthetic fragment wrapping just the actual children the
// position-less assignment selected, so the diff shows only the relevant
// siblings instead of the entire parent's child list.
func findBestStructuralMatch(root *AriaNode, template *TemplateNode) *AriaNode {
	var best *AriaNode
	bestScore := 0.0
	found := false

	var walk func(n *AriaNode, depth int)
	walk = func(n *AriaNode, depth int) {
		if n == nil {
			return
		}

		var candidate *AriaNode
		var score float64
		if template.Role == RoleFragment && len(template.Children) > 1 {
			indices, s := findBestChildrenMatches(n.Children, template.Children, true)
			score = s
			candidate = wrapFragment(n.Children, indices)
		} else {
			score = scoreNodeMatch(n, template)
			candidate = n
		}
		score += float64(depth) * scoreDepthBonus

		if !found || score > bestScore {
			found = true
			bestScore = score
			best = candidate
		}

		for _, child := range n.NodeChildren() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return best
}

// wrapFragment builds a synthetic fragment containing only the children
// at indices, restored to their original relative order.
func wrapFragment(children []any, indices []int) *AriaNode {
	fragment := &AriaNode{Role: RoleFragment}
	for _, idx := range indices {
		fragment.Children = append(fragment.Children, children[idx])
	}
	return fragment
}
