// Package dom provides a virtual DOM the ARIA snapshot engine walks without
// ever touching a real browser: elements, text nodes, shadow roots, slot
// assignment and the handful of computed-style/geometry fields the
// accessibility-tree builder needs.
package dom

import (
	"regexp"
	"strings"
)

// normalizeRegexp collapses runs of whitespace to a single space.
var normalizeRegexp = regexp.MustCompile(`\s{2,}`)

// GetInnerText returns the inner text of an element or text node.
// If normalizeSpaces is true, consecutive whitespace is normalized to a single space.
func GetInnerText(node VNode, normalizeSpaces bool) string {
	var text string

	switch n := node.(type) {
	case *VText:
		text = n.TextContent
	case *VElement:
		for i, child := range n.Children {
			if i > 0 && text != "" {
				text += " "
			}

			if childText, ok := AsVText(child); ok {
				text += childText.TextContent
			} else if childElement, ok := AsVElement(child); ok {
				childText := GetInnerText(childElement, false)
				if childText != "" {
					text += childText
				}
			}
		}
	}

	text = strings.TrimSpace(text)

	if normalizeSpaces {
		text = normalizeRegexp.ReplaceAllString(text, " ")
	}

	return text
}

// IsElementHiddenForAria reports whether an element is removed from the
// accessibility tree by `hidden`, `aria-hidden="true"`, `display: none` or
// `visibility: hidden` (spec §6 `isElementHiddenForAria`).
func IsElementHiddenForAria(node *VElement) bool {
	if node == nil {
		return true
	}
	if node.HasAttribute("hidden") {
		return true
	}
	if node.GetAttribute("aria-hidden") == "true" {
		return true
	}
	style := GetElementComputedStyle(node)
	if style != nil && (style.Display == "none") {
		return true
	}
	inline := node.GetAttribute("style")
	if strings.Contains(inline, "visibility: hidden") || strings.Contains(inline, "visibility:hidden") {
		return true
	}
	return false
}

// IsElementVisible reports whether an element is visible: not hidden for
// aria purposes and, when a box has been computed, actually painted.
func IsElementVisible(node *VElement) bool {
	if IsElementHiddenForAria(node) {
		return false
	}
	if node.BoxOverride != nil {
		return node.BoxOverride.Visible
	}
	return true
}
