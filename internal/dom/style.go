package dom

import "strings"

// GetElementComputedStyle returns the subset of computed style the engine
// consults (display, cursor), preferring a test-supplied StyleOverride and
// otherwise parsing the inline `style` attribute (spec §6
// `getElementComputedStyle`).
func GetElementComputedStyle(element *VElement) *ComputedStyle {
	if element == nil {
		return nil
	}
	if element.StyleOverride != nil {
		return element.StyleOverride
	}

	style := &ComputedStyle{Display: defaultDisplay(element.TagName)}
	inline := element.GetAttribute("style")
	for _, decl := range strings.Split(inline, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(strings.ToLower(parts[1]))
		switch key {
		case "display":
			style.Display = value
		case "cursor":
			style.Cursor = value
		}
	}
	return style
}

// inlineElements lists tags whose default CSS display is inline, used to
// decide whether a word-boundary space must be inserted between children
// during text concatenation (spec §4.1 step 3).
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "dfn": true, "em": true,
	"i": true, "kbd": true, "label": true, "mark": true, "q": true,
	"s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true, "wbr": true,
}

func defaultDisplay(tagName string) string {
	tag := strings.ToLower(tagName)
	if tag == "#shadow-root" {
		return "contents"
	}
	if inlineElements[tag] {
		return "inline"
	}
	return "block"
}

// IsInlineDisplay reports whether element's computed display keeps it
// flowing inline with surrounding text (no forced word-boundary space).
func IsInlineDisplay(element *VElement) bool {
	if element == nil {
		return false
	}
	if strings.ToLower(element.TagName) == "br" {
		return false
	}
	style := GetElementComputedStyle(element)
	return style != nil && style.Display == "inline"
}

// GetCSSContent returns the `content` value of an element's ::before or
// ::after pseudo-element (spec §6 `getCSSContent`). pseudo must be
// "before" or "after".
func GetCSSContent(element *VElement, pseudo string) string {
	if element == nil {
		return ""
	}
	switch pseudo {
	case "before":
		return element.PseudoBefore
	case "after":
		return element.PseudoAfter
	default:
		return ""
	}
}

// GetBox returns the bounding-box/visibility/cursor snapshot for an element,
// preferring a test-supplied BoxOverride and otherwise defaulting to a
// zero-sized box that is visible unless the element is hidden for aria
// (spec §6 `box(el)`).
func GetBox(element *VElement) Box {
	if element == nil {
		return Box{}
	}
	if element.BoxOverride != nil {
		return *element.BoxOverride
	}
	cursor := ""
	if style := GetElementComputedStyle(element); style != nil {
		cursor = style.Cursor
	}
	return Box{Visible: !IsElementHiddenForAria(element), Cursor: cursor}
}

// ReceivesPointerEvents reports whether an element would receive pointer
// events: visible, not `pointer-events: none`, and not disabled (spec §6
// `receivesPointerEvents`).
func ReceivesPointerEvents(element *VElement) bool {
	if element == nil {
		return false
	}
	if element.PointerEventsOverride != nil {
		return *element.PointerEventsOverride
	}
	if !IsElementVisible(element) {
		return false
	}
	style := GetElementComputedStyle(element)
	if style != nil {
		inline := element.GetAttribute("style")
		if strings.Contains(inline, "pointer-events: none") || strings.Contains(inline, "pointer-events:none") {
			return false
		}
	}
	// The disabled-role admit table never keys on "generic" either way, so
	// which default the gate would have picked doesn't matter here.
	role := GetAriaRole(element, true)
	if disabled := GetAriaDisabled(element, role); disabled != nil && *disabled {
		return false
	}
	return true
}
