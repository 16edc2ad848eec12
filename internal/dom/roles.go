package dom

import "strings"

// implicitRoles maps an HTML tag name to its implicit ARIA role, following
// the same tag table the teacher's readability port used for its ARIA
// fallback tree, extended with the landmark/widget tags spec.md's role set
// requires.
var implicitRoles = map[string]string{
	"article":  "article",
	"aside":    "complementary",
	"button":   "button",
	"dd":       "definition",
	"dt":       "term",
	"fieldset": "group",
	"figure":   "figure",
	"footer":   "contentinfo",
	"form":     "form",
	"h1":       "heading",
	"h2":       "heading",
	"h3":       "heading",
	"h4":       "heading",
	"h5":       "heading",
	"h6":       "heading",
	"header":   "banner",
	"hr":       "separator",
	"img":      "img",
	"li":       "listitem",
	"main":     "main",
	"nav":      "navigation",
	"ol":       "list",
	"option":   "option",
	"progress": "progressbar",
	"section":  "region",
	"select":   "combobox",
	"table":    "table",
	"tbody":    "rowgroup",
	"thead":    "rowgroup",
	"tfoot":    "rowgroup",
	"td":       "cell",
	"th":       "columnheader",
	"tr":       "row",
	"textarea": "textbox",
	"ul":       "list",
	"dialog":   "dialog",
}

// transparentRoles never produce an accessibility node of their own; the
// element's children attach to its parent instead (spec §4.1 step 2).
var transparentRoles = map[string]bool{
	"presentation": true,
	"none":         true,
}

// GetAriaRole returns the ARIA role of an element: the explicit `role`
// attribute if present, otherwise the implicit role for its tag. When an
// element has neither and forAI is false, it returns "" rather than
// defaulting to "generic" — the generic default role is one of the three
// behaviors forAI gates, alongside ref assignment and the geometric
// visibility fallback.
func GetAriaRole(element *VElement, forAI bool) string {
	if element == nil {
		return ""
	}

	if explicitRole := element.GetAttribute("role"); explicitRole != "" {
		// Use only the first token: `role="button presentation"` picks "button".
		first := strings.Fields(strings.ToLower(explicitRole))
		if len(first) > 0 {
			return first[0]
		}
	}

	tagName := strings.ToLower(element.TagName)

	if tagName == "a" {
		if element.GetAttribute("href") != "" {
			return "link"
		}
		if forAI {
			return "generic"
		}
		return ""
	}

	if tagName == "input" {
		inputType := strings.ToLower(element.GetAttribute("type"))
		if inputType == "" {
			inputType = "text"
		}
		switch inputType {
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "button", "submit", "reset":
			return "button"
		case "search":
			return "searchbox"
		case "range":
			return "slider"
		default:
			return "textbox"
		}
	}

	if tagName == "iframe" {
		return "iframe"
	}

	if role, ok := implicitRoles[tagName]; ok {
		return role
	}

	if forAI {
		return "generic"
	}
	return ""
}

// IsTransparentRole reports whether role is `presentation`/`none`: the
// element contributes no node of its own, only its children do.
func IsTransparentRole(role string) bool {
	return transparentRoles[role]
}

// Role-admits tables: which roles carry which ARIA state attribute
// (spec §4.1 "Compute state attributes: include each only for roles in
// its defined role-set").
var checkedRoles = map[string]bool{
	"checkbox": true, "radio": true, "switch": true, "menuitemcheckbox": true, "menuitemradio": true,
}

var disabledRoles = map[string]bool{
	"button": true, "checkbox": true, "radio": true, "textbox": true, "searchbox": true,
	"combobox": true, "slider": true, "switch": true, "option": true, "tab": true,
	"link": true, "menuitem": true, "spinbutton": true,
}

var expandedRoles = map[string]bool{
	"button": true, "combobox": true, "tab": true, "treeitem": true, "row": true,
	"gridcell": true, "link": true, "menuitem": true,
}

var levelRoles = map[string]bool{
	"heading": true, "row": true, "treeitem": true, "listitem": true,
}

var pressedRoles = map[string]bool{
	"button": true,
}

var selectedRoles = map[string]bool{
	"option": true, "tab": true, "row": true, "gridcell": true, "treeitem": true,
}

func boolAttr(el *VElement, attr string) *bool {
	v := strings.ToLower(el.GetAttribute(attr))
	switch v {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	default:
		return nil
	}
}

// GetAriaChecked returns the element's checked state (true, false or the
// string "mixed"), or nil if the role does not admit it.
func GetAriaChecked(element *VElement, role string) interface{} {
	if !checkedRoles[role] {
		return nil
	}
	switch strings.ToLower(element.GetAttribute("aria-checked")) {
	case "mixed":
		return "mixed"
	case "true":
		return true
	case "false":
		return false
	}
	if element.HasAttribute("checked") {
		return true
	}
	return false
}

// GetAriaDisabled returns whether the role admits and carries a disabled state.
func GetAriaDisabled(element *VElement, role string) *bool {
	if !disabledRoles[role] {
		return nil
	}
	if element.HasAttribute("disabled") {
		t := true
		return &t
	}
	if v := boolAttr(element, "aria-disabled"); v != nil {
		return v
	}
	f := false
	return &f
}

// GetAriaExpanded returns whether the role admits and carries an expanded state.
func GetAriaExpanded(element *VElement, role string) *bool {
	if !expandedRoles[role] {
		return nil
	}
	return boolAttr(element, "aria-expanded")
}

// GetAriaLevel returns the heading/tree/row level for roles that admit it, or 0.
func GetAriaLevel(element *VElement, role string) int {
	if !levelRoles[role] {
		return 0
	}
	if lv := element.GetAttribute("aria-level"); lv != "" {
		n := 0
		for _, c := range lv {
			if c < '0' || c > '9' {
				return 0
			}
			n = n*10 + int(c-'0')
		}
		if n > 0 {
			return n
		}
	}
	tag := strings.ToLower(element.TagName)
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// GetAriaPressed returns the element's pressed state (true, false or the
// string "mixed"), or nil if the role does not admit it or aria-pressed is
// absent or not one of those values.
func GetAriaPressed(element *VElement, role string) interface{} {
	if !pressedRoles[role] {
		return nil
	}
	switch strings.ToLower(element.GetAttribute("aria-pressed")) {
	case "mixed":
		return "mixed"
	case "true":
		return true
	case "false":
		return false
	}
	return nil
}

// GetAriaSelected returns whether the role admits and carries a selected state.
func GetAriaSelected(element *VElement, role string) *bool {
	if !selectedRoles[role] {
		return nil
	}
	if element.HasAttribute("selected") {
		t := true
		return &t
	}
	if v := boolAttr(element, "aria-selected"); v != nil {
		return v
	}
	f := false
	return &f
}
