package dom

import "strings"

// namedFromContent lists tags whose accessible name falls back to their
// text content when no `aria-label`/`aria-labelledby`/`title` is present,
// mirroring the teacher's `GetAccessibleName` table.
var namedFromContent = map[string]bool{
	"a": true, "button": true, "label": true, "summary": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "option": true, "td": true, "th": true, "dt": true, "dd": true,
}

// GetElementAccessibleName computes an element's accessible name following
// a simplified accessible-name-and-description computation: aria-label,
// aria-labelledby, alt (images), title, then text content for
// name-from-content roles (spec §6 `getElementAccessibleName`).
//
// When includeHidden is false, text from an element (or aria-labelledby
// target) that is itself hidden for aria is excluded; hidden descendants of
// a visible element still contribute their text.
func GetElementAccessibleName(element *VElement, includeHidden bool) string {
	if element == nil {
		return ""
	}

	if label := element.GetAttribute("aria-label"); label != "" {
		return normalizeName(label)
	}

	if ids := element.GetAttribute("aria-labelledby"); ids != "" {
		doc := nearestDocumentOwner(element)
		if doc != nil {
			var parts []string
			for _, id := range strings.Fields(ids) {
				if target := doc.GetElementByID(id); target != nil {
					if text := visibleInnerText(target, includeHidden); text != "" {
						parts = append(parts, text)
					}
				}
			}
			if len(parts) > 0 {
				return normalizeName(strings.Join(parts, " "))
			}
		}
	}

	tag := strings.ToLower(element.TagName)

	if tag == "img" {
		if alt := element.GetAttribute("alt"); alt != "" {
			return normalizeName(alt)
		}
	}

	if tag == "input" || tag == "textarea" {
		if ph := element.GetAttribute("placeholder"); ph != "" && element.FieldValue == "" {
			return ""
		}
	}

	if title := element.GetAttribute("title"); title != "" {
		return normalizeName(title)
	}

	if namedFromContent[tag] {
		if text := visibleInnerText(element, includeHidden); text != "" {
			return normalizeName(text)
		}
	}

	return ""
}

func visibleInnerText(element *VElement, includeHidden bool) string {
	if !includeHidden && IsElementHiddenForAria(element) {
		return ""
	}
	return GetInnerText(element, true)
}

func normalizeName(s string) string {
	return strings.TrimSpace(normalizeRegexp.ReplaceAllString(s, " "))
}

// nearestDocumentOwner is a best-effort walk to the root element so
// aria-labelledby can resolve ids without every node needing an explicit
// owner-document back-reference.
func nearestDocumentOwner(element *VElement) *VDocument {
	root := element
	for root.Parent() != nil {
		root = root.Parent()
	}
	return &VDocument{DocumentElement: root, Body: root}
}
