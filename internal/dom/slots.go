package dom

import "strings"

// IsSlot reports whether element is a <slot> projection point.
func IsSlot(element *VElement) bool {
	return element != nil && strings.ToLower(element.TagName) == "slot"
}

// AssignedNodes returns the light-DOM children of host that are projected
// into the named slot (host's direct Children whose `slot` attribute
// matches slotName; "" selects the default slot, i.e. children carrying no
// `slot` attribute). This mirrors the builder's traversal rule (spec §4.1
// step 3: "assigned slot nodes ... attach to the current parent").
func AssignedNodes(host *VElement, slotName string) []VNode {
	if host == nil {
		return nil
	}
	var assigned []VNode
	for _, child := range host.Children {
		childSlot := ""
		if el, ok := AsVElement(child); ok {
			childSlot = el.SlotAttr
			if childSlot == "" {
				childSlot = el.GetAttribute("slot")
			}
		}
		if childSlot == slotName {
			assigned = append(assigned, child)
		}
	}
	return assigned
}

// ResolveAriaOwns splits an element's `aria-owns` attribute and resolves
// each id against doc, skipping ids that don't resolve (spec §4.1 step 2,
// §9 Open Question on `aria-owns` + slot dedup via the visited set).
func ResolveAriaOwns(element *VElement, doc *VDocument) []*VElement {
	owns := element.GetAttribute("aria-owns")
	if owns == "" || doc == nil {
		return nil
	}
	var result []*VElement
	for _, id := range strings.Fields(owns) {
		if target := doc.GetElementByID(id); target != nil {
			result = append(result, target)
		}
	}
	return result
}
