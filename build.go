package ariasnap

import (
	"fmt"
	"strings"

	"github.com/mackee/ariasnap/internal/dom"
)

// builder carries the per-build mutable state: the visited set (dedup
// across aria-owns/slot re-entry), the role/name caches, and the
// ref->element table populated only in forAI mode.
type builder struct {
	engine   *Engine
	opts     BuildOptions
	caches   *dom.Caches
	visited  map[*dom.VElement]bool
	elements map[string]*dom.VElement
}

// Build walks rootElement and returns a normalized AriaSnapshot (spec
// §4.1 "Tree Builder"). Pure with respect to the DOM at the instant of
// invocation; never raises on malformed input (absent attributes, no
// shadow root) — only an assertion violation (nil root) panics.
func (e *Engine) Build(rootElement *dom.VElement, opts BuildOptions) *AriaSnapshot {
	assertf(rootElement != nil, "Build: rootElement must not be nil")

	dom.SetGlobalOptions(dom.GlobalOptions{InputFileRoleTextbox: opts.InputFileRoleTextbox})

	caches := dom.BeginAriaCaches()
	defer caches.End()

	b := &builder{
		engine:   e,
		opts:     opts,
		caches:   caches,
		visited:  make(map[*dom.VElement]bool),
		elements: make(map[string]*dom.VElement),
	}

	root := &AriaNode{Role: RoleFragment, Box: dom.GetBox(rootElement)}
	doc := documentOf(rootElement)

	b.visitChildrenOf(rootElement, root, doc)

	normalizeStringChildren(root)
	normalizeGenericRoles(root)

	opts.logger().Debug().
		Int("nodes", CountAriaNodes(root)).
		Bool("forAI", opts.ForAI).
		Msg("aria tree built")

	snap := &AriaSnapshot{Root: root, Elements: map[string]*dom.VElement{}}
	if opts.ForAI {
		snap.Elements = b.elements
	}
	return snap
}

// documentOf walks up to the tree's root element and wraps it in the
// minimal VDocument needed to resolve aria-owns/aria-labelledby ids.
func documentOf(element *dom.VElement) *dom.VDocument {
	root := element
	for root.Parent() != nil {
		root = root.Parent()
	}
	return &dom.VDocument{DocumentElement: root, Body: root}
}

func (b *builder) visit(node dom.VNode, parent *AriaNode, doc *dom.VDocument) {
	if text, ok := dom.AsVText(node); ok {
		b.visitText(text, parent)
		return
	}

	element, ok := dom.AsVElement(node)
	if !ok {
		return
	}

	if b.visited[element] {
		return
	}
	if shouldPruneBeforeVisit(element) {
		return
	}

	tag := strings.ToLower(element.TagName)

	if !dom.IsElementVisible(element) && !(b.opts.ForAI && b.geometricallyVisible(element)) {
		return
	}
	b.visited[element] = true

	if tag == "iframe" {
		parent.Children = append(parent.Children, b.buildLeaf(element, RoleIframe))
		return
	}

	role := b.caches.Role(element, b.opts.ForAI)

	if dom.IsTransparentRole(role) {
		b.visitChildrenOf(element, parent, doc)
		return
	}

	ariaNode := &AriaNode{
		Role:                  role,
		Name:                  b.caches.Name(element, b.opts.ForAI),
		Element:               element,
		Box:                   dom.GetBox(element),
		ReceivesPointerEvents: dom.ReceivesPointerEvents(element),
	}

	if tag == "a" {
		if href := element.GetAttribute("href"); href != "" {
			if ariaNode.Props == nil {
				ariaNode.Props = map[string]string{}
			}
			ariaNode.Props["url"] = href
		}
	}

	b.applyStateAttributes(ariaNode, element, role)

	if b.opts.ForAI {
		b.assignRef(ariaNode, element)
	}

	if isTextboxLikeInput(tag, element) {
		if element.FieldValue != "" {
			ariaNode.Children = append(ariaNode.Children, element.FieldValue)
		}
	} else {
		b.visitChildrenOf(element, ariaNode, doc)
	}

	parent.Children = append(parent.Children, ariaNode)
}

func (b *builder) buildLeaf(element *dom.VElement, role string) *AriaNode {
	node := &AriaNode{
		Role:                  role,
		Name:                  b.caches.Name(element, b.opts.ForAI),
		Element:               element,
		Box:                   dom.GetBox(element),
		ReceivesPointerEvents: dom.ReceivesPointerEvents(element),
	}
	if b.opts.ForAI {
		b.assignRef(node, element)
	}
	return node
}

func (b *builder) geometricallyVisible(element *dom.VElement) bool {
	box := dom.GetBox(element)
	return box.Visible && box.W > 0 && box.H > 0
}

func (b *builder) applyStateAttributes(node *AriaNode, element *dom.VElement, role string) {
	if checked := dom.GetAriaChecked(element, role); checked != nil {
		node.Checked = triFromDomValue(checked)
	}
	if disabled := dom.GetAriaDisabled(element, role); disabled != nil {
		node.Disabled = disabled
	}
	if expanded := dom.GetAriaExpanded(element, role); expanded != nil {
		node.Expanded = expanded
	}
	if level := dom.GetAriaLevel(element, role); level > 0 {
		node.Level = level
	}
	if pressed := dom.GetAriaPressed(element, role); pressed != nil {
		node.Pressed = triFromDomValue(pressed)
	}
	if selected := dom.GetAriaSelected(element, role); selected != nil {
		node.Selected = selected
	}
}

func triFromDomValue(v any) *TriState {
	switch x := v.(type) {
	case string:
		t := TriState(x)
		return &t
	case bool:
		t := TriFalse
		if x {
			t = TriTrue
		}
		return &t
	default:
		return nil
	}
}

// assignRef mints or reuses a ref id for element (spec §4.1 "Ref
// assignment"): the cached {role,name,ref} triple is reused verbatim when
// role and name are unchanged from the last build, otherwise a fresh ref
// is minted from the engine's monotonic counter and the cache overwritten.
func (b *builder) assignRef(node *AriaNode, element *dom.VElement) {
	if cache := element.RefCache(); cache != nil && cache.Role == node.Role && cache.Name == node.Name {
		node.Ref = cache.Ref
	} else {
		ref := fmt.Sprintf("%se%d", b.opts.RefPrefix, b.engine.nextRef())
		element.SetRefCache(&dom.AriaRefCache{Role: node.Role, Name: node.Name, Ref: ref})
		node.Ref = ref
	}
	b.elements[node.Ref] = element
}

func isTextboxLikeInput(tag string, element *dom.VElement) bool {
	if tag != "input" && tag != "textarea" {
		return false
	}
	inputType := strings.ToLower(element.GetAttribute("type"))
	if inputType == "checkbox" || inputType == "radio" {
		return false
	}
	if tag == "input" && inputType == "file" {
		return dom.GetGlobalOptions().InputFileRoleTextbox
	}
	return true
}

func (b *builder) visitText(text *dom.VText, parent *AriaNode) {
	if parent.Role == "textbox" {
		return
	}
	parent.Children = append(parent.Children, text.TextContent)
}

// visitChildrenOf walks element's rendered children in builder order
// (spec §4.1 step 3): ::before pseudo-content, natural/shadow content,
// aria-owns children, ::after pseudo-content.
func (b *builder) visitChildrenOf(element *dom.VElement, parentAria *AriaNode, doc *dom.VDocument) {
	if before := dom.GetCSSContent(element, "before"); before != "" {
		parentAria.Children = append(parentAria.Children, before)
	}

	if element.ShadowRoot == nil {
		for _, child := range element.Children {
			b.visitWithSpacer(child, parentAria, doc)
		}
	} else {
		for _, child := range element.ShadowRoot.Children {
			b.visitShadowChild(child, parentAria, doc, element)
		}
	}

	for _, owned := range dom.ResolveAriaOwns(element, doc) {
		if b.visited[owned] {
			continue
		}
		b.visitWithSpacer(owned, parentAria, doc)
	}

	if after := dom.GetCSSContent(element, "after"); after != "" {
		parentAria.Children = append(parentAria.Children, after)
	}
}

// visitShadowChild resolves a <slot> encountered inside host's shadow
// root to its assigned light-DOM nodes (or the slot's own fallback
// content when nothing is assigned), otherwise visits node directly.
func (b *builder) visitShadowChild(node dom.VNode, parentAria *AriaNode, doc *dom.VDocument, host *dom.VElement) {
	if element, ok := dom.AsVElement(node); ok && dom.IsSlot(element) {
		assigned := dom.AssignedNodes(host, element.GetAttribute("name"))
		if len(assigned) > 0 {
			for _, a := range assigned {
				b.visitWithSpacer(a, parentAria, doc)
			}
			return
		}
		for _, fallback := range element.Children {
			b.visitWithSpacer(fallback, parentAria, doc)
		}
		return
	}
	b.visitWithSpacer(node, parentAria, doc)
}

// visitWithSpacer inserts a single-space token around any element whose
// computed display is not inline (or which is <br>), so text
// concatenation sees a word boundary between block-level siblings.
func (b *builder) visitWithSpacer(node dom.VNode, parentAria *AriaNode, doc *dom.VDocument) {
	element, isElement := dom.AsVElement(node)
	needsSpacer := isElement && !dom.IsInlineDisplay(element)

	if needsSpacer {
		parentAria.Children = append(parentAria.Children, " ")
	}
	b.visit(node, parentAria, doc)
	if needsSpacer {
		parentAria.Children = append(parentAria.Children, " ")
	}
}
