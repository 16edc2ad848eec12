// Package dom provides a virtual DOM the ARIA snapshot engine walks without
// ever touching a real browser: elements, text nodes, shadow roots, slot
// assignment and the handful of computed-style/geometry fields the
// accessibility-tree builder needs.
package dom

// VNodeType represents the type of a virtual DOM node.
type VNodeType string

const (
	// ElementNode represents an HTML element node.
	ElementNode VNodeType = "element"
	// TextNode represents a text node.
	TextNode VNodeType = "text"
)

// VNode is the interface for all virtual DOM nodes.
type VNode interface {
	// Type returns the node type.
	Type() VNodeType
	// Parent returns the parent element of this node, or nil if it has no parent.
	Parent() *VElement
	// SetParent sets the parent element of this node.
	SetParent(parent *VElement)
}

// baseNode implements common functionality for all node types.
type baseNode struct {
	nodeType VNodeType
	parent   *VElement
}

func (n *baseNode) Type() VNodeType {
	return n.nodeType
}

func (n *baseNode) Parent() *VElement {
	return n.parent
}

func (n *baseNode) SetParent(parent *VElement) {
	n.parent = parent
}

// VText represents a text node in the virtual DOM.
type VText struct {
	baseNode
	TextContent string
}

// NewVText creates a new text node with the given text content.
func NewVText(textContent string) *VText {
	return &VText{
		baseNode:    baseNode{nodeType: TextNode},
		TextContent: textContent,
	}
}

// AriaRefCache is the per-element cache the ref-assignment pass consults so
// that repeated builds over an unchanged element keep handing out the same
// ref (spec §4.1 "Ref assignment", §8 "Ref stability").
type AriaRefCache struct {
	Role string
	Name string
	Ref  string
}

// ComputedStyle is the subset of CSSStyleDeclaration the engine consults.
type ComputedStyle struct {
	Display string
	Cursor  string
}

// Box is the bounding box + visibility + cursor snapshot the builder and
// renderer read through the DomBridge contract (spec §6 `box(el)`).
type Box struct {
	X, Y, W, H float64
	Visible    bool
	Cursor     string
}

// VElement represents an element node in the virtual DOM.
//
// Beyond the plain tree shape, VElement carries everything the ARIA-tree
// builder's DomBridge contract needs: shadow DOM, slot projection,
// aria-owns targets, pseudo-element content and the override hooks tests
// use to simulate layout and hit-testing without a real renderer.
type VElement struct {
	baseNode
	TagName    string
	Attributes map[string]string
	Children   []VNode

	// ShadowRoot, when non-nil, holds this element's shadow tree. A host
	// element's own Children are then "light DOM" only reachable through
	// <slot> projection inside the shadow tree.
	ShadowRoot *VElement

	// SlotAttr is this node's `slot` attribute: which named slot of its
	// shadow-hosting ancestor it is projected into ("" = default slot).
	SlotAttr string

	// PseudoBefore and PseudoAfter hold the `content` of this element's
	// ::before/::after pseudo-elements, as a DomBridge would report them.
	PseudoBefore string
	PseudoAfter  string

	// StyleOverride lets callers (mainly tests) set computed-style fields
	// directly instead of deriving them from the `style` attribute.
	StyleOverride *ComputedStyle

	// BoxOverride lets callers set the box/visibility/cursor snapshot
	// directly; when nil it is derived heuristically from attributes.
	BoxOverride *Box

	// PointerEventsOverride lets tests force the hit-testing result
	// (spec §3.1 `receivesPointerEvents`) instead of the default heuristic.
	PointerEventsOverride *bool

	// FieldValue is the current form-field value, as a DomBridge would
	// report it for <input>/<textarea> (spec §4.1 step on field values).
	FieldValue string

	ariaRefCache *AriaRefCache
}

// NewVElement creates a new element node with the given tag name.
func NewVElement(tagName string) *VElement {
	return &VElement{
		baseNode:   baseNode{nodeType: ElementNode},
		TagName:    tagName,
		Attributes: make(map[string]string),
		Children:   make([]VNode, 0),
	}
}

// ID returns the id attribute of this element, or an empty string if it has no id.
func (e *VElement) ID() string {
	return e.Attributes["id"]
}

// ClassName returns the class attribute of this element, or an empty string if it has no class.
func (e *VElement) ClassName() string {
	return e.Attributes["class"]
}

// AppendChild adds a child node to this element.
func (e *VElement) AppendChild(child VNode) {
	child.SetParent(e)
	e.Children = append(e.Children, child)
}

// AttachShadowRoot creates an (open) shadow root on this element and
// returns it, ready for children to be appended to it.
func (e *VElement) AttachShadowRoot() *VElement {
	root := NewVElement("#shadow-root")
	e.ShadowRoot = root
	return root
}

// SetAttribute sets an attribute on this element.
func (e *VElement) SetAttribute(name, value string) {
	e.Attributes[name] = value
}

// GetAttribute gets the value of an attribute on this element.
func (e *VElement) GetAttribute(name string) string {
	return e.Attributes[name]
}

// HasAttribute checks if this element has the specified attribute.
func (e *VElement) HasAttribute(name string) bool {
	_, ok := e.Attributes[name]
	return ok
}

// RefCache returns the cached {role,name,ref} triple from a previous build,
// or nil if this element has never been assigned a ref.
func (e *VElement) RefCache() *AriaRefCache {
	return e.ariaRefCache
}

// SetRefCache overwrites the cached {role,name,ref} triple.
func (e *VElement) SetRefCache(c *AriaRefCache) {
	e.ariaRefCache = c
}

// VDocument represents a virtual DOM document.
type VDocument struct {
	DocumentElement *VElement
	Body            *VElement
	BaseURI         string
	DocumentURI     string
}

// NewVDocument creates a new virtual DOM document with the given document element and body.
func NewVDocument(documentElement, body *VElement) *VDocument {
	return &VDocument{
		DocumentElement: documentElement,
		Body:            body,
	}
}

// GetElementByID searches the whole document for an element with the given
// id, as the builder needs when resolving `aria-owns` references.
func (d *VDocument) GetElementByID(id string) *VElement {
	if d == nil || d.DocumentElement == nil || id == "" {
		return nil
	}
	return findByID(d.DocumentElement, id)
}

func findByID(el *VElement, id string) *VElement {
	if el == nil {
		return nil
	}
	if el.ID() == id {
		return el
	}
	if el.ShadowRoot != nil {
		if found := findByID(el.ShadowRoot, id); found != nil {
			return found
		}
	}
	for _, child := range el.Children {
		if childElement, ok := AsVElement(child); ok {
			if found := findByID(childElement, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// IsVElement checks if a node is a VElement.
func IsVElement(node VNode) bool {
	return node != nil && node.Type() == ElementNode
}

// AsVElement attempts to convert a VNode to a VElement.
// Returns the VElement and true if successful, otherwise nil and false.
func AsVElement(node VNode) (*VElement, bool) {
	if IsVElement(node) {
		return node.(*VElement), true
	}
	return nil, false
}

// IsVText checks if a node is a VText.
func IsVText(node VNode) bool {
	return node != nil && node.Type() == TextNode
}

// AsVText attempts to convert a VNode to a VText.
// Returns the VText and true if successful, otherwise nil and false.
func AsVText(node VNode) (*VText, bool) {
	if IsVText(node) {
		return node.(*VText), true
	}
	return nil, false
}
