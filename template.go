package ariasnap

import "regexp"

// ContainerMode is the child-list comparison policy on a role template.
type ContainerMode string

const (
	// ContainerContain is the default: template children must appear as
	// an in-order subsequence of the node's children.
	ContainerContain ContainerMode = "contain"
	// ContainerEqual requires the same length and pairwise matches.
	ContainerEqual ContainerMode = "equal"
	// ContainerDeepEqual is ContainerEqual propagated recursively through
	// the whole subtree.
	ContainerDeepEqual ContainerMode = "deep-equal"
)

// StringOrRegex is a template scalar that is either matched literally or
// as an unanchored regular expression (spec's RegexPattern).
type StringOrRegex struct {
	Literal string
	Regex   *regexp.Regexp
}

// Lit builds a literal StringOrRegex.
func Lit(s string) StringOrRegex {
	return StringOrRegex{Literal: s}
}

// Rx builds a regex StringOrRegex. Panics if pattern fails to compile — an
// invalid pattern is a template-authoring error, rejected at parse time,
// not a matcher runtime concern (spec §7).
func Rx(pattern string) StringOrRegex {
	return StringOrRegex{Regex: regexp.MustCompile(pattern)}
}

// IsZero reports whether the scalar carries neither a literal nor a regex
// (an absent/optional template field).
func (s StringOrRegex) IsZero() bool {
	return s.Regex == nil && s.Literal == ""
}

func (s StringOrRegex) String() string {
	if s.Regex != nil {
		return "/" + s.Regex.String() + "/"
	}
	return s.Literal
}

// TemplateKind tags a TemplateNode's variant.
type TemplateKind int

const (
	TemplateText TemplateKind = iota
	TemplateRole
)

// TemplateNode is the matcher's input: a tagged union of a text-child
// expectation and a role-node expectation (spec §3.3).
type TemplateNode struct {
	Kind TemplateKind

	// Valid when Kind == TemplateText.
	Text StringOrRegex

	// Valid when Kind == TemplateRole. Role == RoleFragment acts as a
	// wildcard: matches any node by role alone.
	Role          string
	Name          *StringOrRegex
	PropsURL      *StringOrRegex
	Checked       *TriState
	Disabled      *bool
	Expanded      *bool
	Level         *int
	Pressed       *TriState
	Selected      *bool
	ContainerMode ContainerMode
	Children      []*TemplateNode

	LineNumber int
}

// containerMode returns the node's effective container mode, defaulting
// to contain when unset.
func (t *TemplateNode) containerMode() ContainerMode {
	if t.ContainerMode == "" {
		return ContainerContain
	}
	return t.ContainerMode
}
