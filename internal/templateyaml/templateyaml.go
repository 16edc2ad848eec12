// Package templateyaml loads *.aria.yaml template fixtures into
// ariasnap.TemplateNode trees. It is deliberately minimal: the matching
// engine only consumes the TemplateNode schema, never this parser, so the
// grammar here covers what renderAriaTree emits outside forAI mode (the
// same "- role \"name\" [state]" sequence grammar) rather than a general
// YAML authoring format. The [ref=...] and [cursor=...] brackets of a
// forAI rendering are rejected as unknown state brackets.
package templateyaml

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mackee/ariasnap"
)

// Parse decodes YAML template source into a TemplateNode tree rooted at a
// synthetic fragment, mirroring renderAriaTree's own fragment-root
// convention so a rendered snapshot can be fed straight back in.
func Parse(source string) (*ariasnap.TemplateNode, error) {
	var raw []any
	if err := yaml.Unmarshal([]byte(source), &raw); err != nil {
		return nil, fmt.Errorf("templateyaml: decode: %w", err)
	}

	root := &ariasnap.TemplateNode{Kind: ariasnap.TemplateRole, Role: ariasnap.RoleFragment}
	children, err := parseSequence(raw, root)
	if err != nil {
		return nil, err
	}
	root.Children = children
	return root, nil
}

func parseSequence(items []any, owner *ariasnap.TemplateNode) ([]*ariasnap.TemplateNode, error) {
	var children []*ariasnap.TemplateNode
	for _, item := range items {
		switch v := item.(type) {
		case string:
			node, err := parseLeaf(v)
			if err != nil {
				return nil, err
			}
			children = append(children, node)
		case map[string]any:
			for key, value := range v {
				node, isDirective, err := parseKeyed(key, value, owner)
				if err != nil {
					return nil, err
				}
				if isDirective {
					continue
				}
				children = append(children, node)
			}
		default:
			return nil, fmt.Errorf("templateyaml: unsupported sequence item %T", item)
		}
	}
	return children, nil
}

func parseLeaf(line string) (*ariasnap.TemplateNode, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, fmt.Errorf("templateyaml: empty sequence item")
	}
	return parseKeyLine(trimmed)
}

func parseKeyed(key string, value any, owner *ariasnap.TemplateNode) (*ariasnap.TemplateNode, bool, error) {
	if strings.HasPrefix(key, "/") {
		return nil, true, applyDirective(owner, key, value)
	}
	if key == "text" {
		text, ok := value.(string)
		if !ok {
			return nil, false, fmt.Errorf("templateyaml: text value must be a scalar")
		}
		return &ariasnap.TemplateNode{Kind: ariasnap.TemplateText, Text: decodeScalarOrRegex(text)}, false, nil
	}

	node, err := parseKeyLine(key)
	if err != nil {
		return nil, false, err
	}

	switch v := value.(type) {
	case nil:
		// no children
	case string:
		node.Children = []*ariasnap.TemplateNode{{Kind: ariasnap.TemplateText, Text: decodeScalarOrRegex(v)}}
	case []any:
		children, err := parseSequence(v, node)
		if err != nil {
			return nil, false, err
		}
		node.Children = children
	default:
		return nil, false, fmt.Errorf("templateyaml: unsupported children value %T for %q", value, key)
	}
	return node, false, nil
}

func applyDirective(owner *ariasnap.TemplateNode, key string, value any) error {
	if owner == nil {
		return fmt.Errorf("templateyaml: directive %q has no enclosing node", key)
	}
	str, _ := value.(string)

	switch key {
	case "/children":
		switch str {
		case "contain":
			owner.ContainerMode = ariasnap.ContainerContain
		case "equal":
			owner.ContainerMode = ariasnap.ContainerEqual
		case "deep-equal":
			owner.ContainerMode = ariasnap.ContainerDeepEqual
		default:
			return fmt.Errorf("templateyaml: unknown /children mode %q", str)
		}
		return nil
	case "/url":
		scalar := decodeScalarOrRegex(str)
		owner.PropsURL = &scalar
		return nil
	default:
		return fmt.Errorf("templateyaml: unknown directive %q", key)
	}
}

// trailingBracket peels one "[name]" or "[name=value]" group off the end
// of a key line at a time, so the remaining role/name text is free to
// contain its own brackets or punctuation.
var trailingBracket = regexp.MustCompile(`\s*\[([a-zA-Z]+)(?:=([a-zA-Z0-9]+))?\]$`)

func parseKeyLine(line string) (*ariasnap.TemplateNode, error) {
	rest := strings.TrimSpace(line)

	type stateToken struct{ name, value string }
	var states []stateToken
	for {
		loc := trailingBracket.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		name := rest[loc[2]:loc[3]]
		value := ""
		if loc[4] >= 0 {
			value = rest[loc[4]:loc[5]]
		}
		states = append(states, stateToken{name, value})
		rest = rest[:loc[0]]
	}

	role, nameToken := splitRoleAndName(rest)
	if role == "" {
		return nil, fmt.Errorf("templateyaml: missing role in %q", line)
	}
	node := &ariasnap.TemplateNode{Kind: ariasnap.TemplateRole, Role: role}

	if nameToken != "" {
		scalar, err := decodeNameToken(nameToken)
		if err != nil {
			return nil, err
		}
		node.Name = &scalar
	}

	for _, st := range states {
		if err := applyStateToken(node, st.name, st.value); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func splitRoleAndName(s string) (role, name string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

func decodeNameToken(token string) (ariasnap.StringOrRegex, error) {
	if len(token) >= 2 && strings.HasPrefix(token, "/") && strings.HasSuffix(token, "/") {
		return ariasnap.Rx(token[1 : len(token)-1]), nil
	}
	var literal string
	if err := json.Unmarshal([]byte(token), &literal); err != nil {
		return ariasnap.StringOrRegex{}, fmt.Errorf("templateyaml: invalid name token %q: %w", token, err)
	}
	return ariasnap.Lit(literal), nil
}

func decodeScalarOrRegex(s string) ariasnap.StringOrRegex {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		return ariasnap.Rx(s[1 : len(s)-1])
	}
	var literal string
	if err := json.Unmarshal([]byte(s), &literal); err == nil {
		return ariasnap.Lit(literal)
	}
	return ariasnap.Lit(s)
}

func applyStateToken(node *ariasnap.TemplateNode, name, value string) error {
	switch name {
	case "checked":
		t := decodeTriState(value)
		node.Checked = &t
	case "disabled":
		b := true
		node.Disabled = &b
	case "expanded":
		b := true
		node.Expanded = &b
	case "level":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("templateyaml: invalid level %q: %w", value, err)
		}
		node.Level = &n
	case "pressed":
		t := decodeTriState(value)
		node.Pressed = &t
	case "selected":
		b := true
		node.Selected = &b
	default:
		return fmt.Errorf("templateyaml: unknown state bracket %q", name)
	}
	return nil
}

func decodeTriState(value string) ariasnap.TriState {
	switch value {
	case "mixed":
		return ariasnap.TriMixed
	case "false":
		return ariasnap.TriFalse
	default:
		return ariasnap.TriTrue
	}
}
