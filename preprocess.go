package ariasnap

import (
	"strings"

	"github.com/mackee/ariasnap/internal/dom"
)

// nonRenderingTags lists elements that never contribute an accessibility
// node or text content, the way the teacher's preprocess.go stripped
// <script>/<style>/comments before content scoring. Here the same idea
// runs as the builder's first filter, before role/name computation.
var nonRenderingTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// shouldPruneBeforeVisit reports whether element must be skipped (and its
// subtree with it) before any role/name work happens.
func shouldPruneBeforeVisit(element *dom.VElement) bool {
	if element == nil {
		return true
	}
	return nonRenderingTags[strings.ToLower(element.TagName)]
}
