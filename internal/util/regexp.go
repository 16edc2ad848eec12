// Package util holds the small string-processing helpers shared by the
// tree builder, matcher and renderer: whitespace normalization, longest
// common substring similarity, YAML scalar escaping and the numeric
// patterns the renderer falls back to for dynamic content.
package util

import (
	"regexp"
	"strconv"
	"strings"
)

// Normalize collapses runs of whitespace into a single space.
var Normalize = regexp.MustCompile(`\s{2,}`)

// NormalizeWhiteSpace trims and collapses whitespace in s.
func NormalizeWhiteSpace(s string) string {
	return strings.TrimSpace(Normalize.ReplaceAllString(s, " "))
}

// EscapeRegExp escapes s so it can be embedded literally inside a regular
// expression pattern.
func EscapeRegExp(s string) string {
	return regexp.QuoteMeta(s)
}

// LongestCommonSubstring returns the length of the longest contiguous
// substring shared by a and b, using the classic O(len(a)*len(b)) dynamic
// programming table.
func LongestCommonSubstring(a, b string) int {
	return len([]rune(LongestCommonSubstringText(a, b)))
}

// LongestCommonSubstringText returns the longest contiguous substring
// shared by a and b itself (not just its length), so callers can strip it
// out of one of the operands. Ties go to the first (lowest-index) match in
// a, mirroring the DP table's scan order.
func LongestCommonSubstringText(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return ""
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	best := 0
	bestEnd := 0

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
					bestEnd = i
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	if best == 0 {
		return ""
	}
	return string(ra[bestEnd-best : bestEnd])
}

// StringSimilarity scores how much of the shorter string's content is
// covered by the longest run it shares with the other, normalized to
// [0, 1]. Two empty strings are considered identical.
func StringSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	shorter := la
	if lb < shorter {
		shorter = lb
	}
	lcs := LongestCommonSubstring(a, b)
	return float64(lcs) / float64(shorter)
}

// yamlPlainSafe matches a scalar that never needs quoting when emitted as
// a bare YAML key or value.
var yamlPlainSafe = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_ .\-/]*$`)

// yamlReservedWords are scalars that are plain-safe by yamlPlainSafe but
// would be re-interpreted as a different type by a YAML parser.
var yamlReservedWords = map[string]bool{
	"true": true, "false": true, "null": true, "~": true,
	"yes": true, "no": true, "on": true, "off": true,
}

// YamlEscapeValueIfNeeded double-quotes s (escaping backslashes and
// quotes) unless it is already safe to emit as a bare YAML scalar.
func YamlEscapeValueIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	if yamlPlainSafe.MatchString(s) && !yamlReservedWords[strings.ToLower(s)] {
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return s
		}
	}
	return quoteYaml(s)
}

// YamlEscapeKeyIfNeeded escapes a mapping key the same way as a value; keys
// follow the same bare-scalar rules in block mapping syntax.
func YamlEscapeKeyIfNeeded(s string) string {
	return YamlEscapeValueIfNeeded(s)
}

func quoteYaml(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Dynamic-content regex building blocks, used by the renderer's regex mode
// to generalize numbers that are unlikely to stay stable across runs
// (timestamps, byte sizes, prices, durations) into a pattern instead of a
// literal match.
var (
	// Integer matches an unsigned run of two or more digits, long enough
	// to be a count or an id rather than a small structural number.
	Integer = regexp.MustCompile(`\d{2,}`)

	// Decimal matches a floating point number such as "3.14" or "-0.5".
	Decimal = regexp.MustCompile(`-?\d+\.\d+`)

	// Duration matches clock-like spans: "12:34", "1:02:03".
	Duration = regexp.MustCompile(`\d{1,2}(:\d{2}){1,2}`)

	// ByteSize matches a number followed by a storage unit: "4.2 MB", "10GB".
	ByteSize = regexp.MustCompile(`(?i)\d+(\.\d+)?\s?(b|kb|mb|gb|tb)\b`)
)

// ContainsDynamicContent reports whether s has any substring the renderer
// would generalize into a regex alternative in regex mode.
func ContainsDynamicContent(s string) bool {
	return Integer.MatchString(s) || Decimal.MatchString(s) ||
		Duration.MatchString(s) || ByteSize.MatchString(s)
}

// ToBestGuessPattern rewrites the dynamic substrings of s into regex
// alternatives while leaving the rest of the string escaped literally,
// producing the body of a `/.../ ` pattern for the renderer's regex mode.
func ToBestGuessPattern(s string) string {
	replacements := []*regexp.Regexp{ByteSize, Duration, Decimal, Integer}

	type span struct{ start, end int }
	var spans []span
	for _, re := range replacements {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			spans = append(spans, span{loc[0], loc[1]})
		}
	}
	if len(spans) == 0 {
		return EscapeRegExp(s)
	}

	// Sort and merge overlapping spans so earlier patterns in the list take
	// priority over later, narrower ones.
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[j].start < spans[i].start {
				spans[i], spans[j] = spans[j], spans[i]
			}
		}
	}
	merged := spans[:0:0]
	for _, sp := range spans {
		if len(merged) > 0 && sp.start < merged[len(merged)-1].end {
			continue
		}
		merged = append(merged, sp)
	}

	var b strings.Builder
	last := 0
	for _, sp := range merged {
		b.WriteString(EscapeRegExp(s[last:sp.start]))
		b.WriteString(`[\d.:a-zA-Z\s]+`)
		last = sp.end
	}
	b.WriteString(EscapeRegExp(s[last:]))
	return b.String()
}
