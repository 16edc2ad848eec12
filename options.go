package ariasnap

import (
	"fmt"

	"github.com/rs/zerolog"
)

// BuildOptions configures a single Tree Builder invocation, mirroring the
// teacher's ReadabilityOptions/DefaultOptions pattern: a plain struct with
// a constructor supplying sane defaults, no package-level mutable state.
type BuildOptions struct {
	// ForAI enables the geometric visibility fallback, the generic default
	// role, and ref assignment/caching.
	ForAI bool
	// RefPrefix is prepended to minted ref ids ("e1" becomes "<prefix>e1").
	RefPrefix string
	// InputFileRoleTextbox mirrors the DomBridge-wide option of the same
	// name (internal/dom.GlobalOptions). Build copies it into that
	// process-wide option at the start of every build, so each build runs
	// with its own value and the last build's value stays in effect.
	InputFileRoleTextbox bool
	// Logger receives Debug/Trace events for the build pass. A nil Logger
	// is treated as zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultBuildOptions returns the zero-value-safe defaults: not forAI, no
// ref prefix, a no-op logger.
func DefaultBuildOptions() BuildOptions {
	nop := zerolog.Nop()
	return BuildOptions{Logger: &nop}
}

func (o BuildOptions) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

// RenderMode selects between literal and regex-generalized rendering.
type RenderMode string

const (
	RenderModeRaw   RenderMode = "raw"
	RenderModeRegex RenderMode = "regex"
)

// RenderOptions configures renderAriaTree.
type RenderOptions struct {
	Mode  RenderMode
	ForAI bool
}

// MatchOptions configures matchesAriaTree/getAllByAria. The matcher itself
// never fails on a DOM/template mismatch (§7: mismatch is a return value),
// so this only carries observability knobs.
type MatchOptions struct {
	Logger *zerolog.Logger
}

func (o MatchOptions) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

// AssertionError marks a DomBridge/template contract violation: a
// programming error, never a normal mismatch. Callers that want to
// recover from a builder panic should check errors.As against this type.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return "ariasnap: assertion failed: " + e.Msg
}

func assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(&AssertionError{Msg: fmt.Sprintf(format, args...)})
}
