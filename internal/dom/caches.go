package dom

// Caches memoizes per-element role/name lookups across a single build, the
// way a real DomBridge would cache layout-dependent computations (spec §5
// "bracketed access"). It is owned by the caller of BeginAriaCaches and
// must be released with End, including on a panicking build.
type Caches struct {
	roles map[*VElement]string
	names map[*VElement]string
	ended bool
}

// BeginAriaCaches acquires a fresh cache scope. Callers must defer End().
func BeginAriaCaches() *Caches {
	return &Caches{
		roles: make(map[*VElement]string),
		names: make(map[*VElement]string),
	}
}

// End releases the cache scope. Calling End more than once is a no-op.
func (c *Caches) End() {
	if c == nil || c.ended {
		return
	}
	c.ended = true
	c.roles = nil
	c.names = nil
}

// Role returns the memoized role for element, computing and storing it on
// first access. forAI must be consistent for the lifetime of a cache scope
// (one per build), since the cache key doesn't include it.
func (c *Caches) Role(element *VElement, forAI bool) string {
	if c == nil || c.ended {
		return GetAriaRole(element, forAI)
	}
	if role, ok := c.roles[element]; ok {
		return role
	}
	role := GetAriaRole(element, forAI)
	c.roles[element] = role
	return role
}

// Name returns the memoized accessible name for element, computing and
// storing it on first access.
func (c *Caches) Name(element *VElement, includeHidden bool) string {
	if c == nil || c.ended {
		return GetElementAccessibleName(element, includeHidden)
	}
	if name, ok := c.names[element]; ok {
		return name
	}
	name := GetElementAccessibleName(element, includeHidden)
	c.names[element] = name
	return name
}

// GlobalOptions mirrors the DomBridge-wide knobs a real accessibility
// library exposes (spec §6 `getGlobalOptions`).
type GlobalOptions struct {
	// InputFileRoleTextbox, when true, treats <input type="file"> like any
	// other textbox for the purposes of taking the field value as text
	// content (spec §4.1 step: "file is also excluded from special
	// handling").
	InputFileRoleTextbox bool
}

var globalOptions = GlobalOptions{}

// GetGlobalOptions returns the process-wide DomBridge options.
func GetGlobalOptions() GlobalOptions {
	return globalOptions
}

// SetGlobalOptions overwrites the process-wide DomBridge options; tests use
// this to exercise the inputFileRoleTextbox toggle.
func SetGlobalOptions(opts GlobalOptions) {
	globalOptions = opts
}
