package xlmortgage

import (
	"fmt"
	"strings"
)

// Context holds the variables formula templates are rendered against.
// Fixed variables (sheet and cell addresses) live in data; per-row
// variables such as the payment index live in runVars.
type Context struct {
	data     map[string]any
	runVars  map[string]any
	programs *programCache

	// Cached merged map for expression evaluation.
	// Invalidated (set to nil) whenever runVars change.
	cachedMap map[string]any
}

// NewContext creates a new Context with the given data.
func NewContext(data map[string]any) *Context {
	if data == nil {
		data = make(map[string]any)
	}
	return &Context{
		data:     data,
		runVars:  make(map[string]any),
		programs: &programCache{},
	}
}

// GetVar returns a variable value. Checks runVars first, then data.
func (c *Context) GetVar(name string) any {
	if v, ok := c.runVars[name]; ok {
		return v
	}
	return c.data[name]
}

// PutVar sets a variable in the data map.
func (c *Context) PutVar(name string, value any) {
	c.data[name] = value
	c.cachedMap = nil
}

// ToMap returns a merged map of data and runVars. RunVars override data.
func (c *Context) ToMap() map[string]any {
	if c.cachedMap != nil {
		return c.cachedMap
	}
	m := make(map[string]any, len(c.data)+len(c.runVars))
	for k, v := range c.data {
		m[k] = v
	}
	for k, v := range c.runVars {
		m[k] = v
	}
	c.cachedMap = m
	return m
}

// Render expands every ${...} expression in the template and returns the text.
func (c *Context) Render(template string) (string, error) {
	var b strings.Builder
	for _, part := range SplitTemplate(template) {
		if !part.Expr {
			b.WriteString(part.Text)
			continue
		}
		val, err := c.programs.eval(part.Text, c.ToMap())
		if err != nil {
			return "", fmt.Errorf("render %q: %w", template, err)
		}
		if val != nil {
			fmt.Fprintf(&b, "%v", val)
		}
	}
	return b.String(), nil
}

func (c *Context) setRunVar(name string, value any) {
	c.runVars[name] = value
	c.cachedMap = nil
}

func (c *Context) removeRunVar(name string) {
	delete(c.runVars, name)
	c.cachedMap = nil
}

// RunVars manages scoped per-row variables with automatic save/restore.
// Use with defer: rv := NewRunVars(ctx); defer rv.Close()
type RunVars struct {
	ctx   *Context
	saved map[string]any
	had   map[string]bool
}

// NewRunVars creates a scope for per-row variables on ctx.
func NewRunVars(ctx *Context) *RunVars {
	return &RunVars{ctx: ctx, saved: make(map[string]any), had: make(map[string]bool)}
}

// Set sets a row variable, remembering any value it shadows.
func (rv *RunVars) Set(name string, value any) {
	if _, seen := rv.had[name]; !seen {
		old, ok := rv.ctx.runVars[name]
		rv.had[name] = ok
		rv.saved[name] = old
	}
	rv.ctx.setRunVar(name, value)
}

// Close restores the previous variable values. Designed for use with defer.
func (rv *RunVars) Close() {
	for name, had := range rv.had {
		if had {
			rv.ctx.setRunVar(name, rv.saved[name])
		} else {
			rv.ctx.removeRunVar(name)
		}
	}
}
