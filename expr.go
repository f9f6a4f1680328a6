package xlmortgage

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	placeholderOpen  = "${"
	placeholderClose = "}"
)

// programCache compiles placeholder expressions with expr-lang/expr and
// keeps the programs, since every schedule row renders the same templates.
type programCache struct {
	programs sync.Map // source → *vm.Program
}

func (pc *programCache) eval(src string, env map[string]any) (any, error) {
	if src == "" {
		return nil, nil
	}
	var program *vm.Program
	if p, ok := pc.programs.Load(src); ok {
		program = p.(*vm.Program)
	} else {
		compiled, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", src, err)
		}
		pc.programs.Store(src, compiled)
		program = compiled
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", src, err)
	}
	return out, nil
}

// Placeholder is one piece of a formula template: literal formula text, or
// the body of a ${...} placeholder when Expr is set.
type Placeholder struct {
	Expr bool
	Text string
}

// SplitTemplate cuts a formula template into literal text and ${...}
// placeholders. An unterminated placeholder is kept as literal text.
//
//	"H${prev}-E${row}" → "H", {prev}, "-E", {row}
func SplitTemplate(tmpl string) []Placeholder {
	var parts []Placeholder
	for tmpl != "" {
		before, rest, found := strings.Cut(tmpl, placeholderOpen)
		if !found {
			break
		}
		body, after, closed := strings.Cut(rest, placeholderClose)
		if !closed {
			break
		}
		if before != "" {
			parts = append(parts, Placeholder{Text: before})
		}
		parts = append(parts, Placeholder{Expr: true, Text: strings.TrimSpace(body)})
		tmpl = after
	}
	if tmpl != "" {
		parts = append(parts, Placeholder{Text: tmpl})
	}
	return parts
}
