package transform

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/anform/anform/expr"
)

// Check verifies that n is well formed: no variable is let-bound twice, and
// no let-bound variable is used outside the body of its let. Variables never
// bound anywhere are treated as free inputs and are not reported. All
// violations are collected into the returned error.
func Check(n expr.Node) error {
	bound := make(map[*expr.Var]bool)
	var err error

	expr.PostOrder(n, func(m expr.Node) {
		if l, ok := m.(*expr.Let); ok {
			if bound[l.Var] {
				err = multierr.Append(err, fmt.Errorf("variable %q bound twice", l.Var.Name))
			}
			bound[l.Var] = true
		}
	})

	// a use outside the let's body has no enclosing binder for its variable,
	// so the variable stays free all the way up to the root
	for v := range freeSet(n, make(map[expr.Node]map[*expr.Var]bool)) {
		if bound[v] {
			err = multierr.Append(err, fmt.Errorf("variable %q used outside the scope of its binding", v.Name))
		}
	}

	return err
}

// freeSet computes the free variables of n bottom-up, memoized by node
// identity so a shared node is computed once.
func freeSet(n expr.Node, memo map[expr.Node]map[*expr.Var]bool) map[*expr.Var]bool {
	if fv, ok := memo[n]; ok {
		return fv
	}
	var fv map[*expr.Var]bool
	switch t := n.(type) {
	case *expr.Var:
		fv = map[*expr.Var]bool{t: true}
	case *expr.Const:
	case *expr.Call:
		for _, a := range t.Args {
			fv = mergeFree(fv, freeSet(a, memo))
		}
	case *expr.Cond:
		fv = mergeFree(fv, freeSet(t.If, memo))
		fv = mergeFree(fv, freeSet(t.Then, memo))
		fv = mergeFree(fv, freeSet(t.Else, memo))
	case *expr.Let:
		fv = mergeFree(fv, freeSet(t.Value, memo))
		for v := range freeSet(t.Body, memo) {
			if v == t.Var {
				continue
			}
			if fv == nil {
				fv = make(map[*expr.Var]bool)
			}
			fv[v] = true
		}
	}
	memo[n] = fv
	return fv
}

// mergeFree adds src into dst, allocating dst on first use. Memoized sets are
// only ever read from, never returned as dst.
func mergeFree(dst, src map[*expr.Var]bool) map[*expr.Var]bool {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[*expr.Var]bool, len(src))
	}
	for v := range src {
		dst[v] = true
	}
	return dst
}

// FreeVars returns the variables used in n without an enclosing let binding,
// in order of first use. Shared nodes are visited once; for a well-formed
// tree (see Check) the result does not depend on which use site comes first.
func FreeVars(n expr.Node) []*expr.Var {
	var free []*expr.Var
	seen := make(map[*expr.Var]bool)
	scope := make(map[*expr.Var]bool)
	visited := make(map[expr.Node]bool)

	var walk func(expr.Node)
	walk = func(m expr.Node) {
		if visited[m] {
			return
		}
		visited[m] = true
		switch t := m.(type) {
		case *expr.Var:
			if !scope[t] && !seen[t] {
				seen[t] = true
				free = append(free, t)
			}
		case *expr.Const:
		case *expr.Call:
			for _, a := range t.Args {
				walk(a)
			}
		case *expr.Cond:
			walk(t.If)
			walk(t.Then)
			walk(t.Else)
		case *expr.Let:
			walk(t.Value)
			shadowed := scope[t.Var]
			scope[t.Var] = true
			walk(t.Body)
			if !shadowed {
				delete(scope, t.Var)
			}
		}
	}
	walk(n)

	return free
}
