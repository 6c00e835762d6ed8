package transform

import "github.com/anform/anform/expr"

// ToGraphNormalForm eliminates every let in n by replacing each use of a
// bound variable with its bound value. The bound value appears as a shared
// node at every former use site, not as a copy, so the tree does not grow.
// The input must be well formed (see Check): a variable bound twice would
// make the substitution ambiguous.
func ToGraphNormalForm(n expr.Node) expr.Node {
	return inline(n, make(map[*expr.Var]expr.Node), make(map[expr.Node]expr.Node))
}

func inline(n expr.Node, env map[*expr.Var]expr.Node, memo map[expr.Node]expr.Node) expr.Node {
	if res, ok := memo[n]; ok {
		return res
	}
	var res expr.Node
	switch t := n.(type) {
	case *expr.Var:
		if def, ok := env[t]; ok {
			res = def
		} else {
			res = t
		}
	case *expr.Const:
		res = t
	case *expr.Call:
		args := make([]expr.Node, len(t.Args))
		changed := false
		for i, a := range t.Args {
			args[i] = inline(a, env, memo)
			changed = changed || args[i] != a
		}
		if changed {
			res = &expr.Call{Op: t.Op, Args: args}
		} else {
			res = t
		}
	case *expr.Cond:
		c := inline(t.If, env, memo)
		th := inline(t.Then, env, memo)
		el := inline(t.Else, env, memo)
		if c != t.If || th != t.Then || el != t.Else {
			res = &expr.Cond{If: c, Then: th, Else: el}
		} else {
			res = t
		}
	case *expr.Let:
		env[t.Var] = inline(t.Value, env, memo)
		res = inline(t.Body, env, memo)
	}
	memo[n] = res
	return res
}
