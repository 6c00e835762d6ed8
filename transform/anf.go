// Package transform implements normal-form passes over the expression IR:
// conversion to administrative normal form, conversion to graph normal form,
// common-subexpression sharing, and well-formedness checking.
package transform

import (
	"github.com/anform/anform/builder"
	"github.com/anform/anform/expr"
)

// ToANF converts n to administrative normal form: every non-atomic
// sub-expression is named by a let binding before use, in post-DFS order.
// A node shared between several use sites is bound exactly once; existing
// lets are absorbed into the produced chain (their variables are renamed to
// fresh ones). Each branch of a conditional is normalized into its own
// nested scope, so bindings needed only under the branch stay under it.
func ToANF(n expr.Node) expr.Node {
	return builder.With(func(seq *builder.LetSeq) expr.Node {
		return normalize(seq, n, make(map[expr.Node]expr.Node))
	})
}

// normalize returns an atom (variable or free variable) standing for n,
// pushing bindings for n's non-atomic sub-expressions into seq. memo maps
// already-normalized nodes, and let-bound variables, to their atoms.
func normalize(seq *builder.LetSeq, n expr.Node, memo map[expr.Node]expr.Node) expr.Node {
	if res, ok := memo[n]; ok {
		return res
	}
	var res expr.Node
	switch t := n.(type) {
	case *expr.Var:
		// free variable, kept as is
		res = t
	case *expr.Const:
		res = seq.Push(t)
	case *expr.Call:
		args := make([]expr.Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = normalize(seq, a, memo)
		}
		res = seq.Push(&expr.Call{Op: t.Op, Args: args})
	case *expr.Let:
		memo[t.Var] = normalize(seq, t.Value, memo)
		res = normalize(seq, t.Body, memo)
	case *expr.Cond:
		c := normalize(seq, t.If, memo)
		res = seq.Push(&expr.Cond{
			If:   c,
			Then: normalizeScope(t.Then, memo),
			Else: normalizeScope(t.Else, memo),
		})
	}
	memo[n] = res
	return res
}

// normalizeScope opens a nested binding sequence for a conditional branch.
// The branch works on a copy of the memo table: atoms it introduces are
// let-bound inside the branch and must not leak to the enclosing sequence.
func normalizeScope(n expr.Node, memo map[expr.Node]expr.Node) expr.Node {
	inner := make(map[expr.Node]expr.Node, len(memo))
	for k, v := range memo {
		inner[k] = v
	}
	return builder.With(func(seq *builder.LetSeq) expr.Node {
		return normalize(seq, n, inner)
	})
}
