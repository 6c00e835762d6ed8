package transform

import (
	"github.com/anform/anform/expr"
	"github.com/anform/anform/utils"
)

// EliminateCommonSubexpr rewrites structurally identical subtrees of n into
// a single shared node, so that a following ToANF binds each of them exactly
// once. The binding-sequence builder itself never deduplicates: the caller
// decides what is shared before pushing, and this pass is how a caller does
// that wholesale.
func EliminateCommonSubexpr(n expr.Node) expr.Node {
	s := &sharer{table: make(utils.Map), memo: make(map[expr.Node]expr.Node)}
	return s.rewrite(n)
}

type sharer struct {
	// table maps structural shape to the canonical node of that shape
	table utils.Map
	// memo short-circuits nodes already rewritten, by identity
	memo map[expr.Node]expr.Node
}

func (s *sharer) rewrite(n expr.Node) expr.Node {
	if res, ok := s.memo[n]; ok {
		return res
	}
	var res expr.Node
	switch t := n.(type) {
	case *expr.Var:
		res = t
	case *expr.Const:
		res = s.intern(t)
	case *expr.Call:
		args := make([]expr.Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = s.rewrite(a)
		}
		res = s.intern(&expr.Call{Op: t.Op, Args: args})
	case *expr.Cond:
		res = s.intern(&expr.Cond{
			If:   s.rewrite(t.If),
			Then: s.rewrite(t.Then),
			Else: s.rewrite(t.Else),
		})
	case *expr.Let:
		// lets bind unique variables and delimit scopes; never shared
		res = expr.NewLet(t.Var, s.rewrite(t.Value), s.rewrite(t.Body))
	}
	s.memo[n] = res
	return res
}

func (s *sharer) intern(n expr.Node) expr.Node {
	return s.table.Add(n, n).(expr.Node)
}
