package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anform/anform/expr"
)

func TestEliminateCommonSubexprSharesIdenticalSubtrees(t *testing.T) {
	a := expr.NewVar("a")
	left := expr.Add(a, a)
	right := expr.Add(a, a) // distinct node, same structure
	tree := expr.Mul(left, right)

	shared := EliminateCommonSubexpr(tree)
	mul := shared.(*expr.Call)
	require.Same(t, mul.Args[0], mul.Args[1])

	require.Equal(t, mustEval(t, tree, varEnv(a, 3)), mustEval(t, shared, varEnv(a, 3)))
}

func TestEliminateCommonSubexprDedupesEqualConstants(t *testing.T) {
	tree := expr.Add(c(5), c(5))
	shared := EliminateCommonSubexpr(tree).(*expr.Call)
	require.Same(t, shared.Args[0], shared.Args[1])
}

func TestEliminateCommonSubexprKeepsDistinctShapes(t *testing.T) {
	a := expr.NewVar("a")
	tree := expr.Mul(expr.Add(a, a), expr.Sub(a, a))
	shared := EliminateCommonSubexpr(tree).(*expr.Call)
	require.NotSame(t, shared.Args[0], shared.Args[1])
}

func TestEliminateCommonSubexprThenANFBindsOnce(t *testing.T) {
	a := expr.NewVar("a")
	tree := expr.Mul(expr.Add(a, a), expr.Add(a, a))

	anf := ToANF(EliminateCommonSubexpr(tree))
	require.NoError(t, Check(anf))

	adds := 0
	expr.PostOrder(anf, func(n expr.Node) {
		if cl, ok := n.(*expr.Call); ok && cl.Op == expr.OpAdd {
			adds++
		}
	})
	require.Equal(t, 1, adds)

	require.Equal(t, f31.FromInterface(36), mustEval(t, anf, varEnv(a, 3)))
}
