package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anform/anform/expr"
)

func TestToGraphNormalFormImplicitShare(t *testing.T) {
	x := expr.NewVar("x")
	y := expr.NewVar("y")
	z := expr.NewVar("z")
	body := expr.NewLet(z, expr.Add(y, y), expr.Add(z, z))
	body = expr.NewLet(y, expr.Add(x, x), body)
	tree := expr.NewLet(x, c(1), body)

	require.True(t, UsesLet(tree))
	g := ToGraphNormalForm(tree)
	require.False(t, UsesLet(g))

	require.Equal(t, f31.FromInterface(8), mustEval(t, tree, nil))
	require.Equal(t, f31.FromInterface(8), mustEval(t, g, nil))

	// sharing is preserved: three distinct additions, not seven
	adds := 0
	expr.PostOrder(g, func(n expr.Node) {
		if cl, ok := n.(*expr.Call); ok && cl.Op == expr.OpAdd {
			adds++
		}
	})
	require.Equal(t, 3, adds)
}

func TestToGraphNormalFormKeepsFreeVariables(t *testing.T) {
	a := expr.NewVar("a")
	g := ToGraphNormalForm(expr.Add(a, c(1)))
	call := g.(*expr.Call)
	require.Same(t, expr.Node(a), call.Args[0])
}

func TestToGraphNormalFormLeavesLetFreeTreesAlone(t *testing.T) {
	tree := expr.Add(c(1), expr.Mul(c(2), c(3)))
	require.Same(t, expr.Node(tree), ToGraphNormalForm(tree))
}

func TestRoundTrip(t *testing.T) {
	x := expr.NewVar("x")
	y := expr.NewVar("y")
	z := expr.NewVar("z")
	body := expr.NewLet(z, expr.Add(y, y), expr.Add(z, z))
	body = expr.NewLet(y, expr.Add(x, x), body)
	tree := expr.NewLet(x, c(1), body)

	g := ToGraphNormalForm(tree)
	h := ToANF(g)

	require.True(t, UsesLet(tree))
	require.False(t, UsesLet(g))
	require.True(t, UsesLet(h))
	require.NoError(t, Check(h))

	require.Equal(t, f31.FromInterface(8), mustEval(t, tree, nil))
	require.Equal(t, f31.FromInterface(8), mustEval(t, g, nil))
	require.Equal(t, f31.FromInterface(8), mustEval(t, h, nil))
}
