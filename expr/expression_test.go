package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anform/anform/field/m31"
)

var f31 = &m31.Field{}

func c(v int) *Const {
	return NewConst(f31.FromInterface(v))
}

func TestStructuralEquality(t *testing.T) {
	a := NewVar("a")
	b := NewVar("a") // same name, different variable

	require.True(t, a.EqualI(a))
	require.False(t, a.EqualI(b))

	x := Add(a, c(1))
	y := Add(a, c(1))
	require.True(t, x.EqualI(y))
	require.Equal(t, x.HashCode(), y.HashCode())

	require.False(t, x.EqualI(Sub(a, c(1))))
	require.False(t, x.EqualI(Add(b, c(1))))
	require.False(t, x.EqualI(c(1)))
}

func TestConstEquality(t *testing.T) {
	require.True(t, c(5).EqualI(c(5)))
	require.Equal(t, c(5).HashCode(), c(5).HashCode())
	require.False(t, c(5).EqualI(c(6)))
}

func TestNodeKindsHashDifferently(t *testing.T) {
	a := NewVar("a")
	cond := &Cond{If: a, Then: a, Else: a}
	let := NewLet(a, a, a)
	require.NotEqual(t, cond.HashCode(), let.HashCode())
}

func TestChildren(t *testing.T) {
	a := NewVar("a")
	call := Add(a, c(1))
	require.Equal(t, []Node{a, call.Args[1]}, Children(call))
	require.Nil(t, Children(a))

	let := NewLet(a, c(1), call)
	require.Equal(t, []Node{let.Value, let.Body}, Children(let))
}

func TestPostOrderVisitsSharedNodesOnce(t *testing.T) {
	a := NewVar("a")
	shared := Add(a, a)
	tree := Mul(shared, shared)

	var order []Node
	PostOrder(tree, func(n Node) { order = append(order, n) })
	require.Equal(t, []Node{a, shared, tree}, order)

	require.Equal(t, 3, CountNodes(tree))
	require.Equal(t, 0, CountLets(tree))
}

func TestCountLets(t *testing.T) {
	x := NewVar("x")
	y := NewVar("y")
	tree := NewLet(x, c(1), NewLet(y, x, Add(x, y)))
	require.Equal(t, 2, CountLets(tree))
}

func TestFormat(t *testing.T) {
	a := NewVar("a")
	x := NewVar("x0")

	require.Equal(t, "add(a,3)", Format(f31, Add(a, c(3))))
	require.Equal(t, "let x0 = mul(a,a) in x0", Format(f31, NewLet(x, Mul(a, a), x)))
	require.Equal(t, "if(a,1,neg(2))", Format(f31, &Cond{If: a, Then: c(1), Else: Neg(c(2))}))
}

func TestOpString(t *testing.T) {
	require.Equal(t, "add", OpAdd.String())
	require.Equal(t, "eq", OpEq.String())
}
