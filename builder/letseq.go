// Package builder provides the binding-sequence builder used by passes that
// synthesize new expression trees. Instead of splicing a sub-expression into
// several places (duplicating tree size and any effects it carries), a pass
// pushes the sub-expression once, receives a fresh variable back, and uses
// the variable everywhere a copy would be needed. Finalizing wraps the
// caller's body in one nested let per pushed binding, first push outermost,
// so every bound value is computed exactly once.
//
// For example, writing b = a+a; c = b+b; d = c+c directly embeds a eight
// times; writing b = seq.Push(add(a,a)); c = seq.Push(add(b,b));
// d = seq.Get(add(c,c)) embeds it twice.
package builder

import (
	"strconv"

	"github.com/benbjohnson/immutable"

	"github.com/anform/anform/expr"
)

// Binding pairs a bound variable with the expression whose result it names.
// Bindings are immutable once appended.
type Binding struct {
	Var   *expr.Var
	Value expr.Node
}

// LetSeq accumulates bindings in push order and, on Get, folds them into a
// chain of nested lets around a body. A LetSeq is single-use: Get closes it,
// and any call after that is a caller programming error.
//
// A LetSeq is owned by one pass invocation; it is not safe for concurrent
// use.
type LetSeq struct {
	lets   *immutable.List[Binding]
	nextID int
	closed bool
}

func New() *LetSeq {
	return &LetSeq{lets: immutable.NewList[Binding]()}
}

// PushVar appends a binding of value under the caller-supplied variable v and
// returns v, so call sites can chain: x := seq.PushVar(v, e) registers e
// under v and keeps v in hand. Uniqueness of caller-supplied variables is the
// caller's obligation.
func (seq *LetSeq) PushVar(v *expr.Var, value expr.Node) *expr.Var {
	if seq.closed {
		panic("builder: Push on a finalized binding sequence")
	}
	seq.lets = seq.lets.Append(Binding{Var: v, Value: value})
	return v
}

// PushKind synthesizes a fresh variable annotated with kind, binds value to
// it, and returns it. Fresh names never collide within one sequence.
func (seq *LetSeq) PushKind(kind expr.Kind, value expr.Node) *expr.Var {
	v := expr.NewTypedVar("x"+strconv.Itoa(seq.nextID), kind)
	seq.nextID++
	return seq.PushVar(v, value)
}

// Push binds value to a fresh untyped variable and returns the variable.
// This is the common case.
func (seq *LetSeq) Push(value expr.Node) *expr.Var {
	return seq.PushKind(expr.Unknown, value)
}

// Get wraps body in the accumulated bindings, innermost last push, and
// closes the sequence. With no bindings, body is returned unchanged.
func (seq *LetSeq) Get(body expr.Node) expr.Node {
	if seq.closed {
		panic("builder: Get on a finalized binding sequence")
	}
	seq.closed = true
	res := body
	for i := seq.lets.Len() - 1; i >= 0; i-- {
		b := seq.lets.Get(i)
		res = expr.NewLet(b.Var, b.Value, res)
	}
	return res
}

// With runs f against a fresh sequence and finalizes the body f returns.
// It guarantees the open-to-closed transition happens exactly once per use;
// a panic inside f propagates unchanged.
//
//	// 16*a using 4 additions instead of 15.
//	return builder.With(func(seq *builder.LetSeq) expr.Node {
//		b := seq.Push(expr.Add(a, a))
//		c := seq.Push(expr.Add(b, b))
//		d := seq.Push(expr.Add(c, c))
//		return expr.Add(d, d)
//	})
func With(f func(*LetSeq) expr.Node) expr.Node {
	seq := New()
	return seq.Get(f(seq))
}
