// Package expr defines the tree-shaped expression representation consumed by
// the binding-sequence builder and the normal-form passes. Node identity is
// pointer identity: a sub-expression that appears in two places as the same
// pointer is shared, not duplicated.
package expr

import (
	"github.com/consensys/gnark/constraint"

	"github.com/anform/anform/utils"
)

// Kind is the declared type annotation carried by a variable. Unknown is the
// common case: a pass that synthesizes a fresh variable usually has no static
// type to attach.
type Kind int

const (
	Unknown Kind = iota
	Scalar
	Boolean
)

// Op enumerates the builtin operators of Call nodes.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpNeg
	OpDiv
	OpEq
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpNeg:
		return "neg"
	case OpDiv:
		return "div"
	case OpEq:
		return "eq"
	}
	return "unknown"
}

// Node is an expression tree node. All implementations are pointer types and
// satisfy utils.Hashable, so nodes can be used as keys in a utils.Map.
type Node interface {
	utils.Hashable
	node()
}

// Var is a named reference. Two Vars are the same variable only if they are
// the same pointer; Name is a display hint, not an identity.
type Var struct {
	Name string
	Kind Kind
}

// Const is a field-element constant.
type Const struct {
	Value constraint.Element
}

// Call applies a builtin operator to its operands.
type Call struct {
	Op   Op
	Args []Node
}

// Let binds Var to Value for the evaluation of Body. It is the sole
// structural output of the binding-sequence builder.
type Let struct {
	Var   *Var
	Value Node
	Body  Node
}

// Cond evaluates Then if If is nonzero, Else otherwise.
type Cond struct {
	If   Node
	Then Node
	Else Node
}

func (*Var) node()   {}
func (*Const) node() {}
func (*Call) node()  {}
func (*Let) node()   {}
func (*Cond) node()  {}

// NewVar returns a variable with no type annotation.
func NewVar(name string) *Var {
	return &Var{Name: name}
}

// NewTypedVar returns a variable annotated with the given kind.
func NewTypedVar(name string, kind Kind) *Var {
	return &Var{Name: name, Kind: kind}
}

// NewConst returns c as an expression.
func NewConst(c constraint.Element) *Const {
	return &Const{Value: c}
}

// NewLet returns the let-construct binding v to value within body.
func NewLet(v *Var, value, body Node) *Let {
	return &Let{Var: v, Value: value, Body: body}
}

func Add(a, b Node) *Call { return &Call{Op: OpAdd, Args: []Node{a, b}} }
func Sub(a, b Node) *Call { return &Call{Op: OpSub, Args: []Node{a, b}} }
func Mul(a, b Node) *Call { return &Call{Op: OpMul, Args: []Node{a, b}} }
func Div(a, b Node) *Call { return &Call{Op: OpDiv, Args: []Node{a, b}} }
func Eq(a, b Node) *Call  { return &Call{Op: OpEq, Args: []Node{a, b}} }
func Neg(a Node) *Call    { return &Call{Op: OpNeg, Args: []Node{a}} }
