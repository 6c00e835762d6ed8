// Package interp provides a reference tree-walking evaluator for the
// expression IR. Tests use it to check that normal-form passes preserve the
// meaning of the expressions they rewrite.
//
// The evaluator re-evaluates a shared node at every use site, so a heavily
// shared tree costs as much as its fully unshared expansion. Convert to
// administrative normal form first when that matters.
package interp

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/anform/anform/expr"
	"github.com/anform/anform/field"
)

// Run evaluates a closed expression over f.
func Run(f field.Field, n expr.Node) (constraint.Element, error) {
	return RunEnv(f, n, nil)
}

// RunEnv evaluates n over f with an initial variable environment. Unbound
// variables and division by zero are data errors, not panics.
func RunEnv(f field.Field, n expr.Node, env map[*expr.Var]constraint.Element) (constraint.Element, error) {
	ev := &evaluator{f: f, env: make(map[*expr.Var]constraint.Element, len(env))}
	for k, v := range env {
		ev.env[k] = v
	}
	return ev.eval(n)
}

type evaluator struct {
	f   field.Field
	env map[*expr.Var]constraint.Element
}

func (ev *evaluator) eval(n expr.Node) (constraint.Element, error) {
	switch t := n.(type) {
	case *expr.Var:
		v, ok := ev.env[t]
		if !ok {
			return constraint.Element{}, fmt.Errorf("unbound variable %q", t.Name)
		}
		return v, nil
	case *expr.Const:
		return t.Value, nil
	case *expr.Call:
		args := make([]constraint.Element, len(t.Args))
		for i, a := range t.Args {
			var err error
			if args[i], err = ev.eval(a); err != nil {
				return constraint.Element{}, err
			}
		}
		return ev.apply(t.Op, args)
	case *expr.Let:
		val, err := ev.eval(t.Value)
		if err != nil {
			return constraint.Element{}, err
		}
		prev, shadowed := ev.env[t.Var]
		ev.env[t.Var] = val
		res, err := ev.eval(t.Body)
		if shadowed {
			ev.env[t.Var] = prev
		} else {
			delete(ev.env, t.Var)
		}
		return res, err
	case *expr.Cond:
		c, err := ev.eval(t.If)
		if err != nil {
			return constraint.Element{}, err
		}
		if !c.IsZero() {
			return ev.eval(t.Then)
		}
		return ev.eval(t.Else)
	}
	panic("unknown node type")
}

func (ev *evaluator) apply(op expr.Op, args []constraint.Element) (constraint.Element, error) {
	arity := 2
	if op == expr.OpNeg {
		arity = 1
	}
	if len(args) != arity {
		return constraint.Element{}, fmt.Errorf("operator %v expects %d operands, got %d", op, arity, len(args))
	}
	switch op {
	case expr.OpAdd:
		return ev.f.Add(args[0], args[1]), nil
	case expr.OpSub:
		return ev.f.Sub(args[0], args[1]), nil
	case expr.OpMul:
		return ev.f.Mul(args[0], args[1]), nil
	case expr.OpNeg:
		return ev.f.Neg(args[0]), nil
	case expr.OpDiv:
		inv, ok := ev.f.Inverse(args[1])
		if !ok {
			return constraint.Element{}, errors.New("division by zero")
		}
		return ev.f.Mul(args[0], inv), nil
	case expr.OpEq:
		d := ev.f.Sub(args[0], args[1])
		if d.IsZero() {
			return ev.f.One(), nil
		}
		return constraint.Element{}, nil
	}
	return constraint.Element{}, fmt.Errorf("unknown operator %v", op)
}
