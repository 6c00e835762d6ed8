// Package anform converts expression trees between administrative normal
// form, where every shared sub-expression is named by a let binding, and
// graph normal form, where sharing is implicit in the tree structure. The
// underlying binding-sequence builder lives in the builder package; the
// individual passes live in transform.
package anform

import (
	"github.com/consensys/gnark/logger"

	"github.com/anform/anform/expr"
	"github.com/anform/anform/transform"
)

// Normalize verifies that n is well formed, shares structurally identical
// subtrees, and converts the result to administrative normal form.
func Normalize(n expr.Node) (expr.Node, error) {
	if err := transform.Check(n); err != nil {
		return nil, err
	}
	res := transform.ToANF(transform.EliminateCommonSubexpr(n))

	log := logger.Logger()
	log.Info().
		Int("nbNodesIn", expr.CountNodes(n)).
		Int("nbNodesOut", expr.CountNodes(res)).
		Int("nbLets", expr.CountLets(res)).
		Msg("normalized")
	return res, nil
}

// Denormalize verifies that n is well formed and replaces its let bindings
// by shared sub-trees.
func Denormalize(n expr.Node) (expr.Node, error) {
	if err := transform.Check(n); err != nil {
		return nil, err
	}
	res := transform.ToGraphNormalForm(n)

	log := logger.Logger()
	log.Info().
		Int("nbLetsIn", expr.CountLets(n)).
		Int("nbNodesOut", expr.CountNodes(res)).
		Msg("denormalized")
	return res, nil
}
