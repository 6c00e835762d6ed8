package transform

import "github.com/anform/anform/expr"

// UsesLet reports whether any let node is reachable from n. ToANF output
// always uses lets (unless the input is a single atom); ToGraphNormalForm
// output never does.
func UsesLet(n expr.Node) bool {
	return expr.CountLets(n) > 0
}
