package expr

import (
	"fmt"
	"strings"

	"github.com/anform/anform/field"
)

// Format renders n as text for debugging, using f to print constant
// coefficients. Shared sub-nodes are printed at every use site, so the output
// of a heavily shared tree can be much larger than the tree itself.
func Format(f field.Field, n Node) string {
	switch t := n.(type) {
	case *Var:
		return t.Name
	case *Const:
		return f.ToBigInt(t.Value).String()
	case *Call:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = Format(f, a)
		}
		return t.Op.String() + "(" + strings.Join(args, ",") + ")"
	case *Let:
		return fmt.Sprintf("let %s = %s in %s", t.Var.Name, Format(f, t.Value), Format(f, t.Body))
	case *Cond:
		return fmt.Sprintf("if(%s,%s,%s)", Format(f, t.If), Format(f, t.Then), Format(f, t.Else))
	}
	panic("unknown node type")
}
