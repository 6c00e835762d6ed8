// Package field abstracts the constant arithmetic used by the expression IR.
// Constants are gnark constraint.Elements; a Field interprets them.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/anform/anform/field/bn254"
	"github.com/anform/anform/field/m31"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(m31.ScalarField) == 0 {
		return &m31.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
