package expr

import "github.com/anform/anform/utils"

// Per-kind salts keep nodes of different shapes from hashing together.
const (
	hashVar   uint64 = 998244353
	hashConst uint64 = 1000000007
	hashCall  uint64 = 754974721
	hashLet   uint64 = 167772161
	hashCond  uint64 = 469762049
)

// HashCode hashes the variable by name. Distinct variables may share a name
// (and therefore a hash); EqualI distinguishes them by pointer.
func (v *Var) HashCode() uint64 {
	h := hashVar
	for i := 0; i < len(v.Name); i++ {
		h = h*23 + uint64(v.Name[i])
	}
	return h*23 + uint64(v.Kind)
}

func (v *Var) EqualI(o utils.Hashable) bool {
	ov, ok := o.(*Var)
	return ok && v == ov
}

func (c *Const) HashCode() uint64 {
	return hashConst*31 + (c.Value[0] ^ c.Value[1] ^ c.Value[2] ^ c.Value[3] ^ c.Value[4] ^ c.Value[5])
}

func (c *Const) EqualI(o utils.Hashable) bool {
	oc, ok := o.(*Const)
	return ok && c.Value == oc.Value
}

func (c *Call) HashCode() uint64 {
	h := hashCall*23 + uint64(c.Op)
	for _, a := range c.Args {
		h = h*23 + a.HashCode()
	}
	return h
}

func (c *Call) EqualI(o utils.Hashable) bool {
	oc, ok := o.(*Call)
	if !ok || c.Op != oc.Op || len(c.Args) != len(oc.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].EqualI(oc.Args[i]) {
			return false
		}
	}
	return true
}

func (l *Let) HashCode() uint64 {
	h := hashLet*23 + l.Var.HashCode()
	h = h*23 + l.Value.HashCode()
	return h*23 + l.Body.HashCode()
}

func (l *Let) EqualI(o utils.Hashable) bool {
	ol, ok := o.(*Let)
	return ok && l.Var == ol.Var && l.Value.EqualI(ol.Value) && l.Body.EqualI(ol.Body)
}

func (c *Cond) HashCode() uint64 {
	h := hashCond*23 + c.If.HashCode()
	h = h*23 + c.Then.HashCode()
	return h*23 + c.Else.HashCode()
}

func (c *Cond) EqualI(o utils.Hashable) bool {
	oc, ok := o.(*Cond)
	return ok && c.If.EqualI(oc.If) && c.Then.EqualI(oc.Then) && c.Else.EqualI(oc.Else)
}
