package expr

// Children returns the direct sub-nodes of n in evaluation order.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Var, *Const:
		return nil
	case *Call:
		return t.Args
	case *Let:
		return []Node{t.Value, t.Body}
	case *Cond:
		return []Node{t.If, t.Then, t.Else}
	}
	panic("unknown node type")
}

// PostOrder calls visit exactly once for each node reachable from n,
// children before parents. Shared nodes are visited once.
func PostOrder(n Node, visit func(Node)) {
	seen := make(map[Node]bool)
	var walk func(Node)
	walk = func(n Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, c := range Children(n) {
			walk(c)
		}
		visit(n)
	}
	walk(n)
}

// CountNodes returns the number of distinct nodes reachable from n.
func CountNodes(n Node) int {
	count := 0
	PostOrder(n, func(Node) { count++ })
	return count
}

// CountLets returns the number of distinct let nodes reachable from n.
func CountLets(n Node) int {
	count := 0
	PostOrder(n, func(m Node) {
		if _, ok := m.(*Let); ok {
			count++
		}
	})
	return count
}
