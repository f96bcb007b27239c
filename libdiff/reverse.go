package libdiff

// Reverse returns the changes undoing cs, in reverse order.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{
			Path:       c.Path,
			From:       c.To,
			To:         c.From,
			FromBranch: c.ToBranch,
			ToBranch:   c.FromBranch,
		}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = c.Op
		}
		res[len(cs)-1-i] = r
	}
	return res
}
