package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/versa-format/versa/debug"
	"github.com/versa-format/versa/ir"
)

// ErrConflict is returned by Apply when the document does not hold the
// data a change expects.
var ErrConflict = errors.New("conflict")

// Apply applies cs to b in place. Replaced values keep their inline
// comments and glyphs; inserted entries are appended to their parent.
// Paths address the first child with a given name, as [ir.Branch.Resolve]
// does.
func Apply(b *ir.Branch, cs []Change) error {
	for i := range cs {
		if err := apply(b, &cs[i]); err != nil {
			return fmt.Errorf("%s %s: %w", cs[i].Op, cs[i].Path, err)
		}
		if debug.Patch() {
			debug.Logf("applied %s %s\n", cs[i].Op, cs[i].Path)
		}
	}
	return nil
}

func apply(b *ir.Branch, c *Change) error {
	parent, name := b, c.Path
	if i := strings.LastIndexByte(c.Path, '.'); i != -1 {
		parent = b.GetBranch(c.Path[:i])
		name = c.Path[i+1:]
	}
	if parent == nil {
		return ir.ErrNotFound
	}
	if c.IsBranch() {
		switch c.Op {
		case Insert:
			parent.AddBranch(c.ToBranch.Clone())
		case Delete:
			cur := parent.Branch(name)
			if cur == nil {
				return ir.ErrNotFound
			}
			if !sameData(cur, c.FromBranch) {
				return ErrConflict
			}
			parent.RemoveBranch(name)
		default:
			return fmt.Errorf("%w: branch %s", ir.ErrUnsupported, c.Op)
		}
		return nil
	}
	cur := parent.Value(name)
	switch c.Op {
	case Insert:
		if cur != nil {
			return ErrConflict
		}
		parent.Set(name, c.To.Clone())
	case Delete:
		if cur == nil {
			return ir.ErrNotFound
		}
		if !ir.EqualData(cur, c.From) {
			return ErrConflict
		}
		parent.RemoveValue(name)
	case Replace:
		if cur == nil {
			return ir.ErrNotFound
		}
		if !ir.EqualData(cur, c.From) {
			return ErrConflict
		}
		parent.Set(name, c.To.Clone())
	default:
		return fmt.Errorf("%w: %s", ir.ErrUnsupported, c.Op)
	}
	return nil
}

func sameData(a, b *ir.Branch) bool {
	return len(Diff(a, b)) == 0
}
