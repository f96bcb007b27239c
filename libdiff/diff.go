package libdiff

import (
	"github.com/versa-format/versa/ir"
)

// Change is a difference in data between two branches at a dot path.
//
// Value changes set From and To: Insert has only To, Delete only From.
// Branch changes, which are only ever Insert or Delete of a whole branch,
// set FromBranch or ToBranch instead.
type Change struct {
	Op         Op
	Path       string
	From, To   *ir.Value
	FromBranch *ir.Branch
	ToBranch   *ir.Branch
}

// IsBranch reports whether c inserts or deletes a branch.
func (c *Change) IsBranch() bool {
	return c.FromBranch != nil || c.ToBranch != nil
}

// Diff returns the changes turning the data of from into that of to.
// Comments, blank lines, entry order and assignment glyphs are ignored, and
// numbers compare by value regardless of width. Children are paired by
// name, first occurrence with first occurrence and so on.
//
// Diff returns nil if from and to hold the same data.
func Diff(from, to *ir.Branch) []Change {
	var res []Change
	diffBranch("", from, to, &res)
	return res
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func diffBranch(prefix string, from, to *ir.Branch, res *[]Change) {
	for _, fv := range from.Values() {
		p := join(prefix, fv.Name)
		tv := to.Value(fv.Name)
		switch {
		case tv == nil:
			*res = append(*res, Change{Op: Delete, Path: p, From: fv})
		case !ir.EqualData(fv, tv):
			*res = append(*res, Change{Op: Replace, Path: p, From: fv, To: tv})
		}
	}
	for _, tv := range to.Values() {
		if from.Value(tv.Name) == nil {
			*res = append(*res, Change{Op: Insert, Path: join(prefix, tv.Name), To: tv})
		}
	}
	fromKids := byName(from.Children())
	toKids := byName(to.Children())
	for _, fc := range from.Children() {
		p := join(prefix, fc.Name)
		fs, ok := fromKids[fc.Name]
		if !ok {
			continue
		}
		ts := toKids[fc.Name]
		for i, f := range fs {
			if i < len(ts) {
				diffBranch(p, f, ts[i], res)
				continue
			}
			*res = append(*res, Change{Op: Delete, Path: p, FromBranch: f})
		}
		delete(fromKids, fc.Name)
	}
	for _, tc := range to.Children() {
		ts, ok := toKids[tc.Name]
		if !ok {
			continue
		}
		delete(toKids, tc.Name)
		fs := countNamed(from.Children(), tc.Name)
		for _, t := range ts[min(fs, len(ts)):] {
			*res = append(*res, Change{Op: Insert, Path: join(prefix, tc.Name), ToBranch: t})
		}
	}
}

func byName(bs []*ir.Branch) map[string][]*ir.Branch {
	res := make(map[string][]*ir.Branch, len(bs))
	for _, b := range bs {
		res[b.Name] = append(res[b.Name], b)
	}
	return res
}

func countNamed(bs []*ir.Branch, name string) int {
	n := 0
	for _, b := range bs {
		if b.Name == name {
			n++
		}
	}
	return n
}
