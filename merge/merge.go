// Package merge combines a user's document with a template or with
// defaults.
//
// TemplateFirst rebuilds a document in the shape of a newer template,
// keeping the user's values where keys coincide. Additive fills in what a
// user's document lacks without touching anything already there.
package merge

import (
	"github.com/versa-format/versa/debug"
	"github.com/versa-format/versa/ir"
)

// TemplateFirst returns a new branch with the entries, order, comments and
// blank lines of tmpl.
//
// A value of tmpl whose key the user also has is replaced by a copy of the
// user's value as it is, whatever its kind and inline comment. A child
// branch the user also has, by first name match, is merged recursively.
// Everything else is copied from tmpl. Values and branches only the user
// has are dropped.
//
// The result shares nothing with user or tmpl.
func TemplateFirst(user, tmpl *ir.Branch) *ir.Branch {
	res := ir.NewBranch(tmpl.Name)
	for _, c := range tmpl.Comments {
		res.Comments = append(res.Comments, c.Clone())
	}
	for _, e := range tmpl.Entries() {
		switch e.Kind {
		case ir.BlankEntry:
			res.EmptyLine()
		case ir.CommentEntry:
			res.AddComment(e.Comment.Text, e.Comment.Slash)
		case ir.ValueEntry:
			res.Set(e.Value.Name, chooseValue(user.Value(e.Value.Name), e.Value))
		case ir.BranchEntry:
			uc := user.Branch(e.Branch.Name)
			if uc == nil {
				if debug.Merge() {
					debug.Logf("merge: adding branch %q from template\n", e.Branch.Name)
				}
				res.AddBranch(e.Branch.Clone())
				continue
			}
			res.AddBranch(TemplateFirst(uc, e.Branch))
		}
	}
	if debug.Merge() {
		for _, k := range user.Keys() {
			if tmpl.Value(k) == nil {
				debug.Logf("merge: dropping %q, absent from template\n", k)
			}
		}
	}
	return res
}

func chooseValue(uv, tv *ir.Value) *ir.Value {
	if uv == nil {
		if debug.Merge() {
			debug.Logf("merge: adding %q = %v from template\n", tv.Name, tv)
		}
		return tv.Clone()
	}
	return uv.Clone()
}

// Additive adds to user, in place, copies of the values and branches of
// defaults which user lacks, and recurses into branches both have. New
// values are appended to the end of the branch, followed by new branches.
// Nothing already in user is changed, removed or reordered, so a second
// call with the same defaults adds nothing.
//
// Additive returns the number of values and branches added.
func Additive(user, defaults *ir.Branch) int {
	n := 0
	for _, dv := range defaults.Values() {
		if user.Value(dv.Name) != nil {
			continue
		}
		if debug.Merge() {
			debug.Logf("merge: filling %q = %v\n", dv.Name, dv)
		}
		user.Set(dv.Name, dv.Clone())
		n++
	}
	for _, dc := range defaults.Children() {
		uc := user.Branch(dc.Name)
		if uc == nil {
			if debug.Merge() {
				debug.Logf("merge: filling branch %q\n", dc.Name)
			}
			user.AddBranch(dc.Clone())
			n++
			continue
		}
		n += Additive(uc, dc)
	}
	return n
}
