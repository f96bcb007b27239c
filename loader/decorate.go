package loader

import (
	"github.com/versa-format/versa/ir"
)

// decoration is a Binding shaping the layout of the file of defaults; it
// binds no variable.
type decoration struct {
	path     string
	decorate func(parent *ir.Branch, name string)
}

func (d *decoration) Path() string {
	return d.path
}

func (d *decoration) Apply(*ir.Branch) error {
	return nil
}

func (d *decoration) Default(doc *ir.Branch) {
	parent, name := branchFor(doc, d.path)
	d.decorate(parent, name)
}

// BranchComment puts start after the opening brace and end after the
// closing brace of the branch at path in the file of defaults. Empty
// comments are omitted.
func BranchComment(path, start, end string) Binding {
	return &decoration{path: path, decorate: func(parent *ir.Branch, name string) {
		if start != "" {
			parent.SetStartCommentTo(name, " "+start, false)
		}
		if end != "" {
			parent.SetEndCommentTo(name, " "+end, false)
		}
	}}
}

// BranchSpace surrounds the branch at path with blank lines in the file of
// defaults, unless there is one already.
func BranchSpace(path string, before, after bool) Binding {
	return &decoration{path: path, decorate: func(parent *ir.Branch, name string) {
		if parent.Branch(name) == nil {
			return
		}
		es := parent.Entries()
		if before {
			c := parent.BeforeBranch(name)
			if i := c.Index(); i == 0 || es[i-1].Kind != ir.BlankEntry {
				c.EmptyLine()
			}
		}
		es = parent.Entries()
		if after {
			c := parent.AfterBranch(name)
			if i := c.Index(); i >= len(es) || es[i].Kind != ir.BlankEntry {
				c.EmptyLine()
			}
		}
	}}
}

func isDecoration(b Binding) bool {
	_, ok := b.(*decoration)
	return ok
}
