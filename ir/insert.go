package ir

// Cursor is a position in the order of a branch. Inserting at a cursor
// splices a new entry in before the entry currently at that position and
// returns a cursor just past the inserted entry, so insertions chain.
type Cursor struct {
	b *Branch
	i int
}

// Before returns a cursor at the value under key, or at the end of the
// order if key is absent.
func (b *Branch) Before(key string) Cursor {
	return b.cursorAt(b.valueIndex(key), 0)
}

// After returns a cursor just past the value under key, or at the end.
func (b *Branch) After(key string) Cursor {
	return b.cursorAt(b.valueIndex(key), 1)
}

// BeforeBranch returns a cursor at the first child named name, or at the
// end.
func (b *Branch) BeforeBranch(name string) Cursor {
	return b.cursorAt(b.branchIndex(name), 0)
}

// AfterBranch returns a cursor just past the first child named name, or at
// the end.
func (b *Branch) AfterBranch(name string) Cursor {
	return b.cursorAt(b.branchIndex(name), 1)
}

// Start returns a cursor at the beginning of the order.
func (b *Branch) Start() Cursor {
	return Cursor{b: b}
}

// End returns a cursor at the end of the order.
func (b *Branch) End() Cursor {
	return Cursor{b: b, i: len(b.order)}
}

func (b *Branch) cursorAt(i, off int) Cursor {
	if i == -1 {
		return b.End()
	}
	return Cursor{b: b, i: i + off}
}

// Index returns the position of the cursor in the order.
func (c Cursor) Index() int {
	return c.i
}

func (c Cursor) Branch() *Branch {
	return c.b
}

// Comment inserts a standalone comment.
func (c Cursor) Comment(text string, slash bool) Cursor {
	return c.splice(commentEntry(text, slash))
}

// LineComment inserts a standalone "//" comment.
func (c Cursor) LineComment(text string) Cursor {
	return c.Comment(text, true)
}

// HashComment inserts a standalone "#" comment.
func (c Cursor) HashComment(text string) Cursor {
	return c.Comment(text, false)
}

// EmptyLine inserts a blank line.
func (c Cursor) EmptyLine() Cursor {
	return c.splice(blankEntry())
}

func (c Cursor) splice(e *Entry) Cursor {
	i := c.i
	if i > len(c.b.order) {
		i = len(c.b.order)
	}
	c.b.insert(i, e)
	return Cursor{b: c.b, i: i + 1}
}
