package ir

// Branch is a named section of a document. The root of a document is a
// Branch with an empty name.
//
// The rendering order of a branch's contents is its list of entries. Values
// are indexed by key and child branches by position; both indexes are kept
// in sync with the entries by the mutators in this package. Names of child
// branches need not be unique: lookups return the first match.
type Branch struct {
	Name string
	// Comments holds the start and end comments of the branch's braces.
	Comments []*Comment

	values   map[string]*Value
	children []*Branch
	order    []*Entry
}

func NewBranch(name string) *Branch {
	return &Branch{
		Name:   name,
		values: map[string]*Value{},
	}
}

// Value returns the value under key, or nil.
func (b *Branch) Value(key string) *Value {
	return b.values[key]
}

// Branch returns the first child named name, or nil.
func (b *Branch) Branch(name string) *Branch {
	for _, c := range b.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Children returns the child branches in order.
func (b *Branch) Children() []*Branch {
	res := make([]*Branch, len(b.children))
	copy(res, b.children)
	return res
}

// Values returns the values in order.
func (b *Branch) Values() []*Value {
	res := make([]*Value, 0, len(b.values))
	for _, e := range b.order {
		if e.Kind == ValueEntry {
			res = append(res, e.Value)
		}
	}
	return res
}

// Keys returns the value keys in order.
func (b *Branch) Keys() []string {
	res := make([]string, 0, len(b.values))
	for _, e := range b.order {
		if e.Kind == ValueEntry {
			res = append(res, e.Value.Name)
		}
	}
	return res
}

// Entries returns a copy of the rendering order.
func (b *Branch) Entries() []Entry {
	res := make([]Entry, len(b.order))
	for i, e := range b.order {
		res[i] = *e
	}
	return res
}

// Len returns the number of entries.
func (b *Branch) Len() int {
	return len(b.order)
}

func (b *Branch) StartComment() *Comment {
	return findComment(b.Comments, StartOfBranch)
}

func (b *Branch) EndComment() *Comment {
	return findComment(b.Comments, EndOfBranch)
}

func (b *Branch) valueIndex(key string) int {
	for i, e := range b.order {
		if e.Kind == ValueEntry && e.Value.Name == key {
			return i
		}
	}
	return -1
}

func (b *Branch) branchIndex(name string) int {
	for i, e := range b.order {
		if e.Kind == BranchEntry && e.Branch.Name == name {
			return i
		}
	}
	return -1
}

// insert splices e into the order at i, updating the indexes.
func (b *Branch) insert(i int, e *Entry) {
	if b.values == nil {
		b.values = map[string]*Value{}
	}
	if i < 0 || i > len(b.order) {
		i = len(b.order)
	}
	switch e.Kind {
	case ValueEntry:
		b.values[e.Value.Name] = e.Value
	case BranchEntry:
		ci := 0
		for _, x := range b.order[:i] {
			if x.Kind == BranchEntry {
				ci++
			}
		}
		b.children = append(b.children, nil)
		copy(b.children[ci+1:], b.children[ci:])
		b.children[ci] = e.Branch
	}
	b.order = append(b.order, nil)
	copy(b.order[i+1:], b.order[i:])
	b.order[i] = e
}

// remove deletes the entry at i, updating the indexes.
func (b *Branch) remove(i int) {
	e := b.order[i]
	switch e.Kind {
	case ValueEntry:
		delete(b.values, e.Value.Name)
	case BranchEntry:
		for ci, c := range b.children {
			if c == e.Branch {
				b.children = append(b.children[:ci], b.children[ci+1:]...)
				break
			}
		}
	}
	b.order = append(b.order[:i], b.order[i+1:]...)
}

// Clone returns a deep copy of b. The copy shares no values, branches,
// comments or entries with b.
func (b *Branch) Clone() *Branch {
	if b == nil {
		return nil
	}
	res := NewBranch(b.Name)
	res.Comments = cloneComments(b.Comments)
	for _, e := range b.order {
		switch e.Kind {
		case ValueEntry:
			res.insert(-1, valueEntry(e.Value.Clone()))
		case BranchEntry:
			res.insert(-1, branchEntry(e.Branch.Clone()))
		case CommentEntry:
			res.insert(-1, &Entry{Kind: CommentEntry, Comment: e.Comment.Clone()})
		case BlankEntry:
			res.insert(-1, blankEntry())
		}
	}
	return res
}
