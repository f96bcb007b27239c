package ir

// Set binds v under key and returns b.
//
// A new key is appended to the end of the order. An existing key is
// replaced at its position; the old inline comment is kept when v has none
// and the old assignment glyph is kept when v has none.
func (b *Branch) Set(key string, v *Value) *Branch {
	v.Name = key
	i := b.valueIndex(key)
	if i == -1 {
		b.insert(-1, valueEntry(v))
		return b
	}
	old := b.order[i].Value
	if v.Comment() == nil {
		if c := old.Comment(); c != nil {
			v.Comments = append(v.Comments, c)
		}
	}
	if v.Glyph == 0 {
		v.Glyph = old.Glyph
	}
	b.order[i].Value = v
	b.values[key] = v
	return b
}

func (b *Branch) SetString(key, v string) *Branch {
	return b.Set(key, FromString(v))
}

// SetInt sets an Int32 value, or an Int64 value if v does not fit.
func (b *Branch) SetInt(key string, v int) *Branch {
	return b.Set(key, FromInt(int64(v)))
}

func (b *Branch) SetInt64(key string, v int64) *Branch {
	return b.Set(key, FromInt64(v))
}

func (b *Branch) SetFloat(key string, v float64) *Branch {
	return b.Set(key, FromFloat64(v))
}

func (b *Branch) SetBool(key string, v bool) *Branch {
	return b.Set(key, FromBool(v))
}

// AddBranch appends c as a child of b and returns b.
func (b *Branch) AddBranch(c *Branch) *Branch {
	b.insert(-1, branchEntry(c))
	return b
}

// AddComment appends a standalone comment line.
func (b *Branch) AddComment(text string, slash bool) *Branch {
	b.insert(-1, commentEntry(text, slash))
	return b
}

// AddLineComment appends a standalone "//" comment.
func (b *Branch) AddLineComment(text string) *Branch {
	return b.AddComment(text, true)
}

// AddHashComment appends a standalone "#" comment.
func (b *Branch) AddHashComment(text string) *Branch {
	return b.AddComment(text, false)
}

// EmptyLine appends a blank line.
func (b *Branch) EmptyLine() *Branch {
	b.insert(-1, blankEntry())
	return b
}

func (b *Branch) SetStartComment(text string, slash bool) *Branch {
	b.Comments = replaceComment(b.Comments, NewComment(StartOfBranch, text, slash))
	return b
}

func (b *Branch) SetEndComment(text string, slash bool) *Branch {
	b.Comments = replaceComment(b.Comments, NewComment(EndOfBranch, text, slash))
	return b
}

// SetStartCommentTo sets the start comment of the first child named child.
// It does nothing if there is no such child.
func (b *Branch) SetStartCommentTo(child, text string, slash bool) *Branch {
	if c := b.Branch(child); c != nil {
		c.SetStartComment(text, slash)
	}
	return b
}

// SetEndCommentTo sets the end comment of the first child named child.
func (b *Branch) SetEndCommentTo(child, text string, slash bool) *Branch {
	if c := b.Branch(child); c != nil {
		c.SetEndComment(text, slash)
	}
	return b
}

// SetValueComment sets the inline comment of the value under key, if any.
func (b *Branch) SetValueComment(key, text string, slash bool) *Branch {
	if v := b.values[key]; v != nil {
		v.WithComment(text, slash)
	}
	return b
}

// RemoveValue removes the value under key and reports whether it existed.
func (b *Branch) RemoveValue(key string) bool {
	i := b.valueIndex(key)
	if i == -1 {
		return false
	}
	b.remove(i)
	return true
}

// RemoveBranch removes the first child named name.
func (b *Branch) RemoveBranch(name string) bool {
	i := b.branchIndex(name)
	if i == -1 {
		return false
	}
	b.remove(i)
	return true
}
