package ir

// Equal reports whether a and b hold the same entries in the same order,
// with the same comments. Numbers compare by family: Int32 equals Int64 and
// Float32 equals Float64 when the payloads agree, since text does not carry
// a width.
func Equal(a, b *Branch) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || !commentsEqual(a.Comments, b.Comments) {
		return false
	}
	if len(a.order) != len(b.order) {
		return false
	}
	for i, ea := range a.order {
		eb := b.order[i]
		if ea.Kind != eb.Kind {
			return false
		}
		switch ea.Kind {
		case ValueEntry:
			if !EqualValue(ea.Value, eb.Value) {
				return false
			}
		case BranchEntry:
			if !Equal(ea.Branch, eb.Branch) {
				return false
			}
		case CommentEntry:
			if *ea.Comment != *eb.Comment {
				return false
			}
		}
	}
	return true
}

// EqualValue compares two values like Equal compares branches.
func EqualValue(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || a.AssignGlyph() != b.AssignGlyph() {
		return false
	}
	if !commentsEqual(a.Comments, b.Comments) {
		return false
	}
	return EqualData(a, b)
}

// EqualData compares the payloads of a and b only, ignoring names,
// comments and glyphs at the top level.
func EqualData(a, b *Value) bool {
	switch {
	case a.Kind.IsInteger():
		return b.Kind.IsInteger() && a.Int == b.Int
	case a.Kind.IsFloat():
		if !b.Kind.IsFloat() {
			return false
		}
		if a.Kind == Float32Kind || b.Kind == Float32Kind {
			return float32(a.Float) == float32(b.Float)
		}
		return a.Float == b.Float
	}
	ab, aok := a.AsBranches()
	bb, bok := b.AsBranches()
	if aok && bok && (len(ab) == 0 || a.Kind == b.Kind) {
		if len(ab) != len(bb) {
			return false
		}
		for i := range ab {
			if !Equal(ab[i], bb[i]) {
				return false
			}
		}
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case StringKind:
		return a.String == b.String
	case BoolKind:
		return a.Int == b.Int
	case ListKind:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !EqualData(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func commentsEqual(a, b []*Comment) bool {
	for _, k := range []CommentKind{InlineValue, StartOfBranch, EndOfBranch} {
		ca, cb := findComment(a, k), findComment(b, k)
		if ca == nil || cb == nil {
			if ca != cb {
				return false
			}
			continue
		}
		if *ca != *cb {
			return false
		}
	}
	return true
}
