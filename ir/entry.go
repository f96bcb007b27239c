package ir

// EntryKind tags the variant held by an Entry.
type EntryKind int

const (
	ValueEntry EntryKind = iota
	BranchEntry
	CommentEntry
	BlankEntry
)

func (k EntryKind) String() string {
	switch k {
	case ValueEntry:
		return "Value"
	case BranchEntry:
		return "Branch"
	case CommentEntry:
		return "Comment"
	case BlankEntry:
		return "Blank"
	default:
		return "<unknown entry kind>"
	}
}

// Entry is one element of a branch's rendering order. Exactly one of Value,
// Branch and Comment is set, according to Kind; a blank line sets none.
type Entry struct {
	Kind    EntryKind
	Value   *Value
	Branch  *Branch
	Comment *Comment
}

// Name returns the key of a value entry or the name of a branch entry.
func (e Entry) Name() string {
	switch e.Kind {
	case ValueEntry:
		return e.Value.Name
	case BranchEntry:
		return e.Branch.Name
	default:
		return ""
	}
}

func valueEntry(v *Value) *Entry   { return &Entry{Kind: ValueEntry, Value: v} }
func branchEntry(b *Branch) *Entry { return &Entry{Kind: BranchEntry, Branch: b} }
func blankEntry() *Entry           { return &Entry{Kind: BlankEntry} }

func commentEntry(text string, slash bool) *Entry {
	return &Entry{Kind: CommentEntry, Comment: NewComment(StandaloneLine, text, slash)}
}
