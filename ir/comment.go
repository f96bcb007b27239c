package ir

// CommentKind tells where a comment is printed.
type CommentKind int

const (
	// InlineValue comments follow a value on its line.
	InlineValue CommentKind = iota
	// StartOfBranch comments follow the '{' of a branch.
	StartOfBranch
	// EndOfBranch comments follow the '}' of a branch.
	EndOfBranch
	// StandaloneLine comments occupy their own line.
	StandaloneLine
)

func (k CommentKind) String() string {
	switch k {
	case InlineValue:
		return "InlineValue"
	case StartOfBranch:
		return "StartOfBranch"
	case EndOfBranch:
		return "EndOfBranch"
	case StandaloneLine:
		return "StandaloneLine"
	default:
		return "<unknown comment kind>"
	}
}

// Comment is a comment's raw text, without its prefix.
//
// Text is printed verbatim after the prefix, so a leading space must be part
// of Text for "// text" style output.
type Comment struct {
	Kind  CommentKind
	Text  string
	Slash bool
}

func NewComment(kind CommentKind, text string, slash bool) *Comment {
	return &Comment{Kind: kind, Text: text, Slash: slash}
}

// Prefix returns "//" or "#".
func (c *Comment) Prefix() string {
	if c.Slash {
		return "//"
	}
	return "#"
}

func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	res := *c
	return &res
}

func findComment(cs []*Comment, kind CommentKind) *Comment {
	for _, c := range cs {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

func replaceComment(cs []*Comment, c *Comment) []*Comment {
	res := make([]*Comment, 0, len(cs)+1)
	for _, x := range cs {
		if x.Kind == c.Kind {
			continue
		}
		res = append(res, x)
	}
	return append(res, c)
}

func cloneComments(cs []*Comment) []*Comment {
	if cs == nil {
		return nil
	}
	res := make([]*Comment, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}
