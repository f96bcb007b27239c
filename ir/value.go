package ir

import (
	"math"
)

// Value is a typed scalar or list bound to a key.
//
// Exactly one payload is meaningful for a given Kind: Int for the integer
// kinds and Bool (0 or 1), Float for the floating kinds, String, List or
// Branches.
type Value struct {
	Name string
	Kind Kind

	Int      int64
	Float    float64
	String   string
	List     []*Value
	Branches []*Branch

	Comments []*Comment
	// Glyph is the assignment glyph, '=' or ':'. Zero means '='.
	Glyph byte
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, String: v}
}

func FromInt32(v int32) *Value {
	return &Value{Kind: Int32Kind, Int: int64(v)}
}

func FromInt64(v int64) *Value {
	return &Value{Kind: Int64Kind, Int: v}
}

// FromInt returns an Int32 value if v fits in 32 bits and an Int64 value
// otherwise, the same rule the parser applies to integer literals.
func FromInt(v int64) *Value {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return FromInt32(int32(v))
	}
	return FromInt64(v)
}

func FromFloat32(v float32) *Value {
	return &Value{Kind: Float32Kind, Float: float64(v)}
}

func FromFloat64(v float64) *Value {
	return &Value{Kind: Float64Kind, Float: v}
}

func FromBool(v bool) *Value {
	res := &Value{Kind: BoolKind}
	if v {
		res.Int = 1
	}
	return res
}

func FromList(vs ...*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	for _, v := range vs {
		v.Name = ""
	}
	return &Value{Kind: ListKind, List: vs}
}

func FromBranches(bs ...*Branch) *Value {
	if bs == nil {
		bs = []*Branch{}
	}
	return &Value{Kind: ListOfBranchesKind, Branches: bs}
}

// WithComment sets the inline comment of v and returns v.
func (v *Value) WithComment(text string, slash bool) *Value {
	v.Comments = replaceComment(v.Comments, NewComment(InlineValue, text, slash))
	return v
}

// Comment returns the inline comment of v, or nil.
func (v *Value) Comment() *Comment {
	return findComment(v.Comments, InlineValue)
}

// AssignGlyph returns the glyph used between the key and the value.
func (v *Value) AssignGlyph() byte {
	if v.Glyph == 0 {
		return '='
	}
	return v.Glyph
}

func (v *Value) IsInt32() bool          { return v.Kind == Int32Kind }
func (v *Value) IsInt64() bool          { return v.Kind == Int64Kind }
func (v *Value) IsFloat32() bool        { return v.Kind == Float32Kind }
func (v *Value) IsFloat64() bool        { return v.Kind == Float64Kind }
func (v *Value) IsString() bool         { return v.Kind == StringKind }
func (v *Value) IsBool() bool           { return v.Kind == BoolKind }
func (v *Value) IsList() bool           { return v.Kind == ListKind }
func (v *Value) IsListOfBranches() bool { return v.Kind == ListOfBranchesKind }
func (v *Value) IsNumber() bool         { return v.Kind.IsNumber() }

// AsInt64 returns the value of an integer kind.
func (v *Value) AsInt64() (int64, bool) {
	if !v.Kind.IsInteger() {
		return 0, false
	}
	return v.Int, true
}

// AsInt32 returns the value of an integer kind that fits in 32 bits.
func (v *Value) AsInt32() (int32, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

func (v *Value) AsInt() (int, bool) {
	i, ok := v.AsInt64()
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

// AsFloat64 returns the value of any numeric kind as a float64.
func (v *Value) AsFloat64() (float64, bool) {
	switch {
	case v.Kind.IsFloat():
		return v.Float, true
	case v.Kind.IsInteger():
		return float64(v.Int), true
	default:
		return 0, false
	}
}

func (v *Value) AsFloat32() (float32, bool) {
	f, ok := v.AsFloat64()
	return float32(f), ok
}

func (v *Value) AsBool() (bool, bool) {
	if v.Kind != BoolKind {
		return false, false
	}
	return v.Int != 0, true
}

func (v *Value) AsString() (string, bool) {
	if v.Kind != StringKind {
		return "", false
	}
	return v.String, true
}

func (v *Value) AsList() ([]*Value, bool) {
	if v.Kind != ListKind {
		return nil, false
	}
	return v.List, true
}

// AsBranches returns the branches of a ListOfBranches value. An empty List
// is accepted as an empty list of branches since the two render alike.
func (v *Value) AsBranches() ([]*Branch, bool) {
	switch {
	case v.Kind == ListOfBranchesKind:
		return v.Branches, true
	case v.Kind == ListKind && len(v.List) == 0:
		return []*Branch{}, true
	default:
		return nil, false
	}
}

// Raw returns the payload as a plain Go value: int64, float64, bool,
// string, []any or []*Branch.
func (v *Value) Raw() any {
	switch v.Kind {
	case Int32Kind, Int64Kind:
		return v.Int
	case Float32Kind, Float64Kind:
		return v.Float
	case BoolKind:
		return v.Int != 0
	case StringKind:
		return v.String
	case ListKind:
		res := make([]any, len(v.List))
		for i, elt := range v.List {
			res[i] = elt.Raw()
		}
		return res
	case ListOfBranchesKind:
		return v.Branches
	default:
		return nil
	}
}

// Clone returns a deep copy of v sharing no lists, branches or comments.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Name:     v.Name,
		Kind:     v.Kind,
		Int:      v.Int,
		Float:    v.Float,
		String:   v.String,
		Comments: cloneComments(v.Comments),
		Glyph:    v.Glyph,
	}
	if v.List != nil {
		res.List = make([]*Value, len(v.List))
		for i, elt := range v.List {
			res.List[i] = elt.Clone()
		}
	}
	if v.Branches != nil {
		res.Branches = make([]*Branch, len(v.Branches))
		for i, b := range v.Branches {
			res.Branches[i] = b.Clone()
		}
	}
	return res
}
