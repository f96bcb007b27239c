package ir

import "fmt"

// Kind is the stored type of a Value.
type Kind int

const (
	Int32Kind Kind = iota
	Int64Kind
	Float32Kind
	Float64Kind
	StringKind
	BoolKind
	ListKind
	ListOfBranchesKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Int32Kind:          "Int32",
		Int64Kind:          "Int64",
		Float32Kind:        "Float32",
		Float64Kind:        "Float64",
		StringKind:         "String",
		BoolKind:           "Bool",
		ListKind:           "List",
		ListOfBranchesKind: "ListOfBranches",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Int32":          Int32Kind,
		"Int64":          Int64Kind,
		"Float32":        Float32Kind,
		"Float64":        Float64Kind,
		"String":         StringKind,
		"Bool":           BoolKind,
		"List":           ListKind,
		"ListOfBranches": ListOfBranchesKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		Int32Kind,
		Int64Kind,
		Float32Kind,
		Float64Kind,
		StringKind,
		BoolKind,
		ListKind,
		ListOfBranchesKind,
	}
}

func (k Kind) IsInteger() bool {
	return k == Int32Kind || k == Int64Kind
}

func (k Kind) IsFloat() bool {
	return k == Float32Kind || k == Float64Kind
}

func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ListKind, ListOfBranchesKind:
		return false
	default:
		return true
	}
}
