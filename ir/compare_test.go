package ir

import (
	"testing"
)

func TestEqualValue(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"int widths", FromInt32(5), FromInt64(5), true},
		{"int values", FromInt32(5), FromInt32(6), false},
		{"float widths", FromFloat32(0.5), FromFloat64(0.5), true},
		{"float32 rounding", FromFloat32(0.1), FromFloat64(float64(float32(0.1))), true},
		{"int vs float", FromInt32(1), FromFloat64(1), false},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool vs int", FromBool(true), FromInt32(1), false},
		{"string", FromString("a"), FromString("a"), true},
		{"glyph default", &Value{Kind: StringKind, Glyph: '='}, FromString(""), true},
		{"glyph", &Value{Kind: StringKind, Glyph: ':'}, FromString(""), false},
		{"comment", FromString("a").WithComment("x", true), FromString("a"), false},
		{"comment prefix", FromString("a").WithComment("x", true), FromString("a").WithComment("x", false), false},
		{"list", FromList(FromInt32(1), FromString("a")), FromList(FromInt64(1), FromString("a")), true},
		{"list len", FromList(FromInt32(1)), FromList(), false},
		{"empty lists", FromList(), FromBranches(), true},
		{"empty list vs branches", FromList(), FromBranches(NewBranch("")), false},
		{"branches", FromBranches(NewBranch("").SetInt("a", 1)), FromBranches(NewBranch("").SetInt64("a", 1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualValue(tt.a, tt.b); got != tt.want {
				t.Errorf("expected %t, got %t", tt.want, got)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	base := func() *Branch {
		return NewBranch("").
			SetInt("a", 1).
			EmptyLine().
			AddBranch(NewBranch("x").SetEndComment("e", true))
	}
	if !Equal(base(), base()) {
		t.Error("expected equal")
	}
	tests := []struct {
		name string
		edit func(*Branch)
	}{
		{"value", func(b *Branch) { b.SetInt("a", 2) }},
		{"blank", func(b *Branch) { b.EmptyLine() }},
		{"comment", func(b *Branch) { b.Start().LineComment("c") }},
		{"child comment", func(b *Branch) { b.Branch("x").SetEndComment("f", true) }},
		{"name", func(b *Branch) { b.Name = "r" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.edit(b)
			if Equal(base(), b) {
				t.Error("expected not equal")
			}
		})
	}
}
