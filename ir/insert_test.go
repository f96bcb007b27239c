package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCursor(t *testing.T) {
	newDoc := func() *Branch {
		return NewBranch("").
			SetInt("a", 1).
			AddBranch(NewBranch("x")).
			SetInt("b", 2)
	}
	tests := []struct {
		name string
		edit func(b *Branch)
		want []string
	}{
		{
			name: "before value",
			edit: func(b *Branch) { b.Before("b").LineComment("c") },
			want: []string{"a", "x", "//c", "b"},
		},
		{
			name: "after value chained",
			edit: func(b *Branch) { b.After("a").EmptyLine().HashComment("c").EmptyLine() },
			want: []string{"a", "", "#c", "", "x", "b"},
		},
		{
			name: "before branch",
			edit: func(b *Branch) { b.BeforeBranch("x").EmptyLine() },
			want: []string{"a", "", "x", "b"},
		},
		{
			name: "after branch",
			edit: func(b *Branch) { b.AfterBranch("x").Comment("c", true) },
			want: []string{"a", "x", "//c", "b"},
		},
		{
			name: "missing key appends",
			edit: func(b *Branch) { b.Before("zz").LineComment("c") },
			want: []string{"a", "x", "b", "//c"},
		},
		{
			name: "missing branch appends",
			edit: func(b *Branch) { b.AfterBranch("zz").EmptyLine() },
			want: []string{"a", "x", "b", ""},
		},
		{
			name: "start",
			edit: func(b *Branch) { b.Start().LineComment("1").LineComment("2") },
			want: []string{"//1", "//2", "a", "x", "b"},
		},
		{
			name: "end",
			edit: func(b *Branch) { b.End().EmptyLine() },
			want: []string{"a", "x", "b", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newDoc()
			tt.edit(b)
			if diff := cmp.Diff(tt.want, entryNames(b)); diff != "" {
				t.Errorf("order (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"a", "b"}, b.Keys()); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCursorIndex(t *testing.T) {
	b := NewBranch("").SetInt("a", 1).SetInt("b", 2)
	c := b.After("a")
	if c.Index() != 1 || c.Branch() != b {
		t.Fatalf("unexpected cursor %+v", c)
	}
	c = c.EmptyLine()
	if c.Index() != 2 {
		t.Errorf("expected advanced cursor, got %d", c.Index())
	}
}
