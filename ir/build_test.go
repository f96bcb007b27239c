package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func entryNames(b *Branch) []string {
	res := []string{}
	for _, e := range b.Entries() {
		switch e.Kind {
		case CommentEntry:
			res = append(res, e.Comment.Prefix()+e.Comment.Text)
		case BlankEntry:
			res = append(res, "")
		default:
			res = append(res, e.Name())
		}
	}
	return res
}

func TestBuildOrder(t *testing.T) {
	b := NewBranch("").
		AddLineComment(" header").
		SetString("host", "localhost").
		EmptyLine().
		SetInt("port", 3306).
		AddBranch(NewBranch("db").SetInt("size", 10)).
		AddHashComment(" tail")

	want := []string{"// header", "host", "", "port", "db", "# tail"}
	if diff := cmp.Diff(want, entryNames(b)); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"host", "port"}, b.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if len(b.Children()) != 1 || b.Branch("db") == nil {
		t.Fatalf("expected child db, got %v", b.Children())
	}
}

func TestSetReplaceInPlace(t *testing.T) {
	b := NewBranch("").SetInt("a", 1).SetInt("b", 2).SetInt("c", 3)
	b.SetValueComment("b", " keep", true)
	b.Value("b").Glyph = ':'

	b.SetString("b", "two")

	if diff := cmp.Diff([]string{"a", "b", "c"}, entryNames(b)); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	v := b.Value("b")
	if s, ok := v.AsString(); !ok || s != "two" {
		t.Errorf("expected two, got %v", v.Raw())
	}
	if c := v.Comment(); c == nil || c.Text != " keep" {
		t.Errorf("inline comment lost: %v", v.Comments)
	}
	if v.AssignGlyph() != ':' {
		t.Errorf("glyph lost: %q", v.AssignGlyph())
	}

	b.Set("b", FromInt(5).WithComment("new", false))
	if c := b.Value("b").Comment(); c.Text != "new" || c.Slash {
		t.Errorf("expected replaced comment, got %+v", c)
	}
	if n := len(b.Value("b").Comments); n != 1 {
		t.Errorf("expected 1 comment, got %d", n)
	}
}

func TestSetIntWidth(t *testing.T) {
	b := NewBranch("").SetInt("small", 3306).SetInt64("wide", 5).SetInt("big", 1<<40)
	tests := []struct {
		key  string
		kind Kind
	}{
		{"small", Int32Kind},
		{"wide", Int64Kind},
		{"big", Int64Kind},
	}
	for _, tt := range tests {
		if k := b.Value(tt.key).Kind; k != tt.kind {
			t.Errorf("%s: expected %s, got %s", tt.key, tt.kind, k)
		}
	}
}

func TestRemove(t *testing.T) {
	b := NewBranch("").
		SetInt("a", 1).
		AddBranch(NewBranch("x").SetInt("n", 1)).
		AddBranch(NewBranch("x").SetInt("n", 2)).
		SetInt("b", 2)

	if !b.RemoveValue("a") {
		t.Fatal("expected a removed")
	}
	if b.RemoveValue("a") {
		t.Error("removed a twice")
	}
	if b.Value("a") != nil {
		t.Error("a still indexed")
	}
	if !b.RemoveBranch("x") {
		t.Fatal("expected x removed")
	}
	if n := b.GetIntOr("x.n", 0); n != 2 {
		t.Errorf("expected second x to remain, got n=%d", n)
	}
	if diff := cmp.Diff([]string{"x", "b"}, entryNames(b)); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestBranchComments(t *testing.T) {
	b := NewBranch("").AddBranch(NewBranch("db"))
	b.SetStartCommentTo("db", " start", true).
		SetEndCommentTo("db", " end", false).
		SetStartCommentTo("missing", "x", true)

	db := b.Branch("db")
	if c := db.StartComment(); c == nil || c.Text != " start" || !c.Slash {
		t.Errorf("start comment: %+v", c)
	}
	if c := db.EndComment(); c == nil || c.Text != " end" || c.Slash {
		t.Errorf("end comment: %+v", c)
	}
	db.SetStartComment("again", false)
	if n := len(db.Comments); n != 2 {
		t.Errorf("expected 2 brace comments, got %d", n)
	}
	if b.Len() != 1 {
		t.Errorf("brace comments must not enter the order, len=%d", b.Len())
	}
}

func TestClone(t *testing.T) {
	src := NewBranch("").
		Set("tags", FromList(FromString("a"), FromString("b")).WithComment(" c", true)).
		AddBranch(NewBranch("db").SetInt("size", 10).SetStartComment(" s", true)).
		Set("hosts", FromBranches(NewBranch("").SetString("name", "h1"))).
		AddLineComment(" note").
		EmptyLine()

	cp := src.Clone()
	if !Equal(src, cp) {
		t.Fatal("clone not equal")
	}

	cp.Value("tags").List[0].String = "z"
	cp.Value("tags").Comment().Text = "changed"
	cp.Branch("db").SetInt("size", 11)
	cp.Branch("db").StartComment().Text = "changed"
	cp.Value("hosts").Branches[0].SetString("name", "h2")
	cp.Start().HashComment("inserted")

	if s := src.Value("tags").List[0].String; s != "a" {
		t.Errorf("list element aliased: %q", s)
	}
	if c := src.Value("tags").Comment().Text; c != " c" {
		t.Errorf("value comment aliased: %q", c)
	}
	if n := src.GetIntOr("db.size", 0); n != 10 {
		t.Errorf("child aliased: %d", n)
	}
	if c := src.Branch("db").StartComment().Text; c != " s" {
		t.Errorf("branch comment aliased: %q", c)
	}
	if s := src.Value("hosts").Branches[0].GetStringOr("name", ""); s != "h1" {
		t.Errorf("list branch aliased: %q", s)
	}
	if src.Len() != 5 {
		t.Errorf("order aliased, len=%d", src.Len())
	}
}
