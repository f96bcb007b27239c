package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pathDoc() *Branch {
	return NewBranch("").
		SetString("version", "1.0").
		AddBranch(NewBranch("database").
			SetString("host", "localhost").
			AddBranch(NewBranch("pool").SetInt("size", 10).SetFloat("ratio", 0.5))).
		AddBranch(NewBranch("dup").SetInt("n", 1)).
		AddBranch(NewBranch("dup").SetInt("n", 2).SetBool("only", true)).
		Set("tags", FromList(FromString("a"), FromString("b"))).
		Set("ports", FromList(FromInt32(1), FromInt64(2))).
		Set("hosts", FromBranches(NewBranch("").SetString("name", "h1")))
}

func TestResolve(t *testing.T) {
	b := pathDoc()
	tests := []struct {
		path  string
		found bool
	}{
		{"version", true},
		{"database.host", true},
		{"database.pool.size", true},
		{"size", false},
		{"pool.size", false},
		{"database.missing.size", false},
		{"dup.n", true},
		{"dup.only", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := b.Resolve(tt.path)
			if (v != nil) != tt.found {
				t.Errorf("expected found=%t, got %v", tt.found, v)
			}
			if b.HasPath(tt.path) != tt.found {
				t.Errorf("HasPath disagrees")
			}
		})
	}
	if b.Resolve("database.pool.size") != b.Branch("database").Branch("pool").Value("size") {
		t.Error("dot path does not agree with direct lookup")
	}
	if n := b.GetIntOr("dup.n", 0); n != 1 {
		t.Errorf("expected first dup, got %d", n)
	}
}

func TestFindAnywhere(t *testing.T) {
	b := pathDoc()
	if v := b.FindAnywhere("size"); v == nil || v.Int != 10 {
		t.Errorf("expected size 10, got %v", v)
	}
	if v := b.FindAnywhere("only"); v == nil {
		t.Error("expected only in second dup")
	}
	if b.HasKey("missing") {
		t.Error("unexpected missing key")
	}
	if b.FindAnywhere("name") != nil {
		t.Error("FindAnywhere must not enter lists of branches")
	}
}

func TestGetBranch(t *testing.T) {
	b := pathDoc()
	if p := b.GetBranch("database.pool"); p == nil || p.Name != "pool" {
		t.Errorf("expected pool, got %v", p)
	}
	if b.GetBranch("database.host") != nil {
		t.Error("a value is not a branch")
	}
}

func TestTypedGetters(t *testing.T) {
	b := pathDoc()

	if s, err := b.GetString("database.host"); err != nil || s != "localhost" {
		t.Errorf("GetString: %q %v", s, err)
	}
	if n, err := b.GetInt64("database.pool.size"); err != nil || n != 10 {
		t.Errorf("GetInt64: %d %v", n, err)
	}
	if f, err := b.GetFloat64("database.pool.size"); err != nil || f != 10 {
		t.Errorf("GetFloat64 of int: %v %v", f, err)
	}
	if _, err := b.GetInt("database.pool.ratio"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatch, got %v", err)
	}
	if _, err := b.GetBool("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := b.GetString("database.pool.size"); err == nil || err.Error() != `type mismatch: "database.pool.size" is Int32, not String` {
		t.Errorf("unexpected error %v", err)
	}
	ss, err := b.GetStringList("tags")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, ss); diff != "" {
		t.Errorf("GetStringList (-want +got):\n%s", diff)
	}
	is, err := b.GetIntList("ports")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, is); diff != "" {
		t.Errorf("GetIntList (-want +got):\n%s", diff)
	}
	if _, err := b.GetIntList("tags"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected mismatch, got %v", err)
	}
	bs, err := b.GetBranchList("hosts")
	if err != nil || len(bs) != 1 {
		t.Fatalf("GetBranchList: %v %v", bs, err)
	}

	if got := b.GetStringOr("database.pool.size", "def"); got != "def" {
		t.Errorf("expected default on mismatch, got %q", got)
	}
	if got := b.GetIntOr("missing", 7); got != 7 {
		t.Errorf("expected default on absence, got %d", got)
	}
	if got := b.GetBoolOr("dup.only", false); got {
		t.Errorf("dup.only resolves through the first dup only")
	}
	if got := b.GetFloat64Or("database.pool.ratio", 0); got != 0.5 {
		t.Errorf("GetFloat64Or: %v", got)
	}
	if got := b.GetStringListOr("ports", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Errorf("GetStringListOr: %v", got)
	}
}
