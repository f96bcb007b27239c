package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tts := []tokTest{
		{
			in:    `host = "localhost"`,
			types: []TokenType{TWord, TAssign, TString},
			texts: []string{"host", "=", "localhost"},
		},
		{
			in:    "port: 3306\n",
			types: []TokenType{TWord, TAssign, TInteger},
			texts: []string{"port", ":", "3306"},
		},
		{
			in:    `ratio=-0.5`,
			types: []TokenType{TWord, TAssign, TFloat},
			texts: []string{"ratio", "=", "-0.5"},
		},
		{
			in:    `tags = ["a", b,3]`,
			types: []TokenType{TWord, TAssign, TLSquare, TString, TComma, TWord, TComma, TInteger, TRSquare},
			texts: []string{"tags", "=", "[", "a", ",", "b", ",", "3", "]"},
		},
		{
			in:    "db { // start\n}# end",
			types: []TokenType{TWord, TLCurl, TComment, TRCurl, TComment},
			texts: []string{"db", "{", " start", "}", " end"},
		},
		{
			in:    `path = a/b//c`,
			types: []TokenType{TWord, TAssign, TWord, TComment},
			texts: []string{"path", "=", "a/b", "c"},
		},
		{
			in:    `x = 1.2.3 y=1e5 z=-`,
			types: []TokenType{TWord, TAssign, TWord, TWord, TAssign, TWord, TWord, TAssign, TWord},
			texts: []string{"x", "=", "1.2.3", "y", "=", "1e5", "z", "=", "-"},
		},
		{
			in:    `s = "say \"hi\""`,
			types: []TokenType{TWord, TAssign, TString},
			texts: []string{"s", "=", `say "hi"`},
		},
		{
			in:    "\t\r\n  ",
			types: []TokenType{},
			texts: []string{},
		},
	}
	for _, tt := range tts {
		toks := Tokenize(nil, []byte(tt.in))
		types := []TokenType{}
		texts := []string{}
		for i := range toks {
			types = append(types, toks[i].Type)
			texts = append(texts, toks[i].String())
		}
		if diff := cmp.Diff(tt.types, types); diff != "" {
			t.Errorf("%q types (-want +got):\n%s", tt.in, diff)
		}
		if diff := cmp.Diff(tt.texts, texts); diff != "" {
			t.Errorf("%q texts (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeUnterminated(t *testing.T) {
	toks := Tokenize(nil, []byte("a = \"open\nb = 1"))
	if len(toks) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(toks))
	}
	str := &toks[2]
	if str.Type != TString || !str.Unterminated {
		t.Fatalf("expected unterminated string, got %s %v", str.Type, str.Unterminated)
	}
	if str.String() != "open" {
		t.Errorf("got %q", str.String())
	}
	if toks[3].Pos.Line() != 1 {
		t.Errorf("expected b on line 1, got %d", toks[3].Pos.Line())
	}
}

func TestTokenPositions(t *testing.T) {
	toks := Tokenize(nil, []byte("a = 1\n\n  b = 2 # c\n"))
	want := [][2]int{{0, 0}, {0, 2}, {0, 4}, {2, 2}, {2, 4}, {2, 6}, {2, 8}}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i := range toks {
		l, c := toks[i].Pos.LineCol()
		if l != want[i][0] || c != want[i][1] {
			t.Errorf("token %d (%s) at %d:%d, want %d:%d", i, toks[i].Info(), l, c, want[i][0], want[i][1])
		}
	}
	if toks[6].Slash {
		t.Errorf("expected hash comment")
	}
}

func TestNeedsQuote(t *testing.T) {
	for key, want := range map[string]bool{
		"host":       false,
		"max_conn":   false,
		"a.b":        false,
		"":           true,
		"two words":  true,
		"a=b":        true,
		"x#y":        true,
		"url//thing": true,
		"a/b":        false,
	} {
		if got := NeedsQuote(key); got != want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestQuotedToString(t *testing.T) {
	for in, want := range map[string]string{
		`"plain"`:       "plain",
		`"tab\there"`:   "tab\there",
		`"C:\path"`:     `C:\path`,
		`"unterminated`: "unterminated",
	} {
		if got := QuotedToString([]byte(in)); got != want {
			t.Errorf("QuotedToString(%s) = %q, want %q", in, got, want)
		}
	}
	if Quote(`a"b`) != `"a\"b"` {
		t.Errorf("got %s", Quote(`a"b`))
	}
}
