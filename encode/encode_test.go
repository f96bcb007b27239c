package encode

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/versa-format/versa/ir"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Branch
		out  string
		opts []EncodeOption
	}{
		{
			name: "scalars",
			in: ir.NewBranch("").
				SetString("host", "localhost").
				SetInt("port", 3306).
				SetInt64("big", -1<<40).
				SetFloat("ratio", 0.5).
				SetFloat("whole", 2).
				Set("f32", ir.FromFloat32(0.1)).
				SetBool("on", true).
				SetBool("off", false),
			out: `host = "localhost"
port = 3306
big = -1099511627776
ratio = 0.5
whole = 2.0
f32 = 0.1
on = true
off = false
`,
		},
		{
			name: "comments and blanks",
			in: ir.NewBranch("").
				AddLineComment(" top").
				EmptyLine().
				Set("limit", ir.FromInt32(5).WithComment(" soft cap", true)).
				AddHashComment("hash"),
			out: "// top\n\nlimit = 5 // soft cap\n#hash\n",
		},
		{
			name: "nested",
			in: ir.NewBranch("").AddBranch(ir.NewBranch("db").
				SetStartComment(" s", true).
				SetEndComment(" e", false).
				SetInt("size", 10).
				AddBranch(ir.NewBranch("pool").SetInt("max", 4))),
			out: "db { // s\n    size = 10\n    pool {\n        max = 4\n    }\n} # e\n",
		},
		{
			name: "lists",
			in: ir.NewBranch("").
				Set("tags", ir.FromList(ir.FromString("a"), ir.FromString("b"), ir.FromString("c"))).
				Set("empty", ir.FromList()).
				Set("nested", ir.FromList(ir.FromList(ir.FromInt32(1)), ir.FromBool(true))),
			out: "tags = [\"a\", \"b\", \"c\"]\nempty = []\nnested = [[1], true]\n",
		},
		{
			name: "list of branches",
			in: ir.NewBranch("").AddBranch(ir.NewBranch("svc").Set("hosts", ir.FromBranches(
				ir.NewBranch("").SetString("name", "h1").SetEndComment(" one", true),
				ir.NewBranch("").SetString("name", "h2"),
			))),
			out: `svc {
    hosts = [
        {
            name = "h1"
        }, // one
        {
            name = "h2"
        }
    ]
}
`,
		},
		{
			name: "quoted keys and glyph",
			in: func() *ir.Branch {
				b := ir.NewBranch("").SetString("my key", "a\"b").SetInt("x", 1)
				b.Value("x").Glyph = ':'
				return b
			}(),
			out: "\"my key\" = \"a\\\"b\"\nx: 1\n",
		},
		{
			name: "indent and depth",
			in:   ir.NewBranch("").AddBranch(ir.NewBranch("a").SetInt("b", 1)),
			opts: []EncodeOption{Indent(2), Depth(1)},
			out:  "  a {\n    b = 1\n  }\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.in, buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.out, buf.String()); diff != "" {
				t.Errorf("encode (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		f    float64
		bits int
		out  string
	}{
		{1, 64, "1.0"},
		{-0.25, 64, "-0.25"},
		{1e21, 64, "1.0e+21"},
		{1.5e-7, 64, "1.5e-07"},
		{float64(float32(0.1)), 32, "0.1"},
		{float64(float32(0.1)), 64, "0.10000000149011612"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.f, tt.bits); got != tt.out {
			t.Errorf("FormatFloat(%v, %d): expected %q, got %q", tt.f, tt.bits, tt.out, got)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	b := ir.NewBranch("").SetInt("a", 1)
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{
		{Kind: ir.Int32Kind, Attr: ValueColor}: func(s string, _ ...any) string {
			return "<" + s + ">"
		},
	}
	got := MustString(b, EncodeColors(c))
	if got != "a = <1>\n" {
		t.Errorf("unexpected colored output %q", got)
	}
	if got := MustString(b, EncodeColors(nil)); got != "a = 1\n" {
		t.Errorf("unexpected plain output %q", got)
	}
}

func TestValueString(t *testing.T) {
	if got := ValueString(ir.FromList(ir.FromString("x"), ir.FromFloat64(2))); got != `["x", 2.0]` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	if err := Encode(nil, bytes.NewBuffer(nil)); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected encoding error, got %v", err)
	}
	b := ir.NewBranch("").Set("bad", &ir.Value{Kind: ir.Kind(99)})
	if err := Encode(b, bytes.NewBuffer(nil)); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected encoding error, got %v", err)
	}
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		for _, v := range []*ir.Value{ir.FromFloat64(f), ir.FromFloat32(float32(f)), ir.FromList(ir.FromFloat64(f))} {
			b := ir.NewBranch("").Set("f", v)
			if err := Encode(b, bytes.NewBuffer(nil)); !errors.Is(err, ErrEncoding) {
				t.Errorf("%v: expected encoding error, got %v", f, err)
			}
		}
	}
	if err := EncodeValue(ir.FromFloat64(math.NaN()), bytes.NewBuffer(nil)); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected encoding error, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.versa")
	b := ir.NewBranch("").SetString("a", "b")
	if err := WriteFile(b, path); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(d)) != `a = "b"` {
		t.Errorf("unexpected file content %q", d)
	}
}
