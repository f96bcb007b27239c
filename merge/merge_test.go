package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/parse"
)

func mustParse(t *testing.T, s string) *ir.Branch {
	t.Helper()
	b, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestTemplateFirst(t *testing.T) {
	tests := []struct {
		name       string
		user, tmpl string
		out        string
	}{
		{
			name: "keep user value",
			user: "port = 2942\n",
			tmpl: "port = 3306\ntimeout = 60000\n",
			out:  "port = 2942\ntimeout = 60000\n",
		},
		{
			name: "template layout",
			user: "// mine\ntimeout = 5\n\n\nport = 2942 // mine\n",
			tmpl: "# db\nport = 3306\n\ntimeout = 60000\n",
			out:  "# db\nport = 2942 // mine\n\ntimeout = 5\n",
		},
		{
			name: "drop user only",
			user: "a = 1\nextra = 2\nold {\n    x = 1\n}\n",
			tmpl: "a = 0\n",
			out:  "a = 1\n",
		},
		{
			name: "user value untouched",
			user: "port = 2942\n",
			tmpl: "port = 3306 // default port\n",
			out:  "port = 2942\n",
		},
		{
			name: "user kind wins",
			user: "port = \"auto\"\n",
			tmpl: "port = 3306\n",
			out:  "port = \"auto\"\n",
		},
		{
			name: "nested",
			user: `database {
    host = "localhost"
    port = 2942
}
`,
			tmpl: `database { // db
    host = "127.0.0.1"
    port = 3306
    timeout = 60000

    pool {
        size = 10
    }
} // end
`,
			out: `database { // db
    host = "localhost"
    port = 2942
    timeout = 60000

    pool {
        size = 10
    }
} // end
`,
		},
		{
			name: "first duplicate branch",
			user: "x {\n    n = 1\n}\nx {\n    n = 2\n}\n",
			tmpl: "x {\n    n = 0\n}\nx {\n    n = 0\n}\n",
			out:  "x {\n    n = 1\n}\nx {\n    n = 1\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := mustParse(t, tt.user)
			tmpl := mustParse(t, tt.tmpl)
			res := TemplateFirst(user, tmpl)
			if diff := cmp.Diff(tt.out, encode.MustString(res)); diff != "" {
				t.Errorf("merge (-want +got):\n%s", diff)
			}
			if got := encode.MustString(user); got != tt.user {
				t.Errorf("user modified:\n%s", got)
			}
			if got := encode.MustString(tmpl); got != tt.tmpl {
				t.Errorf("template modified:\n%s", got)
			}
		})
	}
}

func TestTemplateFirstShape(t *testing.T) {
	user := mustParse(t, "b = 2\nc {\n    d = 4\n}\nz = 26\n")
	tmpl := mustParse(t, "# t\na = 1\n\nb = 0\nc { // c\n    d = 0\n    e = 5\n}\n")
	res := TemplateFirst(user, tmpl)

	kinds := func(b *ir.Branch) []ir.EntryKind {
		var res []ir.EntryKind
		for _, e := range b.Entries() {
			res = append(res, e.Kind)
		}
		return res
	}
	if diff := cmp.Diff(kinds(tmpl), kinds(res)); diff != "" {
		t.Errorf("shape (-want +got):\n%s", diff)
	}
	for _, k := range []string{"b", "c.d"} {
		if !ir.EqualData(user.Resolve(k), res.Resolve(k)) {
			t.Errorf("%s: expected user value", k)
		}
	}
	if res.HasPath("z") {
		t.Error("z should be dropped")
	}
}

func TestTemplateFirstDetached(t *testing.T) {
	user := mustParse(t, "tags = [\"u\"] // u\nc {\n    d = 4\n}\n")
	tmpl := mustParse(t, "tags = [\"t\"]\nc {\n    d = 0\n}\nhosts = [\n    {\n        h = 1\n    }\n]\n")
	res := TemplateFirst(user, tmpl)

	res.Value("tags").List[0].String = "x"
	res.Value("tags").Comment().Text = "x"
	res.Branch("c").SetInt("d", 9)
	res.Value("hosts").Branches[0].SetInt("h", 9)
	res.Start().LineComment("x")

	if got := encode.MustString(user); got != "tags = [\"u\"] // u\nc {\n    d = 4\n}\n" {
		t.Errorf("user aliased:\n%s", got)
	}
	if got := encode.MustString(tmpl); got != "tags = [\"t\"]\nc {\n    d = 0\n}\nhosts = [\n    {\n        h = 1\n    }\n]\n" {
		t.Errorf("template aliased:\n%s", got)
	}
}

func TestAdditive(t *testing.T) {
	tests := []struct {
		name           string
		user, defaults string
		out            string
		added          int
	}{
		{
			name:     "fill missing",
			user:     "debug = true\n",
			defaults: "debug = false\nregion = \"us\"\n",
			out:      "debug = true\nregion = \"us\"\n",
			added:    1,
		},
		{
			name:     "keep layout",
			user:     "// mine\n\nb = 2\n\ndb {\n    size = 1 // small\n}\n",
			defaults: "a = 1\nb = 0\ndb {\n    size = 10\n    max = 20\n}\npool {\n    n = 3\n}\n",
			out:      "// mine\n\nb = 2\n\ndb {\n    size = 1 // small\n    max = 20\n}\na = 1\npool {\n    n = 3\n}\n",
			added:    3,
		},
		{
			name:     "nothing to add",
			user:     "a = \"x\"\n",
			defaults: "a = 1\n",
			out:      "a = \"x\"\n",
			added:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := mustParse(t, tt.user)
			defaults := mustParse(t, tt.defaults)
			if n := Additive(user, defaults); n != tt.added {
				t.Errorf("expected %d added, got %d", tt.added, n)
			}
			got := encode.MustString(user)
			if diff := cmp.Diff(tt.out, got); diff != "" {
				t.Errorf("merge (-want +got):\n%s", diff)
			}
			if n := Additive(user, defaults); n != 0 {
				t.Errorf("second merge added %d", n)
			}
			if again := encode.MustString(user); again != got {
				t.Errorf("second merge changed the document:\n%s", again)
			}
			if d := encode.MustString(defaults); d != tt.defaults {
				t.Errorf("defaults modified:\n%s", d)
			}
		})
	}
}

func TestAdditiveDetached(t *testing.T) {
	user := ir.NewBranch("")
	defaults := ir.NewBranch("").
		Set("tags", ir.FromList(ir.FromString("a"))).
		AddBranch(ir.NewBranch("db").SetInt("size", 10))
	Additive(user, defaults)

	user.Value("tags").List[0].String = "z"
	user.Branch("db").SetInt("size", 1)

	if s := defaults.Value("tags").List[0].String; s != "a" {
		t.Errorf("list aliased: %q", s)
	}
	if n := defaults.GetIntOr("db.size", 0); n != 10 {
		t.Errorf("branch aliased: %d", n)
	}
}
