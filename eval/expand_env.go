package eval

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
)

// ExpandEnv expands expressions in the string values of doc in place,
// descending into child branches, lists and lists of branches.
//
// A string consisting of exactly one ".[expr]" is replaced by the value the
// expression produces, which may change its kind. Otherwise each "$[expr]"
// or ".[expr]" inside a string is replaced by the text of its result.
// Entry order, comments and assignment glyphs are kept.
func ExpandEnv(doc *ir.Branch, env Env) error {
	return expandBranch(doc, doc, env)
}

func expandBranch(doc, b *ir.Branch, env Env) error {
	for _, e := range b.Entries() {
		switch e.Kind {
		case ir.ValueEntry:
			repl, err := expandValue(doc, e.Value, env)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Value.Name, err)
			}
			if repl != e.Value {
				b.Set(e.Value.Name, repl)
			}
		case ir.BranchEntry:
			if err := expandBranch(doc, e.Branch, env); err != nil {
				return fmt.Errorf("%s: %w", e.Branch.Name, err)
			}
		}
	}
	return nil
}

// expandValue returns v, expanded in place, or a replacement.
func expandValue(doc *ir.Branch, v *ir.Value, env Env) (*ir.Value, error) {
	switch v.Kind {
	case ir.StringKind:
		if raw := GetRaw(v.String); raw != "" {
			res, err := Eval(doc, raw, env)
			if err != nil {
				return nil, err
			}
			repl, err := ToValue(res)
			if err != nil {
				return nil, fmt.Errorf("could not translate result of %q: %w", raw, err)
			}
			repl.Name = v.Name
			return repl, nil
		}
		s, err := expandString(doc, v.String, env)
		if err != nil {
			return nil, err
		}
		v.String = s
	case ir.ListKind:
		for i, elt := range v.List {
			repl, err := expandValue(doc, elt, env)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			v.List[i] = repl
		}
	case ir.ListOfBranchesKind:
		for i, b := range v.Branches {
			if err := expandBranch(doc, b, env); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
	}
	return v, nil
}

// GetRaw returns the expression of a string of the form ".[expr]", or ""
// if v has another form.
func GetRaw(v string) string {
	if !isRawEnvRef(v) {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

func isRawEnvRef(s string) bool {
	return strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]") &&
		!strings.Contains(s[2:len(s)-1], ".[") && !strings.Contains(s[2:len(s)-1], "$[")
}

// ExpandString expands "$[expr]" and ".[expr]" in v against env, without a
// document.
//
// Inside an expression a backslash escapes the next character, so "\]"
// does not close it. An expression with no closing "]" is kept literally.
func ExpandString(v string, env Env) (string, error) {
	return expandString(nil, v, env)
}

func expandString(doc *ir.Branch, v string, env Env) (string, error) {
	var out, key []byte
	start := -1
	n := len(v)
	for i := 0; i < n; i++ {
		c := v[i]
		if start == -1 {
			if (c == '$' || c == '.') && i+1 < n && v[i+1] == '[' {
				start = i
				key = key[:0]
				i++
				continue
			}
			out = append(out, c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < n {
				i++
				key = append(key, v[i])
			}
		case ']':
			src := strings.TrimSpace(string(key))
			res, err := Eval(doc, src, env)
			if err != nil {
				return "", err
			}
			d, err := anyToBytes(res)
			if err != nil {
				return "", fmt.Errorf("could not format result of %q: %w", src, err)
			}
			out = append(out, d...)
			start = -1
		default:
			key = append(key, c)
		}
	}
	if start != -1 {
		out = append(out, v[start:]...)
	}
	return string(out), nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case nil:
		return nil, nil
	default:
		val, err := ToValue(v)
		if err != nil {
			return nil, err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.EncodeValue(val, buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
