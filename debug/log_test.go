package debug

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/versa-format/versa/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	b := ir.NewBranch("").SetInt("port", 8080)
	Logf("loaded:\n%v", b)
	Logf("value %v\n", b.Value("port"))
	Logf("keys %v\n", []any{"a"})
	got := buf.String()
	for _, want := range []string{"versa", "port = 8080", "value 8080", `"a"`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestLogfDisabled(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	SetEnabled(false)
	defer SetEnabled(true)

	Logf("hidden %d\n", 1)
	Logger().Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLogfUnencodable(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	b := ir.NewBranch("").SetFloat("f", math.Inf(1))
	Logf("tree %v", b)
	Logf("value %v", b.Value("f"))
	if got := buf.String(); strings.Count(got, "encoding error") != 2 {
		t.Errorf("expected both arguments to report the encoding error:\n%s", got)
	}
}
