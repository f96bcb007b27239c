package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"

	"github.com/google/go-cmp/cmp"
)

type settings struct {
	name  string
	port  int
	host  string
	debug bool
	tags  []string
	ratio float64
}

func defaultSettings() *settings {
	return &settings{
		name: "server",
		port: 25565,
		host: "localhost",
		tags: []string{"a", "b"},
	}
}

func (s *settings) bindings() []Binding {
	return []Binding{
		String(&s.name, "name"),
		Int(&s.port, "net.port"),
		String(&s.host, "net.host"),
		Bool(&s.debug, "debug"),
		StringList(&s.tags, "tags"),
		BranchComment("net", "network", "end net"),
	}
}

const defaultsText = `name = "server"

net { # network
    port = 25565
    host = "localhost"
} # end net

debug = false

tags = ["a", "b"]

`

func TestDefaults(t *testing.T) {
	s := defaultSettings()
	l := New("unused", s.bindings())
	got := encode.MustString(l.Defaults())
	if diff := cmp.Diff(defaultsText, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.versa")
	s := defaultSettings()
	if err := New(path, s.bindings()).Load(); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultsText, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if s.name != "server" || s.port != 25565 {
		t.Errorf("got %+v", s)
	}
}

func writeFile(t *testing.T, path, s string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.versa")
	writeFile(t, path, `name = "x"
net {
    port = 1
}
debug: true
tags = []
`)
	s := defaultSettings()
	l := New(path, s.bindings())
	s.host = "changed"
	if err := l.Load(); err != nil {
		t.Fatal(err)
	}
	if s.name != "x" || s.port != 1 || !s.debug {
		t.Errorf("got %+v", s)
	}
	if s.host != "localhost" {
		t.Errorf("absent path should restore default, got %q", s.host)
	}
	if len(s.tags) != 0 {
		t.Errorf("tags: got %v", s.tags)
	}
	if l.Doc() == nil || l.Doc().GetStringOr("name", "") != "x" {
		t.Error("document not kept")
	}
}

func TestLoadTypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.versa")
	writeFile(t, path, "net {\n    port = \"high\"\n}\n")
	s := defaultSettings()
	err := New(path, s.bindings()).Load()
	if !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("got %v, want type mismatch", err)
	}
}

func TestFillMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.versa")
	writeFile(t, path, "// mine\nname = \"x\" # kept\n")
	s := defaultSettings()
	if err := New(path, s.bindings(), FillMissing(true)).Load(); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(d)
	if !strings.HasPrefix(got, "// mine\nname = \"x\" # kept\n") {
		t.Errorf("layout lost:\n%s", got)
	}
	for _, want := range []string{"debug = false", "port = 25565", "tags = [\"a\", \"b\"]"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
	if s.name != "x" {
		t.Errorf("name: got %q", s.name)
	}

	// nothing to add: file untouched
	if err := New(path, s.bindings(), FillMissing(true)).Load(); err != nil {
		t.Fatal(err)
	}
	d2, _ := os.ReadFile(path)
	if string(d2) != got {
		t.Errorf("file rewritten:\n%s", d2)
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.versa")
	s := defaultSettings()
	l := New(path, s.bindings())
	if err := l.Load(); err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, "name = \"y\"\n")
	if err := l.Reload(); err != nil {
		t.Fatal(err)
	}
	if s.name != "y" || s.port != 25565 {
		t.Errorf("got %+v", s)
	}
	os.Remove(path)
	if err := l.Reload(); err == nil {
		t.Error("expected error reloading a missing file")
	}
}

type endpoint struct {
	Host string
	Port int
}

type endpointAdapter struct{}

func (endpointAdapter) FromBranch(b *ir.Branch) (endpoint, error) {
	host, err := b.GetString("host")
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: b.GetIntOr("port", 80)}, nil
}

func (endpointAdapter) ToBranch(e endpoint, b *ir.Branch) {
	b.SetString("host", e.Host).SetInt("port", e.Port)
}

func TestAdapt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.versa")
	primary := endpoint{Host: "a", Port: 1}
	mirrors := []endpoint{{Host: "b", Port: 2}, {Host: "c", Port: 3}}
	bindings := []Binding{
		Adapt[endpoint](&primary, "primary", endpointAdapter{}),
		AdaptList[endpoint](&mirrors, "mirrors", endpointAdapter{}),
		BranchSpace("primary", true, true),
	}
	l := New(path, bindings)
	if err := l.Load(); err != nil {
		t.Fatal(err)
	}
	d, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(d), "\nprimary {\n") {
		t.Errorf("expected blank line before primary:\n%s", d)
	}

	writeFile(t, path, `primary {
    host = "z"
}
mirrors = [
    {
        host = "m"
        port = 9
    }
]
`)
	if err := l.Reload(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(endpoint{Host: "z", Port: 80}, primary); diff != "" {
		t.Errorf("primary (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]endpoint{{Host: "m", Port: 9}}, mirrors); diff != "" {
		t.Errorf("mirrors (-want +got):\n%s", diff)
	}

	writeFile(t, path, "primary {\n    port = 1\n}\n")
	if err := l.Reload(); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("got %v, want not found from adapter", err)
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.versa")
	s := defaultSettings()
	l := New(path, s.bindings())
	if err := l.Load(); err != nil {
		t.Fatal(err)
	}
	// shorter than the write interval below, so each write can settle
	defer func(d time.Duration) { WatchDebounce = d }(WatchDebounce)
	WatchDebounce = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan error, 8)
	done := make(chan error, 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		done <- l.Watch(ctx, func(err error) {
			select {
			case changes <- err:
			default:
			}
		})
	}()
	<-ready
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for seen := false; !seen; {
		select {
		case err := <-changes:
			if err != nil {
				// a reload may race a partial write
				continue
			}
			seen = l.Doc().GetStringOr("name", "") == "watched"
		case <-tick.C:
			// the watcher may not be registered yet; keep writing
			writeFile(t, path, "name = \"watched\"\n")
		case <-deadline:
			t.Fatal("no reload seen")
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch: %v", err)
	}
	if s.name != "watched" {
		t.Errorf("name: got %q", s.name)
	}
}
