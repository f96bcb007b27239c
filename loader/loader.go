package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/versa-format/versa/debug"
	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/merge"
	"github.com/versa-format/versa/parse"
)

// Loader reads a document file into bound variables.
//
// Assignments to bound variables are not synchronized with readers of
// those variables; a program using [Loader.Watch] must arrange that
// itself.
type Loader struct {
	path        string
	bindings    []Binding
	fillMissing bool
	encOpts     []encode.EncodeOption

	mu  sync.Mutex
	doc *ir.Branch
}

type Option func(*Loader)

// FillMissing makes Load add the defaults the file lacks and rewrite the
// file when it did so. Existing entries and their layout are kept.
func FillMissing(v bool) Option {
	return func(l *Loader) {
		l.fillMissing = v
	}
}

// EncodeOptions sets the options used to write the file.
func EncodeOptions(opts ...encode.EncodeOption) Option {
	return func(l *Loader) {
		l.encOpts = opts
	}
}

// New returns a Loader for the file at path.
func New(path string, bindings []Binding, opts ...Option) *Loader {
	l := &Loader{path: path, bindings: bindings}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loader) Path() string {
	return l.path
}

// Doc returns the document last read, or nil.
func (l *Loader) Doc() *ir.Branch {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doc
}

// Defaults returns the document holding the defaults of all bindings.
// Each top level entry is followed by a blank line.
func (l *Loader) Defaults() *ir.Branch {
	doc := ir.NewBranch("")
	for _, b := range l.bindings {
		if isDecoration(b) {
			continue
		}
		first, _, nested := strings.Cut(b.Path(), ".")
		fresh := !nested || doc.Branch(first) == nil
		b.Default(doc)
		if fresh {
			doc.EmptyLine()
		}
	}
	for _, b := range l.bindings {
		if isDecoration(b) {
			b.Default(doc)
		}
	}
	return doc
}

// Load creates the file from the defaults if it does not exist, then reads
// it and applies every binding.
func (l *Loader) Load() error {
	_, err := os.Stat(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if debug.Load() {
			debug.Logf("creating %s from defaults\n", l.path)
		}
		if dir := filepath.Dir(l.path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := encode.WriteFile(l.Defaults(), l.path, l.encOpts...); err != nil {
			return fmt.Errorf("could not write %s: %w", l.path, err)
		}
	case err != nil:
		return err
	}
	doc, err := parse.ParseFile(l.path)
	if err != nil {
		return err
	}
	if l.fillMissing {
		if n := merge.Additive(doc, l.Defaults()); n > 0 {
			if debug.Load() {
				debug.Logf("added %d defaults to %s\n", n, l.path)
			}
			if err := encode.WriteFile(doc, l.path, l.encOpts...); err != nil {
				return fmt.Errorf("could not write %s: %w", l.path, err)
			}
		}
	}
	return l.apply(doc)
}

// Reload reads the file again and applies every binding. Unlike Load it
// never writes the file.
func (l *Loader) Reload() error {
	doc, err := parse.ParseFile(l.path)
	if err != nil {
		return err
	}
	return l.apply(doc)
}

func (l *Loader) apply(doc *ir.Branch) error {
	var errs []error
	for _, b := range l.bindings {
		if err := b.Apply(doc); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", l.path, err)
	}
	l.mu.Lock()
	l.doc = doc
	l.mu.Unlock()
	if debug.Load() {
		debug.Logf("loaded %s:\n%v", l.path, doc)
	}
	return nil
}
