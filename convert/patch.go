package convert

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/versa-format/versa/debug"
	"github.com/versa-format/versa/ir"
)

// ApplyMergePatch applies a JSON merge patch (RFC 7386) to b in place.
func ApplyMergePatch(b *ir.Branch, patch []byte) error {
	doc, err := ToJSON(b)
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return err
	}
	return reconcileJSON(b, out)
}

// ApplyPatch applies a JSON patch (RFC 6902) to b in place.
func ApplyPatch(b *ir.Branch, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	doc, err := ToJSON(b)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return err
	}
	return reconcileJSON(b, out)
}

func reconcileJSON(b *ir.Branch, d []byte) error {
	if debug.Patch() {
		debug.Logf("patch: result %s\n", d)
	}
	target, err := FromJSON(d)
	if err != nil {
		return err
	}
	Reconcile(b, target)
	return nil
}

// Reconcile edits b in place to hold the data of target while keeping as
// much of the layout of b as possible. Values with equal data are left
// alone; changed values are replaced in place, keeping their inline comment;
// new values and branches are appended in the order of target; entries
// absent from target are removed.
func Reconcile(b, target *ir.Branch) {
	for _, e := range target.Entries() {
		switch e.Kind {
		case ir.ValueEntry:
			key := e.Value.Name
			if b.Branch(key) != nil {
				removeBranches(b, key)
			}
			if old := b.Value(key); old != nil && sameData(old, e.Value) {
				continue
			}
			if debug.Patch() {
				debug.Logf("patch: set %q = %v\n", key, e.Value)
			}
			b.Set(key, e.Value.Clone())
		case ir.BranchEntry:
			name := e.Branch.Name
			b.RemoveValue(name)
			c := b.Branch(name)
			if c == nil {
				c = ir.NewBranch(name)
				b.AddBranch(c)
			}
			Reconcile(c, e.Branch)
		}
	}
	for _, k := range b.Keys() {
		if target.Value(k) == nil {
			if debug.Patch() {
				debug.Logf("patch: remove %q\n", k)
			}
			b.RemoveValue(k)
		}
	}
	for _, c := range b.Children() {
		if target.Branch(c.Name) == nil {
			removeBranches(b, c.Name)
		}
	}
}

func removeBranches(b *ir.Branch, name string) {
	for b.RemoveBranch(name) {
	}
}

func sameData(a, b *ir.Value) bool {
	if a.IsNumber() && b.IsNumber() {
		fa, _ := a.AsFloat64()
		fb, _ := b.AsFloat64()
		return fa == fb
	}
	return ir.EqualData(a, b)
}

// MergePatchBranch is ApplyMergePatch with the patch given as a branch.
func MergePatchBranch(b, patch *ir.Branch) error {
	d, err := ToJSON(patch)
	if err != nil {
		return fmt.Errorf("encoding patch: %w", err)
	}
	return ApplyMergePatch(b, d)
}
