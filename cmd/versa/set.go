package main

import (
	"fmt"
	"strings"

	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires 3 args, got %v", cli.ErrUsage, args)
	}
	path, text, file := args[0], args[1], args[2]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	b, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	setPath(b, path, valueArg(text))
	return output(cfg.MainConfig, cc, cfg.Write, file, b)
}

// valueArg reads text as a value literal: a number, bool, quoted string or
// list. Anything else is taken as a plain string.
func valueArg(text string) *ir.Value {
	doc, err := parse.ParseString("v = " + text)
	if err == nil {
		if v := doc.Value("v"); v != nil && doc.Len() == 1 {
			return v
		}
	}
	return ir.FromString(text)
}

// setPath sets v at a dot path of b, adding missing branches.
func setPath(b *ir.Branch, path string, v *ir.Value) {
	parts := strings.Split(path, ".")
	for _, p := range parts[:len(parts)-1] {
		c := b.Branch(p)
		if c == nil {
			c = ir.NewBranch(p)
			b.AddBranch(c)
		}
		b = c
	}
	b.Set(parts[len(parts)-1], v)
}
