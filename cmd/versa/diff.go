package main

import (
	"fmt"
	"io"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	var differs bool
	if cfg.Data {
		differs, err = diffData(cfg, cc.Out, a, b)
	} else {
		d := libdiff.Unified(encode.MustString(a), encode.MustString(b), cfg.colorize(cc.Out))
		differs = d != ""
		_, err = io.WriteString(cc.Out, d)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffData(cfg *DiffConfig, w io.Writer, a, b *ir.Branch) (bool, error) {
	cs := libdiff.Diff(a, b)
	opts := cfg.encOpts(w)
	for _, c := range cs {
		var line string
		switch {
		case c.IsBranch() && c.Op == libdiff.Insert:
			line = fmt.Sprintf("+ %s {...}", c.Path)
		case c.IsBranch():
			line = fmt.Sprintf("- %s {...}", c.Path)
		case c.Op == libdiff.Insert:
			line = fmt.Sprintf("+ %s = %s", c.Path, encode.ValueString(c.To, opts...))
		case c.Op == libdiff.Delete:
			line = fmt.Sprintf("- %s = %s", c.Path, encode.ValueString(c.From, opts...))
		default:
			line = fmt.Sprintf("~ %s = %s -> %s", c.Path,
				encode.ValueString(c.From, opts...), encode.ValueString(c.To, opts...))
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return false, err
		}
	}
	return len(cs) > 0, nil
}
