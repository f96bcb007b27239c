package main

import (
	"fmt"
	"io"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
	"github.com/versa-format/versa/libdiff"
	vmerge "github.com/versa-format/versa/merge"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Template && cfg.Additive {
		return fmt.Errorf("%w: at most one of -template -additive", cli.ErrUsage)
	}
	if cfg.Diff && cfg.Write {
		return fmt.Errorf("%w: at most one of -diff -w", cli.ErrUsage)
	}
	userFile := args[0]
	user, err := readDoc(cfg.MainConfig, cc, userFile)
	if err != nil {
		return err
	}
	tmpl, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	before := encode.MustString(user)
	var res *ir.Branch
	if cfg.Additive {
		res = user.Clone()
		n := vmerge.Additive(res, tmpl)
		theLog.Debug("additive merge", "added", n)
	} else {
		res = vmerge.TemplateFirst(user, tmpl)
	}
	if cfg.Diff {
		d := libdiff.Unified(before, encode.MustString(res), cfg.colorize(cc.Out))
		_, err := io.WriteString(cc.Out, d)
		return err
	}
	return output(cfg.MainConfig, cc, cfg.Write, userFile, res)
}
