package main

import (
	"fmt"
	"io"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dot path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	found := false
	err = forFiles(cc, args[1:], func(file string) error {
		b, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		ok, err := getPath(cfg, cc.Out, b, path)
		found = found || ok
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPath(cfg *GetConfig, w io.Writer, b *ir.Branch, path string) (bool, error) {
	if v := b.Resolve(path); v != nil {
		s := encode.ValueString(v, cfg.encOpts(w)...)
		if cfg.Raw && v.IsString() {
			s = v.String
		}
		_, err := io.WriteString(w, s+"\n")
		return true, err
	}
	if c := b.GetBranch(path); c != nil {
		return true, writeDoc(cfg.MainConfig, w, c)
	}
	return false, nil
}
