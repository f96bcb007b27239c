package main

import (
	"fmt"
	"os"

	"github.com/versa-format/versa/convert"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch: %w", err)
		}
	}
	file := args[1]
	b, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if cfg.JSON6902 {
		err = convert.ApplyPatch(b, p)
	} else {
		err = convert.ApplyMergePatch(b, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return output(cfg.MainConfig, cc, cfg.Write, file, b)
}
