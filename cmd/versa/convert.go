package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convertDocs(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil && cfg.InFormat == nil {
		return fmt.Errorf("%w: convert requires -O or -I", cli.ErrUsage)
	}
	return forFiles(cc, args, func(file string) error {
		b, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, b)
	})
}
