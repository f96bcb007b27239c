package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forFiles(cc, args, func(file string) error {
		b, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, b)
	})
}
