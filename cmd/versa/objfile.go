package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/versa-format/versa/convert"
	"github.com/versa-format/versa/ir"

	"github.com/scott-cotton/cli"
)

// readDoc reads and decodes file, "-" being stdin.
func readDoc(cfg *MainConfig, cc *cli.Context, file string) (*ir.Branch, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	b, err := convert.Decode(d, cfg.inFormat(file), cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return b, nil
}

// writeDoc encodes b to w in the output format.
func writeDoc(cfg *MainConfig, w io.Writer, b *ir.Branch) error {
	return convert.Encode(b, w, cfg.outFormat(), cfg.encOpts(w)...)
}

// writeBack replaces file with b, encoded in the format file was read in.
func writeBack(cfg *MainConfig, file string, b *ir.Branch) error {
	if file == "-" {
		return fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
	}
	buf := bytes.NewBuffer(nil)
	if err := convert.Encode(b, buf, cfg.inFormat(file), cfg.encOpts(buf)...); err != nil {
		return err
	}
	if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
		return err
	}
	theLog.Info("wrote", "file", file)
	return nil
}

// output writes b to file with -w, else to the command output.
func output(cfg *MainConfig, cc *cli.Context, write bool, file string, b *ir.Branch) error {
	if write {
		return writeBack(cfg, file, b)
	}
	return writeDoc(cfg, cc.Out, b)
}

// forFiles calls f for each of files, or for stdin if there are none,
// writing a blank line between outputs.
func forFiles(cc *cli.Context, files []string, f func(file string) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := f(file); err != nil {
			return err
		}
	}
	return nil
}
