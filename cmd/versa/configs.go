package main

import (
	"fmt"
	"io"
	"os"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/eval"
	"github.com/versa-format/versa/format"
	"github.com/versa-format/versa/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Lenient bool `cli:"name=lenient desc='recover from malformed input'"`
	Indent  int  `cli:"name=indent desc='spaces per nesting level'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.Lenient(cfg.Lenient),
		parse.WithFilename(file),
	}
}

// inFormat returns the format of file: -I if given, else by suffix.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, err := format.FromPath(file); err == nil {
		return f
	}
	return format.VersaFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.VersaFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorize reports whether output to w is colored: with -color, or on a
// terminal unless -color=false.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=r desc='print strings without quotes'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result to the file'"`

	Set *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Template bool `cli:"name=template desc='keep the template shape, user values win (default)'"`
	Additive bool `cli:"name=additive desc='add template entries missing from user, keep user layout'"`
	Diff     bool `cli:"name=diff desc='show the changes to user instead of the result'"`
	Write    bool `cli:"name=w desc='write the result to the user file'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Data    bool `cli:"name=data desc='compare data, ignoring comments and layout'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File     bool `cli:"name=f desc='patch arg is a file path'"`
	JSON6902 bool `cli:"name=json6902 desc='patch is a JSON patch (RFC 6902), not a merge patch'"`
	Write    bool `cli:"name=w desc='write the result to the file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env     eval.Env
	Symbols bool `cli:"name=symbols desc='show available functions'"`

	Eval *cli.Command
}

type ExpandConfig struct {
	*MainConfig
	Env   eval.Env
	Write bool `cli:"name=w desc='write the result to the file'"`

	Expand *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}
