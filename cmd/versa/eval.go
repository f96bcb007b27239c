package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/eval"
	"github.com/versa-format/versa/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Symbols {
		fmt.Fprintf(cc.Out, "available functions:\n")
		for _, s := range eval.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return forFiles(cc, args[1:], func(file string) error {
		b, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := eval.Eval(b, src, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		return writeResult(cfg.MainConfig, cc.Out, res)
	})
}

func writeResult(cfg *MainConfig, w io.Writer, res any) error {
	if res == nil {
		_, err := io.WriteString(w, "null\n")
		return err
	}
	if m, ok := res.(map[string]any); ok {
		b, err := ir.FromMap(m)
		if err != nil {
			return err
		}
		return writeDoc(cfg, w, b)
	}
	v, err := eval.ToValue(res)
	if err != nil {
		return err
	}
	if err := encode.EncodeValue(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	return forFiles(cc, args, func(file string) error {
		b, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := eval.ExpandEnv(b, cfg.Env); err != nil {
			return fmt.Errorf("error expanding %s: %w", file, err)
		}
		return output(cfg.MainConfig, cc, cfg.Write, file, b)
	})
}

// envFunc sets a variable from "path=val", val being read as YAML and path
// naming nested maps.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
