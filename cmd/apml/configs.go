package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color output even when not a terminal'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colored reports whether dumps written to w should be styled: forced
// by -color, otherwise only when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type LexConfig struct {
	*MainConfig

	Lex *cli.Command
}

type EmitConfig struct {
	*MainConfig

	Emit *cli.Command
}

type EvalConfig struct {
	*MainConfig
	OutFormat format.Format

	Eval *cli.Command
}

func (cfg *EvalConfig) fmtOpt() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = f
		return f, nil
	})
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d aliases=diff desc='print a diff against the canonical form'"`
	Write bool `cli:"name=w aliases=write desc='rewrite files in place'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w aliases=write desc='rewrite files in place'"`

	Set *cli.Command
}

type AddConfig struct {
	*MainConfig
	Write bool `cli:"name=w aliases=write desc='rewrite files in place'"`

	Add *cli.Command
}

type RmConfig struct {
	*MainConfig
	Write bool `cli:"name=w aliases=write desc='rewrite files in place'"`

	Rm *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as a literal JSON string'"`
	File   bool `cli:"name=f desc='patch arg as a file path'"`
	Write  bool `cli:"name=w aliases=write desc='rewrite files in place'"`

	Patch *cli.Command
}

type VarsConfig struct {
	*MainConfig

	Vars *cli.Command
}

type PkgsConfig struct {
	*MainConfig
	Eval bool `cli:"name=e aliases=eval desc='evaluate every recipe of every package'"`

	Pkgs *cli.Command
}
