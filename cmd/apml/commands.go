package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "apml").
		WithSynopsis("apml [opts] command [opts]").
		WithDescription("apml is a tool for working with APML package metadata files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apmlMain(cfg, cc, args)
		}).
		WithSubs(
			LexCommand(cfg),
			EmitCommand(cfg),
			EvalCommand(cfg),
			FmtCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			AddCommand(cfg),
			RmCommand(cfg),
			PatchCommand(cfg),
			VarsCommand(cfg),
			PkgsCommand(cfg))
}

func LexCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LexConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("lex").
		WithAliases("l").
		WithSynopsis("lex [files]").
		WithDescription("dump token streams and check files re-emit byte for byte").
		WithRun(func(cc *cli.Context, args []string) error {
			return lexCmd(cfg, cc, args)
		})
	cfg.Lex = cmd
	return cmd
}

func EmitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EmitConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("emit").
		WithSynopsis("emit [files]").
		WithDescription("parse files tolerantly and write them back out").
		WithRun(func(cc *cli.Context, args []string) error {
			return emitCmd(cfg, cc, args)
		})
	cfg.Emit = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-O env|json|yaml] [files]").
		WithDescription("evaluate files and print their variables, sorted by name").
		WithOpts(&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: env/e, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt(), "(format)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("lower files to their canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <key> [files]").
		WithDescription("print the literal value of a key, one array element per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return getCmd(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithSynopsis("set [-w] <key> <value> [files]").
		WithDescription("rewrite the value of a key, keeping the line's comments and layout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return setCmd(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("add").
		WithSynopsis("add [-w] <key> <element> [files]").
		WithDescription("append one element to an array key").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return addCmd(cfg, cc, args)
		})
	cfg.Add = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("rm").
		WithSynopsis("rm [-w] <key> [files]").
		WithDescription("remove every assignment to a key, along with its own comments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rmCmd(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-s|-f] [-w] <patch> [files]").
		WithDescription("apply an RFC 6902 JSON patch to the top-level keys of files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("vars").
		WithAliases("v").
		WithSynopsis("vars <predicate> [files]").
		WithDescription("print evaluated variables matching a predicate over {name, value, kind}").
		WithRun(func(cc *cli.Context, args []string) error {
			return varsCmd(cfg, cc, args)
		})
	cfg.Vars = cmd
	return cmd
}

func PkgsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PkgsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("pkgs").
		WithSynopsis("pkgs [-e] [tree]").
		WithDescription("walk an ABBS tree and list its packages, the TREE env naming the default tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pkgsCmd(cfg, cc, args)
		})
	cfg.Pkgs = cmd
	return cmd
}
