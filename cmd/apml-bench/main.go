package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/report"
	"github.com/aosc-dev/go-apml/tree"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

type Config struct {
	Profile bool `cli:"name=profile desc='write a CPU profile to the current directory'"`

	Bench *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Bench, "apml-bench").
		WithSynopsis("apml-bench [-profile] [tree]").
		WithDescription("Evaluate every package of an ABBS tree and report counts and timing.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	var tr *tree.Tree
	switch len(args) {
	case 0:
		tr, err = tree.FromEnv()
		if err != nil {
			return fmt.Errorf("%w: apml-bench needs a tree argument or TREE set", cli.ErrUsage)
		}
	case 1:
		tr = tree.Open(args[0])
	default:
		return fmt.Errorf("%w: apml-bench takes at most one tree argument", cli.ErrUsage)
	}
	if cfg.Profile {
		popts := []func(*profile.Profile){profile.CPUProfile, profile.ProfilePath(".")}
		if debug.Quiet() {
			popts = append(popts, profile.Quiet)
		}
		defer profile.Start(popts...).Stop()
	}
	return bench(cc, tr)
}

func bench(cc *cli.Context, tr *tree.Tree) error {
	start := time.Now()
	pkgs, err := tr.Packages()
	if err != nil {
		return err
	}
	var recipes, vars, failures int
	for _, pkg := range pkgs {
		ses, err := tree.OpenSession(pkg)
		if err != nil {
			failures++
			report.Render(os.Stderr, report.New(report.Error,
				fmt.Sprintf("%s/%s: %v", pkg.Section, pkg.Name, err)))
			continue
		}
		for _, r := range ses.Recipes {
			env, err := r.Env()
			if err != nil {
				failures++
				report.Render(os.Stderr,
					report.FromError(r.Defines.Path(), r.Defines.Bytes(), err))
				continue
			}
			recipes++
			vars += len(env)
		}
	}
	elapsed := time.Since(start)
	fmt.Fprintf(cc.Out, "%d packages, %d recipes, %d variables in %s\n",
		len(pkgs), recipes, vars, elapsed.Round(time.Millisecond))
	if failures > 0 {
		fmt.Fprintf(cc.Out, "%d failures\n", failures)
		return cli.ExitCodeErr(1)
	}
	return nil
}
