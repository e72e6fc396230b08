package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arpx/cli/cmd"
	"github.com/ardnew/arpx/pkg"
)

// CLI is the top-level command-line interface for arpx.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version information and quit." short:"V"`

	Check cmd.Check `cmd:"" help:"Validate job files."`
	Fmt   cmd.Fmt   `cmd:"" help:"Format a job file."`
	Query cmd.Query `cmd:"" help:"List processes matching an expression."`
	Find  cmd.Find  `cmd:"" help:"Fuzzy search process names."`
	Repl  cmd.Repl  `cmd:"" help:"Explore a job interactively."`
}

// Run executes the arpx CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when a flag
// such as --help or --version terminates parsing early.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier: configPath(),
		cmd.CacheIdentifier:  cachePath(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logging flags before kong reports anything, regardless of
	// their position on the command line.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolveYAML, configPath(baseConfig+".yaml")),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithSearchPath(ctx, searchPath())

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(&cli)
}
