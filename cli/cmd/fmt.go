package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/arpx/cli/style"
	"github.com/ardnew/arpx/job"
)

// Fmt parses a job and writes it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical job syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as a tree."`
}

// Native formats input as canonical job syntax.
type Native struct {
	Indent int `default:"4" help:"Indent width for concurrent groups; 0 writes one line." short:"i"`

	Source string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the native command.
func (f *Native) Run(ctx context.Context) error {
	j, err := loadFormat(ctx, f.Source, "native")
	if err != nil {
		return err
	}

	return j.Format(ctx, stdioFrom(ctx).out, f.Indent)
}

// JSON formats input as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output; 0 writes one line." short:"i"`

	Source string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (f *JSON) Run(ctx context.Context) error {
	j, err := loadFormat(ctx, f.Source, "json")
	if err != nil {
		return err
	}

	return j.FormatJSON(ctx, stdioFrom(ctx).out, f.Indent)
}

// YAML formats input as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output; 0 writes flow style." short:"i"`

	Source string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (f *YAML) Run(ctx context.Context) error {
	j, err := loadFormat(ctx, f.Source, "yaml")
	if err != nil {
		return err
	}

	return j.FormatYAML(ctx, stdioFrom(ctx).out, f.Indent)
}

// Tree formats input as a styled tree of tasks and processes.
type Tree struct {
	Source string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the tree command.
func (f *Tree) Run(ctx context.Context) error {
	j, err := loadFormat(ctx, f.Source, "tree")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdioFrom(ctx).out, style.Tree(j, f.Source))

	return err
}

func loadFormat(ctx context.Context, source, format string) (*job.Job, error) {
	j, _, err := load(ctx, source)
	if err != nil {
		return nil, ErrFormat.Wrap(err).With(slog.String("format", format))
	}

	return j, nil
}
