package cmd

import (
	"context"

	"github.com/ardnew/arpx/cli/cmd/repl"
	"github.com/ardnew/arpx/log"
)

// Repl explores a job interactively.
type Repl struct {
	Cache string `default:"${cache}" help:"Directory holding the REPL history." hidden:"" type:"path"`

	Source string `arg:"" default:"-" help:"Job file or '-' for stdin." name:"source"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	j, path, err := load(ctx, r.Source)
	if err != nil {
		return err
	}

	return repl.Run(ctx, j, path, r.Cache, log.Default())
}
