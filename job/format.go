package job

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the job as canonical source text.
//
// Each task starts on a new line. The processes of a concurrent group are
// written one per line, indented by indent spaces, between brackets. With an
// indent of zero, the whole job is written on a single line.
func (j *Job) Format(_ context.Context, w io.Writer, indent int) error {
	var b strings.Builder

	for i, task := range j.Tasks {
		if i > 0 && indent == 0 {
			b.WriteByte(' ')
		}

		formatTask(&b, task, indent)

		if indent > 0 {
			b.WriteByte('\n')
		}
	}

	if indent == 0 {
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// FormatJSON writes the job as JSON to the writer.
func (j *Job) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(j, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(j)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the job as YAML to the writer.
// An indent of zero selects flow style.
func (j *Job) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, j, opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(yamlData)

	return err
}

// String returns the job on a single line.
func (j *Job) String() string {
	var b strings.Builder

	for i, task := range j.Tasks {
		if i > 0 {
			b.WriteByte(' ')
		}

		formatTask(&b, task, 0)
	}

	return b.String()
}

// String returns the task on a single line.
func (t Task) String() string {
	var b strings.Builder

	formatTask(&b, t, 0)

	return b.String()
}

// String returns the process statement, including its log monitors.
func (p Process) String() string {
	var b strings.Builder

	formatProcess(&b, p)

	return b.String()
}

func formatTask(b *strings.Builder, t Task, indent int) {
	if !t.Concurrent() {
		for _, p := range t.Processes {
			formatProcess(b, p)
		}

		return
	}

	b.WriteByte('[')

	for i, p := range t.Processes {
		switch {
		case indent > 0:
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", indent))
		case i > 0:
			b.WriteByte(' ')
		}

		formatProcess(b, p)
	}

	if indent > 0 {
		b.WriteByte('\n')
	}

	b.WriteByte(']')
}

func formatProcess(b *strings.Builder, p Process) {
	if p.Silent {
		b.WriteByte('(')
	}

	b.WriteString(p.Name)

	if p.OnSucceed != nil {
		writeSuccessor(b, " ?", *p.OnSucceed)
	}

	if p.OnFail != nil {
		writeSuccessor(b, " :", *p.OnFail)
	}

	b.WriteByte(';')

	if p.Silent {
		b.WriteByte(')')
	}

	for _, m := range p.LogMonitors {
		b.WriteString(" @")
		b.WriteString(m)
	}
}

// writeSuccessor writes a successor operator and its name, if any.
func writeSuccessor(b *strings.Builder, op, name string) {
	b.WriteString(op)

	if name != "" {
		b.WriteByte(' ')
		b.WriteString(name)
	}
}
