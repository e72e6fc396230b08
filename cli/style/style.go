// Package style renders jobs and syntax errors for the terminal using
// lipgloss.
package style

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/arpx/job"
)

// Styles.
var (
	Name      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	Succeed   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Fail      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Monitor   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	Hint      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	Result    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Error     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Location  = lipgloss.NewStyle().Bold(true)
	Marker    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1"))
	Enumerate = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
)

// Process renders p on one line: silent processes in parentheses, then the
// successors and monitors.
func Process(p job.Process) string {
	var b strings.Builder

	name := Name.Render(p.Name)
	if p.Silent {
		name = Hint.Render("(") + name + Hint.Render(")")
	}

	b.WriteString(name)

	if p.OnSucceed != nil {
		b.WriteString(Hint.Render(" ? "))
		b.WriteString(Succeed.Render(*p.OnSucceed))
	}

	if p.OnFail != nil {
		b.WriteString(Hint.Render(" : "))
		b.WriteString(Fail.Render(*p.OnFail))
	}

	for _, m := range p.LogMonitors {
		b.WriteString(" ")
		b.WriteString(Monitor.Render("@" + m))
	}

	return b.String()
}

// Tree returns j as a tree rooted at root with one branch per task.
func Tree(j *job.Job, root string) *tree.Tree {
	t := tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(Enumerate).
		RootStyle(Location)

	if j == nil {
		return t
	}

	for i, task := range j.Tasks {
		label := "task " + strconv.Itoa(i)
		if task.Concurrent() {
			label += Hint.Render(" (concurrent)")
		}

		branch := tree.Root(label).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(Enumerate)

		for _, p := range task.Processes {
			branch.Child(Process(p))
		}

		t.Child(branch)
	}

	return t
}

// Diagnostic renders err for the named source. A *job.SyntaxError is shown
// with its position and the surrounding input, newlines escaped. Other
// errors are rendered by message.
func Diagnostic(source string, err error) string {
	var syn *job.SyntaxError
	if !errors.As(err, &syn) {
		return Location.Render(source+":") + " " + Error.Render(err.Error())
	}

	var b strings.Builder

	b.WriteString(Location.Render(source + ":" + syn.Location.String() + ":"))
	b.WriteString(" ")
	b.WriteString(Error.Render("parse error"))
	b.WriteString("\n  ")

	before, after, _ := strings.Cut(syn.Location.Context, job.ErrorMarker)

	b.WriteString(Hint.Render(escape(before)))
	b.WriteString(" ")
	b.WriteString(Marker.Render(strings.TrimSpace(job.ErrorMarker)))
	b.WriteString(" ")
	b.WriteString(escape(after))

	return b.String()
}

func escape(s string) string {
	q := strconv.Quote(s)

	return q[1 : len(q)-1]
}
