package repl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/arpx/cli/style"
	"github.com/ardnew/arpx/job"
	"github.com/ardnew/arpx/log"
)

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help           Print this cruft
  list           List every process with its position
  tree           Show tasks and processes as a tree
  find PATTERN   Fuzzy search process names
  clear          Clear screen
  quit           Exit REPL

Usage:
  Type a query expression to list the processes it matches, e.g.
    silent && len(monitors) > 0
    name startsWith "test" || onfail == "cleanup"
  Query fields: name onsucceed onfail silent monitors task index concurrent
  Press Tab / Shift-Tab to cycle through completions
  Press Esc to toggle between query and command modes
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the REPL.
type model struct {
	ctx          context.Context
	input        textinput.Model
	job          *job.Job
	source       string
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current completion results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int
	quitting     bool
	mode         inputMode
	stash        [2]string // input text saved per mode
}

// Run explores j interactively until the user quits. The history file is
// kept in cacheDir. Source names j in prompts and messages; "-" means j was
// read from standard input, so keyboard input is taken from the terminal.
func Run(
	ctx context.Context,
	j *job.Job,
	source string,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if j == nil {
		return ErrNoJob
	}

	logger.TraceContext(ctx, "repl start",
		slog.String("source", source),
		slog.String("cache_dir", cacheDir),
		slog.Int("process_count", j.Len()),
	)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load history: %v\n", err)
	}

	logger.TraceContext(ctx, "repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if source == "-" {
		opts = append(opts, tea.WithInputTTY())
	}

	_, err = tea.NewProgram(newModel(ctx, j, source, history, logger), opts...).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	j *job.Job,
	source string,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctx:        ctx,
		input:      ti,
		job:        j,
		source:     source,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(style.Hint.Render(hint))

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type a query over " + m.source + " or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: help, list, tree, find, clear, quit (press Esc to return)"
		}

		b.WriteString(style.Hint.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctx, "repl keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.tabActive && len(m.matches) > 0 {
			// Lock in the current candidate without executing.
			m.tabActive = false
			m.refreshMatches()

			return m, nil
		}

		return m.executeInput()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1), nil

	case tea.KeyDown:
		return m.historyStep(1), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refreshMatches()

			return m, nil
		}

		return m.switchToMode(1 - m.mode), nil
	}

	// Space and editing keys end tab-cycling.
	if msg.Type != tea.KeyRunes || msg.String() == " " {
		m.tabActive = false
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

// cycle moves the completion selection by step, wrapping at either end, and
// writes the selected candidate into the input. A single candidate is
// accepted immediately.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		m.replaceCurrentWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if !m.tabActive {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = -1
		if step < 0 {
			m.suggIdx = 0
		}
	}

	m.suggIdx = ((m.suggIdx+step)%n + n) % n
	m.replaceCurrentWord(m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word in the input with
// replacement and moves the cursor after it.
func (m *model) replaceCurrentWord(replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes completions for the word at the cursor.
func (m *model) refreshMatches() {
	word, start, end := wordBounds(m.input.Value(), m.input.Position())

	m.wordStart, m.wordEnd = start, end
	m.matches = complete(word, m.candidates())

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) candidates() []string {
	if m.mode == modeCtrl {
		return ctrlCommands
	}

	return queryCandidates(m.job)
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.stash = [2]string{}
	m.input.SetValue("")
	m.matches = nil

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.DebugContext(m.ctx, "repl history write failed",
			slog.Any("error", err),
		)
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	m.logger.TraceContext(m.ctx, "repl query", slog.String("input", input))

	return m, tea.Sequence(
		tea.Println(promptStyle.Render(evalPrompt)+inputStyle.Render(input)),
		tea.Println(m.evaluate(input)),
	)
}

// evaluate runs input as a query and renders the matches.
func (m model) evaluate(input string) string {
	matches, err := m.job.Query(m.ctx, input)
	if err != nil {
		return style.Error.Render("error: " + err.Error())
	}

	if len(matches) == 0 {
		return style.Hint.Render("no matches")
	}

	return renderMatches(matches)
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	echo := tea.Println(ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input))

	m.logger.TraceContext(m.ctx, "repl command",
		slog.String("command", name),
		slog.String("arg", arg),
	)

	switch name {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "l", "list":
		return m, tea.Sequence(echo, tea.Println(renderMatches(collect(m.job))))

	case "t", "tree":
		return m, tea.Sequence(echo, tea.Println(style.Tree(m.job, m.source).String()))

	case "f", "find":
		found := m.job.Find(arg)
		if len(found) == 0 {
			return m, tea.Sequence(echo, tea.Println(style.Hint.Render("no matches")))
		}

		return m, tea.Sequence(echo, tea.Println(renderMatches(found)))

	case "c", "clear":
		return m, tea.ClearScreen

	default:
		return m, tea.Sequence(echo, tea.Println(
			style.Error.Render("Unknown command: "+name+" (try 'help')"),
		))
	}
}

// historyStep moves through history by step, switching to the mode each
// entry was entered in. Stepping past the newest entry clears the input.
func (m model) historyStep(step int) model {
	idx := m.historyIdx + step
	if idx < 0 {
		return m
	}

	if idx >= m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		m.refreshMatches()

		return m
	}

	entry, err := m.history.Entry(idx)
	if err != nil {
		return m
	}

	m.historyIdx = idx

	if entry.Mode != m.mode {
		m = m.switchToMode(entry.Mode)
	}

	m.input.SetValue(entry.Line)
	m.input.SetCursor(len(entry.Line))
	m.refreshMatches()

	return m
}

// switchToMode switches to mode, saving the current input and restoring the
// input last typed in mode.
func (m model) switchToMode(mode inputMode) model {
	m.stash[m.mode] = m.input.Value()
	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
	}

	m.input.SetValue(m.stash[mode])
	m.input.CursorEnd()
	m.tabActive = false
	m.refreshMatches()

	return m
}

// collect returns every process in j as a match.
func collect(j *job.Job) []job.Match {
	var all []job.Match
	for match := range j.All() {
		all = append(all, match)
	}

	return all
}

// renderMatches renders one "task.index process" line per match.
func renderMatches(matches []job.Match) string {
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = "  " + style.Hint.Render(fmt.Sprintf("%d.%d", m.Task, m.Index)) +
			" " + style.Process(m.Process)
	}

	return strings.Join(lines, "\n")
}
