// Package tui is the interactive assistant: type an instruction, watch
// the list and suggestions update. One instruction is in flight at a
// time; the input line is disabled while a command is being applied.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xclipboard "golang.design/x/clipboard"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/command"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/parser"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/store"
	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/suggest"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle  = lipgloss.NewStyle().Bold(true)
)

// appliedMsg carries the result of applying an instruction.
type appliedMsg struct {
	list    []shopping.Item
	message string
	err     error
}

// AppModel is the bubbletea model for the interactive assistant.
type AppModel struct {
	store       store.Store
	parser      parser.Parser
	parseWait   time.Duration
	list        []shopping.Item
	suggestions []suggest.Suggestion
	input       string
	message     string
	isError     bool
	busy        bool
	width       int
}

// NewApp creates the assistant model with the current list loaded.
func NewApp(s store.Store, p parser.Parser, parseWait time.Duration) (*AppModel, error) {
	list, err := s.LoadList()
	if err != nil {
		return nil, fmt.Errorf("failed to load list: %w", err)
	}
	a := &AppModel{
		store:     s,
		parser:    p,
		parseWait: parseWait,
		list:      list,
		width:     80,
	}
	a.refreshSuggestions()
	return a, nil
}

// Init implements tea.Model.
func (a *AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case appliedMsg:
		a.busy = false
		if msg.err != nil {
			a.message = msg.err.Error()
			a.isError = true
			return a, nil
		}
		a.list = msg.list
		a.message = msg.message
		a.isError = false
		a.refreshSuggestions()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit
	case tea.KeyCtrlY:
		a.copyList()
		return a, nil
	case tea.KeyEnter:
		if a.busy || strings.TrimSpace(a.input) == "" {
			return a, nil
		}
		instruction := a.input
		a.input = ""
		a.busy = true
		return a, a.applyCmd(instruction)
	case tea.KeyBackspace:
		if len(a.input) > 0 {
			runes := []rune(a.input)
			a.input = string(runes[:len(runes)-1])
		}
		return a, nil
	case tea.KeySpace:
		a.input += " "
		return a, nil
	case tea.KeyRunes:
		a.input += string(msg.Runes)
		return a, nil
	}
	return a, nil
}

// applyCmd runs the parse/execute/save pipeline off the update loop.
func (a *AppModel) applyCmd(instruction string) tea.Cmd {
	s := a.store
	p := a.parser
	list := a.list
	wait := a.parseWait
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), wait)
		defer cancel()

		parsed, err := p.Parse(ctx, instruction)
		if err != nil {
			if errors.Is(err, parser.ErrNoCommand) {
				return appliedMsg{err: fmt.Errorf("could not understand %q", instruction)}
			}
			return appliedMsg{err: err}
		}

		newList, message := command.Apply(parsed, list)
		if err := s.SaveList(newList); err != nil {
			return appliedMsg{err: fmt.Errorf("failed to save list: %w", err)}
		}
		return appliedMsg{list: newList, message: message}
	}
}

func (a *AppModel) refreshSuggestions() {
	history, err := a.store.History()
	if err != nil {
		history = nil
	}
	a.suggestions = suggest.Generate(a.list, history, time.Now())
}

// copyList puts the plain-text list on the system clipboard.
func (a *AppModel) copyList() {
	if err := xclipboard.Init(); err != nil {
		a.message = fmt.Sprintf("clipboard unavailable: %v", err)
		a.isError = true
		return
	}
	xclipboard.Write(xclipboard.FmtText, []byte(shopping.RenderPlain(a.list)))
	a.message = "Copied list to clipboard"
	a.isError = false
}

// View implements tea.Model.
func (a *AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Voice Shopping Assistant"))
	b.WriteString("\n\n")
	b.WriteString(shopping.Render(a.list))
	b.WriteString("\n\n")

	if len(a.suggestions) > 0 {
		names := make([]string, len(a.suggestions))
		for i, s := range a.suggestions {
			names[i] = shopping.TitleCase(s.Name)
		}
		b.WriteString(suggestStyle.Render("Suggestions: " + strings.Join(names, ", ")))
		b.WriteString("\n\n")
	}

	if a.message != "" {
		style := messageStyle
		if a.isError {
			style = errorStyle
		}
		b.WriteString(style.Render(a.message))
		b.WriteString("\n\n")
	}

	prompt := "> " + a.input
	if a.busy {
		prompt = "applying..."
	}
	b.WriteString(promptStyle.Render(prompt))
	b.WriteString("\n")
	b.WriteString(suggestStyle.Render("enter: apply · ctrl+y: copy list · esc: quit"))
	return b.String()
}

// Run starts the interactive assistant and blocks until it exits.
func Run(s store.Store, p parser.Parser, parseWait time.Duration) error {
	app, err := NewApp(s, p, parseWait)
	if err != nil {
		return err
	}
	program := tea.NewProgram(app, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
