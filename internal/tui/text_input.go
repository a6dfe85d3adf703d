package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const emptyAnswerMsg = "a value is required"

// TextInputPrompter asks for the answer with an inline bubbletea text input.
type TextInputPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTextInputPrompter constructs a [TextInputPrompter] bound to a terminal.
func NewTextInputPrompter(in io.Reader, out io.Writer) *TextInputPrompter {
	return &TextInputPrompter{in: in, out: out}
}

// Prompt implements [Prompter]. Returns [ErrUserQuit] on esc or ctrl+c.
func (p *TextInputPrompter) Prompt(ctx context.Context, label string) (string, error) {
	program := tea.NewProgram(newPromptModel(label),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.answer, nil
}

// promptModel is a single-line form that refuses blank answers.
type promptModel struct {
	input      textinput.Model
	errMsg     string
	answer     string
	done       bool
	quitByUser bool
}

func newPromptModel(label string) promptModel {
	input := textinput.New()
	input.Prompt = labelStyle.Render(label)
	input.CharLimit = 256
	input.Width = 40
	input.Focus()

	return promptModel{input: input}
}

// Init implements [tea.Model].
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - enter      — accepts a non-blank answer, otherwise shows an error.
//   - esc/ctrl+c — aborts the prompt.
//
// Everything else goes to the text input.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.confirm):
			answer := strings.TrimSpace(m.input.Value())
			if answer == "" {
				m.errMsg = emptyAnswerMsg
				m.input.Reset()
				return m, nil
			}
			m.answer = answer
			m.done = true
			m.errMsg = ""
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Once finished only the answered line stays on
// screen.
func (m promptModel) View() string {
	if m.done || m.quitByUser {
		return m.input.Prompt + m.answer + "\n"
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(keys.helpLine()))
	b.WriteString("\n")
	return b.String()
}
