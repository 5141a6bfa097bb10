// Package prompt implements the interactive surface as terminal UIs built
// with bubbletea.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

// ErrUnexpectedPromptModel indicates a bubbletea program returned a model of
// the wrong concrete type.
var ErrUnexpectedPromptModel = errors.New("unexpected prompt model type")

// TUI satisfies ports.Prompter with terminal prompts.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI wires the prompter to stdin/stdout.
func NewTUI() *TUI {
	return &TUI{in: os.Stdin, out: os.Stdout}
}

// NewTUIWithIO allows tests to substitute the terminal streams.
func NewTUIWithIO(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

func (t *TUI) OfferSignIn(ctx context.Context, workspace string) (bool, error) {
	question := fmt.Sprintf("Sign in to resolve the schema for %q?", workspace)
	return t.runConfirm(ctx, question)
}

func (t *TUI) ConfirmSelection(ctx context.Context, workspace string) (bool, error) {
	question := fmt.Sprintf("Pick an organization to validate %q against?", workspace)
	return t.runConfirm(ctx, question)
}

func (t *TUI) runConfirm(ctx context.Context, question string) (bool, error) {
	program := tea.NewProgram(newConfirmModel(question),
		tea.WithInput(t.in), tea.WithOutput(t.out), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run confirm prompt: %w", err)
	}

	model, ok := final.(confirmModel)
	if !ok {
		return false, ErrUnexpectedPromptModel
	}

	return model.result()
}

func (t *TUI) PickOrganization(ctx context.Context, candidates <-chan ports.Candidate) (ports.Candidate, error) {
	program := tea.NewProgram(newPickerModel(candidates),
		tea.WithInput(t.in), tea.WithOutput(t.out), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ports.Candidate{}, context.Cause(ctx)
		}
		return ports.Candidate{}, fmt.Errorf("run organization picker: %w", err)
	}

	model, ok := final.(pickerModel)
	if !ok {
		return ports.Candidate{}, ErrUnexpectedPromptModel
	}

	candidate, picked := model.result()
	if !picked {
		return ports.Candidate{}, domain.ErrPromptDeclined
	}

	return candidate, nil
}

func (t *TUI) ShowError(message string) {
	fmt.Fprintln(t.out, newStyles().errorText.Render(message))
}
