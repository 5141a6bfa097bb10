package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

// Headless declines every interaction. One-shot invocations use it so a
// resolution never blocks on a terminal that nobody is watching.
type Headless struct {
	Err io.Writer
}

var _ ports.Prompter = (*Headless)(nil)

func (h *Headless) OfferSignIn(context.Context, string) (bool, error) {
	return false, nil
}

func (h *Headless) ConfirmSelection(context.Context, string) (bool, error) {
	return false, nil
}

func (h *Headless) PickOrganization(ctx context.Context, candidates <-chan ports.Candidate) (ports.Candidate, error) {
	for range candidates {
	}
	return ports.Candidate{}, domain.ErrPromptDeclined
}

func (h *Headless) ShowError(message string) {
	if h.Err == nil {
		return
	}
	fmt.Fprintln(h.Err, message)
}
