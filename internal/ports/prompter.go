package ports

import (
	"context"

	"github.com/lcollet/schemapick/internal/domain"
)

// Candidate pairs an organization with the session that can access it.
type Candidate struct {
	Organization domain.OrganizationName
	Session      Session
}

// Prompter is the interactive surface. Every method blocks on the user, so
// callers must never invoke it from the primary resolution path.
type Prompter interface {
	// OfferSignIn shows a dismissible sign-in prompt. True means the user
	// chose to sign in.
	OfferSignIn(ctx context.Context, workspace string) (bool, error)
	// ConfirmSelection asks whether the user wants organization-specific
	// schema resolution for the workspace.
	ConfirmSelection(ctx context.Context, workspace string) (bool, error)
	// PickOrganization surfaces a selection UI immediately and fills it
	// with candidates as they arrive. Returns domain.ErrPromptDeclined on
	// cancel.
	PickOrganization(ctx context.Context, candidates <-chan Candidate) (Candidate, error)
	// ShowError surfaces a user-visible, non-blocking error message.
	ShowError(message string)
}
