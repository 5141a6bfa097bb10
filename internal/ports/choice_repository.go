package ports

import (
	"context"

	"github.com/lcollet/schemapick/internal/domain"
)

type ChoiceRepository interface {
	// Get returns the persisted choice for a workspace name, or
	// domain.ErrChoiceNotFound.
	Get(ctx context.Context, workspace string) (domain.OrganizationChoice, error)
	// Save upserts the choice for its workspace, preserving entries for
	// other workspaces. Last write wins.
	Save(ctx context.Context, choice domain.OrganizationChoice) error
	List(ctx context.Context) ([]domain.OrganizationChoice, error)
}
