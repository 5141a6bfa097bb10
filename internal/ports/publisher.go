package ports

import (
	"context"

	"github.com/lcollet/schemapick/internal/domain"
)

// AssociationPublisher pushes schema associations to the downstream
// language-processing consumer.
type AssociationPublisher interface {
	Publish(ctx context.Context, workspace string, associations domain.SchemaAssociations) error
}
