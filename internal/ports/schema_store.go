package ports

import (
	"context"

	"github.com/lcollet/schemapick/internal/domain"
)

// SchemaStore persists fetched schema documents under the installation's
// storage root. Location is a pure function of the organization name, so
// rewrites are idempotent.
type SchemaStore interface {
	Location(org domain.OrganizationName) domain.SchemaLocation
	Write(ctx context.Context, org domain.OrganizationName, schema []byte) (domain.SchemaLocation, error)
}
