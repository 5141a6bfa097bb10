package ports

import (
	"context"

	"github.com/lcollet/schemapick/internal/domain"
)

// OrganizationClient talks to the remote organization/schema API on behalf
// of a session. Transport concerns (timeouts, retries) belong to the
// implementation, not to callers.
type OrganizationClient interface {
	ListOrganizations(ctx context.Context, session Session) ([]domain.Organization, error)
	// FetchSchema retrieves the pipeline schema document for an
	// organization the session can access.
	FetchSchema(ctx context.Context, session Session, org domain.OrganizationName) ([]byte, error)
}
