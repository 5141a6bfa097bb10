package application

import (
	"context"
	"fmt"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

// fetchSchema returns the stored schema location for an organization. A
// cache hit answers without network access and without checking the stored file
// still exists; that staleness is accepted. A miss fetches through the
// session, overwrites the deterministic location, and records the
// organization in the session cache.
func (r *Resolver) fetchSchema(ctx context.Context, org domain.OrganizationName, session ports.Session) (domain.SchemaLocation, error) {
	if r.cache.Seen(org) {
		return r.store.Location(org), nil
	}

	schema, err := r.client.FetchSchema(ctx, session, org)
	if err != nil {
		return domain.SchemaLocation{}, fmt.Errorf("fetch remote schema: %w", err)
	}

	location, err := r.store.Write(ctx, org, schema)
	if err != nil {
		return domain.SchemaLocation{}, fmt.Errorf("store schema document: %w", err)
	}

	r.cache.Add(org)

	return location, nil
}
