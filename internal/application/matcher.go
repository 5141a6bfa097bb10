package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

// findSession returns the first session whose organization list contains
// the identity, comparing names case-insensitively. One listing call per
// session, provider order, first match wins. Nil when no session matches.
func (r *Resolver) findSession(ctx context.Context, identity domain.OrganizationName, sessions []ports.Session) ports.Session {
	for _, session := range sessions {
		organizations, err := r.client.ListOrganizations(ctx, session)
		if err != nil {
			r.logger.Debug("list organizations failed",
				"session", session.Label(), "err", err)
			continue
		}

		for _, org := range organizations {
			if org.Name.Equal(identity) {
				return session
			}
		}
	}

	return nil
}

func sessionByTenant(sessions []ports.Session, tenantID uuid.UUID) ports.Session {
	for _, session := range sessions {
		if session.TenantID() == tenantID {
			return session
		}
	}

	return nil
}
