package ports

import (
	"context"

	"github.com/google/uuid"
)

// Session is an authenticated credential handle owned by the external
// identity provider. Only the fields this tool consumes are exposed.
type Session interface {
	// Label names the account backing the session, for display.
	Label() string
	TenantID() uuid.UUID
	// Token returns a fresh access token for the session.
	Token(ctx context.Context) (string, error)
}

type SessionProvider interface {
	// WaitForSignIn reports whether any session is signed in, blocking
	// until the provider has settled. False means not signed in, not an
	// error.
	WaitForSignIn(ctx context.Context) (bool, error)
	Sessions(ctx context.Context) ([]Session, error)
}
