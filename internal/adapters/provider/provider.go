// Package provider materializes configured identity-provider sessions. The
// provider itself is external; this adapter only turns configured tenants
// and tokens into session handles.
package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/lcollet/schemapick/internal/ports"
)

// SessionConfig is one configured session: a tenant, a label, and a token
// given either inline or through an environment variable.
type SessionConfig struct {
	Label    string `mapstructure:"label"`
	TenantID string `mapstructure:"tenant_id"`
	Token    string `mapstructure:"token"`
	TokenEnv string `mapstructure:"token_env"`
}

type Provider struct {
	sessions []ports.Session
}

var _ ports.SessionProvider = (*Provider)(nil)

func New(configs []SessionConfig) (*Provider, error) {
	sessions := make([]ports.Session, 0, len(configs))
	for i, cfg := range configs {
		session, err := newSession(cfg)
		if err != nil {
			return nil, fmt.Errorf("configure session %d: %w", i, err)
		}
		sessions = append(sessions, session)
	}

	return &Provider{sessions: sessions}, nil
}

// WaitForSignIn reports whether any session is configured. Configured
// sessions are already settled, so this never blocks.
func (p *Provider) WaitForSignIn(_ context.Context) (bool, error) {
	return len(p.sessions) > 0, nil
}

func (p *Provider) Sessions(_ context.Context) ([]ports.Session, error) {
	return p.sessions, nil
}

type session struct {
	label    string
	tenantID uuid.UUID
	source   oauth2.TokenSource
}

var _ ports.Session = (*session)(nil)

func newSession(cfg SessionConfig) (*session, error) {
	tenantID, err := uuid.Parse(cfg.TenantID)
	if err != nil {
		return nil, fmt.Errorf("parse tenant id %q: %w", cfg.TenantID, err)
	}

	token := cfg.Token
	if token == "" && cfg.TokenEnv != "" {
		token = os.Getenv(cfg.TokenEnv)
	}
	if token == "" {
		return nil, fmt.Errorf("session %q has no token", cfg.Label)
	}

	return &session{
		label:    cfg.Label,
		tenantID: tenantID,
		source:   oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
	}, nil
}

func (s *session) Label() string {
	return s.label
}

func (s *session) TenantID() uuid.UUID {
	return s.tenantID
}

func (s *session) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, err := s.source.Token()
	if err != nil {
		return "", fmt.Errorf("obtain token for %q: %w", s.label, err)
	}

	return token.AccessToken, nil
}
