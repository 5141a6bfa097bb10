package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

// Resolver decides which schema document governs a workspace's pipeline
// files: an organization-specific document fetched through a signed-in
// session when the organization can be derived or was chosen earlier, the
// static fallback otherwise.
type Resolver struct {
	scm      ports.SourceControl
	sessions ports.SessionProvider
	client   ports.OrganizationClient
	choices  ports.ChoiceRepository
	store    ports.SchemaStore
	prompter ports.Prompter
	notifier *Notifier
	cache    *SessionCache
	fallback Fallback
	clock    ports.Clock
	logger   *slog.Logger
	tasks    sync.WaitGroup
}

type ResolverConfig struct {
	SourceControl ports.SourceControl
	Sessions      ports.SessionProvider
	Client        ports.OrganizationClient
	Choices       ports.ChoiceRepository
	Store         ports.SchemaStore
	Prompter      ports.Prompter
	Notifier      *Notifier
	Cache         *SessionCache
	Fallback      Fallback
	Clock         ports.Clock
	Logger        *slog.Logger
}

func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.Notifier == nil {
		cfg.Notifier = NewNotifier()
	}
	if cfg.Cache == nil {
		cfg.Cache = NewSessionCache()
	}
	if cfg.Clock == nil {
		cfg.Clock = ports.SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Resolver{
		scm:      cfg.SourceControl,
		sessions: cfg.Sessions,
		client:   cfg.Client,
		choices:  cfg.Choices,
		store:    cfg.Store,
		prompter: cfg.Prompter,
		notifier: cfg.Notifier,
		cache:    cfg.Cache,
		fallback: cfg.Fallback,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
}

// Request identifies the workspace a resolution is for. An empty
// WorkspaceRoot skips auto-detection entirely.
type Request struct {
	WorkspaceName string
	WorkspaceRoot string
}

// Notifier returns the re-resolution event channel so callers can subscribe
// once per workspace.
func (r *Resolver) Notifier() *Notifier {
	return r.notifier
}

// Resolve returns the schema location for the workspace. It never fails:
// every detection error degrades to the static fallback after logging.
// Interactive steps are detached and never stall this call.
func (r *Resolver) Resolve(ctx context.Context, req Request) domain.SchemaLocation {
	if req.WorkspaceRoot == "" {
		return r.fallback.Resolve("")
	}

	location, err := r.detect(ctx, req)
	if err != nil {
		r.logger.Warn("schema detection failed, using fallback",
			"workspace", req.WorkspaceName, "err", err)
		return r.fallback.Resolve(req.WorkspaceRoot)
	}
	if location == nil {
		return r.fallback.Resolve(req.WorkspaceRoot)
	}

	return *location
}

// detect runs the auto-detection path. A nil location with nil error means
// "not determined now": either a detached prompt was scheduled or the user
// is not signed in.
func (r *Resolver) detect(ctx context.Context, req Request) (*domain.SchemaLocation, error) {
	identity, silent := r.remoteIdentity(ctx, req.WorkspaceRoot)

	signedIn, err := r.sessions.WaitForSignIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("wait for sign-in: %w", err)
	}
	if !signedIn {
		r.spawnSignInOffer(ctx, req)
		return nil, nil
	}

	var choice domain.OrganizationChoice
	if !silent {
		var err error
		choice, err = r.choices.Get(ctx, req.WorkspaceName)
		switch {
		case errors.Is(err, domain.ErrChoiceNotFound):
			r.spawnSelection(ctx, req)
			return nil, nil
		case err != nil:
			return nil, fmt.Errorf("read persisted choice: %w", err)
		}
		identity = choice.Organization
	}

	// Identities already fetched this process answer from the session
	// cache with no network access at all, including session matching.
	if r.cache.Seen(identity) {
		location := r.store.Location(identity)
		return &location, nil
	}

	sessions, err := r.sessions.Sessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var session ports.Session
	if silent {
		session = r.findSession(ctx, identity, sessions)
		if session == nil {
			r.prompter.ShowError(fmt.Sprintf(
				"No signed-in account has access to organization %q.", identity))
			return nil, domain.ErrNoAccessibleOrganization
		}
	} else {
		session = sessionByTenant(sessions, choice.TenantID)
		if session == nil {
			r.prompter.ShowError(fmt.Sprintf(
				"Your chosen organization %q is no longer accessible from any signed-in account.", identity))
			return nil, domain.ErrNoAccessibleOrganization
		}
	}

	location, err := r.fetchSchema(ctx, identity, session)
	if err != nil {
		return nil, fmt.Errorf("fetch schema for %q: %w", identity, err)
	}

	return &location, nil
}

// spawnSignInOffer surfaces a dismissible sign-in prompt off the resolution
// path. When the user signs in, the workspace's subscriber is asked to
// re-resolve.
func (r *Resolver) spawnSignInOffer(ctx context.Context, req Request) {
	detached := context.WithoutCancel(ctx)
	r.tasks.Add(1)
	go func() {
		defer r.tasks.Done()

		ok, err := r.prompter.OfferSignIn(detached, req.WorkspaceName)
		if err != nil || !ok {
			return
		}

		signedIn, err := r.sessions.WaitForSignIn(detached)
		if err != nil || !signedIn {
			return
		}

		r.notifier.Fire(req.WorkspaceName)
	}()
}

// Wait blocks until detached interactive tasks have finished. Intended for
// shutdown and tests.
func (r *Resolver) Wait() {
	r.tasks.Wait()
}
