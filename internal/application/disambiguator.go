package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

// SelectOrganization walks the interactive selection flow: confirm, pick
// from incrementally produced candidates, persist the choice, fire the
// workspace's re-resolution event. Declining or cancelling at any step
// returns domain.ErrPromptDeclined with nothing persisted and nothing
// fired.
func (r *Resolver) SelectOrganization(ctx context.Context, req Request) error {
	ok, err := r.prompter.ConfirmSelection(ctx, req.WorkspaceName)
	if err != nil {
		return fmt.Errorf("confirm selection: %w", err)
	}
	if !ok {
		return domain.ErrPromptDeclined
	}

	sessions, err := r.sessions.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return domain.ErrNotSignedIn
	}

	// Cancelling stops candidate producers still blocked on send.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	picked, err := r.prompter.PickOrganization(ctx, r.produceCandidates(ctx, sessions))
	if err != nil {
		if errors.Is(err, domain.ErrPromptDeclined) {
			return domain.ErrPromptDeclined
		}
		return fmt.Errorf("pick organization: %w", err)
	}

	choice := domain.OrganizationChoice{
		Workspace:    req.WorkspaceName,
		Organization: picked.Organization,
		TenantID:     picked.Session.TenantID(),
		ChosenAt:     r.clock.Now(),
	}
	if err := r.choices.Save(ctx, choice); err != nil {
		return fmt.Errorf("persist organization choice: %w", err)
	}

	r.notifier.Fire(req.WorkspaceName)

	return nil
}

// produceCandidates lists every session's organizations concurrently and
// streams (organization, session) pairs so the picker can surface choices
// before all listings complete. The channel closes once every session has
// been consulted. A failing session contributes nothing.
func (r *Resolver) produceCandidates(ctx context.Context, sessions []ports.Session) <-chan ports.Candidate {
	out := make(chan ports.Candidate)

	var wg sync.WaitGroup
	for _, session := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()

			organizations, err := r.client.ListOrganizations(ctx, session)
			if err != nil {
				r.logger.Debug("list organizations failed",
					"session", session.Label(), "err", err)
				return
			}

			for _, org := range organizations {
				select {
				case out <- ports.Candidate{Organization: org.Name, Session: session}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// spawnSelection runs SelectOrganization detached so the resolution path is
// never stalled by human response time.
func (r *Resolver) spawnSelection(ctx context.Context, req Request) {
	detached := context.WithoutCancel(ctx)
	r.tasks.Add(1)
	go func() {
		defer r.tasks.Done()

		err := r.SelectOrganization(detached, req)
		if err == nil || errors.Is(err, domain.ErrPromptDeclined) || errors.Is(err, context.Canceled) {
			return
		}
		r.logger.Warn("organization selection failed",
			"workspace", req.WorkspaceName, "err", err)
	}()
}
