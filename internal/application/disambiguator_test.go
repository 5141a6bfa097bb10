package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

func TestSelectOrganizationPersistsChoiceAndFires(t *testing.T) {
	resolver, m := newTestResolver(t)
	tenantID := uuid.New()
	contoso := sessionMock(t, "dev@contoso.com", tenantID)
	broken := sessionMock(t, "dev@broken.com", uuid.New())
	chosenAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	m.prompter.EXPECT().ConfirmSelection(mockAnyContext(), "repo-b").Return(true, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).
		Return([]ports.Session{contoso, broken}, nil)
	m.client.EXPECT().ListOrganizations(mockAnyContext(), contoso).
		Return([]domain.Organization{{Name: "Contoso"}, {Name: "Fabrikam"}}, nil)
	// A failing session contributes no candidates but does not abort.
	m.client.EXPECT().ListOrganizations(mockAnyContext(), broken).
		Return(nil, errors.New("token expired"))

	m.prompter.EXPECT().PickOrganization(mockAnyContext(), mockAnyCandidates()).
		RunAndReturn(func(_ context.Context, candidates <-chan ports.Candidate) (ports.Candidate, error) {
			var all []ports.Candidate
			for candidate := range candidates {
				all = append(all, candidate)
			}
			require.Len(t, all, 2)
			for _, candidate := range all {
				if candidate.Organization == "Fabrikam" {
					return candidate, nil
				}
			}
			t.Fatal("expected Fabrikam among candidates")
			return ports.Candidate{}, nil
		})

	m.clock.EXPECT().Now().Return(chosenAt)
	m.choices.EXPECT().Save(mockAnyContext(), domain.OrganizationChoice{
		Workspace:    "repo-b",
		Organization: "Fabrikam",
		TenantID:     tenantID,
		ChosenAt:     chosenAt,
	}).Return(nil)

	fired := make(chan string, 1)
	m.notifier.Subscribe("repo-b", func(workspace string) { fired <- workspace })

	err := resolver.SelectOrganization(context.Background(), Request{
		WorkspaceName: "repo-b",
		WorkspaceRoot: "/work/repo-b",
	})
	require.NoError(t, err)

	select {
	case workspace := <-fired:
		assert.Equal(t, "repo-b", workspace)
	default:
		t.Fatal("expected re-resolution event after selection")
	}
}

func TestSelectOrganizationDeclinedPersistsNothing(t *testing.T) {
	resolver, m := newTestResolver(t)

	m.prompter.EXPECT().ConfirmSelection(mockAnyContext(), "repo-b").Return(false, nil)

	fired := make(chan string, 1)
	m.notifier.Subscribe("repo-b", func(workspace string) { fired <- workspace })

	err := resolver.SelectOrganization(context.Background(), Request{WorkspaceName: "repo-b"})
	require.ErrorIs(t, err, domain.ErrPromptDeclined)

	select {
	case <-fired:
		t.Fatal("declined prompt must not fire")
	default:
	}
}

func TestSelectOrganizationCancelledPickerPersistsNothing(t *testing.T) {
	resolver, m := newTestResolver(t)
	session := sessionMock(t, "dev@contoso.com", uuid.New())

	m.prompter.EXPECT().ConfirmSelection(mockAnyContext(), "repo-b").Return(true, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).Return([]ports.Session{session}, nil)
	m.client.EXPECT().ListOrganizations(mockAnyContext(), session).
		Return([]domain.Organization{{Name: "Contoso"}}, nil).Maybe()
	m.prompter.EXPECT().PickOrganization(mockAnyContext(), mockAnyCandidates()).
		Return(ports.Candidate{}, domain.ErrPromptDeclined)

	err := resolver.SelectOrganization(context.Background(), Request{WorkspaceName: "repo-b"})
	require.ErrorIs(t, err, domain.ErrPromptDeclined)
}

func TestSelectOrganizationWithoutSessions(t *testing.T) {
	resolver, m := newTestResolver(t)

	m.prompter.EXPECT().ConfirmSelection(mockAnyContext(), "repo-b").Return(true, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).Return(nil, nil)

	err := resolver.SelectOrganization(context.Background(), Request{WorkspaceName: "repo-b"})
	require.ErrorIs(t, err, domain.ErrNotSignedIn)
}
