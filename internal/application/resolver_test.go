package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
	"github.com/lcollet/schemapick/internal/ports/mocks"
)

type resolverMocks struct {
	scm      *mocks.MockSourceControl
	provider *mocks.MockSessionProvider
	client   *mocks.MockOrganizationClient
	choices  *mocks.MockChoiceRepository
	store    *mocks.MockSchemaStore
	prompter *mocks.MockPrompter
	clock    *mocks.MockClock
	notifier *Notifier
	cache    *SessionCache
}

func newTestResolver(t *testing.T) (*Resolver, resolverMocks) {
	t.Helper()

	m := resolverMocks{
		scm:      mocks.NewMockSourceControl(t),
		provider: mocks.NewMockSessionProvider(t),
		client:   mocks.NewMockOrganizationClient(t),
		choices:  mocks.NewMockChoiceRepository(t),
		store:    mocks.NewMockSchemaStore(t),
		prompter: mocks.NewMockPrompter(t),
		clock:    mocks.NewMockClock(t),
		notifier: NewNotifier(),
		cache:    NewSessionCache(),
	}

	resolver := NewResolver(ResolverConfig{
		SourceControl: m.scm,
		Sessions:      m.provider,
		Client:        m.client,
		Choices:       m.choices,
		Store:         m.store,
		Prompter:      m.prompter,
		Notifier:      m.notifier,
		Cache:         m.cache,
		Fallback:      Fallback{InstallRoot: "/opt/schemapick"},
		Clock:         m.clock,
		Logger:        slog.New(slog.DiscardHandler),
	})

	return resolver, m
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func mockAnyCandidates() interface{} {
	return mock.MatchedBy(func(<-chan ports.Candidate) bool { return true })
}

func sessionMock(t *testing.T, label string, tenantID uuid.UUID) *mocks.MockSession {
	t.Helper()

	session := mocks.NewMockSession(t)
	session.EXPECT().Label().Return(label).Maybe()
	session.EXPECT().TenantID().Return(tenantID).Maybe()
	return session
}

func TestResolveWithoutWorkspaceReturnsFallback(t *testing.T) {
	resolver, _ := newTestResolver(t)

	location := resolver.Resolve(context.Background(), Request{WorkspaceName: "repo-a"})
	assert.Equal(t, "/opt/schemapick/service-schema.json", location.URI)
	assert.False(t, location.Detected())
}

func TestResolveDetectsOrganizationFromRemote(t *testing.T) {
	resolver, m := newTestResolver(t)
	session := sessionMock(t, "dev@contoso.com", uuid.New())

	repo := mocks.NewMockRepository(t)
	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-a").Return(repo, nil)
	repo.EXPECT().UpstreamRemoteURL(mockAnyContext()).
		Return("https://dev.azure.com/contoso/Project/_git/repo-a", nil)

	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).Return([]ports.Session{session}, nil)

	// Organization list uses a different case than the remote URL.
	m.client.EXPECT().ListOrganizations(mockAnyContext(), session).
		Return([]domain.Organization{{Name: "Contoso"}}, nil)
	m.client.EXPECT().FetchSchema(mockAnyContext(), session, domain.OrganizationName("contoso")).
		Return([]byte(`{"$schema":"pipeline"}`), nil)

	stored := domain.SchemaLocation{URI: "/store/contoso-schema.json", Organization: "contoso"}
	m.store.EXPECT().Write(mockAnyContext(), domain.OrganizationName("contoso"), []byte(`{"$schema":"pipeline"}`)).
		Return(stored, nil)

	location := resolver.Resolve(context.Background(), Request{
		WorkspaceName: "repo-a",
		WorkspaceRoot: "/work/repo-a",
	})
	assert.Equal(t, stored, location)
	assert.True(t, location.Detected())
	assert.True(t, m.cache.Seen("contoso"))
}

func TestResolveSecondCallServedFromSessionCache(t *testing.T) {
	resolver, m := newTestResolver(t)
	session := sessionMock(t, "dev@contoso.com", uuid.New())
	stored := domain.SchemaLocation{URI: "/store/contoso-schema.json", Organization: "contoso"}

	repo := mocks.NewMockRepository(t)
	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-a").Return(repo, nil).Twice()
	repo.EXPECT().UpstreamRemoteURL(mockAnyContext()).
		Return("https://dev.azure.com/contoso/Project/_git/repo-a", nil).Twice()
	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil).Twice()

	// Exactly one round of session listing and fetching for the first call.
	m.provider.EXPECT().Sessions(mockAnyContext()).Return([]ports.Session{session}, nil).Once()
	m.client.EXPECT().ListOrganizations(mockAnyContext(), session).
		Return([]domain.Organization{{Name: "contoso"}}, nil).Once()
	m.client.EXPECT().FetchSchema(mockAnyContext(), session, domain.OrganizationName("contoso")).
		Return([]byte(`{}`), nil).Once()
	m.store.EXPECT().Write(mockAnyContext(), domain.OrganizationName("contoso"), []byte(`{}`)).
		Return(stored, nil).Once()
	m.store.EXPECT().Location(domain.OrganizationName("contoso")).Return(stored).Once()

	req := Request{WorkspaceName: "repo-a", WorkspaceRoot: "/work/repo-a"}
	first := resolver.Resolve(context.Background(), req)
	second := resolver.Resolve(context.Background(), req)

	assert.Equal(t, stored, first)
	assert.Equal(t, stored, second)
}

func TestResolveNotSignedInFallsBackAndOffersSignIn(t *testing.T) {
	resolver, m := newTestResolver(t)

	repo := mocks.NewMockRepository(t)
	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-a").Return(repo, nil)
	repo.EXPECT().UpstreamRemoteURL(mockAnyContext()).
		Return("https://dev.azure.com/contoso/Project/_git/repo-a", nil)

	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(false, nil).Once()
	m.prompter.EXPECT().OfferSignIn(mockAnyContext(), "repo-a").Return(true, nil).Once()
	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil).Once()

	fired := make(chan string, 1)
	m.notifier.Subscribe("repo-a", func(workspace string) { fired <- workspace })

	location := resolver.Resolve(context.Background(), Request{
		WorkspaceName: "repo-a",
		WorkspaceRoot: "/work/repo-a",
	})
	assert.Equal(t, "/opt/schemapick/service-schema.json", location.URI)

	resolver.Wait()
	select {
	case workspace := <-fired:
		assert.Equal(t, "repo-a", workspace)
	default:
		t.Fatal("expected re-resolution event after sign-in")
	}
}

func TestResolveNoRemoteNoChoiceSpawnsSelection(t *testing.T) {
	resolver, m := newTestResolver(t)

	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-b").
		Return(nil, domain.ErrNoRepository)
	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil)
	m.choices.EXPECT().Get(mockAnyContext(), "repo-b").
		Return(domain.OrganizationChoice{}, domain.ErrChoiceNotFound)

	// The user declines, so nothing is persisted and nothing fires.
	m.prompter.EXPECT().ConfirmSelection(mockAnyContext(), "repo-b").Return(false, nil)

	fired := make(chan string, 1)
	m.notifier.Subscribe("repo-b", func(workspace string) { fired <- workspace })

	location := resolver.Resolve(context.Background(), Request{
		WorkspaceName: "repo-b",
		WorkspaceRoot: "/work/repo-b",
	})
	assert.Equal(t, "/opt/schemapick/service-schema.json", location.URI)

	resolver.Wait()
	select {
	case <-fired:
		t.Fatal("no event may fire before a selection completes")
	default:
	}
}

func TestResolvePersistedChoiceRoundTrip(t *testing.T) {
	resolver, m := newTestResolver(t)
	tenantID := uuid.New()
	session := sessionMock(t, "dev@fabrikam.com", tenantID)
	stored := domain.SchemaLocation{URI: "/store/fabrikam-schema.json", Organization: "fabrikam"}

	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-b").
		Return(nil, domain.ErrNoRepository)
	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil)
	m.choices.EXPECT().Get(mockAnyContext(), "repo-b").Return(domain.OrganizationChoice{
		Workspace:    "repo-b",
		Organization: "fabrikam",
		TenantID:     tenantID,
	}, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).Return([]ports.Session{session}, nil)
	m.client.EXPECT().FetchSchema(mockAnyContext(), session, domain.OrganizationName("fabrikam")).
		Return([]byte(`{}`), nil)
	m.store.EXPECT().Write(mockAnyContext(), domain.OrganizationName("fabrikam"), []byte(`{}`)).
		Return(stored, nil)

	location := resolver.Resolve(context.Background(), Request{
		WorkspaceName: "repo-b",
		WorkspaceRoot: "/work/repo-b",
	})
	assert.Equal(t, stored, location)
}

func TestResolveRevokedChoiceSurfacesErrorAndFallsBack(t *testing.T) {
	resolver, m := newTestResolver(t)
	session := sessionMock(t, "dev@other.com", uuid.New())

	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-c").
		Return(nil, domain.ErrNoRepository)
	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil)
	m.choices.EXPECT().Get(mockAnyContext(), "repo-c").Return(domain.OrganizationChoice{
		Workspace:    "repo-c",
		Organization: "fabrikam",
		TenantID:     uuid.New(),
	}, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).Return([]ports.Session{session}, nil)
	m.prompter.EXPECT().ShowError(mock.AnythingOfType("string")).Once()

	location := resolver.Resolve(context.Background(), Request{
		WorkspaceName: "repo-c",
		WorkspaceRoot: "/work/repo-c",
	})
	assert.Equal(t, "/opt/schemapick/service-schema.json", location.URI)
}

func TestResolveDetectionFailureDegradesToFallback(t *testing.T) {
	resolver, m := newTestResolver(t)
	session := sessionMock(t, "dev@contoso.com", uuid.New())

	repo := mocks.NewMockRepository(t)
	m.scm.EXPECT().OpenRepository(mockAnyContext(), "/work/repo-a").Return(repo, nil)
	repo.EXPECT().UpstreamRemoteURL(mockAnyContext()).
		Return("https://dev.azure.com/contoso/Project/_git/repo-a", nil)
	m.provider.EXPECT().WaitForSignIn(mockAnyContext()).Return(true, nil)
	m.provider.EXPECT().Sessions(mockAnyContext()).Return([]ports.Session{session}, nil)
	m.client.EXPECT().ListOrganizations(mockAnyContext(), session).
		Return([]domain.Organization{{Name: "contoso"}}, nil)
	m.client.EXPECT().FetchSchema(mockAnyContext(), session, domain.OrganizationName("contoso")).
		Return(nil, errors.New("endpoint unavailable"))

	location := resolver.Resolve(context.Background(), Request{
		WorkspaceName: "repo-a",
		WorkspaceRoot: "/work/repo-a",
	})
	assert.Equal(t, "/opt/schemapick/service-schema.json", location.URI)
	assert.False(t, m.cache.Seen("contoso"))
}

func TestSessionCacheMembershipIsMonotone(t *testing.T) {
	cache := NewSessionCache()

	require.False(t, cache.Seen("contoso"))
	cache.Add("contoso")
	assert.True(t, cache.Seen("contoso"))
	cache.Add("contoso")
	assert.True(t, cache.Seen("contoso"))
	assert.False(t, cache.Seen("fabrikam"))
}

func TestSessionCacheIgnoresOrganizationNameCase(t *testing.T) {
	cache := NewSessionCache()

	cache.Add("Contoso")
	assert.True(t, cache.Seen("contoso"))
	assert.True(t, cache.Seen("CONTOSO"))
	cache.Add("contoso")
	assert.True(t, cache.Seen("Contoso"))
}

func TestNotifierFiresSubscriberPerWorkspace(t *testing.T) {
	notifier := NewNotifier()

	var got []string
	notifier.Subscribe("repo-a", func(workspace string) { got = append(got, workspace) })

	notifier.Fire("repo-a")
	notifier.Fire("repo-b") // no subscriber, no-op
	notifier.Unsubscribe("repo-a")
	notifier.Fire("repo-a")

	assert.Equal(t, []string{"repo-a"}, got)
}

func TestSystemClockAdvances(t *testing.T) {
	before := time.Now()
	now := ports.SystemClock{}.Now()
	assert.False(t, now.Before(before))
}
