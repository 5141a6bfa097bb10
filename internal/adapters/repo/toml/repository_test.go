package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollet/schemapick/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(choicesPathKey, filepath.Join(t.TempDir(), "choices.toml"))

	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	return repo
}

func TestGetMissingWorkspace(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "repo-a")
	require.ErrorIs(t, err, domain.ErrChoiceNotFound)
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	choice := domain.OrganizationChoice{
		Workspace:    "repo-a",
		Organization: "contoso",
		TenantID:     uuid.New(),
		ChosenAt:     time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(context.Background(), choice))

	got, err := repo.Get(context.Background(), "repo-a")
	require.NoError(t, err)
	assert.Equal(t, choice, got)
}

func TestSavePreservesOtherWorkspaces(t *testing.T) {
	repo := newTestRepository(t)
	first := domain.OrganizationChoice{Workspace: "repo-a", Organization: "contoso", TenantID: uuid.New()}
	second := domain.OrganizationChoice{Workspace: "repo-b", Organization: "fabrikam", TenantID: uuid.New()}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	choices, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, choices, 2)
}

func TestSaveLastWriteWinsPerWorkspace(t *testing.T) {
	repo := newTestRepository(t)
	tenantID := uuid.New()

	require.NoError(t, repo.Save(context.Background(), domain.OrganizationChoice{
		Workspace: "repo-a", Organization: "contoso", TenantID: tenantID,
	}))
	require.NoError(t, repo.Save(context.Background(), domain.OrganizationChoice{
		Workspace: "repo-a", Organization: "fabrikam", TenantID: tenantID,
	}))

	got, err := repo.Get(context.Background(), "repo-a")
	require.NoError(t, err)
	assert.Equal(t, domain.OrganizationName("fabrikam"), got.Organization)

	choices, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, choices, 1)
}

func TestReadRejectsNewerSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choices.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	cfg := viper.New()
	cfg.Set(choicesPathKey, path)
	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported choices schema version")
}

func TestWrittenFileHasRestrictedMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choices.toml")
	cfg := viper.New()
	cfg.Set(choicesPathKey, path)
	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.OrganizationChoice{
		Workspace: "repo-a", Organization: "contoso", TenantID: uuid.New(),
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
