package git

import (
	"context"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollet/schemapick/internal/domain"
)

func TestOpenRepositoryOutsideRepo(t *testing.T) {
	scm := New()

	_, err := scm.OpenRepository(context.Background(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrNoRepository)
}

func TestUpstreamRemoteURLWithoutRemote(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	scm := New()
	repo, err := scm.OpenRepository(context.Background(), dir)
	require.NoError(t, err)

	_, err = repo.UpstreamRemoteURL(context.Background())
	require.ErrorIs(t, err, domain.ErrNoRemote)
}

func TestUpstreamRemoteURLReturnsOriginFetchURL(t *testing.T) {
	dir := t.TempDir()
	raw, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = raw.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://dev.azure.com/contoso/Project/_git/repo-a"},
	})
	require.NoError(t, err)

	scm := New()
	repo, err := scm.OpenRepository(context.Background(), dir)
	require.NoError(t, err)

	remote, err := repo.UpstreamRemoteURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://dev.azure.com/contoso/Project/_git/repo-a", remote)
}

func TestUpstreamRemoteURLPrefersTrackedRemote(t *testing.T) {
	dir := t.TempDir()
	raw, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	for name, url := range map[string]string{
		"origin":   "https://dev.azure.com/contoso/Project/_git/repo-a",
		"upstream": "https://dev.azure.com/fabrikam/Project/_git/repo-a",
	} {
		_, err = raw.CreateRemote(&gitconfig.RemoteConfig{Name: name, URLs: []string{url}})
		require.NoError(t, err)
	}

	cfg, err := raw.Config()
	require.NoError(t, err)
	cfg.Branches["master"] = &gitconfig.Branch{
		Name:   "master",
		Remote: "upstream",
		Merge:  "refs/heads/master",
	}
	require.NoError(t, raw.SetConfig(cfg))

	scm := New()
	repo, err := scm.OpenRepository(context.Background(), dir)
	require.NoError(t, err)

	remote, err := repo.UpstreamRemoteURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://dev.azure.com/fabrikam/Project/_git/repo-a", remote)
}
