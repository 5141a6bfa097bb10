// Package git reads repository remote metadata through go-git, without
// shelling out to a git binary.
package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

const defaultRemote = "origin"

type SourceControl struct{}

var _ ports.SourceControl = (*SourceControl)(nil)

func New() *SourceControl {
	return &SourceControl{}
}

func (s *SourceControl) OpenRepository(ctx context.Context, root string) (ports.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNoRepository
		}
		return nil, fmt.Errorf("open repository at %q: %w", root, err)
	}

	return &repository{repo: repo}, nil
}

type repository struct {
	repo *gogit.Repository
}

// UpstreamRemoteURL prefers the upstream remote of the checked-out branch
// and falls back to "origin". The first fetch URL wins.
func (r *repository) UpstreamRemoteURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return "", fmt.Errorf("read repository config: %w", err)
	}

	remoteName := defaultRemote
	if head, err := r.repo.Reference(plumbing.HEAD, false); err == nil && head.Type() == plumbing.SymbolicReference {
		branch := head.Target().Short()
		if tracked, ok := cfg.Branches[branch]; ok && tracked.Remote != "" {
			remoteName = tracked.Remote
		}
	}

	remote, ok := cfg.Remotes[remoteName]
	if !ok || len(remote.URLs) == 0 {
		return "", domain.ErrNoRemote
	}

	return remote.URLs[0], nil
}
