package application

import (
	"context"
	"net/url"
	"strings"

	"github.com/lcollet/schemapick/internal/domain"
)

const (
	hostedDomain       = "dev.azure.com"
	legacyDomainSuffix = ".visualstudio.com"
	sshPrefix          = "git@ssh.dev.azure.com:v3/"
	legacySSHMarker    = "@vs-ssh.visualstudio.com:v3/"
)

// remoteIdentity derives the organization name from the workspace's
// upstream remote, if any. Absence of a repository, a remote, or a
// recognized URL shape all mean "not auto-detectable", never an error.
func (r *Resolver) remoteIdentity(ctx context.Context, root string) (domain.OrganizationName, bool) {
	if r.scm == nil {
		return "", false
	}

	repo, err := r.scm.OpenRepository(ctx, root)
	if err != nil {
		r.logger.Debug("no repository for workspace", "root", root, "err", err)
		return "", false
	}

	remote, err := repo.UpstreamRemoteURL(ctx)
	if err != nil {
		r.logger.Debug("no upstream remote", "root", root, "err", err)
		return "", false
	}

	return organizationFromRemoteURL(remote)
}

// organizationFromRemoteURL extracts the organization name from a remote
// URL of a recognized hosting shape. Extraction is deterministic and
// performs no network access.
//
// Recognized shapes:
//
//	https://dev.azure.com/{org}/...
//	https://{user}@dev.azure.com/{org}/...
//	git@ssh.dev.azure.com:v3/{org}/{project}/{repo}
//	https://{org}.visualstudio.com/...
//	{user}@vs-ssh.visualstudio.com:v3/{org}/{project}/{repo}
func organizationFromRemoteURL(remote string) (domain.OrganizationName, bool) {
	trimmed := strings.TrimSpace(remote)
	if trimmed == "" {
		return "", false
	}

	if rest, ok := strings.CutPrefix(trimmed, sshPrefix); ok {
		return firstPathSegment(rest)
	}

	if _, rest, ok := strings.Cut(trimmed, legacySSHMarker); ok {
		return firstPathSegment(rest)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	switch {
	case host == hostedDomain:
		return firstPathSegment(strings.TrimPrefix(parsed.Path, "/"))
	case strings.HasSuffix(host, legacyDomainSuffix):
		org := strings.TrimSuffix(host, legacyDomainSuffix)
		if org == "" || org == "www" || strings.Contains(org, ".") {
			return "", false
		}
		return domain.OrganizationName(org), true
	}

	return "", false
}

func firstPathSegment(path string) (domain.OrganizationName, bool) {
	segment, _, _ := strings.Cut(path, "/")
	if segment == "" {
		return "", false
	}

	return domain.OrganizationName(segment), true
}
