package ports

import "context"

// SourceControl opens repository metadata for a workspace root. Callers must
// tolerate absence: OpenRepository returns domain.ErrNoRepository when the
// root is not under source control.
type SourceControl interface {
	OpenRepository(ctx context.Context, root string) (Repository, error)
}

// Repository exposes the one piece of repository state this tool consumes.
type Repository interface {
	// UpstreamRemoteURL returns the fetch URL of the current branch's
	// upstream remote, falling back to "origin". Returns
	// domain.ErrNoRemote when no remote is configured.
	UpstreamRemoteURL(ctx context.Context) (string, error)
}
