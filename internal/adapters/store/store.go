// Package store writes fetched schema documents under the installation's
// storage root, one file per organization.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports"
)

const (
	storeDirMode    = 0o700
	schemaFileMode  = 0o600
	tempFilePattern = ".schema-*.json.tmp"
)

type SchemaStore struct {
	root string
	mu   sync.Mutex
}

var _ ports.SchemaStore = (*SchemaStore)(nil)

func New(root string) *SchemaStore {
	return &SchemaStore{root: filepath.Clean(root)}
}

// Location is a pure function of the organization name; it does not check
// that the file exists.
func (s *SchemaStore) Location(org domain.OrganizationName) domain.SchemaLocation {
	return domain.SchemaLocation{
		URI:          filepath.Join(s.root, domain.SchemaFileName(org)),
		Organization: org,
	}
}

// Write replaces the organization's schema document atomically via a temp
// file and rename, so readers never observe a partial document. Creating
// the storage root is idempotent.
func (s *SchemaStore) Write(ctx context.Context, org domain.OrganizationName, schema []byte) (domain.SchemaLocation, error) {
	if err := ctx.Err(); err != nil {
		return domain.SchemaLocation{}, err
	}

	location := s.Location(org)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return domain.SchemaLocation{}, fmt.Errorf("create schema store directory: %w", err)
	}

	tempFile, err := os.CreateTemp(s.root, tempFilePattern)
	if err != nil {
		return domain.SchemaLocation{}, fmt.Errorf("create temp schema file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(schema); err != nil {
		_ = tempFile.Close()
		return domain.SchemaLocation{}, fmt.Errorf("write temp schema file: %w", err)
	}

	if err := tempFile.Chmod(schemaFileMode); err != nil {
		_ = tempFile.Close()
		return domain.SchemaLocation{}, fmt.Errorf("chmod temp schema file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return domain.SchemaLocation{}, fmt.Errorf("close temp schema file: %w", err)
	}

	if err := os.Rename(tempName, location.URI); err != nil {
		return domain.SchemaLocation{}, fmt.Errorf("replace schema document for %q: %w", org, err)
	}

	cleanup = false

	return location, nil
}
