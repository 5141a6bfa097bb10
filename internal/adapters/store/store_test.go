package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationIsDeterministic(t *testing.T) {
	s := New("/var/lib/schemapick")

	first := s.Location("Contoso")
	second := s.Location("contoso")

	assert.Equal(t, filepath.Join("/var/lib/schemapick", "contoso-schema.json"), first.URI)
	assert.Equal(t, first.URI, second.URI)
}

func TestWriteCreatesRootAndDocument(t *testing.T) {
	root := filepath.Join(t.TempDir(), "schemas")
	s := New(root)

	location, err := s.Write(context.Background(), "contoso", []byte(`{"title":"pipeline"}`))
	require.NoError(t, err)

	data, err := os.ReadFile(location.URI)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"pipeline"}`, string(data))
}

func TestWriteOverwritesSameLocation(t *testing.T) {
	s := New(t.TempDir())

	first, err := s.Write(context.Background(), "contoso", []byte(`{"rev":1}`))
	require.NoError(t, err)
	second, err := s.Write(context.Background(), "contoso", []byte(`{"rev":2}`))
	require.NoError(t, err)

	assert.Equal(t, first.URI, second.URI)

	data, err := os.ReadFile(second.URI)
	require.NoError(t, err)
	assert.Equal(t, `{"rev":2}`, string(data))
}

func TestWriteLeavesNoTempFilesBehind(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	_, err := s.Write(context.Background(), "contoso", []byte(`{"rev":1}`))
	require.NoError(t, err)
	_, err = s.Write(context.Background(), "contoso", []byte(`{"rev":2}`))
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "contoso-schema.json", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
