package devops

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcollet/schemapick/internal/domain"
	"github.com/lcollet/schemapick/internal/ports/mocks"
)

func fixedSession(t *testing.T, token string) *mocks.MockSession {
	t.Helper()

	session := mocks.NewMockSession(t)
	session.EXPECT().Token(mockAnyContext()).Return(token, nil)
	session.EXPECT().Label().Return("dev@contoso.com").Maybe()
	session.EXPECT().TenantID().Return(uuid.New()).Maybe()
	return session
}

func TestListOrganizationsSendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"count":2,"value":[{"accountName":"contoso"},{"accountName":"fabrikam"},{"accountName":""}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	organizations, err := client.ListOrganizations(context.Background(), fixedSession(t, "tok-123"))
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/_apis/accounts", gotPath)
	assert.Equal(t, []domain.Organization{{Name: "contoso"}, {Name: "fabrikam"}}, organizations)
}

func TestFetchSchemaReturnsRawDocument(t *testing.T) {
	schema := `{"$schema":"http://json-schema.org/draft-07/schema#","title":"pipeline"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contoso/_apis/distributedtask/yamlschema", r.URL.Path)
		_, _ = w.Write([]byte(schema))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	body, err := client.FetchSchema(context.Background(), fixedSession(t, "tok-123"), "contoso")
	require.NoError(t, err)
	assert.JSONEq(t, schema, string(body))
}

func TestFetchSchemaRejectsNonJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>sign in</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, err := client.FetchSchema(context.Background(), fixedSession(t, "tok-123"), "contoso")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestGetPropagatesErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, err := client.ListOrganizations(context.Background(), fixedSession(t, "expired"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}
