package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "polyglot/pkg/domain-errors"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())

	assert.Equal(t, []ServiceName{Catalog, Graph, LogStore, SessionCart, Statement}, r.Services())

	url, err := r.Endpoint(SessionCart, OpUpdateCart)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5002/carts/update", url)

	health, err := r.HealthURL(Graph)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5005/", health)

	assert.Equal(t, []string{"REDIS", "MONGODB", "NEO4J"}, r.Tags(SessionCart, Statement, Graph))
	assert.True(t, r.Has(SessionCart, OpResetCart))
}

func TestEndpointErrors(t *testing.T) {
	r := Default()

	_, err := r.Endpoint("payments", OpFollow)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))

	_, err = r.Endpoint(Catalog, OpFollow)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Equal(t, "unknown", r.Tag("unknown"))
}

func TestParseOverlay(t *testing.T) {
	raw := []byte(`
services:
  graph:
    base_url: http://graph.internal:7474/
    tag: GRAPH
  sessioncart:
    operations:
      reset_cart: ""
      read_cart: /v2/carts/read
`)
	r, err := Parse(raw)
	require.NoError(t, err)

	url, err := r.Endpoint(Graph, OpRecommend)
	require.NoError(t, err)
	assert.Equal(t, "http://graph.internal:7474/recommend", url)
	assert.Equal(t, "GRAPH", r.Tag(Graph))

	assert.False(t, r.Has(SessionCart, OpResetCart), "empty path removes the operation")
	url, err = r.Endpoint(SessionCart, OpReadCart)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5002/v2/carts/read", url)
}

func TestParseRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown service", "services:\n  payments:\n    base_url: http://x\n"},
		{"relative base url", "services:\n  graph:\n    base_url: graph:7474\n"},
		{"relative operation path", "services:\n  graph:\n    operations:\n      follow: follow\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}

	_, err := Parse([]byte("services: [oops"))
	require.Error(t, err)
}

func TestLoadAppliesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services:\n  catalog:\n    tag: CATALOG\n"), 0o600))
	t.Setenv("POLYGLOT_CATALOG_URL", "http://catalog:9001")

	r, err := Load(path)
	require.NoError(t, err)

	url, err := r.Endpoint(Catalog, OpAuthenticate)
	require.NoError(t, err)
	assert.Equal(t, "http://catalog:9001/auth/login", url)
	assert.Equal(t, "CATALOG", r.Tag(Catalog))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
