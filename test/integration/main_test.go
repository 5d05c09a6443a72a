package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semihsari152/CoreGameApp-sub006/test/helpers"
)

// newServer boots a full router on its own in-memory database, so
// tests never see each other's rows and can run in parallel.
func newServer(t *testing.T) *helpers.TestServer {
	t.Helper()
	ts := helpers.NewTestServer(t)
	t.Cleanup(ts.Close)
	return ts
}

func decode(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), "response body: %s", body)
}
