package main

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/burrow/pkg/backend"
	"github.com/cuemby/burrow/pkg/config"
	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/resolver"
)

type cannedRunner struct {
	res executil.Result
}

func (c cannedRunner) Run(_ context.Context, _ string, _ ...string) executil.Result {
	return c.res
}

type cannedFinder map[string]bool

func (f cannedFinder) Find(name string) (string, bool) {
	if f[name] {
		return "/usr/bin/" + name, true
	}
	return "", false
}

// wireResponse mirrors lookupResponse with raw record payloads, since
// records marshal polymorphically (scalars as bare values)
type wireResponse struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Records []json.RawMessage `json:"records"`
}

func newTestHandler(res executil.Result) *httptest.Server {
	prober := backend.NewProber(cannedFinder{"dig": true}, cannedRunner{res: res})
	disp := resolver.NewWithProber(config.Default(), prober)
	return httptest.NewServer(lookupHandler(disp))
}

func TestLookupHandlerServesRecords(t *testing.T) {
	srv := newTestHandler(executil.Result{
		Stdout: "example.com.\t\tA\t93.184.216.34\n",
	})
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "?name=example.com&type=A")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var body wireResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "example.com", body.Name)
	assert.Equal(t, "A", body.Type)
	require.Len(t, body.Records, 1)
	assert.JSONEq(t, `"93.184.216.34"`, string(body.Records[0]))
}

func TestLookupHandlerNegativeAnswer(t *testing.T) {
	srv := newTestHandler(executil.Result{Stdout: ""})
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "?name=example.com&type=MX")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var body wireResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Records)
	assert.Empty(t, body.Records)
}

func TestLookupHandlerRejectsBadType(t *testing.T) {
	srv := newTestHandler(executil.Result{})
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "?name=example.com&type=BOGUS")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Error)
}

func TestLookupHandlerResolverFailureIs502(t *testing.T) {
	srv := newTestHandler(executil.Result{
		Stderr:  ";; connection timed out; no servers could be reached",
		Retcode: 9,
	})
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "?name=example.com&type=A")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 502, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unavailable", body.Class)
}
