package backend

import (
	"context"
	"testing"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostParsesAddress(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout: "mocksrvr.example.com has address 10.1.1.1\n",
	}}
	records, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "mocksrvr.example.com", Type: types.TypeA})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10.1.1.1", records[0].String())

	assert.Equal(t, "host", runner.lastName)
	assert.Equal(t, []string{"-t", "A", "mocksrvr.example.com"}, runner.lastArgs)
}

func TestHostParsesMX(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout: "example.com mail is handled by 10 mx1.example.com.\n" +
			"example.com mail is handled by 20 mx2.example.com.\n",
	}}
	records, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeMX})
	require.NoError(t, err)
	require.Len(t, records, 2)

	pref, _ := records[0].Get("preference")
	assert.Equal(t, 10, pref)
}

func TestHostParsesTXT(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout: "example.com descriptive text \"v=spf1 ~all\"\n",
	}}
	records, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeTXT})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "v=spf1 ~all", records[0].Scalar())
}

// "has no MX record" with a clean exit is a negative answer, not a
// failure.
func TestHostNoRecordIsNegative(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout: "www.example.com has no MX record\n",
	}}
	records, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "www.example.com", Type: types.TypeMX})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHostFailureIsUnavailable(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stderr:  ";; connection timed out; no servers could be reached\n",
		Retcode: 1,
	}}
	_, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeA})
	assert.ErrorIs(t, err, types.ErrUnavailable)
}

func TestHostSingleServerArgument(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{}}
	_, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeA, Servers: []string{"10.0.0.1", "10.0.0.2"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-t", "A", "example.com", "10.0.0.1"}, runner.lastArgs)
}

func TestHostSecureIsUsageError(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{}}
	_, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeA, Secure: true})
	assert.ErrorIs(t, err, types.ErrBadInput)
}

func TestHostParsesSSHFP(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout: "example.com has SSHFP record 1 2 4EE9A9AC 1A7B2237\n",
	}}
	records, err := Host{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeSSHFP})
	require.NoError(t, err)
	require.Len(t, records, 1)

	fp, _ := records[0].Get("fingerprint")
	assert.Equal(t, "4ee9a9ac1a7b2237", fp)
}
