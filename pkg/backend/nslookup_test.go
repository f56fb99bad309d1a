package backend

import (
	"context"
	"testing"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nslookupMXOutput = `Server:		10.0.0.1
Address:	10.0.0.1#53

Non-authoritative answer:
example.com	mail exchanger = 10 mx1.example.com.
example.com	mail exchanger = 20 mx2.example.com.

Authoritative answers can be found from:
example.com	nameserver = ns1.example.com.
`

func TestNslookupParsesMX(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{Stdout: nslookupMXOutput}}
	records, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeMX})
	require.NoError(t, err)
	require.Len(t, records, 2)

	pref, _ := records[0].Get("preference")
	name, _ := records[0].Get("name")
	assert.Equal(t, 10, pref)
	assert.Equal(t, "mx1.example.com.", name)

	assert.Equal(t, "nslookup", runner.lastName)
	assert.Equal(t, []string{"-query=MX", "example.com"}, runner.lastArgs)
}

const nslookupAOutput = `Server:		10.0.0.1
Address:	10.0.0.1#53

Non-authoritative answer:
Name:	example.com
Address: 10.1.1.1
Name:	example.com
Address: 10.1.1.2
`

func TestNslookupParsesAddresses(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{Stdout: nslookupAOutput}}
	records, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeA})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "10.1.1.1", records[0].String())

	// the preamble Address line must not leak into the answer
	for _, r := range records {
		assert.NotEqual(t, "10.0.0.1", r.String())
	}
}

func TestNslookupNoAnswerIsNegative(t *testing.T) {
	out := `Server:		10.0.0.1
Address:	10.0.0.1#53

Non-authoritative answer:
*** Can't find example.com: No answer
`
	runner := &fakeRunner{result: executil.Result{Stdout: out}}
	records, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeMX})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

// some platforms exit 1 for the same negative answer text
func TestNslookupNoAnswerNonZeroExitStillNegative(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout:  "*** Can't find example.com: No answer\n",
		Retcode: 1,
	}}
	records, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeMX})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNslookupServerFailureIsUnavailable(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{
		Stdout:  ";; connection timed out; no servers could be reached\n",
		Retcode: 1,
	}}
	_, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeA})
	assert.ErrorIs(t, err, types.ErrUnavailable)
}

func TestNslookupParsesTXT(t *testing.T) {
	out := `Server:		10.0.0.1
Address:	10.0.0.1#53

Non-authoritative answer:
example.com	text = "v=spf1 include:example.net ~all"
`
	runner := &fakeRunner{result: executil.Result{Stdout: out}}
	records, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeTXT})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "v=spf1 include:example.net ~all", records[0].Scalar())
}

func TestNslookupSecureIsUsageError(t *testing.T) {
	runner := &fakeRunner{result: executil.Result{}}
	_, err := Nslookup{Runner: runner}.Lookup(context.Background(),
		types.Query{Name: "example.com", Type: types.TypeA, Secure: true})
	assert.ErrorIs(t, err, types.ErrBadInput)
}

func TestNslookupDoesNotSupportSOA(t *testing.T) {
	assert.False(t, Nslookup{}.Supports(types.TypeSOA))
	assert.True(t, Nslookup{}.Supports(types.TypeMX))
}
