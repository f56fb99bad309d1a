package backend

import (
	"context"
	"testing"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The same underlying DNS answer, rendered in each tool's output
// grammar, must parse into equal records on every backend.
func TestCrossBackendEquivalence(t *testing.T) {
	tests := []struct {
		name  string
		rtype types.RecordType
		// one stdout per backend
		dig, drill, host, nslookup string
	}{
		{
			name:  "MX",
			rtype: types.TypeMX,
			dig:   "example.com.\t\tMX\t10 mx1.example.com.\n",
			drill: ";; ANSWER SECTION:\nexample.com.\t3600\tIN\tMX\t10 mx1.example.com.\n;; AUTHORITY SECTION:\n",
			host:  "example.com mail is handled by 10 mx1.example.com.\n",
			nslookup: "Non-authoritative answer:\n" +
				"example.com\tmail exchanger = 10 mx1.example.com.\n",
		},
		{
			name:  "A",
			rtype: types.TypeA,
			dig:   "example.com.\t300\tIN\tA\t10.1.1.1\n",
			drill: ";; ANSWER SECTION:\nexample.com.\t300\tIN\tA\t10.1.1.1\n;; AUTHORITY SECTION:\n",
			host:  "example.com has address 10.1.1.1\n",
			nslookup: "Non-authoritative answer:\n" +
				"Name:\texample.com\nAddress: 10.1.1.1\n",
		},
		{
			name:  "SSHFP normalization quirks",
			rtype: types.TypeSSHFP,
			dig:   "example.com.\tSSHFP\t1 2 4EE9A9AC1A7B2237\n",
			drill: ";; ANSWER SECTION:\nexample.com.\t3600\tIN\tSSHFP\t1 2 4ee9a9ac 1a7b2237\n;; AUTHORITY SECTION:\n",
			host:  "example.com has SSHFP record 1 2 4EE9A9AC 1A7B2237\n",
			nslookup: "Non-authoritative answer:\n" +
				"example.com\tSSHFP = 1 2 4ee9a9ac1a7b2237\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := types.Query{Name: "example.com", Type: tt.rtype}
			backends := []struct {
				b      Backend
				stdout string
			}{
				{Dig{Runner: &fakeRunner{result: executil.Result{Stdout: tt.dig}}}, tt.dig},
				{Drill{Runner: &fakeRunner{result: executil.Result{Stdout: tt.drill}}}, tt.drill},
				{Host{Runner: &fakeRunner{result: executil.Result{Stdout: tt.host}}}, tt.host},
				{Nslookup{Runner: &fakeRunner{result: executil.Result{Stdout: tt.nslookup}}}, tt.nslookup},
			}

			var reference []types.Record
			for i, entry := range backends {
				records, err := entry.b.Lookup(context.Background(), q)
				require.NoError(t, err, entry.b.Name())
				require.Len(t, records, 1, entry.b.Name())
				if i == 0 {
					reference = records
					continue
				}
				assert.True(t, reference[0].Equal(records[0]),
					"%s parsed %v, dig parsed %v", entry.b.Name(), records[0], reference[0])
			}
		})
	}
}
