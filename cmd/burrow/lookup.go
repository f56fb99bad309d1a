package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/burrow/pkg/resolver"
	"github.com/cuemby/burrow/pkg/types"
)

var (
	lookupType    string
	lookupBackend string
	lookupServers []string
	lookupSecure  bool
	lookupWalk    bool
	lookupJSON    bool
	lookupGrouped bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME",
	Short: "Resolve DNS records for a name",
	Long: `Resolve DNS records for a name with the selected backend.

An empty result is a valid negative answer and exits 0; failures exit 1
with the outcome class named.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, disp, err := setup()
		if err != nil {
			return err
		}

		rtype, err := types.ParseRecordType(lookupType)
		if err != nil {
			return fmt.Errorf("lookup failed (%s): %v", outcomeClass(err), err)
		}

		opts := resolver.Options{
			Backend: lookupBackend,
			Servers: lookupServers,
			Secure:  lookupSecure,
			Walk:    lookupWalk,
		}
		records, err := disp.Lookup(cmd.Context(), args[0], rtype, opts)
		if err != nil {
			return fmt.Errorf("lookup failed (%s): %v", outcomeClass(err), err)
		}

		if lookupGrouped {
			records, err = groupRecords(disp, rtype, records)
			if err != nil {
				return fmt.Errorf("lookup failed (%s): %v", outcomeClass(err), err)
			}
		}

		return printRecords(records)
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupType, "type", "A", "Record type to query")
	lookupCmd.Flags().StringVar(&lookupBackend, "backend", "", "Backend to use (native, dig, drill, host, nslookup, auto)")
	lookupCmd.Flags().StringArrayVar(&lookupServers, "server", nil, "Resolver address to query (repeatable)")
	lookupCmd.Flags().BoolVar(&lookupSecure, "secure", false, "Require DNSSEC-validated answers")
	lookupCmd.Flags().BoolVar(&lookupWalk, "walk", false, "Walk up the domain tree until a suffix answers")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print records as JSON")
	lookupCmd.Flags().BoolVar(&lookupGrouped, "grouped", false, "Order SRV/MX answers by priority tier before printing")
}

// groupRecords reorders SRV and MX answers into selection order. Other
// types have no priority field to group on.
func groupRecords(disp *resolver.Dispatcher, rtype types.RecordType, records []types.Record) ([]types.Record, error) {
	switch rtype {
	case types.TypeSRV:
		return disp.OrderedSRV(records)
	case types.TypeMX:
		return disp.OrderedMX(records)
	}
	return nil, fmt.Errorf("%w: --grouped applies to SRV and MX only", types.ErrBadInput)
}

func printRecords(records []types.Record) error {
	if lookupJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no records")
		return nil
	}
	for _, r := range records {
		fmt.Println(r.String())
	}
	return nil
}

// outcomeClass names the failure class for the exit message
func outcomeClass(err error) string {
	switch {
	case errors.Is(err, types.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, types.ErrUnsupportedType):
		return "unsupported type"
	case errors.Is(err, types.ErrParse):
		return "parse error"
	case errors.Is(err, types.ErrBadInput):
		return "bad input"
	}
	return "error"
}
