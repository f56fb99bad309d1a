package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuemby/burrow/pkg/metrics"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Show which resolver tools are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, disp, err := setup()
		if err != nil {
			return err
		}

		prober := disp.Prober()
		avail := prober.Available()

		for _, name := range []string{"dig", "drill", "host", "nslookup"} {
			status := "not found"
			if avail[name] {
				status = "installed"
			}
			fmt.Printf("  %-10s %s\n", name, status)
			metrics.SetBackendAvailable(name, avail[name])
		}
		fmt.Printf("  %-10s built-in (A/AAAA only)\n", "native")
		fmt.Println()
		fmt.Printf("auto-selection picks: %s\n", prober.Detect().Name())

		if secure, err := prober.DetectSecure(); err == nil {
			fmt.Printf("secure lookups use:   %s\n", secure.Name())
		} else {
			fmt.Println("secure lookups:       unavailable (need dig or drill)")
		}
		return nil
	},
}
