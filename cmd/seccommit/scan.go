package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfe775/PP-SecCommit/internal/policy"
	"github.com/mfe775/PP-SecCommit/internal/report"
)

var flagJSON bool

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan staged files and report findings without consulting a commit message",
		RunE:  runScan,
	}
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	rootCmd.AddCommand(cmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	findings, err := scanStaged(cmd.Context())
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	} else {
		report.Print(os.Stdout, findings, policy.Decide(len(findings), false))
	}

	if len(findings) > 0 {
		return errBlocked
	}
	return nil
}
