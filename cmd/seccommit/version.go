package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var version = "0.2.0"

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(_ *cobra.Command, _ []string) {
			rev := ""
			if info, ok := debug.ReadBuildInfo(); ok {
				for _, s := range info.Settings {
					if s.Key == "vcs.revision" {
						rev = s.Value
					}
				}
			}
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if rev != "" {
				fmt.Printf("%s (commit %s)\n", version, rev)
				return
			}
			fmt.Println(version)
		},
	}
	rootCmd.AddCommand(cmd)
}
