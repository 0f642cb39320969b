package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const hookScript = "#!/bin/sh\n\nexec seccommit \"$@\"\n"

func init() {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage git hooks",
	}
	rootCmd.AddCommand(cmd)

	install := &cobra.Command{
		Use:   "install",
		Short: "Install the prepare-commit-msg hook in the current repository",
		RunE: func(_ *cobra.Command, _ []string) error {
			hookDir := filepath.Join(".git", "hooks")
			if _, err := os.Stat(hookDir); os.IsNotExist(err) {
				return fmt.Errorf("not a git repository (missing %s)", hookDir)
			}
			hookPath := filepath.Join(hookDir, "prepare-commit-msg")
			if err := os.WriteFile(hookPath, []byte(hookScript), 0755); err != nil {
				return err
			}
			fmt.Printf("Installed hook -> %s\n", hookPath)
			return nil
		},
	}
	cmd.AddCommand(install)
}
