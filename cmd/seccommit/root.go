package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mfe775/PP-SecCommit/internal/config"
	"github.com/mfe775/PP-SecCommit/internal/gitindex"
	"github.com/mfe775/PP-SecCommit/internal/ignore"
	"github.com/mfe775/PP-SecCommit/internal/policy"
	"github.com/mfe775/PP-SecCommit/internal/report"
	"github.com/mfe775/PP-SecCommit/internal/scanner"
	"github.com/mfe775/PP-SecCommit/internal/types"
)

// errBlocked distinguishes a policy block (exit 1) from a runtime failure
// (exit 2) in main.
var errBlocked = errors.New("commit blocked by policy")

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "seccommit [commit-msg-file] [hook-args...]",
	Short: "Git hook that blocks commits containing secrets or high-entropy tokens",
	Long: `seccommit scans the files staged for the pending commit for leaked
credentials and high-entropy tokens. Install it as a prepare-commit-msg or
commit-msg hook; git passes the commit message file as the first argument
(extra hook arguments are accepted and ignored). Any finding blocks the
commit unless the commit message is exactly "allow".`,
	Args:          cobra.MaximumNArgs(3),
	RunE:          runHook,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			log.Debug().Msg("verbose log output enabled")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func runHook(cmd *cobra.Command, args []string) error {
	msg := ""
	if len(args) > 0 {
		msg = readCommitMessage(args[0])
	}
	override := policy.Overridden(msg)

	findings, err := scanStaged(cmd.Context())
	if err != nil {
		return err
	}

	d := policy.Decide(len(findings), override)
	report.Print(os.Stdout, findings, d)
	if d.ExitCode != 0 {
		return errBlocked
	}
	return nil
}

// scanStaged runs the full detection pipeline: resolve limits, enumerate
// the staged set, apply .seccommitignore, fetch and scan each blob.
func scanStaged(ctx context.Context) ([]types.Finding, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	paths, err := gitindex.StagedPaths(ctx)
	if err != nil {
		return nil, err
	}
	paths = ignore.Load(ignore.FileName).Filter(paths)
	return scanner.ScanAll(ctx, paths, gitindex.StagedBlob, cfg), nil
}

// A missing or unreadable message file reads as empty: the hook still
// scans, it just cannot be overridden.
func readCommitMessage(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(b), string(utf8.RuneError)))
}
