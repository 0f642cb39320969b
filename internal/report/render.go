// Package report renders the human-readable scan report. Finding matches
// arrive pre-masked; this package never sees raw secret text.
package report

import (
	"fmt"
	"io"

	"github.com/mfe775/PP-SecCommit/internal/policy"
	"github.com/mfe775/PP-SecCommit/internal/types"
)

const toolName = "PP-SecCommit"

// Print writes the report for one invocation: mode banner, one line per
// finding with fix steps, and the closing verdict.
func Print(w io.Writer, findings []types.Finding, d policy.Decision) {
	if len(findings) == 0 {
		fmt.Fprintf(w, "%s: no findings.\n", toolName)
		return
	}

	if d.Verdict == types.VerdictAllowedWithWarnings {
		fmt.Fprintf(w, "%s report (ALLOW MODE: WARN only):\n", toolName)
	} else {
		fmt.Fprintf(w, "%s report (ENFORCING MODE: HIGH on ALL findings):\n", toolName)
	}

	fmt.Fprintln(w, "\nFindings:")
	for _, f := range findings {
		fmt.Fprintf(w, "  %s:%d [%s/%s] -> %s\n", f.Path, f.Line, d.Severity, f.Label, f.Match)
		fmt.Fprintln(w, "    Fix steps:")
		printFix(w, f.Label)
	}

	if d.Verdict == types.VerdictAllowedWithWarnings {
		fmt.Fprintln(w, "\nOverride: commit message is 'allow' → NOT blocking (alerts only).")
	} else {
		fmt.Fprintln(w, "\nCommit BLOCKED: findings are HIGH by policy (no flags).")
	}
}

func printFix(w io.Writer, label string) {
	for _, t := range AdviceFor(label) {
		fmt.Fprintf(w, "      - %s\n", t)
	}
	fmt.Fprintln(w, "      - Local Git cleanup example:")
	fmt.Fprintln(w, "        git restore --staged <file> && sed -i 's/<secret>/<placeholder>/' <file>")
	fmt.Fprintln(w, "        git add <file> && git commit --amend --no-edit")
	fmt.Fprintln(w, "      - If already pushed: rewrite history with git filter-repo or BFG.")
}
