// Package policy turns findings plus the commit-message override into a
// commit verdict. Intentionally coarse: a single finding blocks unless the
// override is active.
package policy

import (
	"strings"

	"github.com/mfe775/PP-SecCommit/internal/types"
)

// Overridden reports whether the commit message asks for warn-only mode.
// Only the exact word "allow" qualifies, case-folded and trimmed.
func Overridden(commitMsg string) bool {
	return strings.EqualFold(strings.TrimSpace(commitMsg), "allow")
}

// Decision is the full policy outcome for one invocation. Severity applies
// uniformly to every finding; there is no per-finding weighting.
type Decision struct {
	Verdict  types.Verdict
	Severity types.Severity
	ExitCode int
}

// Decide maps (findings present?, override?) onto the verdict. Total over
// all inputs; exactly one outcome per pair.
func Decide(findingCount int, override bool) Decision {
	switch {
	case override:
		return Decision{Verdict: types.VerdictAllowedWithWarnings, Severity: types.SevWarn, ExitCode: 0}
	case findingCount == 0:
		return Decision{Verdict: types.VerdictClean, Severity: types.SevHigh, ExitCode: 0}
	default:
		return Decision{Verdict: types.VerdictBlocked, Severity: types.SevHigh, ExitCode: 1}
	}
}
