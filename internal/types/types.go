package types

// Kind says which half of the engine produced a finding.
type Kind string

const (
	KindSecret  Kind = "SECRET"
	KindEntropy Kind = "ENTROPY"
)

// Severity is decided by policy for the whole run, not per finding.
type Severity string

const (
	SevWarn Severity = "WARN"
	SevHigh Severity = "HIGH"
)

// Finding is one suspected secret occurrence at a file/line. Match is
// already masked; raw matched text never leaves the detectors package.
type Finding struct {
	Path  string `json:"path"`
	Line  int    `json:"line"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
	Match string `json:"match"`
}

// Verdict is the commit-level outcome of a scan.
type Verdict string

const (
	VerdictClean               Verdict = "CLEAN"
	VerdictBlocked             Verdict = "BLOCKED"
	VerdictAllowedWithWarnings Verdict = "ALLOWED_WITH_WARNINGS"
)
