// Package detectors holds the secret-shape catalog and the entropy scanner.
// Both operate on a single line at a time and emit pre-masked findings.
package detectors

import (
	"regexp"

	"github.com/mfe775/PP-SecCommit/internal/mask"
	"github.com/mfe775/PP-SecCommit/internal/types"
)

// Pattern is one named secret shape. Adding a detector is a new table row,
// not new control flow.
type Pattern struct {
	Label string
	Kind  types.Kind
	Re    *regexp.Regexp
}

// Catalog is evaluated in full for every line; patterns never suppress each
// other, so one line can carry findings under several labels at once.
var Catalog = []Pattern{
	{"PRIVATE_KEY", types.KindSecret, regexp.MustCompile(`-----BEGIN (?:RSA|EC|DSA|OPENSSH|PGP) PRIVATE KEY-----`)},
	{"AWS_ACCESS_KEY_ID", types.KindSecret, regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"AWS_SECRET_KEY", types.KindSecret, regexp.MustCompile(`(?i)aws(.{0,20})?(secret|access)[-_ ]?key(.{0,20})?[:=]\s*['"]?([A-Za-z0-9/+=]{40})['"]?`)},
	{"GITHUB_PAT", types.KindSecret, regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`)},
	{"GITLAB_PAT", types.KindSecret, regexp.MustCompile(`glpat-[A-Za-z0-9\-_]{20,}`)},
	{"GOOGLE_API_KEY", types.KindSecret, regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`)},
	{"SLACK_TOKEN", types.KindSecret, regexp.MustCompile(`xox[baprs]-[0-9A-Za-z-]{10,48}`)},
	{"GENERIC_SECRET", types.KindSecret, regexp.MustCompile(`(?i)(secret|api[_-]?key|token|password)\s*[:=]\s*['"]?([A-Za-z0-9_\-/.+=]{16,})['"]?`)},
}

// MatchSecrets runs every catalog pattern over one line and returns a
// finding per non-overlapping match, masked.
func MatchSecrets(path string, lineNo int, line string) []types.Finding {
	var out []types.Finding
	for _, p := range Catalog {
		for _, m := range p.Re.FindAllString(line, -1) {
			out = append(out, types.Finding{
				Path:  path,
				Line:  lineNo,
				Label: p.Label,
				Kind:  p.Kind,
				Match: mask.Secret(m),
			})
		}
	}
	return out
}
