package detectors

import (
	"fmt"
	"math"
	"regexp"

	"github.com/mfe775/PP-SecCommit/internal/config"
	"github.com/mfe775/PP-SecCommit/internal/mask"
	"github.com/mfe775/PP-SecCommit/internal/types"
)

const LabelHighEntropy = "HIGH_ENTROPY"

var entropyCandidates = []*regexp.Regexp{
	regexp.MustCompile(`[A-Za-z0-9+/=]{20,}`), // base64-like
	regexp.MustCompile(`[0-9a-fA-F]{24,}`),    // hex-like
}

// ScanEntropy extracts token-shaped runs from one line and flags those
// whose Shannon entropy reaches the threshold (inclusive).
func ScanEntropy(path string, lineNo int, line string, cfg config.Config) []types.Finding {
	var out []types.Finding
	for _, re := range entropyCandidates {
		for _, frag := range re.FindAllString(line, -1) {
			if len(frag) < cfg.MinEntropyLen {
				continue
			}
			h := Entropy(frag)
			if h >= cfg.EntropyThreshold {
				out = append(out, types.Finding{
					Path:  path,
					Line:  lineNo,
					Label: LabelHighEntropy,
					Kind:  types.KindEntropy,
					Match: fmt.Sprintf("%s | H=%.2f", mask.Secret(frag), h),
				})
			}
		}
	}
	return out
}

// Entropy returns the Shannon entropy of s in bits per character.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	counts := map[rune]int{}
	for _, r := range s {
		counts[r]++
	}
	h := 0.0
	n := float64(len(s))
	for _, c := range counts {
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
