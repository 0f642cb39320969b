package report

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed advice.yaml
var adviceYAML []byte

var advice map[string][]string

func init() {
	if err := yaml.Unmarshal(adviceYAML, &advice); err != nil {
		panic("report: malformed advice table: " + err.Error())
	}
}

// AdviceFor returns the remediation tips for a label, falling back to the
// generic guidance for labels without a dedicated entry.
func AdviceFor(label string) []string {
	if tips, ok := advice[label]; ok && len(tips) > 0 {
		return tips
	}
	return advice["GENERIC_SECRET"]
}
