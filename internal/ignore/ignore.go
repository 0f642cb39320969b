// Package ignore excludes staged paths listed in .seccommitignore,
// using gitignore pattern syntax.
package ignore

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const FileName = ".seccommitignore"

type Matcher struct{ ps []gitignore.Pattern }

// Load parses an ignore file. A missing file is not an error; it simply
// yields a matcher that excludes nothing.
func Load(path string) Matcher {
	var m Matcher
	data, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.ps = append(m.ps, gitignore.ParsePattern(line, nil))
	}
	return m
}

func (m Matcher) Match(p string) bool {
	for _, pat := range m.ps {
		if pat.Match(strings.Split(p, "/"), false) == gitignore.Exclude {
			return true
		}
	}
	return false
}

// Filter drops excluded paths, preserving the input order.
func (m Matcher) Filter(paths []string) []string {
	if len(m.ps) == 0 {
		return paths
	}
	out := paths[:0:0]
	for _, p := range paths {
		if !m.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
