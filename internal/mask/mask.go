// Package mask redacts matched fragments before they reach any output sink.
package mask

import (
	"fmt"
	"strings"
)

// Secret returns a display-safe rendering of a matched fragment. Fragments
// of six characters or fewer collapse to a fixed placeholder so even their
// length is not leaked.
func Secret(fragment string) string {
	frag := strings.TrimSpace(fragment)
	if len(frag) <= 6 {
		return "***"
	}
	return fmt.Sprintf("%s***%s (len=%d)", frag[:3], frag[len(frag)-3:], len(frag))
}
