// Package gitindex reads the pending commit snapshot out of git. All
// access goes through a single exec seam so tests can stub the binary.
package gitindex

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

var gitOutput = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "git", args...).Output()
}

// StagedPaths lists the files recorded in the pending commit. NUL
// separation survives filenames with spaces or newlines. Failure here
// means git itself is unusable and is fatal to the invocation.
func StagedPaths(ctx context.Context) ([]string, error) {
	out, err := gitOutput(ctx, "diff", "--cached", "--name-only", "-z")
	if err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}
	var paths []string
	for _, p := range bytes.Split(out, []byte{0}) {
		if len(p) > 0 {
			paths = append(paths, string(p))
		}
	}
	return paths, nil
}

// StagedBlob fetches the staged content of one path. A miss (deleted
// entry, submodule pointer) is reported as ok=false rather than an error
// so the scan can skip it and continue.
func StagedBlob(ctx context.Context, path string) ([]byte, bool) {
	out, err := gitOutput(ctx, "show", ":"+path)
	if err != nil {
		return nil, false
	}
	return out, true
}
