// Package scanner orchestrates binary filtering, the pattern catalog and
// the entropy scanner over staged file content.
package scanner

import (
	"context"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/wandb/parallel"

	"github.com/mfe775/PP-SecCommit/internal/config"
	"github.com/mfe775/PP-SecCommit/internal/detectors"
	"github.com/mfe775/PP-SecCommit/internal/types"
)

// BlobFetcher returns the staged content for one path. ok=false marks a
// recoverable miss (deleted entry, submodule, racing index change); the
// file is skipped, never an error.
type BlobFetcher func(ctx context.Context, path string) (data []byte, ok bool)

// ScanFile decodes one blob and runs the detectors line by line. Patterns
// run before entropy on each line, and line numbers are 1-based against
// the original text layout. Malformed UTF-8 never fails a scan.
func ScanFile(path string, data []byte, cfg config.Config) []types.Finding {
	text := strings.ToValidUTF8(string(data), string(utf8.RuneError))
	var out []types.Finding
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		no := i + 1
		out = append(out, detectors.MatchSecrets(path, no, line)...)
		out = append(out, detectors.ScanEntropy(path, no, line, cfg)...)
	}
	return out
}

// ScanAll fetches every path's staged content and scans it. Fetches run on
// a bounded pool since they shell out to git; results are indexed by the
// caller's path order and scanned sequentially, so output order is
// deterministic regardless of fetch completion order.
func ScanAll(ctx context.Context, paths []string, fetch BlobFetcher, cfg config.Config) []types.Finding {
	blobs := make([][]byte, len(paths))
	hits := make([]bool, len(paths))

	group := parallel.Limited(ctx, runtime.GOMAXPROCS(0))
	for i, p := range paths {
		i, p := i, p
		group.Go(func(ctx context.Context) {
			blobs[i], hits[i] = fetch(ctx, p)
		})
	}
	group.Wait()

	var out []types.Finding
	for i, p := range paths {
		switch {
		case !hits[i] || len(blobs[i]) == 0:
			log.Debug().Str("path", p).Msg("staged content unavailable, skipping")
		case int64(len(blobs[i])) > cfg.MaxBytes:
			log.Debug().Str("path", p).Int("bytes", len(blobs[i])).Msg("oversize, skipping")
		case IsBinary(blobs[i]):
			log.Debug().Str("path", p).Msg("binary, skipping")
		default:
			out = append(out, ScanFile(p, blobs[i], cfg)...)
		}
	}
	return out
}
