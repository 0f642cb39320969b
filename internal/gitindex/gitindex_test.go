package gitindex

import (
	"context"
	"errors"
	"testing"
)

func stub(t *testing.T, fn func(ctx context.Context, args ...string) ([]byte, error)) {
	t.Helper()
	old := gitOutput
	t.Cleanup(func() { gitOutput = old })
	gitOutput = fn
}

func TestStagedPaths_SplitsOnNUL(t *testing.T) {
	var gotArgs []string
	stub(t, func(_ context.Context, args ...string) ([]byte, error) {
		gotArgs = args
		return []byte("a.txt\x00dir/b c.txt\x00"), nil
	})
	paths, err := StagedPaths(context.Background())
	if err != nil {
		t.Fatalf("StagedPaths returned error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "a.txt" || paths[1] != "dir/b c.txt" {
		t.Fatalf("unexpected paths: %v", paths)
	}
	if len(gotArgs) == 0 || gotArgs[0] != "diff" {
		t.Fatalf("expected git diff invocation, got %v", gotArgs)
	}
}

func TestStagedPaths_EmptyIndex(t *testing.T) {
	stub(t, func(_ context.Context, _ ...string) ([]byte, error) { return nil, nil })
	paths, err := StagedPaths(context.Background())
	if err != nil {
		t.Fatalf("StagedPaths returned error: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestStagedPaths_GitFailureIsFatal(t *testing.T) {
	stub(t, func(_ context.Context, _ ...string) ([]byte, error) {
		return nil, errors.New("not a git repository")
	})
	if _, err := StagedPaths(context.Background()); err == nil {
		t.Fatal("expected error when git is unusable")
	}
}

func TestStagedBlob_MissIsNotAnError(t *testing.T) {
	stub(t, func(_ context.Context, _ ...string) ([]byte, error) {
		return nil, errors.New("exit status 128")
	})
	if _, ok := StagedBlob(context.Background(), "deleted.txt"); ok {
		t.Fatal("expected ok=false for a missing blob")
	}
}

func TestStagedBlob_ReturnsContent(t *testing.T) {
	var gotArgs []string
	stub(t, func(_ context.Context, args ...string) ([]byte, error) {
		gotArgs = args
		return []byte("blob content"), nil
	})
	b, ok := StagedBlob(context.Background(), "a.txt")
	if !ok || string(b) != "blob content" {
		t.Fatalf("unexpected blob result: %q ok=%v", b, ok)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "show" || gotArgs[1] != ":a.txt" {
		t.Fatalf("expected git show :a.txt, got %v", gotArgs)
	}
}
