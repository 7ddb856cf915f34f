package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/goslang/pkg/fsutil"
)

func FuzzWriteAtomicReadFile(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("package main\n"))
	f.Add([]byte("const a = \"x\";\r\n"))
	f.Add([]byte("\x00\x01\x02\x03"))
	f.Add(make([]byte, 1024))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "source.go")
		ctx := context.Background()

		if err := fsutil.WriteAtomic(ctx, path, content, 0o644); err != nil {
			t.Fatalf("WriteAtomic failed: %v", err)
		}

		got, info, err := fsutil.ReadFile(ctx, path, int64(len(content))+1)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}

		if string(got) != string(content) {
			t.Fatalf("content mismatch: got %d bytes, want %d", len(got), len(content))
		}

		if info.Hash != fsutil.Fingerprint(content) {
			t.Errorf("hash mismatch")
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("stat: %v", err)
		}
	})
}
