package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return s
}

func TestLocalStorage_UploadAndExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, bytes.NewReader([]byte("signature bytes")), "signatures/s1/sig.png", "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if path != filepath.Join("signatures", "s1", "sig.png") {
		t.Errorf("Upload path = %q", path)
	}

	exists, err := s.Exists(ctx, path)
	if err != nil || !exists {
		t.Errorf("Exists(%q) = %v, %v, want true, nil", path, exists, err)
	}

	data, err := os.ReadFile(filepath.Join(s.basePath, path))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "signature bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, bytes.NewReader([]byte("x")), "signatures/s1/sig.png", "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := s.Delete(ctx, path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	exists, _ := s.Exists(ctx, path)
	if exists {
		t.Error("file still exists after Delete")
	}

	// Deleting a missing file is not an error
	if err := s.Delete(ctx, path); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if _, err := s.Upload(ctx, bytes.NewReader([]byte("x")), "../outside.txt", "text/plain"); err == nil {
		t.Error("Upload with traversal path succeeded, want error")
	}
	if _, err := s.GetURL(ctx, "../../etc/passwd", 0); err == nil {
		t.Error("GetURL with traversal path succeeded, want error")
	}
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "signatures/s1/sig.png", 0)
	if err != nil {
		t.Fatalf("GetURL: %v", err)
	}
	want := "http://localhost:8080/uploads/signatures/s1/sig.png"
	if url != want {
		t.Errorf("GetURL = %q, want %q", url, want)
	}
}
