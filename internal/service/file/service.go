package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadSignature stores a decoded completion signature image and
	// returns the stored path.
	UploadSignature(ctx context.Context, shiftID string, data io.Reader, ext string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadSignature stores a signature image under signatures/<shiftID>/.
// Callers pass the extension parsed from the signature data URL, so any
// image type round-trips.
func (s *fileServiceImpl) UploadSignature(ctx context.Context, shiftID string, data io.Reader, ext string) (string, error) {
	filename := fmt.Sprintf("shift_%s_signature_%s.%s", shiftID, uuid.New().String(), ext)
	path := filepath.Join("signatures", shiftID, filename)

	contentType := "image/" + ext
	if ext == "jpg" {
		contentType = "image/jpeg"
	}

	uploadedPath, err := s.storage.Upload(ctx, data, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload signature: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	url, err := s.storage.GetURL(ctx, path, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to get file URL: %w", err)
	}
	return url, nil
}
