package costume

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"

	"github.com/costumerental/costume-rental-backend/internal/pkg/storage"
)

const (
	imageMaxWidth  = 1200
	imageMaxHeight = 1200
	thumbSize      = 300
	jpegQuality    = 85
)

// ImageStore persists costume photos. Uploads are re-encoded to JPEG and
// bounded in size, and a square-fit thumbnail is kept alongside the original.
type ImageStore struct {
	store storage.Storage
}

func NewImageStore(store storage.Storage) *ImageStore {
	return &ImageStore{store: store}
}

func imagePath(costumeID string) string {
	return fmt.Sprintf("costumes/%s.jpg", costumeID)
}

func thumbPath(costumeID string) string {
	return fmt.Sprintf("costumes/%s_thumb.jpg", costumeID)
}

// Put decodes, normalizes and stores the photo for a costume. It returns
// the storage path of the full-size image.
func (s *ImageStore) Put(ctx context.Context, costumeID string, content io.Reader) (string, error) {
	img, err := imaging.Decode(content)
	if err != nil {
		return "", ErrNotAnImage
	}

	full := imaging.Fit(img, imageMaxWidth, imageMaxHeight, imaging.Lanczos)
	path := imagePath(costumeID)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, full, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	if err := s.store.Save(ctx, path, buf); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumb := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)
	tbuf := new(bytes.Buffer)
	if err := jpeg.Encode(tbuf, thumb, &jpeg.Options{Quality: jpegQuality}); err == nil {
		// A failed thumbnail does not fail the upload.
		_ = s.store.Save(ctx, thumbPath(costumeID), tbuf)
	}

	return path, nil
}

// Open returns the stored photo, or its thumbnail when thumb is true.
func (s *ImageStore) Open(ctx context.Context, costumeID string, thumb bool) (io.ReadCloser, error) {
	path := imagePath(costumeID)
	if thumb {
		path = thumbPath(costumeID)
	}
	return s.store.Get(ctx, path)
}

// Remove deletes the stored photo and thumbnail for a costume.
func (s *ImageStore) Remove(ctx context.Context, costumeID string) {
	_ = s.store.Delete(ctx, imagePath(costumeID))
	_ = s.store.Delete(ctx, thumbPath(costumeID))
}
