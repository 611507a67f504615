package costume_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costumerental/costume-rental-backend/internal/costume"
)

// fakeRepo is an in-memory costume.Repository.
type fakeRepo struct {
	seq   int
	items map[string]*costume.Costume
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]*costume.Costume)}
}

func (f *fakeRepo) Create(_ context.Context, c *costume.Costume) error {
	f.seq++
	c.ID = fmt.Sprintf("cos-%d", f.seq)
	c.CreatedAt = time.Now()
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*costume.Costume, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, costume.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*costume.Costume, error) {
	var result []*costume.Costume
	for _, c := range f.items {
		cp := *c
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeRepo) UpdateImage(_ context.Context, id, imagePath string) error {
	c, ok := f.items[id]
	if !ok {
		return costume.ErrNotFound
	}
	c.Image = imagePath
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return costume.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// memStorage is an in-memory storage.Storage.
type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) Save(_ context.Context, path string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *memStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func newTestService(repo *fakeRepo, store *memStorage) costume.Service {
	return costume.NewService(repo, costume.NewImageStore(store))
}

func testJPEG(t *testing.T) io.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return buf
}

func TestCreateCostume(t *testing.T) {
	svc := newTestService(newFakeRepo(), newMemStorage())

	c, err := svc.Create(context.Background(), costume.CreateRequest{
		Name:  "Pirate",
		Size:  "M",
		Price: 25.50,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "default.jpg", c.Image)
}

func TestCreateCostumeValidation(t *testing.T) {
	svc := newTestService(newFakeRepo(), newMemStorage())
	ctx := context.Background()

	_, err := svc.Create(ctx, costume.CreateRequest{Name: "  ", Size: "M", Price: 10})
	assert.ErrorIs(t, err, costume.ErrEmptyName)

	_, err = svc.Create(ctx, costume.CreateRequest{Name: "Pirate", Size: "", Price: 10})
	assert.ErrorIs(t, err, costume.ErrEmptySize)

	_, err = svc.Create(ctx, costume.CreateRequest{Name: "Pirate", Size: "M", Price: 0})
	assert.ErrorIs(t, err, costume.ErrInvalidPrice)
}

func TestDeleteCostumeNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newMemStorage())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, costume.ErrNotFound)
}

func TestUploadAndOpenImage(t *testing.T) {
	repo := newFakeRepo()
	store := newMemStorage()
	svc := newTestService(repo, store)
	ctx := context.Background()

	c, err := svc.Create(ctx, costume.CreateRequest{Name: "Witch", Size: "S", Price: 18})
	require.NoError(t, err)

	updated, err := svc.UploadImage(ctx, c.ID, testJPEG(t))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("costumes/%s.jpg", c.ID), updated.Image)

	rc, err := svc.OpenImage(ctx, c.ID, false)
	require.NoError(t, err)
	defer rc.Close()

	_, err = jpeg.Decode(rc)
	assert.NoError(t, err)

	// Thumbnail is stored alongside the original.
	thumb, err := svc.OpenImage(ctx, c.ID, true)
	require.NoError(t, err)
	thumb.Close()
}

func TestUploadImageRejectsGarbage(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage())
	ctx := context.Background()

	c, err := svc.Create(ctx, costume.CreateRequest{Name: "Witch", Size: "S", Price: 18})
	require.NoError(t, err)

	_, err = svc.UploadImage(ctx, c.ID, bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, costume.ErrNotAnImage)
}

func TestOpenImageWithoutUpload(t *testing.T) {
	svc := newTestService(newFakeRepo(), newMemStorage())
	ctx := context.Background()

	c, err := svc.Create(ctx, costume.CreateRequest{Name: "Ghost", Size: "L", Price: 12})
	require.NoError(t, err)

	_, err = svc.OpenImage(ctx, c.ID, false)
	assert.ErrorIs(t, err, costume.ErrNoImage)
}
