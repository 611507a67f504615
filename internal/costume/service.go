package costume

import (
	"context"
	"io"
	"strings"
)

const defaultImage = "default.jpg"

type CreateRequest struct {
	Name  string
	Size  string
	Price float64
	Image string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Costume, error)
	GetByID(ctx context.Context, id string) (*Costume, error)
	List(ctx context.Context) ([]*Costume, error)
	Delete(ctx context.Context, id string) error

	// UploadImage stores a costume photo (re-encoded plus thumbnail) and
	// records its path on the costume.
	UploadImage(ctx context.Context, id string, content io.Reader) (*Costume, error)
	// OpenImage opens the stored photo, or its thumbnail when thumb is true.
	OpenImage(ctx context.Context, id string, thumb bool) (io.ReadCloser, error)
}

type service struct {
	repo   Repository
	images *ImageStore
}

func NewService(repo Repository, images *ImageStore) Service {
	return &service{
		repo:   repo,
		images: images,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Costume, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(req.Size) == "" {
		return nil, ErrEmptySize
	}
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	image := req.Image
	if image == "" {
		image = defaultImage
	}

	c := &Costume{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
		Image: image,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Costume, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Costume, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Stored photos are best-effort cleanup; the row is already gone.
	if c.Image != "" && c.Image != defaultImage {
		s.images.Remove(ctx, id)
	}
	return nil
}

func (s *service) UploadImage(ctx context.Context, id string, content io.Reader) (*Costume, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.images.Put(ctx, id, content)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateImage(ctx, id, path); err != nil {
		s.images.Remove(ctx, id)
		return nil, err
	}

	c.Image = path
	return c, nil
}

func (s *service) OpenImage(ctx context.Context, id string, thumb bool) (io.ReadCloser, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Image == "" || c.Image == defaultImage {
		return nil, ErrNoImage
	}

	return s.images.Open(ctx, id, thumb)
}
