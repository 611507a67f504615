package user_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costumerental/costume-rental-backend/internal/auth"
	"github.com/costumerental/costume-rental-backend/internal/user"
)

type fakeRepo struct {
	seq     int
	byEmail map[string]*user.User
	byID    map[string]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[string]*user.User),
	}
}

func (f *fakeRepo) Create(_ context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyUsed
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Low cost keeps the tests fast.
func newTestService(repo *fakeRepo) user.Service {
	return user.NewService(repo, auth.NewBcryptPasswordHasher(4))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "s3cret-pass",
		Name:     "Alice",
	})
	require.NoError(t, err)
	// Emails are normalized to lower case.
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, user.RoleClient, u.Role)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	got, err := svc.Login(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{
		Email:    "bob@example.com",
		Password: "correct-pass",
		Name:     "Bob",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "bob@example.com", "wrong-pass")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	req := user.RegisterRequest{
		Email:    "carol@example.com",
		Password: "password1",
		Name:     "Carol",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{Email: "", Password: "password1", Name: "X"})
	assert.ErrorIs(t, err, user.ErrEmailRequired)

	_, err = svc.Register(ctx, user.RegisterRequest{Email: "x@example.com", Password: "short", Name: "X"})
	assert.ErrorIs(t, err, user.ErrPasswordTooShort)

	_, err = svc.Register(ctx, user.RegisterRequest{Email: "x@example.com", Password: "password1", Name: " "})
	assert.ErrorIs(t, err, user.ErrNameRequired)

	_, err = svc.Register(ctx, user.RegisterRequest{Email: "x@example.com", Password: "password1", Name: "X", Role: "superuser"})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRegisterAdminRole(t *testing.T) {
	svc := newTestService(newFakeRepo())

	u, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "admin@example.com",
		Password: "password1",
		Name:     "Admin",
		Role:     user.RoleAdmin,
	})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}
