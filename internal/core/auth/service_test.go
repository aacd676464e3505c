package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/core/auth"
	"inkwell/internal/core/password"
	"inkwell/internal/core/token"
	"inkwell/internal/domain"
)

type fakeUserRepo struct {
	byUsername map[string]*domain.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byUsername[user.Username]; exists {
		return domain.ErrUsernameTaken
	}
	user.ID = r.nextID
	r.nextID++
	r.byUsername[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID int64) (*domain.User, error) {
	for _, user := range r.byUsername {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newService(repo domain.UserRepository) domain.AuthService {
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens := token.NewManager("test-secret", time.Hour)
	return auth.NewService(repo, hasher, tokens)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	user, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw1pw1pw1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1pw1pw1", user.Password, "password must be stored hashed")
	assert.False(t, user.DateOfRegistration.IsZero())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	first, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice", Password: "pw1pw1pw1",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice", Password: "otherpassword",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// Existing record untouched.
	stored, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.Password, stored.Password)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice", Password: "pw1pw1pw1",
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), "alice", "pw1pw1pw1")
	require.NoError(t, err)
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "pw1pw1pw1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice", Password: "pw1pw1pw1",
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), "alice", "pw1pw1pw1")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "Bearer "+tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// Scheme is case-insensitive.
	_, err = svc.Authenticate(context.Background(), "bearer "+tokens.AccessToken)
	assert.NoError(t, err)
}

func TestAuthenticateRejects(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.Authenticate(context.Background(), "Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.Authenticate(context.Background(), "Bearer not.a.token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	// A valid token whose subject no longer resolves to a user.
	tokens := token.NewManager("test-secret", time.Hour)
	issued, err := tokens.Issue("ghost", time.Now())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "Bearer "+issued)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthenticateExpired(t *testing.T) {
	repo := newFakeUserRepo()
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens := token.NewManager("test-secret", time.Minute)
	svc := auth.NewService(repo, hasher, tokens)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice", Password: "pw1pw1pw1",
	})
	require.NoError(t, err)

	issued, err := tokens.Issue("alice", time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "Bearer "+issued)
	assert.ErrorIs(t, err, domain.ErrExpiredToken)
}
