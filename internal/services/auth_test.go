package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklist/webapp/internal/store"
	"github.com/tasklist/webapp/types"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository enforcing the email
// uniqueness constraint the way the schema does.
type fakeUserRepo struct {
	users  map[string]types.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]types.User), nextID: 1}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	user, ok := f.users[email]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return types.User{}, store.ErrDuplicateEmail
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user, nil
}

func TestAuthServiceRegisterThenLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "opensesame",
	})
	require.NoError(t, err)
	assert.Equal(t, types.UserStatusActive, registered.Status)
	assert.NotEqual(t, "opensesame", registered.PasswordHash)

	user, err := svc.Login(ctx, "alice@example.com", "opensesame")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Impostor", Email: "alice@example.com", Password: "pw2"})
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
	assert.Len(t, repo.users, 1)
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "correct"})
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, "alice@example.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "correct")

	// A wrong password and an unknown email must be indistinguishable.
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownEmail)
}

func TestAuthServiceLoginBlockedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(ctx, types.User{
		Name:         "Blocked",
		Email:        "blocked@example.com",
		PasswordHash: string(hashed),
		Status:       types.UserStatusBlocked,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "blocked@example.com", "pw")
	assert.ErrorIs(t, err, ErrAccountBlocked)
}
