package users_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vango-dev/vango-ui/internal/users"
)

// fakeStore is an in-memory users.Store.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	users  []users.User
	hashes map[string]string
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{hashes: make(map[string]string)}
}

func (f *fakeStore) Insert(_ context.Context, u users.NewUser) (users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return users.User{}, f.err
	}
	if _, ok := f.hashes[u.Username]; ok {
		return users.User{}, users.ErrUsernameTaken
	}
	f.nextID++
	user := users.User{ID: f.nextID, Username: u.Username, Email: u.Email, FullName: u.FullName, CreatedAt: time.Now()}
	f.users = append(f.users, user)
	f.hashes[u.Username] = u.PasswordHash
	return user, nil
}

func (f *fakeStore) PasswordHash(_ context.Context, username string) (users.User, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return users.User{}, "", f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, f.hashes[username], nil
		}
	}
	return users.User{}, "", users.ErrNotFound
}

func (f *fakeStore) List(context.Context) ([]users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]users.User, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, f.users[i])
	}
	return out, f.err
}

func newService(t *testing.T) (*users.Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return users.NewService(store, bcrypt.MinCost), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, users.Credentials{Username: "ada", Password: "lovelace"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ada", user.Username)
	assert.NotEqual(t, "lovelace", store.hashes["ada"])

	got, err := svc.Login(ctx, users.Credentials{Username: "ada", Password: "lovelace"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterTrimsUsername(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.Register(context.Background(), users.Credentials{Username: "  ada ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
}

func TestRegisterUsernameTaken(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, users.Credentials{Username: "ada", Password: "one"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, users.Credentials{Username: "ada", Password: "two"})
	assert.ErrorIs(t, err, users.ErrUsernameTaken)
}

func TestRegisterInvalid(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, c := range []users.Credentials{
		{Username: "", Password: "pw"},
		{Username: "   ", Password: "pw"},
		{Username: "ada", Password: ""},
	} {
		_, err := svc.Register(ctx, c)
		assert.ErrorIs(t, err, users.ErrInvalidUser, "%+v", c)
	}
}

func TestRegisterHashingError(t *testing.T) {
	svc, _ := newService(t)

	// bcrypt rejects passwords longer than 72 bytes.
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.Register(context.Background(), users.Credentials{Username: "ada", Password: string(long)})
	assert.ErrorIs(t, err, users.ErrHashing)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, users.Credentials{Username: "ada", Password: "lovelace"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, users.Credentials{Username: "ada", Password: "babbage"})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	_, err = svc.Login(ctx, users.Credentials{Username: "grace", Password: "lovelace"})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestLoginStoreError(t *testing.T) {
	svc, store := newService(t)
	store.err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), users.Credentials{Username: "ada", Password: "pw"})
	assert.EqualError(t, err, "connection refused")
}

func TestCreateWithProfile(t *testing.T) {
	svc, _ := newService(t)
	email := "ada@example.com"
	name := "Ada Lovelace"

	user, err := svc.Create(context.Background(), users.CreateRequest{
		Username: "ada",
		Password: "pw",
		Email:    &email,
		FullName: &name,
	})
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	assert.Equal(t, email, *user.Email)
	require.NotNil(t, user.FullName)
	assert.Equal(t, name, *user.FullName)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, name := range []string{"ada", "grace", "linus"} {
		_, err := svc.Register(ctx, users.Credentials{Username: name, Password: "pw"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "linus", list[0].Username)
	assert.Equal(t, "ada", list[2].Username)
}
