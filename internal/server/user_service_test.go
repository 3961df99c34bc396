package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsprint/jobsprint/internal/config"
	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/types"
)

// fakeDB is an in-memory DBClient for user service tests.
type fakeDB struct {
	usersByID    map[uuid.UUID]*db.User
	usersByEmail map[string]*db.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		usersByID:    make(map[uuid.UUID]*db.User),
		usersByEmail: make(map[string]*db.User),
	}
}

func (f *fakeDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func (f *fakeDB) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	now := time.Now()
	user := &db.User{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		CurrentDay: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.usersByID[user.ID] = user
	f.usersByEmail[email] = user
	return user.ID, nil
}

func (f *fakeDB) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return f.usersByID[id], nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.usersByEmail[email], nil
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	user := f.usersByID[userID]
	user.PasswordHash = passwordHash
	user.PasswordSet = true
	return nil
}

func testUserService() (*UserService, *fakeDB) {
	fake := newFakeDB()
	svc := NewUserService(fake, &config.PasswordConfig{BcryptCost: 10})
	return svc, fake
}

func TestUserService_Register_WithPassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Smith", user.Name)
	assert.Equal(t, 1, user.CurrentDay)
	assert.True(t, user.PasswordSet)
}

func TestUserService_Register_WithoutPassword(t *testing.T) {
	svc, _ := testUserService()

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:  "Dana Smith",
		Email: "dana@example.com",
	})
	require.NoError(t, err)
	assert.False(t, user.PasswordSet)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{Name: "A", Email: "dana@example.com"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.RegisterRequest{Name: "B", Email: "dana@example.com"})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "dana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong-password",
	})
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_PasswordNeverSet(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{Name: "Dana", Email: "dana@example.com"})
	require.NoError(t, err)

	// Magic-link account with no password: password login must fail with the
	// same generic error as a wrong password.
	_, err = svc.Login(ctx, &types.LoginRequest{
		Email:    "dana@example.com",
		Password: "anything",
	})
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Lookup(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &types.RegisterRequest{Name: "Dana", Email: "dana@example.com"})
	require.NoError(t, err)

	user, err := svc.Lookup(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Lookup(ctx, uuid.New())
	assert.IsType(t, &ErrUserNotFound{}, err)
}

func TestConvertDBUserToTypesUser_Nil(t *testing.T) {
	assert.Nil(t, convertDBUserToTypesUser(nil))
}
