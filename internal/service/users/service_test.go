package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
	userRepo "github.com/hotelharmony/hotel-ops-service/internal/infra/storage/user"
	"github.com/hotelharmony/hotel-ops-service/internal/service/users/models"
)

type fakeUserRepo struct {
	users map[string]*domain.User

	createErr  error
	created    *domain.User
	touchedID  int64
	touchErr   error
	enabledID  int64
	enabledVal bool
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = 42
	out.CreatedAt = time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	f.created = &out
	return &out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) List(_ context.Context, role *domain.Role) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		if role != nil && u.Role != *role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, name, email string, phone *string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Name = name
			u.Email = email
			u.Phone = phone
			return nil
		}
	}
	return userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) SetEnabled(_ context.Context, id int64, enabled bool) error {
	f.enabledID = id
	f.enabledVal = enabled
	for _, u := range f.users {
		if u.ID == id {
			u.Enabled = enabled
			return nil
		}
	}
	return userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, id int64) error {
	f.touchedID = id
	return f.touchErr
}

type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Generate(_ *domain.User) (string, error) {
	return f.token, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// bcrypt.MinCost keeps the hashing rounds cheap in tests
func newTestService(repo *fakeUserRepo, tokens *fakeTokenIssuer) *Service {
	return NewService(repo, tokens, bcrypt.MinCost, nopLogger{})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func registeredGuest(t *testing.T) *domain.User {
	return &domain.User{
		ID:           3,
		Username:     "alice",
		PasswordHash: hashOf(t, "correct horse"),
		Name:         "Alice",
		Email:        "alice@example.com",
		Role:         domain.RoleGuest,
		Enabled:      true,
	}
}

func TestRegister_GuestGetsLoyaltyProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeTokenIssuer{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "bob",
		Password: "long enough",
		Name:     "Bob",
		Email:    "Bob@Example.COM",
		Role:     "guest",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "bob@example.com", resp.Email)
	require.NotNil(t, resp.LoyaltyPoints)
	assert.Equal(t, 0, *resp.LoyaltyPoints)
	assert.Nil(t, resp.Department)

	require.NotNil(t, repo.created)
	assert.True(t, repo.created.Enabled)
	assert.NotEqual(t, "long enough", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("long enough")))
}

func TestRegister_StaffGetsStaffProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeTokenIssuer{})

	department := "housekeeping"
	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username:   "carol",
		Password:   "long enough",
		Name:       "Carol",
		Email:      "carol@example.com",
		Role:       "maintenance",
		Department: &department,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.LoyaltyPoints)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "housekeeping", *resp.Department)
	require.NotNil(t, repo.created.StaffStatus)
	assert.Equal(t, "active", *repo.created.StaffStatus)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"blank username", models.RegisterRequest{Username: "  ", Password: "long enough", Name: "X", Email: "x@y.com", Role: "guest"}},
		{"short password", models.RegisterRequest{Username: "bob", Password: "short", Name: "X", Email: "x@y.com", Role: "guest"}},
		{"blank name", models.RegisterRequest{Username: "bob", Password: "long enough", Name: " ", Email: "x@y.com", Role: "guest"}},
		{"bad email", models.RegisterRequest{Username: "bob", Password: "long enough", Name: "X", Email: "not-an-email", Role: "guest"}},
		{"unknown role", models.RegisterRequest{Username: "bob", Password: "long enough", Name: "X", Email: "x@y.com", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeUserRepo(), &fakeTokenIssuer{})
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_DuplicateMapping(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeTokenIssuer{})

	req := &models.RegisterRequest{
		Username: "bob",
		Password: "long enough",
		Name:     "Bob",
		Email:    "bob@example.com",
		Role:     "guest",
	}

	repo.createErr = userRepo.ErrDuplicateUsername
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	repo.createErr = userRepo.ErrDuplicateEmail
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newFakeUserRepo(registeredGuest(t))
	svc := newTestService(repo, &fakeTokenIssuer{token: "signed-token"})

	resp, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(3), resp.User.ID)
	assert.Equal(t, int64(3), repo.touchedID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo(registeredGuest(t)), &fakeTokenIssuer{token: "signed-token"})

	_, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeTokenIssuer{})

	_, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	u := registeredGuest(t)
	u.Enabled = false
	svc := newTestService(newFakeUserRepo(u), &fakeTokenIssuer{token: "signed-token"})

	_, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthenticate_TouchFailureDoesNotBlockLogin(t *testing.T) {
	repo := newFakeUserRepo(registeredGuest(t))
	repo.touchErr = userRepo.ErrExecQuery
	svc := newTestService(repo, &fakeTokenIssuer{token: "signed-token"})

	resp, err := svc.Authenticate(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestList_RejectsUnknownRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeTokenIssuer{})

	role := "janitor"
	_, err := svc.List(context.Background(), &role)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetEnabled_UnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeTokenIssuer{})

	err := svc.SetEnabled(context.Background(), 404, false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_RequiresNameAndEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo(registeredGuest(t)), &fakeTokenIssuer{})

	_, err := svc.UpdateProfile(context.Background(), 3, &models.UpdateProfileRequest{
		Name:  " ",
		Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
