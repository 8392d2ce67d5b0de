package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/pkg/middleware"
	"movie-ticketing/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testUser(t *testing.T, role entity.UserRole) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &entity.User{ID: 7, Username: "alice", PasswordHash: hash, Balance: 100, Role: role}
}

func TestBasicAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(7), user.ID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid credentials pass through", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByUsername", mock.Anything, "alice").Return(testUser(t, entity.RoleUser), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/", nil)
		req.SetBasicAuth("alice", "secret123")

		middleware.BasicAuth(users, zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		users := new(MockUserRepository)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/", nil)

		middleware.BasicAuth(users, zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/", nil)
		req.SetBasicAuth("ghost", "secret123")

		middleware.BasicAuth(users, zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByUsername", mock.Anything, "alice").Return(testUser(t, entity.RoleUser), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/", nil)
		req.SetBasicAuth("alice", "wrong")

		middleware.BasicAuth(users, zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("repository failure is not an auth failure", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByUsername", mock.Anything, "alice").Return(nil, errors.New("connection refused"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/", nil)
		req.SetBasicAuth("alice", "secret123")

		middleware.BasicAuth(users, zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add/movie/", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), testUser(t, entity.RoleAdmin)))

		middleware.AdminOnly(zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add/movie/", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), testUser(t, entity.RoleUser)))

		middleware.AdminOnly(zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/add/movie/", nil)

		middleware.AdminOnly(zap.NewNop())(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
