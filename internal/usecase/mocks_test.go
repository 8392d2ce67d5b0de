package usecase_test

import (
	"context"
	"time"

	"movie-ticketing/internal/data/entity"

	"github.com/stretchr/testify/mock"
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

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

type MockTheaterRepository struct {
	mock.Mock
}

func (m *MockTheaterRepository) Create(ctx context.Context, theater *entity.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

func (m *MockTheaterRepository) FindByID(ctx context.Context, id int64) (*entity.Theater, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Theater), args.Error(1)
}

func (m *MockTheaterRepository) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Theater), args.Error(1)
}

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) FindActive(ctx context.Context, playDate time.Time) ([]*entity.Movie, error) {
	args := m.Called(ctx, playDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Search(ctx context.Context, query string) ([]*entity.Movie, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id int64) (*entity.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Schedule, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTopupRepository struct {
	mock.Mock
}

func (m *MockTopupRepository) Create(ctx context.Context, topup *entity.Topup) error {
	args := m.Called(ctx, topup)
	return args.Error(0)
}

func (m *MockTopupRepository) FindByID(ctx context.Context, id int64) (*entity.Topup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Topup), args.Error(1)
}

func (m *MockTopupRepository) Confirm(ctx context.Context, id int64) (*entity.Topup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Topup), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Purchase(ctx context.Context, userID, scheduleID int64, date time.Time) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, scheduleID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountForScheduleDate(ctx context.Context, scheduleID int64, date time.Time) (int64, error) {
	args := m.Called(ctx, scheduleID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) TopMovies(ctx context.Context, limit int) ([]*entity.MovieRanking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MovieRanking), args.Error(1)
}
