package usecase

import (
	"context"
	"fmt"

	"movie-ticketing/internal/data/entity"
	"movie-ticketing/internal/data/repository"
	"movie-ticketing/internal/dto/request"
	"movie-ticketing/internal/dto/response"
	"movie-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Update(ctx context.Context, user *entity.User, req *request.UpdateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Balance:      0,
		Role:         entity.RoleUser,
	}

	// Duplicate usernames are rejected by the unique constraint, not by a
	// read-before-insert, so two concurrent registrations cannot both pass.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, user *entity.User, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User updated", zap.Int64("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
