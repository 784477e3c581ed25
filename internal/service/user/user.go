package user

import (
	"context"
	"fmt"

	"quickship/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) CreateUser(ctx context.Context, userModify entities.UserModify) (int64, error) {
	if userModify.Name == nil ||
		userModify.Phone == nil ||
		userModify.Role == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*userModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*userModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidRole(userModify.Role.String()) {
		return 0, ErrInvalidRole
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userEntity, nil
}

func (s *User) GetUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}
