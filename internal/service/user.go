package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, phone string) error {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if name != "" {
		u.Name = name
	}
	if phone != "" {
		u.PhoneNumber = phone
	}
	return s.userRepo.Update(ctx, u)
}
