package service

import (
	"context"

	"github.com/news-discussion-api/internal/apperrors"
	"github.com/news-discussion-api/internal/models"
	"github.com/news-discussion-api/internal/repository"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With().Str("service", "users").Logger(),
	}
}

// GetByUsername returns a user by username
func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}
