package services

import (
	"context"
	"errors"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

// UserService is the thin user boundary: a nickname lookup and account
// creation. Credentials and tokens live outside this system.
type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Get(ctx context.Context, nickname string) (*models.User, error) {
	return s.store.Users().FindByNickname(ctx, nickname)
}

func (s *UserService) Create(ctx context.Context, nickname string) (*models.User, error) {
	if err := validateNickname(nickname); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		_, err := tx.Users().FindByNickname(ctx, nickname)
		if err == nil {
			return ErrNicknameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		user = &models.User{Nickname: nickname}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
