package services

import (
	"context"
	"errors"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

// LanguageService manages the set of languages flashcards can use.
type LanguageService struct {
	store repository.Store
}

func NewLanguageService(store repository.Store) *LanguageService {
	return &LanguageService{store: store}
}

func (s *LanguageService) List(ctx context.Context) ([]models.Language, error) {
	return s.store.Languages().List(ctx)
}

func (s *LanguageService) Create(ctx context.Context, code, name string) (*models.Language, error) {
	if err := validateLanguage(code, name); err != nil {
		return nil, err
	}

	var lang *models.Language
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		_, err := tx.Languages().FindByCode(ctx, code)
		if err == nil {
			return ErrLanguageExists
		}
		if !errors.Is(err, repository.ErrLanguageNotFound) {
			return err
		}

		lang = &models.Language{Code: code, Name: name}
		return tx.Languages().Create(ctx, lang)
	})
	if err != nil {
		return nil, err
	}
	return lang, nil
}

// Delete removes a language that no flashcard references.
func (s *LanguageService) Delete(ctx context.Context, code string) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		lang, err := tx.Languages().FindByCode(ctx, code)
		if err != nil {
			return err
		}

		count, err := tx.Flashcards().CountByLangCode(ctx, code)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrLanguageInUse
		}
		return tx.Languages().Delete(ctx, lang)
	})
}
