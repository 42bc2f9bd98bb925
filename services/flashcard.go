package services

import (
	"context"
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

// FlashcardService covers plain flashcard CRUD. Deletion is gated on the
// usage flag: a flashcard that belongs to a quiz cannot be removed.
type FlashcardService struct {
	store repository.Store
}

func NewFlashcardService(store repository.Store) *FlashcardService {
	return &FlashcardService{store: store}
}

type FlashcardInput struct {
	Question models.CardSide
	Answer   models.CardSide
}

func (s *FlashcardService) List(ctx context.Context, nickname string, filter repository.FlashcardFilter) ([]models.Flashcard, error) {
	user, err := s.store.Users().FindByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	return s.store.Flashcards().ListByUser(ctx, user.ID, filter)
}

func (s *FlashcardService) Get(ctx context.Context, nickname, cardID string) (*models.Flashcard, error) {
	if _, err := s.store.Users().FindByNickname(ctx, nickname); err != nil {
		return nil, err
	}
	return s.store.Flashcards().FindByPublicID(ctx, cardID)
}

func (s *FlashcardService) Create(ctx context.Context, nickname string, in FlashcardInput) (*models.Flashcard, error) {
	if err := validateCardSide("question", in.Question); err != nil {
		return nil, err
	}
	if err := validateCardSide("answer", in.Answer); err != nil {
		return nil, err
	}

	var card *models.Flashcard
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.Users().FindByNickname(ctx, nickname)
		if err != nil {
			return err
		}
		if _, err := tx.Languages().FindByCode(ctx, in.Question.LangCode); err != nil {
			return err
		}
		if _, err := tx.Languages().FindByCode(ctx, in.Answer.LangCode); err != nil {
			return err
		}

		if err := checkDuplicateQuestion(ctx, tx, user.ID, in.Question.Value); err != nil {
			return err
		}

		publicID, err := gonanoid.New()
		if err != nil {
			return err
		}
		card = &models.Flashcard{
			PublicID: publicID,
			Question: in.Question,
			Answer:   in.Answer,
			UserID:   user.ID,
		}
		return tx.Flashcards().Create(ctx, card)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Update changes the question and answer texts. Language codes stay as
// they were created.
func (s *FlashcardService) Update(ctx context.Context, nickname, cardID string, in FlashcardInput) (*models.Flashcard, error) {
	if err := validateCardSide("question", in.Question); err != nil {
		return nil, err
	}
	if err := validateCardSide("answer", in.Answer); err != nil {
		return nil, err
	}

	var card *models.Flashcard
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.Users().FindByNickname(ctx, nickname)
		if err != nil {
			return err
		}
		card, err = tx.Flashcards().FindByPublicID(ctx, cardID)
		if err != nil {
			return err
		}

		if card.Question.Value != in.Question.Value {
			if err := checkDuplicateQuestion(ctx, tx, user.ID, in.Question.Value); err != nil {
				return err
			}
		}

		card.Question.Value = in.Question.Value
		card.Answer.Value = in.Answer.Value
		return tx.Flashcards().Save(ctx, card)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *FlashcardService) Delete(ctx context.Context, nickname, cardID string) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().FindByNickname(ctx, nickname); err != nil {
			return err
		}
		card, err := tx.Flashcards().FindByPublicID(ctx, cardID)
		if err != nil {
			return err
		}
		if card.IsUsed {
			return ErrFlashcardInUse
		}
		return tx.Flashcards().Delete(ctx, card)
	})
}

func checkDuplicateQuestion(ctx context.Context, tx repository.Store, userID uint, question string) error {
	_, err := tx.Flashcards().FindByQuestionValue(ctx, userID, question)
	if err == nil {
		return ErrDuplicateQuestion
	}
	if errors.Is(err, repository.ErrFlashcardNotFound) {
		return nil
	}
	return err
}
