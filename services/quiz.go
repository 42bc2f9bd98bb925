package services

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

// QuizService owns the quiz lifecycle: creation, membership edits, solving,
// scoring and deletion. It is the only place that mutates the IsUsed flag
// on flashcards. Every mutation runs inside one store transaction.
type QuizService struct {
	store repository.Store
}

func NewQuizService(store repository.Store) *QuizService {
	return &QuizService{store: store}
}

type QuizCreateInput struct {
	Name         string
	FlashcardIDs []string
}

type QuizEditInput struct {
	Name         string
	FlashcardIDs []string
}

// QuizAnswer is one submitted answer for a flashcard in a quiz.
type QuizAnswer struct {
	FlashcardID string
	UserAnswer  string
}

// QuizDetails is the single internal representation behind both the edit
// view and the take view of a quiz; handlers project the fields they need.
type QuizDetails struct {
	Quiz       models.Quiz
	Flashcards []models.Flashcard
}

type QuizFlashcardResult struct {
	FlashcardID   string
	Question      models.CardSide
	CorrectAnswer string
	UserAnswer    *string
}

type QuizResults struct {
	Quiz       models.Quiz
	Flashcards []QuizFlashcardResult
}

func (s *QuizService) List(ctx context.Context, nickname string) ([]models.Quiz, error) {
	user, err := s.store.Users().FindByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	return s.store.Quizzes().ListByUser(ctx, user.ID)
}

func (s *QuizService) Create(ctx context.Context, nickname string, in QuizCreateInput) (*models.Quiz, error) {
	if err := validateQuizName(in.Name); err != nil {
		return nil, err
	}
	if err := validateFlashcardIDs(in.FlashcardIDs); err != nil {
		return nil, err
	}

	var quiz *models.Quiz
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.Users().FindByNickname(ctx, nickname)
		if err != nil {
			return err
		}

		cards, err := resolveFlashcards(ctx, tx, in.FlashcardIDs)
		if err != nil {
			return err
		}
		for i := range cards {
			cards[i].IsUsed = true
			if err := tx.Flashcards().Save(ctx, &cards[i]); err != nil {
				return err
			}
		}

		publicID, err := gonanoid.New()
		if err != nil {
			return err
		}
		quiz = &models.Quiz{
			PublicID: publicID,
			Name:     in.Name,
			UserID:   user.ID,
		}
		if err := tx.Quizzes().Create(ctx, quiz); err != nil {
			return err
		}

		rows := make([]models.QuizFlashcard, 0, len(cards))
		for _, card := range cards {
			rows = append(rows, models.QuizFlashcard{QuizID: quiz.ID, FlashcardID: card.ID})
		}
		return tx.QuizFlashcards().CreateAll(ctx, rows)
	})
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Edit(ctx context.Context, nickname, quizID string, in QuizEditInput) error {
	if err := validateQuizName(in.Name); err != nil {
		return err
	}
	if err := validateFlashcardIDs(in.FlashcardIDs); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().FindByNickname(ctx, nickname); err != nil {
			return err
		}
		quiz, err := tx.Quizzes().FindByPublicID(ctx, quizID)
		if err != nil {
			return err
		}

		cards, err := resolveFlashcards(ctx, tx, in.FlashcardIDs)
		if err != nil {
			return err
		}
		change, err := reconcileMembership(ctx, tx, quiz.ID, cards)
		if err != nil {
			return err
		}

		quiz.Name = in.Name
		// An edited membership invalidates any previous score.
		if change.Dirty() {
			quiz.Score = nil
		}
		return tx.Quizzes().Save(ctx, quiz)
	})
}

func (s *QuizService) Details(ctx context.Context, nickname, quizID string) (*QuizDetails, error) {
	if _, err := s.store.Users().FindByNickname(ctx, nickname); err != nil {
		return nil, err
	}
	quiz, err := s.store.Quizzes().FindByPublicID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.QuizFlashcards().FindByQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, err
	}
	flashcards := make([]models.Flashcard, 0, len(rows))
	for _, row := range rows {
		flashcards = append(flashcards, row.Flashcard)
	}

	return &QuizDetails{Quiz: *quiz, Flashcards: flashcards}, nil
}

func (s *QuizService) Solve(ctx context.Context, nickname, quizID string, answers []QuizAnswer) error {
	if err := validateAnswers(answers); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().FindByNickname(ctx, nickname); err != nil {
			return err
		}
		quiz, err := tx.Quizzes().FindByPublicID(ctx, quizID)
		if err != nil {
			return err
		}

		for _, answer := range answers {
			card, err := tx.Flashcards().FindByPublicID(ctx, answer.FlashcardID)
			if err != nil {
				return err
			}
			row, err := tx.QuizFlashcards().FindByQuizAndFlashcard(ctx, quiz.ID, card.ID)
			if err != nil {
				return err
			}
			userAnswer := answer.UserAnswer
			row.UserAnswer = &userAnswer
			if err := tx.QuizFlashcards().Save(ctx, row); err != nil {
				return err
			}
		}

		rows, err := tx.QuizFlashcards().FindByQuiz(ctx, quiz.ID)
		if err != nil {
			return err
		}
		score := scoreQuiz(rows)
		quiz.Score = &score
		return tx.Quizzes().Save(ctx, quiz)
	})
}

func (s *QuizService) Results(ctx context.Context, nickname, quizID string) (*QuizResults, error) {
	if _, err := s.store.Users().FindByNickname(ctx, nickname); err != nil {
		return nil, err
	}
	quiz, err := s.store.Quizzes().FindByPublicID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.QuizFlashcards().FindByQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, err
	}

	results := make([]QuizFlashcardResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, QuizFlashcardResult{
			FlashcardID:   row.Flashcard.PublicID,
			Question:      row.Flashcard.Question,
			CorrectAnswer: row.Flashcard.Answer.Value,
			UserAnswer:    row.UserAnswer,
		})
	}

	return &QuizResults{Quiz: *quiz, Flashcards: results}, nil
}

func (s *QuizService) Delete(ctx context.Context, nickname, quizID string) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().FindByNickname(ctx, nickname); err != nil {
			return err
		}
		quiz, err := tx.Quizzes().FindByPublicID(ctx, quizID)
		if err != nil {
			return err
		}

		rows, err := tx.QuizFlashcards().FindByQuiz(ctx, quiz.ID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := releaseFlashcard(ctx, tx, row.FlashcardID, quiz.ID); err != nil {
				return err
			}
		}

		if err := tx.QuizFlashcards().DeleteByQuiz(ctx, quiz.ID); err != nil {
			return err
		}
		return tx.Quizzes().Delete(ctx, quiz)
	})
}

// resolveFlashcards maps public ids to flashcards, deduplicating the input.
// Any id that does not resolve fails the whole call.
func resolveFlashcards(ctx context.Context, tx repository.Store, publicIDs []string) ([]models.Flashcard, error) {
	seen := make(map[string]bool, len(publicIDs))
	cards := make([]models.Flashcard, 0, len(publicIDs))
	for _, id := range publicIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		card, err := tx.Flashcards().FindByPublicID(ctx, id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, nil
}
