package repository

import (
	"context"
	"errors"

	"github.com/jswierk/flashcards-api/models"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrLanguageNotFound      = errors.New("language not found")
	ErrFlashcardNotFound     = errors.New("flashcard not found")
	ErrQuizNotFound          = errors.New("quiz not found")
	ErrQuizFlashcardNotFound = errors.New("flashcard for quiz not found")
)

type UserRepository interface {
	FindByNickname(ctx context.Context, nickname string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type LanguageRepository interface {
	List(ctx context.Context) ([]models.Language, error)
	FindByCode(ctx context.Context, code string) (*models.Language, error)
	Create(ctx context.Context, lang *models.Language) error
	Delete(ctx context.Context, lang *models.Language) error
}

// FlashcardFilter narrows a user's flashcard listing. Zero-value fields
// are ignored.
type FlashcardFilter struct {
	QuestionLangCode string
	AnswerLangCode   string
	QuestionQuery    string
}

type FlashcardRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Flashcard, error)
	FindByPublicID(ctx context.Context, publicID string) (*models.Flashcard, error)
	FindByQuestionValue(ctx context.Context, userID uint, value string) (*models.Flashcard, error)
	ListByUser(ctx context.Context, userID uint, filter FlashcardFilter) ([]models.Flashcard, error)
	CountByLangCode(ctx context.Context, code string) (int64, error)
	Create(ctx context.Context, card *models.Flashcard) error
	Save(ctx context.Context, card *models.Flashcard) error
	Delete(ctx context.Context, card *models.Flashcard) error
}

type QuizRepository interface {
	FindByPublicID(ctx context.Context, publicID string) (*models.Quiz, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Save(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, quiz *models.Quiz) error
}

type QuizFlashcardRepository interface {
	// FindByQuiz returns all membership rows of a quiz with their
	// flashcards loaded.
	FindByQuiz(ctx context.Context, quizID uint) ([]models.QuizFlashcard, error)
	FindByQuizAndFlashcard(ctx context.Context, quizID, flashcardID uint) (*models.QuizFlashcard, error)
	// CountForFlashcardExcludingQuiz reports how many other quizzes
	// reference the flashcard.
	CountForFlashcardExcludingQuiz(ctx context.Context, flashcardID, quizID uint) (int64, error)
	Create(ctx context.Context, row *models.QuizFlashcard) error
	CreateAll(ctx context.Context, rows []models.QuizFlashcard) error
	Save(ctx context.Context, row *models.QuizFlashcard) error
	DeleteByKey(ctx context.Context, quizID, flashcardID uint) error
	DeleteByQuiz(ctx context.Context, quizID uint) error
}

// Store bundles the repositories behind one persistence boundary.
// Transaction runs fn against a store bound to a single database
// transaction; any error rolls the whole transaction back.
type Store interface {
	Users() UserRepository
	Languages() LanguageRepository
	Flashcards() FlashcardRepository
	Quizzes() QuizRepository
	QuizFlashcards() QuizFlashcardRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}
