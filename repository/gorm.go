package repository

import (
	"context"
	"errors"

	"github.com/jswierk/flashcards-api/models"
	"gorm.io/gorm"
)

// GormStore is the GORM-backed Store implementation used both in
// production (postgres) and in tests (in-memory sqlite).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository                   { return gormUsers{s.db} }
func (s *GormStore) Languages() LanguageRepository           { return gormLanguages{s.db} }
func (s *GormStore) Flashcards() FlashcardRepository         { return gormFlashcards{s.db} }
func (s *GormStore) Quizzes() QuizRepository                 { return gormQuizzes{s.db} }
func (s *GormStore) QuizFlashcards() QuizFlashcardRepository { return gormQuizFlashcards{s.db} }

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// notFound maps gorm's record-not-found to the domain sentinel, leaving
// other persistence failures untouched.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

type gormUsers struct{ db *gorm.DB }

func (r gormUsers) FindByNickname(ctx context.Context, nickname string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r gormUsers) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

type gormLanguages struct{ db *gorm.DB }

func (r gormLanguages) List(ctx context.Context) ([]models.Language, error) {
	var languages []models.Language
	if err := r.db.WithContext(ctx).Order("code").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r gormLanguages) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	var lang models.Language
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&lang).Error; err != nil {
		return nil, notFound(err, ErrLanguageNotFound)
	}
	return &lang, nil
}

func (r gormLanguages) Create(ctx context.Context, lang *models.Language) error {
	return r.db.WithContext(ctx).Create(lang).Error
}

func (r gormLanguages) Delete(ctx context.Context, lang *models.Language) error {
	return r.db.WithContext(ctx).Delete(lang).Error
}

type gormFlashcards struct{ db *gorm.DB }

func (r gormFlashcards) FindByID(ctx context.Context, id uint) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, notFound(err, ErrFlashcardNotFound)
	}
	return &card, nil
}

func (r gormFlashcards) FindByPublicID(ctx context.Context, publicID string) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&card).Error; err != nil {
		return nil, notFound(err, ErrFlashcardNotFound)
	}
	return &card, nil
}

func (r gormFlashcards) FindByQuestionValue(ctx context.Context, userID uint, value string) (*models.Flashcard, error) {
	var card models.Flashcard
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_value = ?", userID, value).
		First(&card).Error
	if err != nil {
		return nil, notFound(err, ErrFlashcardNotFound)
	}
	return &card, nil
}

func (r gormFlashcards) ListByUser(ctx context.Context, userID uint, filter FlashcardFilter) ([]models.Flashcard, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.QuestionLangCode != "" {
		query = query.Where("question_lang_code = ?", filter.QuestionLangCode)
	}
	if filter.AnswerLangCode != "" {
		query = query.Where("answer_lang_code = ?", filter.AnswerLangCode)
	}
	if filter.QuestionQuery != "" {
		query = query.Where("question_value LIKE ?", "%"+filter.QuestionQuery+"%")
	}

	var cards []models.Flashcard
	if err := query.Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r gormFlashcards) CountByLangCode(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Flashcard{}).
		Where("question_lang_code = ? OR answer_lang_code = ?", code, code).
		Count(&count).Error
	return count, err
}

func (r gormFlashcards) Create(ctx context.Context, card *models.Flashcard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r gormFlashcards) Save(ctx context.Context, card *models.Flashcard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

func (r gormFlashcards) Delete(ctx context.Context, card *models.Flashcard) error {
	return r.db.WithContext(ctx).Delete(card).Error
}

type gormQuizzes struct{ db *gorm.DB }

func (r gormQuizzes) FindByPublicID(ctx context.Context, publicID string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&quiz).Error; err != nil {
		return nil, notFound(err, ErrQuizNotFound)
	}
	return &quiz, nil
}

func (r gormQuizzes) ListByUser(ctx context.Context, userID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r gormQuizzes) Create(ctx context.Context, quiz *models.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r gormQuizzes) Save(ctx context.Context, quiz *models.Quiz) error {
	return r.db.WithContext(ctx).Save(quiz).Error
}

func (r gormQuizzes) Delete(ctx context.Context, quiz *models.Quiz) error {
	return r.db.WithContext(ctx).Delete(quiz).Error
}

type gormQuizFlashcards struct{ db *gorm.DB }

func (r gormQuizFlashcards) FindByQuiz(ctx context.Context, quizID uint) ([]models.QuizFlashcard, error) {
	var rows []models.QuizFlashcard
	err := r.db.WithContext(ctx).Preload("Flashcard").
		Where("quiz_id = ?", quizID).
		Order("flashcard_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r gormQuizFlashcards) FindByQuizAndFlashcard(ctx context.Context, quizID, flashcardID uint) (*models.QuizFlashcard, error) {
	var row models.QuizFlashcard
	err := r.db.WithContext(ctx).
		Where("quiz_id = ? AND flashcard_id = ?", quizID, flashcardID).
		First(&row).Error
	if err != nil {
		return nil, notFound(err, ErrQuizFlashcardNotFound)
	}
	return &row, nil
}

func (r gormQuizFlashcards) CountForFlashcardExcludingQuiz(ctx context.Context, flashcardID, quizID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.QuizFlashcard{}).
		Where("flashcard_id = ? AND quiz_id <> ?", flashcardID, quizID).
		Count(&count).Error
	return count, err
}

func (r gormQuizFlashcards) Create(ctx context.Context, row *models.QuizFlashcard) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r gormQuizFlashcards) CreateAll(ctx context.Context, rows []models.QuizFlashcard) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r gormQuizFlashcards) Save(ctx context.Context, row *models.QuizFlashcard) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r gormQuizFlashcards) DeleteByKey(ctx context.Context, quizID, flashcardID uint) error {
	result := r.db.WithContext(ctx).
		Where("quiz_id = ? AND flashcard_id = ?", quizID, flashcardID).
		Delete(&models.QuizFlashcard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizFlashcardNotFound
	}
	return nil
}

func (r gormQuizFlashcards) DeleteByQuiz(ctx context.Context, quizID uint) error {
	return r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Delete(&models.QuizFlashcard{}).Error
}
