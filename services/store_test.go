package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

// newTestStore opens a per-test in-memory sqlite database behind the same
// GormStore the production code uses.
func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.Flashcard{},
		&models.Quiz{},
		&models.QuizFlashcard{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return repository.NewGormStore(db)
}

func seedUser(t *testing.T, store repository.Store, nickname string) *models.User {
	t.Helper()
	user, err := NewUserService(store).Create(context.Background(), nickname)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", nickname, err)
	}
	return user
}

func seedLanguages(t *testing.T, store repository.Store) {
	t.Helper()
	languages := NewLanguageService(store)
	for code, name := range map[string]string{"eng": "English", "pol": "Polish"} {
		if _, err := languages.Create(context.Background(), code, name); err != nil {
			t.Fatalf("failed to seed language %s: %v", code, err)
		}
	}
}

func seedFlashcard(t *testing.T, store repository.Store, nickname, question, answer string) *models.Flashcard {
	t.Helper()
	card, err := NewFlashcardService(store).Create(context.Background(), nickname, FlashcardInput{
		Question: models.CardSide{Value: question, LangCode: "pol"},
		Answer:   models.CardSide{Value: answer, LangCode: "eng"},
	})
	if err != nil {
		t.Fatalf("failed to seed flashcard %q: %v", question, err)
	}
	return card
}

func getCard(t *testing.T, store repository.Store, publicID string) *models.Flashcard {
	t.Helper()
	card, err := store.Flashcards().FindByPublicID(context.Background(), publicID)
	if err != nil {
		t.Fatalf("failed to fetch flashcard %s: %v", publicID, err)
	}
	return card
}
