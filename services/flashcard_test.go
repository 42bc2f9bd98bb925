package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

func TestCreateFlashcardUnknownLanguage(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "alice")
	seedLanguages(t, store)

	_, err := NewFlashcardService(store).Create(context.Background(), "alice", FlashcardInput{
		Question: models.CardSide{Value: "bonjour", LangCode: "fra"},
		Answer:   models.CardSide{Value: "hello", LangCode: "eng"},
	})
	if !errors.Is(err, repository.ErrLanguageNotFound) {
		t.Errorf("got %v, want ErrLanguageNotFound", err)
	}
}

func TestCreateFlashcardDuplicateQuestion(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "alice")
	seedLanguages(t, store)
	seedFlashcard(t, store, "alice", "stolica Francji", "Paris")

	_, err := NewFlashcardService(store).Create(context.Background(), "alice", FlashcardInput{
		Question: models.CardSide{Value: "stolica Francji", LangCode: "pol"},
		Answer:   models.CardSide{Value: "Paris", LangCode: "eng"},
	})
	if !errors.Is(err, ErrDuplicateQuestion) {
		t.Errorf("got %v, want ErrDuplicateQuestion", err)
	}
}

func TestUpdateFlashcard(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "alice")
	seedLanguages(t, store)
	card := seedFlashcard(t, store, "alice", "stolica Francji", "Pars")
	seedFlashcard(t, store, "alice", "stolica Japonii", "Tokyo")

	flashcards := NewFlashcardService(store)
	updated, err := flashcards.Update(ctx, "alice", card.PublicID, FlashcardInput{
		Question: models.CardSide{Value: "stolica Francji", LangCode: "pol"},
		Answer:   models.CardSide{Value: "Paris", LangCode: "eng"},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Answer.Value != "Paris" {
		t.Errorf("answer = %q, want Paris", updated.Answer.Value)
	}

	// Renaming the question onto another card's question conflicts.
	_, err = flashcards.Update(ctx, "alice", card.PublicID, FlashcardInput{
		Question: models.CardSide{Value: "stolica Japonii", LangCode: "pol"},
		Answer:   models.CardSide{Value: "Tokyo", LangCode: "eng"},
	})
	if !errors.Is(err, ErrDuplicateQuestion) {
		t.Errorf("got %v, want ErrDuplicateQuestion", err)
	}
}

func TestDeleteFlashcardUsageGate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "alice")
	seedLanguages(t, store)
	card := seedFlashcard(t, store, "alice", "stolica Francji", "Paris")

	flashcards := NewFlashcardService(store)
	quizzes := NewQuizService(store)

	quiz, err := quizzes.Create(ctx, "alice", QuizCreateInput{
		Name:         "capitals",
		FlashcardIDs: []string{card.PublicID},
	})
	if err != nil {
		t.Fatalf("Create quiz failed: %v", err)
	}

	if err := flashcards.Delete(ctx, "alice", card.PublicID); !errors.Is(err, ErrFlashcardInUse) {
		t.Errorf("got %v, want ErrFlashcardInUse", err)
	}

	// Once the quiz is gone the flashcard is free to delete.
	if err := quizzes.Delete(ctx, "alice", quiz.PublicID); err != nil {
		t.Fatalf("Delete quiz failed: %v", err)
	}
	if err := flashcards.Delete(ctx, "alice", card.PublicID); err != nil {
		t.Errorf("Delete flashcard failed: %v", err)
	}
}

func TestListFlashcardsFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "alice")
	seedLanguages(t, store)
	seedFlashcard(t, store, "alice", "stolica Francji", "Paris")
	seedFlashcard(t, store, "alice", "stolica Japonii", "Tokyo")

	flashcards := NewFlashcardService(store)

	all, err := flashcards.List(ctx, "alice", repository.FlashcardFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered count = %d, want 2", len(all))
	}

	filtered, err := flashcards.List(ctx, "alice", repository.FlashcardFilter{QuestionQuery: "Japonii"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Answer.Value != "Tokyo" {
		t.Errorf("query filter returned %v, want the Tokyo card", filtered)
	}

	none, err := flashcards.List(ctx, "alice", repository.FlashcardFilter{QuestionLangCode: "eng"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("language filter returned %d cards, want 0", len(none))
	}
}
