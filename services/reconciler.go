package services

import (
	"context"

	"github.com/jswierk/flashcards-api/models"
	"github.com/jswierk/flashcards-api/repository"
)

// membershipChange is the outcome of reconciling a quiz's flashcard set
// against a requested target set.
type membershipChange struct {
	Added   []uint
	Removed []uint
}

func (c membershipChange) Dirty() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0
}

// diffMembership computes the two set differences between the current and
// the target flashcard ids. Input order carries no meaning.
func diffMembership(current, target []uint) (toAdd, toRemove []uint) {
	inCurrent := make(map[uint]bool, len(current))
	for _, id := range current {
		inCurrent[id] = true
	}
	inTarget := make(map[uint]bool, len(target))
	for _, id := range target {
		inTarget[id] = true
	}

	for _, id := range target {
		if !inCurrent[id] {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if !inTarget[id] {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

// reconcileMembership applies the set difference between the quiz's current
// membership and target: removed flashcards lose their usage flag when no
// other quiz references them and their join row is deleted; added
// flashcards are marked used and get a fresh unanswered join row. The
// caller decides what the returned change means for the quiz score.
func reconcileMembership(ctx context.Context, tx repository.Store, quizID uint, target []models.Flashcard) (membershipChange, error) {
	rows, err := tx.QuizFlashcards().FindByQuiz(ctx, quizID)
	if err != nil {
		return membershipChange{}, err
	}

	current := make([]uint, 0, len(rows))
	for _, row := range rows {
		current = append(current, row.FlashcardID)
	}

	byID := make(map[uint]models.Flashcard, len(target))
	targetIDs := make([]uint, 0, len(target))
	for _, card := range target {
		if _, ok := byID[card.ID]; ok {
			continue
		}
		byID[card.ID] = card
		targetIDs = append(targetIDs, card.ID)
	}

	toAdd, toRemove := diffMembership(current, targetIDs)

	for _, id := range toRemove {
		if err := releaseFlashcard(ctx, tx, id, quizID); err != nil {
			return membershipChange{}, err
		}
		if err := tx.QuizFlashcards().DeleteByKey(ctx, quizID, id); err != nil {
			return membershipChange{}, err
		}
	}

	for _, id := range toAdd {
		card := byID[id]
		card.IsUsed = true
		if err := tx.Flashcards().Save(ctx, &card); err != nil {
			return membershipChange{}, err
		}
		row := models.QuizFlashcard{QuizID: quizID, FlashcardID: id}
		if err := tx.QuizFlashcards().Create(ctx, &row); err != nil {
			return membershipChange{}, err
		}
	}

	return membershipChange{Added: toAdd, Removed: toRemove}, nil
}

// releaseFlashcard clears the usage flag of a flashcard leaving a quiz,
// unless another quiz still references it. The count is taken fresh inside
// the surrounding transaction, never from a cached flag.
func releaseFlashcard(ctx context.Context, tx repository.Store, flashcardID, quizID uint) error {
	count, err := tx.QuizFlashcards().CountForFlashcardExcludingQuiz(ctx, flashcardID, quizID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	card, err := tx.Flashcards().FindByID(ctx, flashcardID)
	if err != nil {
		return err
	}
	card.IsUsed = false
	return tx.Flashcards().Save(ctx, card)
}
