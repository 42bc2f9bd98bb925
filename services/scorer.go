package services

import (
	"strings"

	"github.com/jswierk/flashcards-api/models"
)

// scoreQuiz computes the percentage of correctly answered flashcards over
// the quiz membership rows. An answer counts as correct when it is present
// and case-insensitively equal to the flashcard's stored answer. The
// percentage is truncated, not rounded.
//
// Membership is never empty once a quiz exists, so rows must be non-empty;
// anything else is a broken invariant, not a recoverable condition.
func scoreQuiz(rows []models.QuizFlashcard) int {
	if len(rows) == 0 {
		panic("services: scoring a quiz with no flashcards")
	}

	correct := 0
	for _, row := range rows {
		if row.UserAnswer != nil && strings.EqualFold(*row.UserAnswer, row.Flashcard.Answer.Value) {
			correct++
		}
	}
	return correct * 100 / len(rows)
}
