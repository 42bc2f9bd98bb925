package services

import (
	"strings"
	"unicode/utf8"

	"github.com/jswierk/flashcards-api/models"
)

const (
	minQuizNameLength = 3
	maxQuizNameLength = 32
	langCodeLength    = 3
	maxNicknameLength = 100
)

func validateQuizName(name string) error {
	length := utf8.RuneCountInString(name)
	if strings.TrimSpace(name) == "" || length < minQuizNameLength || length > maxQuizNameLength {
		return &FieldError{Field: "name", Message: "invalid quiz name"}
	}
	return nil
}

func validateFlashcardIDs(ids []string) error {
	if len(ids) == 0 {
		return &FieldError{Field: "flashcardIds", Message: "flashcard ids need to be provided"}
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return &FieldError{Field: "flashcardIds", Message: "flashcard id cannot be blank"}
		}
	}
	return nil
}

func validateAnswers(answers []QuizAnswer) error {
	for _, answer := range answers {
		if strings.TrimSpace(answer.FlashcardID) == "" {
			return &FieldError{Field: "flashcardId", Message: "flashcard id needs to be provided"}
		}
	}
	return nil
}

func validateCardSide(field string, side models.CardSide) error {
	if strings.TrimSpace(side.Value) == "" {
		return &FieldError{Field: field, Message: "value cannot be blank"}
	}
	if utf8.RuneCountInString(side.LangCode) != langCodeLength {
		return &FieldError{Field: field, Message: "language code must be 3 characters"}
	}
	return nil
}

func validateLanguage(code, name string) error {
	if utf8.RuneCountInString(code) != langCodeLength {
		return &FieldError{Field: "code", Message: "language code must be 3 characters"}
	}
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: "name", Message: "name cannot be blank"}
	}
	return nil
}

func validateNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" || utf8.RuneCountInString(nickname) > maxNicknameLength {
		return &FieldError{Field: "nickname", Message: "invalid nickname"}
	}
	return nil
}
