package services

import "errors"

// Conflict-class errors raised by the CRUD services.
var (
	ErrNicknameTaken     = errors.New("nickname already taken")
	ErrLanguageExists    = errors.New("language already exists")
	ErrLanguageInUse     = errors.New("language is referenced by flashcards")
	ErrDuplicateQuestion = errors.New("flashcard with this question already exists")
	ErrFlashcardInUse    = errors.New("flashcard is used by a quiz")
)

// FieldError reports an invalid request field. It is the invalid-argument
// class of the error taxonomy; handlers map it to 400.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
