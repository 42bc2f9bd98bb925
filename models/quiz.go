package models

import "gorm.io/gorm"

// Quiz represents a named collection of flashcards owned by a user
type Quiz struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;not null;size:100"`
	Name     string `gorm:"not null;size:32"`

	// Score is nil until the quiz has been solved, and is reset to nil
	// whenever the quiz membership changes.
	Score *int `gorm:"default:null"`

	UserID uint `gorm:"not null"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	QuizFlashcards []QuizFlashcard `gorm:"foreignKey:QuizID" json:"-"`
}
