package models

import "gorm.io/gorm"

// CardSide is one side of a flashcard: its text plus the language it is
// written in.
type CardSide struct {
	Value    string `gorm:"not null;size:1000"`
	LangCode string `gorm:"not null;size:3"`
}

// Flashcard represents an individual bilingual flashcard
type Flashcard struct {
	gorm.Model
	PublicID string   `gorm:"uniqueIndex;not null;size:100"`
	Question CardSide `gorm:"embedded;embeddedPrefix:question_"`
	Answer   CardSide `gorm:"embedded;embeddedPrefix:answer_"`

	// IsUsed is true while the flashcard belongs to at least one quiz.
	// Used flashcards cannot be deleted.
	IsUsed bool `gorm:"not null;default:false"`

	UserID uint `gorm:"not null"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
