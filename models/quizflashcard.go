package models

// QuizFlashcard says "flashcard F is part of quiz Q", together with the
// user's current answer once the quiz has been solved. The composite key
// keeps one row per (quiz, flashcard) pair.
type QuizFlashcard struct {
	QuizID      uint `gorm:"primaryKey;autoIncrement:false"`
	FlashcardID uint `gorm:"primaryKey;autoIncrement:false"`

	UserAnswer *string `gorm:"size:1000;default:null"`

	Quiz      Quiz      `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Flashcard Flashcard `gorm:"foreignKey:FlashcardID" json:"-"`
}
