package models

import "gorm.io/gorm"

// Language is a language a flashcard side can be written in,
// identified by a three-letter code (e.g. "eng", "pol").
type Language struct {
	gorm.Model
	Code string `gorm:"uniqueIndex;not null;size:3"`
	Name string `gorm:"not null;size:50"`
}
