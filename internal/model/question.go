package model

import "time"

type Question struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ChapterID  uint      `json:"chapter_id" gorm:"not null;index"`
	Chapter    Chapter   `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
	Text       string    `json:"question" gorm:"column:question;type:text;not null"`
	Options    []string  `json:"options" gorm:"serializer:json"`
	Answer     string    `json:"answer" gorm:"not null"`
	Difficulty string    `json:"difficulty_level" gorm:"column:difficulty_level"` // "easy", "medium", "hard"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
