package model

import "time"

type Chapter struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	SubjectID uint       `json:"subject_id" gorm:"not null;index"`
	Subject   Subject    `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Name      string     `json:"chapter_name" gorm:"column:chapter_name;not null"`
	Number    int        `json:"chapter_number" gorm:"column:chapter_number;not null"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:ChapterID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
