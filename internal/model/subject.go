package model

import "time"

type Subject struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"subject_name" gorm:"column:subject_name;not null;uniqueIndex"`
	Icon      string    `json:"icon,omitempty"`
	Chapters  []Chapter `json:"chapters,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
