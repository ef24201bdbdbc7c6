package model

import "time"

type MockExam struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Title     string     `json:"title" gorm:"not null;uniqueIndex"` // "Mock Exam - Biology (2)"
	SubjectID uint       `json:"subject_id" gorm:"not null;index"`
	Subject   Subject    `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Questions []Question `json:"questions,omitempty" gorm:"many2many:mock_exam_questions"`
	TimeLimit int        `json:"time_limit" gorm:"not null"` // seconds
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
