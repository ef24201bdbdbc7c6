package model

import "time"

type MockExamResult struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `json:"user_id" gorm:"not null;index:idx_mock_result_user_exam,unique"`
	MockExamID  uint      `json:"mock_exam_id" gorm:"not null;index:idx_mock_result_user_exam,unique"`
	MockExam    MockExam  `json:"mock_exam,omitempty" gorm:"foreignKey:MockExamID"`
	Score       int       `json:"score" gorm:"not null"`
	Total       int       `json:"total" gorm:"not null"`
	TimeTaken   int       `json:"time_taken"` // seconds
	Answers     []string  `json:"answers,omitempty" gorm:"serializer:json"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
