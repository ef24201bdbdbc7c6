package model

import "time"

// MockExamProgress keeps a user's in-flight answers so an exam can be resumed.
// One row per (user, exam), updated in place.
type MockExamProgress struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `json:"user_id" gorm:"not null;index:idx_mock_progress_user_exam,unique"`
	MockExamID       uint      `json:"mock_exam_id" gorm:"not null;index:idx_mock_progress_user_exam,unique"`
	Answers          []int     `json:"answers" gorm:"serializer:json"` // selected option index per question, -1 = unanswered
	RemainingSeconds int       `json:"remaining_seconds"`
	UpdatedAt        time.Time `json:"updated_at"`
}
