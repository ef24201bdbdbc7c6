package model

import "time"

type ChallengeResult struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `json:"user_id" gorm:"not null;index:idx_challenge_result_user,unique"`
	ChallengeID uint      `json:"challenge_id" gorm:"not null;index:idx_challenge_result_user,unique"`
	Challenge   Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
	Score       int       `json:"score" gorm:"not null"`
	Total       int       `json:"total" gorm:"not null"`
	TimeTaken   int       `json:"time_taken"` // seconds
	Answers     []string  `json:"answers,omitempty" gorm:"serializer:json"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
