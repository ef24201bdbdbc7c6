package model

import "time"

type ChallengeProgress struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `json:"user_id" gorm:"not null;index:idx_challenge_progress_user,unique"`
	ChallengeID      uint      `json:"challenge_id" gorm:"not null;index:idx_challenge_progress_user,unique"`
	Answers          []int     `json:"answers" gorm:"serializer:json"`
	RemainingSeconds int       `json:"remaining_seconds"`
	UpdatedAt        time.Time `json:"updated_at"`
}
