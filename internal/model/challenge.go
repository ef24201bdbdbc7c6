package model

import "time"

const (
	ChallengeTypeDaily  = "daily"
	ChallengeTypeWeekly = "weekly"
)

type Challenge struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	Type             string     `json:"type" gorm:"not null;index"` // "daily", "weekly"
	Title            string     `json:"title" gorm:"not null;uniqueIndex"`
	Description      string     `json:"description,omitempty" gorm:"type:text"`
	Questions        []Question `json:"questions,omitempty" gorm:"many2many:challenge_questions"`
	TimeLimit        int        `json:"time_limit" gorm:"not null"` // seconds
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	ParticipantCount int        `json:"participant_count" gorm:"not null;default:0"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
