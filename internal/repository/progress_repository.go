package repository

import (
	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MockExamProgressRepository interface {
	// Save inserts or updates the single progress row for (user, exam).
	Save(progress *model.MockExamProgress) error
	FindByUserAndExam(userID, mockExamID uint) (*model.MockExamProgress, error)
}

type mockExamProgressRepository struct {
	db *gorm.DB
}

func NewMockExamProgressRepository(db *gorm.DB) MockExamProgressRepository {
	return &mockExamProgressRepository{db: db}
}

func (r *mockExamProgressRepository) Save(progress *model.MockExamProgress) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "mock_exam_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "remaining_seconds", "updated_at"}),
	}).Create(progress).Error
}

func (r *mockExamProgressRepository) FindByUserAndExam(userID, mockExamID uint) (*model.MockExamProgress, error) {
	var progress model.MockExamProgress
	err := r.db.Where("user_id = ? AND mock_exam_id = ?", userID, mockExamID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

type ChallengeProgressRepository interface {
	Save(progress *model.ChallengeProgress) error
	FindByUserAndChallenge(userID, challengeID uint) (*model.ChallengeProgress, error)
}

type challengeProgressRepository struct {
	db *gorm.DB
}

func NewChallengeProgressRepository(db *gorm.DB) ChallengeProgressRepository {
	return &challengeProgressRepository{db: db}
}

func (r *challengeProgressRepository) Save(progress *model.ChallengeProgress) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "remaining_seconds", "updated_at"}),
	}).Create(progress).Error
}

func (r *challengeProgressRepository) FindByUserAndChallenge(userID, challengeID uint) (*model.ChallengeProgress, error) {
	var progress model.ChallengeProgress
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
