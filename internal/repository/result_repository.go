package repository

import (
	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
)

type MockExamResultRepository interface {
	Create(result *model.MockExamResult) error
	FindByUserAndExam(userID, mockExamID uint) (*model.MockExamResult, error)
	FindAllByUser(userID uint) ([]model.MockExamResult, error)
	ExistsByUserAndExam(userID, mockExamID uint) (bool, error)
}

type mockExamResultRepository struct {
	db *gorm.DB
}

func NewMockExamResultRepository(db *gorm.DB) MockExamResultRepository {
	return &mockExamResultRepository{db: db}
}

func (r *mockExamResultRepository) Create(result *model.MockExamResult) error {
	return r.db.Create(result).Error
}

func (r *mockExamResultRepository) FindByUserAndExam(userID, mockExamID uint) (*model.MockExamResult, error) {
	var result model.MockExamResult
	err := r.db.Where("user_id = ? AND mock_exam_id = ?", userID, mockExamID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *mockExamResultRepository) FindAllByUser(userID uint) ([]model.MockExamResult, error) {
	var results []model.MockExamResult
	err := r.db.Preload("MockExam").Preload("MockExam.Subject").
		Where("user_id = ?", userID).Find(&results).Error
	return results, err
}

func (r *mockExamResultRepository) ExistsByUserAndExam(userID, mockExamID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.MockExamResult{}).
		Where("user_id = ? AND mock_exam_id = ?", userID, mockExamID).Count(&count).Error
	return count > 0, err
}

type ChallengeResultRepository interface {
	Create(result *model.ChallengeResult) error
	FindByUserAndChallenge(userID, challengeID uint) (*model.ChallengeResult, error)
	ExistsByUserAndChallenge(userID, challengeID uint) (bool, error)
}

type challengeResultRepository struct {
	db *gorm.DB
}

func NewChallengeResultRepository(db *gorm.DB) ChallengeResultRepository {
	return &challengeResultRepository{db: db}
}

func (r *challengeResultRepository) Create(result *model.ChallengeResult) error {
	return r.db.Create(result).Error
}

func (r *challengeResultRepository) FindByUserAndChallenge(userID, challengeID uint) (*model.ChallengeResult, error) {
	var result model.ChallengeResult
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *challengeResultRepository) ExistsByUserAndChallenge(userID, challengeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ChallengeResult{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).Count(&count).Error
	return count > 0, err
}
