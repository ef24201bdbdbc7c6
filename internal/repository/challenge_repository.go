package repository

import (
	"time"

	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	Create(challenge *model.Challenge) error
	FindByID(id uint) (*model.Challenge, error)
	FindByIDWithQuestions(id uint) (*model.Challenge, error)
	FindAll() ([]model.Challenge, error)
	// FindActiveByType returns the newest challenge of the given type whose
	// validity window contains the given instant.
	FindActiveByType(challengeType string, at time.Time) (*model.Challenge, error)
	Update(challenge *model.Challenge) error
	ReplaceQuestions(challenge *model.Challenge, questions []model.Question) error
	DeleteWithDependents(id uint) error
	TitlesLike(base string) ([]string, error)
	IncrementParticipants(id uint) error
	Count() (int64, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(challenge *model.Challenge) error {
	return r.db.Omit("Questions.*").Create(challenge).Error
}

func (r *challengeRepository) FindByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.db.First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) FindByIDWithQuestions(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.db.Preload("Questions").First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) FindAll() ([]model.Challenge, error) {
	var challenges []model.Challenge
	if err := r.db.Preload("Questions").Order("created_at DESC").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) FindActiveByType(challengeType string, at time.Time) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.db.Preload("Questions").
		Where("type = ? AND start_date <= ? AND end_date >= ?", challengeType, at, at).
		Order("created_at DESC").
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) Update(challenge *model.Challenge) error {
	return r.db.Model(challenge).
		Select("title", "description", "time_limit", "start_date", "end_date").
		Updates(challenge).Error
}

func (r *challengeRepository) ReplaceQuestions(challenge *model.Challenge, questions []model.Question) error {
	return r.db.Model(challenge).Association("Questions").Replace(questions)
}

func (r *challengeRepository) DeleteWithDependents(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("challenge_id = ?", id).Delete(&model.ChallengeResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("challenge_id = ?", id).Delete(&model.ChallengeProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM challenge_questions WHERE challenge_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Challenge{}, id).Error
	})
}

func (r *challengeRepository) TitlesLike(base string) ([]string, error) {
	var titles []string
	err := r.db.Model(&model.Challenge{}).
		Where("title = ? OR title LIKE ?", base, base+" (%").
		Pluck("title", &titles).Error
	return titles, err
}

func (r *challengeRepository) IncrementParticipants(id uint) error {
	return r.db.Model(&model.Challenge{}).Where("id = ?", id).
		UpdateColumn("participant_count", gorm.Expr("participant_count + 1")).Error
}

func (r *challengeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Challenge{}).Count(&count).Error
	return count, err
}
