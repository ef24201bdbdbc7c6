package repository

import (
	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll(limit int) ([]model.Question, error)
	FindIDsByChapterID(chapterID uint) ([]uint, error)
	Update(question *model.Question) error
	Delete(id uint) error
	// SampleRandom draws up to count distinct questions uniformly from the
	// whole pool, in one query.
	SampleRandom(count int) ([]model.Question, error)
	Count() (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(limit int) ([]model.Question, error) {
	var questions []model.Question
	q := r.db.Preload("Chapter").Preload("Chapter.Subject").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindIDsByChapterID(chapterID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Question{}).Where("chapter_id = ?", chapterID).Pluck("id", &ids).Error
	return ids, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}

func (r *questionRepository) SampleRandom(count int) ([]model.Question, error) {
	var questions []model.Question
	// RANDOM() is understood by both Postgres and SQLite.
	err := r.db.Order("RANDOM()").Limit(count).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}
