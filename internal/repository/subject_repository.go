package repository

import (
	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(subject *model.Subject) error
	FindByID(id uint) (*model.Subject, error)
	FindByName(name string) (*model.Subject, error)
	FindAll() ([]model.Subject, error)
	Update(subject *model.Subject) error
	Delete(id uint) error
	HasChapters(id uint) (bool, error)
	Count() (int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindByName(name string) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.Where("subject_name = ?", name).First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.Order("subject_name ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) Update(subject *model.Subject) error {
	return r.db.Save(subject).Error
}

func (r *subjectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Subject{}, id).Error
}

func (r *subjectRepository) HasChapters(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Chapter{}).Where("subject_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *subjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Subject{}).Count(&count).Error
	return count, err
}
