package repository

import (
	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
)

type MockExamRepository interface {
	Create(exam *model.MockExam) error
	FindByID(id uint) (*model.MockExam, error)
	FindByIDWithQuestions(id uint) (*model.MockExam, error)
	FindAllWithQuestions() ([]model.MockExam, error)
	Update(exam *model.MockExam) error
	// DeleteWithDependents removes the exam together with its results,
	// saved progress and question links, in one transaction.
	DeleteWithDependents(id uint) error
	// TitlesLike returns every exam title equal to base or carrying a
	// "base (n)" suffix. Input for the title allocator.
	TitlesLike(base string) ([]string, error)
	Count() (int64, error)
}

type mockExamRepository struct {
	db *gorm.DB
}

func NewMockExamRepository(db *gorm.DB) MockExamRepository {
	return &mockExamRepository{db: db}
}

func (r *mockExamRepository) Create(exam *model.MockExam) error {
	// Creates the join table rows for exam.Questions as well. Existing
	// questions must not be re-inserted or touched.
	return r.db.Omit("Questions.*").Create(exam).Error
}

func (r *mockExamRepository) FindByID(id uint) (*model.MockExam, error) {
	var exam model.MockExam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *mockExamRepository) FindByIDWithQuestions(id uint) (*model.MockExam, error) {
	var exam model.MockExam
	if err := r.db.Preload("Questions").First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *mockExamRepository) FindAllWithQuestions() ([]model.MockExam, error) {
	var exams []model.MockExam
	if err := r.db.Preload("Questions").Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *mockExamRepository) Update(exam *model.MockExam) error {
	// Save would rewrite the question associations; the set is immutable
	// after generation, so only the metadata columns are updated.
	return r.db.Model(exam).Select("title", "time_limit").Updates(exam).Error
}

func (r *mockExamRepository) DeleteWithDependents(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mock_exam_id = ?", id).Delete(&model.MockExamResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("mock_exam_id = ?", id).Delete(&model.MockExamProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM mock_exam_questions WHERE mock_exam_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MockExam{}, id).Error
	})
}

func (r *mockExamRepository) TitlesLike(base string) ([]string, error) {
	var titles []string
	err := r.db.Model(&model.MockExam{}).
		Where("title = ? OR title LIKE ?", base, base+" (%").
		Pluck("title", &titles).Error
	return titles, err
}

func (r *mockExamRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.MockExam{}).Count(&count).Error
	return count, err
}
