package repository

import (
	"github.com/quizdesk/backoffice/internal/model"
	"gorm.io/gorm"
)

// ChapterWithCount is the admin listing row: a chapter joined with its
// subject name and current question count.
type ChapterWithCount struct {
	model.Chapter
	SubjectName   string
	QuestionCount int
}

type ChapterRepository interface {
	Create(chapter *model.Chapter) error
	FindByID(id uint) (*model.Chapter, error)
	FindAllWithCounts() ([]ChapterWithCount, error)
	FindBySubjectID(subjectID uint) ([]model.Chapter, error)
	Update(chapter *model.Chapter) error
	Delete(id uint) error
	HasQuestions(id uint) (bool, error)
	Count() (int64, error)
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(chapter *model.Chapter) error {
	return r.db.Create(chapter).Error
}

func (r *chapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.First(&chapter, id).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) FindAllWithCounts() ([]ChapterWithCount, error) {
	var rows []ChapterWithCount
	err := r.db.Model(&model.Chapter{}).
		Select("chapters.*, subjects.subject_name AS subject_name, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.chapter_id = chapters.id) AS question_count").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Order("subjects.subject_name ASC, chapters.chapter_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *chapterRepository) FindBySubjectID(subjectID uint) ([]model.Chapter, error) {
	var chapters []model.Chapter
	if err := r.db.Where("subject_id = ?", subjectID).Order("chapter_number ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *chapterRepository) Update(chapter *model.Chapter) error {
	return r.db.Save(chapter).Error
}

func (r *chapterRepository) Delete(id uint) error {
	return r.db.Delete(&model.Chapter{}, id).Error
}

func (r *chapterRepository) HasQuestions(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("chapter_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *chapterRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Chapter{}).Count(&count).Error
	return count, err
}
