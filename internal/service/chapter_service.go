package service

import (
	"errors"
	"fmt"

	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"gorm.io/gorm"
)

type ChapterService interface {
	Create(req dto.ChapterCreateDTO) (*dto.ChapterResponseDTO, error)
	GetAll() ([]dto.ChapterResponseDTO, error)
	GetBySubject(subjectID uint) ([]dto.ChapterResponseDTO, error)
	Update(id uint, req dto.ChapterUpdateDTO) (*dto.ChapterResponseDTO, error)
	// Delete refuses to remove a chapter that still owns questions.
	Delete(id uint) error
}

type chapterService struct {
	chapterRepo repository.ChapterRepository
	subjectRepo repository.SubjectRepository
}

func NewChapterService(chapterRepo repository.ChapterRepository, subjectRepo repository.SubjectRepository) ChapterService {
	return &chapterService{chapterRepo: chapterRepo, subjectRepo: subjectRepo}
}

func (s *chapterService) Create(req dto.ChapterCreateDTO) (*dto.ChapterResponseDTO, error) {
	if _, err := s.subjectRepo.FindByID(req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScopeNotFound
		}
		return nil, fmt.Errorf("error resolving subject %d: %w", req.SubjectID, err)
	}

	chapter := model.Chapter{
		SubjectID: req.SubjectID,
		Name:      req.ChapterName,
		Number:    req.ChapterNumber,
	}
	if err := s.chapterRepo.Create(&chapter); err != nil {
		return nil, fmt.Errorf("database error creating chapter: %w", err)
	}
	return buildChapterResponse(&chapter, "", 0), nil
}

func (s *chapterService) GetAll() ([]dto.ChapterResponseDTO, error) {
	rows, err := s.chapterRepo.FindAllWithCounts()
	if err != nil {
		return nil, fmt.Errorf("error fetching chapters: %w", err)
	}
	dtos := make([]dto.ChapterResponseDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *buildChapterResponse(&rows[i].Chapter, rows[i].SubjectName, rows[i].QuestionCount))
	}
	return dtos, nil
}

func (s *chapterService) GetBySubject(subjectID uint) ([]dto.ChapterResponseDTO, error) {
	chapters, err := s.chapterRepo.FindBySubjectID(subjectID)
	if err != nil {
		return nil, fmt.Errorf("error fetching chapters for subject %d: %w", subjectID, err)
	}
	dtos := make([]dto.ChapterResponseDTO, 0, len(chapters))
	for i := range chapters {
		dtos = append(dtos, *buildChapterResponse(&chapters[i], "", 0))
	}
	return dtos, nil
}

func (s *chapterService) Update(id uint, req dto.ChapterUpdateDTO) (*dto.ChapterResponseDTO, error) {
	chapter, err := s.chapterRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching chapter %d: %w", id, err)
	}

	chapter.SubjectID = req.SubjectID
	chapter.Name = req.ChapterName
	chapter.Number = req.ChapterNumber
	if err := s.chapterRepo.Update(chapter); err != nil {
		return nil, fmt.Errorf("error updating chapter %d: %w", id, err)
	}
	return buildChapterResponse(chapter, "", 0), nil
}

func (s *chapterService) Delete(id uint) error {
	if _, err := s.chapterRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching chapter %d: %w", id, err)
	}

	referenced, err := s.chapterRepo.HasQuestions(id)
	if err != nil {
		return fmt.Errorf("error checking chapter references: %w", err)
	}
	if referenced {
		return ErrReferenced
	}
	if err := s.chapterRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting chapter %d: %w", id, err)
	}
	return nil
}

func buildChapterResponse(chapter *model.Chapter, subjectName string, questionCount int) *dto.ChapterResponseDTO {
	return &dto.ChapterResponseDTO{
		ID:            chapter.ID,
		SubjectID:     chapter.SubjectID,
		SubjectName:   subjectName,
		ChapterName:   chapter.Name,
		ChapterNumber: chapter.Number,
		QuestionCount: questionCount,
	}
}
