package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubjectService interface {
	Create(req dto.SubjectCreateDTO) (*dto.SubjectResponseDTO, error)
	GetAll() ([]dto.SubjectResponseDTO, error)
	Update(id uint, req dto.SubjectUpdateDTO) (*dto.SubjectResponseDTO, error)
	// Delete refuses to remove a subject that still owns chapters.
	Delete(id uint) error
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

func NewSubjectService(subjectRepo repository.SubjectRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

func (s *subjectService) Create(req dto.SubjectCreateDTO) (*dto.SubjectResponseDTO, error) {
	subject := model.Subject{Name: req.SubjectName, Icon: req.Icon}
	if err := s.subjectRepo.Create(&subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		log.Error().Err(err).Str("subject", req.SubjectName).Msg("Failed to create subject")
		return nil, fmt.Errorf("database error creating subject: %w", err)
	}
	return buildSubjectResponse(&subject), nil
}

func (s *subjectService) GetAll() ([]dto.SubjectResponseDTO, error) {
	subjects, err := s.subjectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching subjects: %w", err)
	}
	dtos := make([]dto.SubjectResponseDTO, 0, len(subjects))
	for i := range subjects {
		dtos = append(dtos, *buildSubjectResponse(&subjects[i]))
	}
	return dtos, nil
}

func (s *subjectService) Update(id uint, req dto.SubjectUpdateDTO) (*dto.SubjectResponseDTO, error) {
	subject, err := s.subjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching subject %d: %w", id, err)
	}

	subject.Name = req.SubjectName
	if req.Icon != "" {
		subject.Icon = req.Icon
	}
	if err := s.subjectRepo.Update(subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("error updating subject %d: %w", id, err)
	}
	return buildSubjectResponse(subject), nil
}

func (s *subjectService) Delete(id uint) error {
	if _, err := s.subjectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching subject %d: %w", id, err)
	}

	referenced, err := s.subjectRepo.HasChapters(id)
	if err != nil {
		return fmt.Errorf("error checking subject references: %w", err)
	}
	if referenced {
		return ErrReferenced
	}
	if err := s.subjectRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting subject %d: %w", id, err)
	}
	return nil
}

func buildSubjectResponse(subject *model.Subject) *dto.SubjectResponseDTO {
	var resp dto.SubjectResponseDTO
	copier.Copy(&resp, subject)
	resp.SubjectName = subject.Name
	return &resp
}
