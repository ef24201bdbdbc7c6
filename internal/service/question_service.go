package service

import (
	"errors"
	"fmt"

	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"gorm.io/gorm"
)

// questionListLimit caps the admin question listing, newest first.
const questionListLimit = 100

type QuestionService interface {
	Create(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetAll() ([]dto.QuestionResponseDTO, error)
	Update(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	Delete(id uint) error
	Explain(id uint) (*dto.ExplanationResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	chapterRepo  repository.ChapterRepository
	llm          GeminiLLMService
}

func NewQuestionService(questionRepo repository.QuestionRepository, chapterRepo repository.ChapterRepository, llm GeminiLLMService) QuestionService {
	return &questionService{questionRepo: questionRepo, chapterRepo: chapterRepo, llm: llm}
}

func (s *questionService) Create(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.chapterRepo.FindByID(req.ChapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScopeNotFound
		}
		return nil, fmt.Errorf("error resolving chapter %d: %w", req.ChapterID, err)
	}

	question := model.Question{
		ChapterID:  req.ChapterID,
		Text:       req.Question,
		Options:    req.Options,
		Answer:     req.Answer,
		Difficulty: req.DifficultyLevel,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	resp := buildQuestionResponses([]model.Question{question})
	return &resp[0], nil
}

func (s *questionService) GetAll() ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindAll(questionListLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	return buildQuestionResponses(questions), nil
}

func (s *questionService) Update(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}

	question.ChapterID = req.ChapterID
	question.Text = req.Question
	question.Options = req.Options
	question.Answer = req.Answer
	question.Difficulty = req.DifficultyLevel
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("error updating question %d: %w", id, err)
	}
	resp := buildQuestionResponses([]model.Question{*question})
	return &resp[0], nil
}

func (s *questionService) Delete(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching question %d: %w", id, err)
	}
	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting question %d: %w", id, err)
	}
	return nil
}

// Explain asks the LLM for a short explanation of why the stored answer is
// correct. Nothing is persisted; the admin UI shows the text for review.
func (s *questionService) Explain(id uint) (*dto.ExplanationResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}

	explanation, err := s.llm.ExplainAnswer(question)
	if err != nil {
		return nil, fmt.Errorf("error generating explanation for question %d: %w", id, err)
	}
	return &dto.ExplanationResponseDTO{QuestionID: question.ID, Explanation: explanation}, nil
}
