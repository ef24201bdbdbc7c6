package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultChallengeTimeLimit      = 120 // seconds
	defaultDailyChallengeQuestions = 10
)

type ChallengeService interface {
	Create(req dto.ChallengeCreateDTO) (*dto.ChallengeResponseDTO, error)
	// GenerateDaily builds today's daily challenge from the full question
	// pool. Invoked by the scheduler and by the on-demand admin endpoint.
	GenerateDaily(questionCount int) (*dto.ChallengeResponseDTO, error)
	GetAll() ([]dto.ChallengeResponseDTO, error)
	GetActive(challengeType string) (*dto.ChallengeDetailDTO, error)
	Update(id uint, req dto.ChallengeUpdateDTO) (*dto.ChallengeResponseDTO, error)
	Delete(id uint) error
	SubmitResult(req dto.ChallengeResultSubmitDTO) (*dto.ChallengeResultResponseDTO, error)
	SaveProgress(req dto.ChallengeProgressSaveDTO) error
	ResumeProgress(userID, challengeID uint) (*dto.ProgressResponseDTO, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	resultRepo    repository.ChallengeResultRepository
	progressRepo  repository.ChallengeProgressRepository
	sampler       QuestionSamplerService
	titles        TitleAllocator
}

func NewChallengeService(
	challengeRepo repository.ChallengeRepository,
	resultRepo repository.ChallengeResultRepository,
	progressRepo repository.ChallengeProgressRepository,
	sampler QuestionSamplerService,
	titles TitleAllocator,
) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		resultRepo:    resultRepo,
		progressRepo:  progressRepo,
		sampler:       sampler,
		titles:        titles,
	}
}

// Create flat-samples the question set and persists the challenge. Unlike
// mock exams a challenge has no scope anchor, and an empty question pool is
// tolerated: the challenge is created with an empty set so the scheduler
// never crashes on an empty database.
func (s *challengeService) Create(req dto.ChallengeCreateDTO) (*dto.ChallengeResponseDTO, error) {
	questions, err := s.sampler.SampleAll(req.NumberOfQuestions)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		log.Warn().Str("type", req.Type).Msg("Creating challenge with empty question set: pool is empty")
	}

	now := time.Now()
	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := start.Add(24 * time.Hour)
	if req.Type == model.ChallengeTypeWeekly {
		end = start.Add(7 * 24 * time.Hour)
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}

	timeLimit := req.TimeLimit
	if timeLimit == 0 {
		timeLimit = defaultChallengeTimeLimit
	}

	base := challengeBaseTitle(req.Type, start)
	challenge, err := s.createWithUniqueTitle(base, func(title string) *model.Challenge {
		return &model.Challenge{
			Type:        req.Type,
			Title:       title,
			Description: req.Description,
			Questions:   questions,
			TimeLimit:   timeLimit,
			StartDate:   start,
			EndDate:     end,
		}
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("challengeID", challenge.ID).
		Str("title", challenge.Title).
		Int("questions", len(questions)).
		Msg("Challenge created")
	return buildChallengeResponse(challenge), nil
}

func (s *challengeService) createWithUniqueTitle(base string, build func(title string) *model.Challenge) (*model.Challenge, error) {
	for attempt := 0; attempt < titleRetryLimit; attempt++ {
		existing, err := s.challengeRepo.TitlesLike(base)
		if err != nil {
			return nil, fmt.Errorf("error listing existing titles for %q: %w", base, err)
		}
		challenge := build(s.titles.Allocate(base, existing))

		err = s.challengeRepo.Create(challenge)
		if err == nil {
			return challenge, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("database error creating challenge: %w", err)
		}
		log.Warn().Str("title", challenge.Title).Int("attempt", attempt+1).
			Msg("Challenge title taken by concurrent writer, recomputing")
	}
	return nil, ErrDuplicateTitle
}

func (s *challengeService) GenerateDaily(questionCount int) (*dto.ChallengeResponseDTO, error) {
	if questionCount <= 0 {
		questionCount = defaultDailyChallengeQuestions
	}
	return s.Create(dto.ChallengeCreateDTO{
		Type:              model.ChallengeTypeDaily,
		Description:       "Answer today's questions before midnight.",
		NumberOfQuestions: questionCount,
	})
}

func (s *challengeService) GetAll() ([]dto.ChallengeResponseDTO, error) {
	challenges, err := s.challengeRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching challenges: %w", err)
	}
	dtos := make([]dto.ChallengeResponseDTO, 0, len(challenges))
	for i := range challenges {
		dtos = append(dtos, *buildChallengeResponse(&challenges[i]))
	}
	return dtos, nil
}

func (s *challengeService) GetActive(challengeType string) (*dto.ChallengeDetailDTO, error) {
	challenge, err := s.challengeRepo.FindActiveByType(challengeType, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching active %s challenge: %w", challengeType, err)
	}

	var resp dto.ChallengeDetailDTO
	if err := copier.Copy(&resp, challenge); err != nil {
		return nil, fmt.Errorf("error preparing challenge response: %w", err)
	}
	resp.Questions = buildQuestionResponses(challenge.Questions)
	return &resp, nil
}

// Update changes challenge metadata. When NumberOfQuestions is supplied the
// question set is re-sampled from the full pool and replaced wholesale.
func (s *challengeService) Update(id uint, req dto.ChallengeUpdateDTO) (*dto.ChallengeResponseDTO, error) {
	challenge, err := s.challengeRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching challenge %d: %w", id, err)
	}

	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.TimeLimit != nil {
		challenge.TimeLimit = *req.TimeLimit
	}
	if req.StartDate != nil {
		challenge.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		challenge.EndDate = *req.EndDate
	}
	if err := s.challengeRepo.Update(challenge); err != nil {
		return nil, fmt.Errorf("error updating challenge %d: %w", id, err)
	}

	if req.NumberOfQuestions != nil {
		questions, err := s.sampler.SampleAll(*req.NumberOfQuestions)
		if err != nil {
			return nil, err
		}
		if err := s.challengeRepo.ReplaceQuestions(challenge, questions); err != nil {
			return nil, fmt.Errorf("error replacing challenge questions: %w", err)
		}
		challenge.Questions = questions
		log.Info().Uint("challengeID", id).Int("questions", len(questions)).
			Msg("Challenge question set re-sampled")
	}
	return buildChallengeResponse(challenge), nil
}

func (s *challengeService) Delete(id uint) error {
	if _, err := s.challengeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching challenge %d: %w", id, err)
	}
	if err := s.challengeRepo.DeleteWithDependents(id); err != nil {
		return fmt.Errorf("error deleting challenge %d: %w", id, err)
	}
	log.Info().Uint("challengeID", id).Msg("Challenge deleted with dependent results and progress")
	return nil
}

func (s *challengeService) SubmitResult(req dto.ChallengeResultSubmitDTO) (*dto.ChallengeResultResponseDTO, error) {
	if _, err := s.challengeRepo.FindByID(req.ChallengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching challenge %d: %w", req.ChallengeID, err)
	}

	exists, err := s.resultRepo.ExistsByUserAndChallenge(req.UserID, req.ChallengeID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing result: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	result := model.ChallengeResult{
		UserID:      req.UserID,
		ChallengeID: req.ChallengeID,
		Score:       req.Score,
		Total:       req.Total,
		TimeTaken:   req.TimeTaken,
		Answers:     req.Answers,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("error saving challenge result: %w", err)
	}
	if err := s.challengeRepo.IncrementParticipants(req.ChallengeID); err != nil {
		// The result is already saved; a stale counter is not worth failing
		// the submission over.
		log.Error().Err(err).Uint("challengeID", req.ChallengeID).Msg("Failed to bump participant count")
	}

	var resp dto.ChallengeResultResponseDTO
	if err := copier.Copy(&resp, &result); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}

func (s *challengeService) SaveProgress(req dto.ChallengeProgressSaveDTO) error {
	if _, err := s.challengeRepo.FindByID(req.ChallengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching challenge %d: %w", req.ChallengeID, err)
	}
	progress := model.ChallengeProgress{
		UserID:           req.UserID,
		ChallengeID:      req.ChallengeID,
		Answers:          req.Answers,
		RemainingSeconds: req.RemainingSeconds,
	}
	if err := s.progressRepo.Save(&progress); err != nil {
		return fmt.Errorf("error saving challenge progress: %w", err)
	}
	return nil
}

func (s *challengeService) ResumeProgress(userID, challengeID uint) (*dto.ProgressResponseDTO, error) {
	progress, err := s.progressRepo.FindByUserAndChallenge(userID, challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching challenge progress: %w", err)
	}
	return &dto.ProgressResponseDTO{
		Answers:          progress.Answers,
		RemainingSeconds: progress.RemainingSeconds,
		UpdatedAt:        progress.UpdatedAt,
	}, nil
}

func challengeBaseTitle(challengeType string, at time.Time) string {
	label := "Daily"
	if challengeType == model.ChallengeTypeWeekly {
		label = "Weekly"
	}
	return fmt.Sprintf("%s Challenge - %s", label, at.Format("Mon Jan 2 2006"))
}

func buildChallengeResponse(challenge *model.Challenge) *dto.ChallengeResponseDTO {
	ids := make([]uint, 0, len(challenge.Questions))
	for _, q := range challenge.Questions {
		ids = append(ids, q.ID)
	}
	return &dto.ChallengeResponseDTO{
		ID:               challenge.ID,
		Type:             challenge.Type,
		Title:            challenge.Title,
		Description:      challenge.Description,
		QuestionIDs:      ids,
		TimeLimit:        challenge.TimeLimit,
		StartDate:        challenge.StartDate,
		EndDate:          challenge.EndDate,
		ParticipantCount: challenge.ParticipantCount,
	}
}
