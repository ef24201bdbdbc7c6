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

const (
	defaultMockExamTimeLimit = 3600 // seconds

	// titleRetryLimit bounds the create-retry loop that closes the title
	// allocation race via the unique index on the title column.
	titleRetryLimit = 3
)

type MockExamService interface {
	Generate(req dto.MockExamGenerateDTO) (*dto.MockExamResponseDTO, error)
	// GenerateForAllSubjects creates one mock exam per subject. Used by the
	// nightly sweep; a failure on one subject does not stop the others.
	GenerateForAllSubjects(questionsPerExam int) error
	GetAll() ([]dto.MockExamResponseDTO, error)
	GetByID(id uint) (*dto.MockExamDetailDTO, error)
	Update(id uint, req dto.MockExamUpdateDTO) (*dto.MockExamResponseDTO, error)
	Delete(id uint) error
	SubmitResult(req dto.MockExamResultSubmitDTO) (*dto.MockExamResultResponseDTO, error)
	GetResultByExam(userID, mockExamID uint) (*dto.MockExamResultResponseDTO, error)
	SaveProgress(req dto.MockExamProgressSaveDTO) error
	ResumeProgress(userID, mockExamID uint) (*dto.ProgressResponseDTO, error)
	ProgressSummaryBySubject(userID uint) ([]dto.SubjectProgressSummaryDTO, error)
}

type mockExamService struct {
	subjectRepo  repository.SubjectRepository
	examRepo     repository.MockExamRepository
	resultRepo   repository.MockExamResultRepository
	progressRepo repository.MockExamProgressRepository
	sampler      QuestionSamplerService
	titles       TitleAllocator
}

func NewMockExamService(
	subjectRepo repository.SubjectRepository,
	examRepo repository.MockExamRepository,
	resultRepo repository.MockExamResultRepository,
	progressRepo repository.MockExamProgressRepository,
	sampler QuestionSamplerService,
	titles TitleAllocator,
) MockExamService {
	return &mockExamService{
		subjectRepo:  subjectRepo,
		examRepo:     examRepo,
		resultRepo:   resultRepo,
		progressRepo: progressRepo,
		sampler:      sampler,
		titles:       titles,
	}
}

// Generate samples questions chapter-first under the subject, allocates a
// unique title and persists the exam. The subject must exist and hold at
// least one question; an exam is never created with an empty question set.
func (s *mockExamService) Generate(req dto.MockExamGenerateDTO) (*dto.MockExamResponseDTO, error) {
	subject, err := s.subjectRepo.FindByID(req.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScopeNotFound
		}
		return nil, fmt.Errorf("error resolving subject %d: %w", req.SubjectID, err)
	}

	questions, err := s.sampler.SampleBySubject(subject.ID, req.NumberOfQuestions)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}

	timeLimit := req.TimeLimit
	if timeLimit == 0 {
		timeLimit = defaultMockExamTimeLimit
	}

	base := fmt.Sprintf("Mock Exam - %s", subject.Name)
	exam, err := s.createWithUniqueTitle(base, func(title string) *model.MockExam {
		return &model.MockExam{
			Title:     title,
			SubjectID: subject.ID,
			Questions: questions,
			TimeLimit: timeLimit,
		}
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("examID", exam.ID).
		Str("title", exam.Title).
		Int("questions", len(questions)).
		Msg("Mock exam generated")
	return buildMockExamResponse(exam), nil
}

// createWithUniqueTitle runs the allocate-then-insert sequence, retrying
// when the unique index on title reports a concurrent writer won the name.
func (s *mockExamService) createWithUniqueTitle(base string, build func(title string) *model.MockExam) (*model.MockExam, error) {
	for attempt := 0; attempt < titleRetryLimit; attempt++ {
		existing, err := s.examRepo.TitlesLike(base)
		if err != nil {
			return nil, fmt.Errorf("error listing existing titles for %q: %w", base, err)
		}
		exam := build(s.titles.Allocate(base, existing))

		err = s.examRepo.Create(exam)
		if err == nil {
			return exam, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("database error creating mock exam: %w", err)
		}
		log.Warn().Str("title", exam.Title).Int("attempt", attempt+1).
			Msg("Mock exam title taken by concurrent writer, recomputing")
	}
	return nil, ErrDuplicateTitle
}

func (s *mockExamService) GenerateForAllSubjects(questionsPerExam int) error {
	subjects, err := s.subjectRepo.FindAll()
	if err != nil {
		return fmt.Errorf("error listing subjects: %w", err)
	}

	var failed int
	for _, subject := range subjects {
		_, err := s.Generate(dto.MockExamGenerateDTO{
			SubjectID:         subject.ID,
			NumberOfQuestions: questionsPerExam,
		})
		if err != nil {
			if errors.Is(err, ErrEmptyPool) {
				log.Info().Str("subject", subject.Name).Msg("Skipping mock exam sweep for subject with no questions")
				continue
			}
			failed++
			log.Error().Err(err).Str("subject", subject.Name).Msg("Mock exam sweep failed for subject")
			continue
		}
	}
	if failed > 0 {
		return fmt.Errorf("mock exam sweep failed for %d of %d subjects", failed, len(subjects))
	}
	return nil
}

func (s *mockExamService) GetAll() ([]dto.MockExamResponseDTO, error) {
	exams, err := s.examRepo.FindAllWithQuestions()
	if err != nil {
		return nil, fmt.Errorf("error fetching mock exams: %w", err)
	}
	dtos := make([]dto.MockExamResponseDTO, 0, len(exams))
	for i := range exams {
		dtos = append(dtos, *buildMockExamResponse(&exams[i]))
	}
	return dtos, nil
}

func (s *mockExamService) GetByID(id uint) (*dto.MockExamDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching mock exam %d: %w", id, err)
	}

	var resp dto.MockExamDetailDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("error preparing mock exam response: %w", err)
	}
	resp.Questions = buildQuestionResponses(exam.Questions)
	return &resp, nil
}

func (s *mockExamService) Update(id uint, req dto.MockExamUpdateDTO) (*dto.MockExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching mock exam %d: %w", id, err)
	}

	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.TimeLimit != nil {
		exam.TimeLimit = *req.TimeLimit
	}
	if err := s.examRepo.Update(exam); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("error updating mock exam %d: %w", id, err)
	}
	return buildMockExamResponse(exam), nil
}

// Delete removes the exam and cascades to its results and saved progress.
// Questions, chapters and subjects are untouched.
func (s *mockExamService) Delete(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching mock exam %d: %w", id, err)
	}
	if err := s.examRepo.DeleteWithDependents(id); err != nil {
		return fmt.Errorf("error deleting mock exam %d: %w", id, err)
	}
	log.Info().Uint("examID", id).Msg("Mock exam deleted with dependent results and progress")
	return nil
}

func (s *mockExamService) SubmitResult(req dto.MockExamResultSubmitDTO) (*dto.MockExamResultResponseDTO, error) {
	if _, err := s.examRepo.FindByID(req.MockExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching mock exam %d: %w", req.MockExamID, err)
	}

	exists, err := s.resultRepo.ExistsByUserAndExam(req.UserID, req.MockExamID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing result: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	result := model.MockExamResult{
		UserID:     req.UserID,
		MockExamID: req.MockExamID,
		Score:      req.Score,
		Total:      req.Total,
		TimeTaken:  req.TimeTaken,
		Answers:    req.Answers,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		// The unique index backs up the existence check under race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("error saving mock exam result: %w", err)
	}

	var resp dto.MockExamResultResponseDTO
	if err := copier.Copy(&resp, &result); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}

func (s *mockExamService) GetResultByExam(userID, mockExamID uint) (*dto.MockExamResultResponseDTO, error) {
	result, err := s.resultRepo.FindByUserAndExam(userID, mockExamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching mock exam result: %w", err)
	}
	var resp dto.MockExamResultResponseDTO
	if err := copier.Copy(&resp, result); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}

func (s *mockExamService) SaveProgress(req dto.MockExamProgressSaveDTO) error {
	if _, err := s.examRepo.FindByID(req.MockExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching mock exam %d: %w", req.MockExamID, err)
	}
	progress := model.MockExamProgress{
		UserID:           req.UserID,
		MockExamID:       req.MockExamID,
		Answers:          req.Answers,
		RemainingSeconds: req.RemainingSeconds,
	}
	if err := s.progressRepo.Save(&progress); err != nil {
		return fmt.Errorf("error saving mock exam progress: %w", err)
	}
	return nil
}

func (s *mockExamService) ResumeProgress(userID, mockExamID uint) (*dto.ProgressResponseDTO, error) {
	progress, err := s.progressRepo.FindByUserAndExam(userID, mockExamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching mock exam progress: %w", err)
	}
	return &dto.ProgressResponseDTO{
		Answers:          progress.Answers,
		RemainingSeconds: progress.RemainingSeconds,
		UpdatedAt:        progress.UpdatedAt,
	}, nil
}

// ProgressSummaryBySubject folds a user's mock exam results into per-subject
// correct/total totals for the progress dashboard.
func (s *mockExamService) ProgressSummaryBySubject(userID uint) ([]dto.SubjectProgressSummaryDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching results for user %d: %w", userID, err)
	}

	index := make(map[string]int)
	summaries := make([]dto.SubjectProgressSummaryDTO, 0)
	for _, result := range results {
		name := result.MockExam.Subject.Name
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			index[name] = len(summaries)
			summaries = append(summaries, dto.SubjectProgressSummaryDTO{Subject: name})
			i = index[name]
		}
		summaries[i].Correct += result.Score
		summaries[i].Total += result.Total
	}
	return summaries, nil
}

func buildMockExamResponse(exam *model.MockExam) *dto.MockExamResponseDTO {
	ids := make([]uint, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		ids = append(ids, q.ID)
	}
	return &dto.MockExamResponseDTO{
		ID:            exam.ID,
		Title:         exam.Title,
		SubjectID:     exam.SubjectID,
		QuestionIDs:   ids,
		QuestionCount: len(ids),
		TimeLimit:     exam.TimeLimit,
		CreatedAt:     exam.CreatedAt,
	}
}

func buildQuestionResponses(questions []model.Question) []dto.QuestionResponseDTO {
	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		var qDTO dto.QuestionResponseDTO
		copier.Copy(&qDTO, &questions[i])
		qDTO.Question = questions[i].Text
		qDTO.DifficultyLevel = questions[i].Difficulty
		dtos = append(dtos, qDTO)
	}
	return dtos
}
