package service

import (
	"fmt"

	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/repository"
)

type DashboardService interface {
	Summary() (*dto.DashboardSummaryDTO, error)
}

type dashboardService struct {
	subjectRepo   repository.SubjectRepository
	chapterRepo   repository.ChapterRepository
	questionRepo  repository.QuestionRepository
	examRepo      repository.MockExamRepository
	challengeRepo repository.ChallengeRepository
}

func NewDashboardService(
	subjectRepo repository.SubjectRepository,
	chapterRepo repository.ChapterRepository,
	questionRepo repository.QuestionRepository,
	examRepo repository.MockExamRepository,
	challengeRepo repository.ChallengeRepository,
) DashboardService {
	return &dashboardService{
		subjectRepo:   subjectRepo,
		chapterRepo:   chapterRepo,
		questionRepo:  questionRepo,
		examRepo:      examRepo,
		challengeRepo: challengeRepo,
	}
}

func (s *dashboardService) Summary() (*dto.DashboardSummaryDTO, error) {
	var summary dto.DashboardSummaryDTO
	var err error

	if summary.Subjects, err = s.subjectRepo.Count(); err != nil {
		return nil, fmt.Errorf("error counting subjects: %w", err)
	}
	if summary.Chapters, err = s.chapterRepo.Count(); err != nil {
		return nil, fmt.Errorf("error counting chapters: %w", err)
	}
	if summary.Questions, err = s.questionRepo.Count(); err != nil {
		return nil, fmt.Errorf("error counting questions: %w", err)
	}
	if summary.MockExams, err = s.examRepo.Count(); err != nil {
		return nil, fmt.Errorf("error counting mock exams: %w", err)
	}
	if summary.Challenges, err = s.challengeRepo.Count(); err != nil {
		return nil, fmt.Errorf("error counting challenges: %w", err)
	}
	return &summary, nil
}
