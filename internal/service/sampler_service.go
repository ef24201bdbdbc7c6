package service

import (
	"fmt"
	"math/rand"

	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionSamplerService selects distinct questions for exam and challenge
// generation. Two strategies exist and are deliberately kept separate:
//
//   - SampleBySubject ("chapter-first"): picks a random chapter under the
//     subject, then a random question inside it. Every chapter is equally
//     likely per draw, so questions from small chapters are overrepresented.
//     Mock exams rely on this spread across chapters.
//   - SampleAll ("flat"): one uniform draw over the entire question pool,
//     used for challenges, which have no subject scope.
//
// Neither strategy is seedable; results are not reproducible.
type QuestionSamplerService interface {
	SampleBySubject(subjectID uint, count int) ([]model.Question, error)
	SampleAll(count int) ([]model.Question, error)
}

type questionSamplerService struct {
	chapterRepo  repository.ChapterRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionSamplerService(chapterRepo repository.ChapterRepository, questionRepo repository.QuestionRepository) QuestionSamplerService {
	return &questionSamplerService{chapterRepo: chapterRepo, questionRepo: questionRepo}
}

// SampleBySubject returns up to count distinct questions from chapters under
// the subject. When the subject holds fewer than count questions, all of
// them are returned. A subject with no chapters or no questions yields an
// empty slice; callers decide whether that is an error.
func (s *questionSamplerService) SampleBySubject(subjectID uint, count int) ([]model.Question, error) {
	chapters, err := s.chapterRepo.FindBySubjectID(subjectID)
	if err != nil {
		return nil, fmt.Errorf("error loading chapters for subject %d: %w", subjectID, err)
	}
	if len(chapters) == 0 {
		return nil, nil
	}

	candidates := make([]uint, 0, len(chapters))
	for _, ch := range chapters {
		candidates = append(candidates, ch.ID)
	}

	// Remaining question ids per chapter, loaded on first draw from that
	// chapter. Picked ids are removed, so the loop is bounded by the
	// shrinking candidate list even when count exceeds the pool.
	remaining := make(map[uint][]uint, len(candidates))
	loaded := make(map[uint]bool, len(candidates))

	var selected []model.Question
	for len(selected) < count && len(candidates) > 0 {
		ci := rand.Intn(len(candidates))
		chapterID := candidates[ci]

		if !loaded[chapterID] {
			ids, err := s.questionRepo.FindIDsByChapterID(chapterID)
			if err != nil {
				return nil, fmt.Errorf("error loading questions for chapter %d: %w", chapterID, err)
			}
			remaining[chapterID] = ids
			loaded[chapterID] = true
		}

		pool := remaining[chapterID]
		if len(pool) == 0 {
			candidates = append(candidates[:ci], candidates[ci+1:]...)
			continue
		}

		qi := rand.Intn(len(pool))
		selected = append(selected, model.Question{ID: pool[qi], ChapterID: chapterID})
		pool[qi] = pool[len(pool)-1]
		remaining[chapterID] = pool[:len(pool)-1]
	}

	if len(selected) < count {
		log.Info().
			Uint("subjectID", subjectID).
			Int("requested", count).
			Int("selected", len(selected)).
			Msg("Question pool exhausted before reaching requested count")
	}
	return selected, nil
}

// SampleAll draws up to count distinct questions uniformly from the full
// pool in a single query.
func (s *questionSamplerService) SampleAll(count int) ([]model.Question, error) {
	questions, err := s.questionRepo.SampleRandom(count)
	if err != nil {
		return nil, fmt.Errorf("error sampling questions: %w", err)
	}
	return questions, nil
}
