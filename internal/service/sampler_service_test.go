package service

import (
	"testing"

	"github.com/quizdesk/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two chapters under subject 1: chapter 10 holds questions 1-3, chapter 20
// holds questions 4-8.
func newSamplerFixture() QuestionSamplerService {
	chapterRepo := &chapterRepoMock{
		findBySubjectIDFn: func(subjectID uint) ([]model.Chapter, error) {
			if subjectID != 1 {
				return nil, nil
			}
			return []model.Chapter{
				{ID: 10, SubjectID: 1},
				{ID: 20, SubjectID: 1},
			}, nil
		},
	}
	questionRepo := &questionRepoMock{
		findIDsByChapterIDFn: func(chapterID uint) ([]uint, error) {
			switch chapterID {
			case 10:
				return []uint{1, 2, 3}, nil
			case 20:
				return []uint{4, 5, 6, 7, 8}, nil
			}
			return nil, nil
		},
	}
	return NewQuestionSamplerService(chapterRepo, questionRepo)
}

func assertDistinct(t *testing.T, questions []model.Question) {
	t.Helper()
	seen := make(map[uint]bool, len(questions))
	for _, q := range questions {
		assert.False(t, seen[q.ID], "question %d drawn twice", q.ID)
		seen[q.ID] = true
	}
}

func TestSampleBySubjectReturnsRequestedCount(t *testing.T) {
	sampler := newSamplerFixture()

	questions, err := sampler.SampleBySubject(1, 4)
	require.NoError(t, err)
	assert.Len(t, questions, 4)
	assertDistinct(t, questions)
	for _, q := range questions {
		assert.Contains(t, []uint{10, 20}, q.ChapterID)
	}
}

func TestSampleBySubjectDrainsExactPool(t *testing.T) {
	sampler := newSamplerFixture()

	questions, err := sampler.SampleBySubject(1, 8)
	require.NoError(t, err)
	assert.Len(t, questions, 8)
	assertDistinct(t, questions)
}

func TestSampleBySubjectExhaustedPoolReturnsWhatExists(t *testing.T) {
	sampler := newSamplerFixture()

	questions, err := sampler.SampleBySubject(1, 20)
	require.NoError(t, err)
	assert.Len(t, questions, 8, "subject only holds 8 questions")
	assertDistinct(t, questions)
}

func TestSampleBySubjectNoChapters(t *testing.T) {
	sampler := newSamplerFixture()

	questions, err := sampler.SampleBySubject(99, 5)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestSampleBySubjectEmptyChapters(t *testing.T) {
	chapterRepo := &chapterRepoMock{
		findBySubjectIDFn: func(uint) ([]model.Chapter, error) {
			return []model.Chapter{{ID: 10}, {ID: 20}}, nil
		},
	}
	questionRepo := &questionRepoMock{
		findIDsByChapterIDFn: func(uint) ([]uint, error) { return nil, nil },
	}
	sampler := NewQuestionSamplerService(chapterRepo, questionRepo)

	questions, err := sampler.SampleBySubject(1, 5)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestSampleAllDelegatesToUniformDraw(t *testing.T) {
	var requested int
	questionRepo := &questionRepoMock{
		sampleRandomFn: func(count int) ([]model.Question, error) {
			requested = count
			return questionSet(count), nil
		},
	}
	sampler := NewQuestionSamplerService(&chapterRepoMock{}, questionRepo)

	questions, err := sampler.SampleAll(6)
	require.NoError(t, err)
	assert.Equal(t, 6, requested)
	assert.Len(t, questions, 6)
}
