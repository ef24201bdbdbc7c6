package service

import (
	"testing"
	"time"

	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChallengeServiceForTest(challenges *challengeRepoMock, results *challengeResultRepoMock, progress *challengeProgressRepoMock, sampler *samplerMock) ChallengeService {
	if challenges == nil {
		challenges = &challengeRepoMock{}
	}
	if results == nil {
		results = &challengeResultRepoMock{}
	}
	if progress == nil {
		progress = &challengeProgressRepoMock{}
	}
	if sampler == nil {
		sampler = &samplerMock{
			sampleAllFn: func(count int) ([]model.Question, error) {
				return questionSet(count), nil
			},
		}
	}
	return NewChallengeService(challenges, results, progress, sampler, NewTitleAllocator())
}

func TestCreateChallengeDefaults(t *testing.T) {
	var created *model.Challenge
	challenges := &challengeRepoMock{
		createFn: func(c *model.Challenge) error {
			c.ID = 11
			created = c
			return nil
		},
	}
	svc := newChallengeServiceForTest(challenges, nil, nil, nil)

	resp, err := svc.Create(dto.ChallengeCreateDTO{Type: model.ChallengeTypeDaily, NumberOfQuestions: 10})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, model.ChallengeTypeDaily, resp.Type)
	assert.Len(t, resp.QuestionIDs, 10)
	assert.Equal(t, defaultChallengeTimeLimit, resp.TimeLimit)
	assert.Equal(t, 24*time.Hour, resp.EndDate.Sub(resp.StartDate), "daily window defaults to one day")
	assert.Contains(t, resp.Title, "Daily Challenge - ")
}

func TestCreateWeeklyChallengeWindow(t *testing.T) {
	svc := newChallengeServiceForTest(nil, nil, nil, nil)

	resp, err := svc.Create(dto.ChallengeCreateDTO{Type: model.ChallengeTypeWeekly, NumberOfQuestions: 5})
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, resp.EndDate.Sub(resp.StartDate))
	assert.Contains(t, resp.Title, "Weekly Challenge - ")
}

func TestCreateChallengeHonorsExplicitDates(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	svc := newChallengeServiceForTest(nil, nil, nil, nil)

	resp, err := svc.Create(dto.ChallengeCreateDTO{
		Type:              model.ChallengeTypeDaily,
		NumberOfQuestions: 5,
		StartDate:         &start,
		EndDate:           &end,
	})
	require.NoError(t, err)
	assert.Equal(t, start, resp.StartDate)
	assert.Equal(t, end, resp.EndDate)
}

// An empty question pool must not block challenge creation; the scheduler
// runs against fresh databases too.
func TestCreateChallengeToleratesEmptyPool(t *testing.T) {
	sampler := &samplerMock{
		sampleAllFn: func(int) ([]model.Question, error) { return nil, nil },
	}
	svc := newChallengeServiceForTest(nil, nil, nil, sampler)

	resp, err := svc.Create(dto.ChallengeCreateDTO{Type: model.ChallengeTypeDaily, NumberOfQuestions: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.QuestionIDs)
}

func TestGenerateDailyUsesDefaultQuestionCount(t *testing.T) {
	var sampled int
	sampler := &samplerMock{
		sampleAllFn: func(count int) ([]model.Question, error) {
			sampled = count
			return questionSet(count), nil
		},
	}
	svc := newChallengeServiceForTest(nil, nil, nil, sampler)

	resp, err := svc.GenerateDaily(0)
	require.NoError(t, err)
	assert.Equal(t, defaultDailyChallengeQuestions, sampled)
	assert.Equal(t, model.ChallengeTypeDaily, resp.Type)
}

func TestCreateChallengeSuffixesTitleOnSameDay(t *testing.T) {
	day := time.Now().Format("Mon Jan 2 2006")
	base := "Daily Challenge - " + day
	challenges := &challengeRepoMock{
		titlesLikeFn: func(string) ([]string, error) { return []string{base}, nil },
	}
	svc := newChallengeServiceForTest(challenges, nil, nil, nil)

	resp, err := svc.Create(dto.ChallengeCreateDTO{Type: model.ChallengeTypeDaily, NumberOfQuestions: 5})
	require.NoError(t, err)
	assert.Equal(t, base+" (1)", resp.Title)
}

func TestUpdateChallengeResamplesQuestions(t *testing.T) {
	stored := &model.Challenge{
		ID:        4,
		Type:      model.ChallengeTypeDaily,
		Title:     "Daily Challenge - Mon Aug 31 2026",
		Questions: questionSet(10),
		TimeLimit: 120,
	}
	var replacedWith []model.Question
	challenges := &challengeRepoMock{
		findByIDWithQsFn: func(uint) (*model.Challenge, error) { return stored, nil },
		replaceQuestionsFn: func(_ *model.Challenge, qs []model.Question) error {
			replacedWith = qs
			return nil
		},
	}
	svc := newChallengeServiceForTest(challenges, nil, nil, nil)

	n := 5
	resp, err := svc.Update(4, dto.ChallengeUpdateDTO{NumberOfQuestions: &n})
	require.NoError(t, err)
	assert.Len(t, replacedWith, 5)
	assert.Len(t, resp.QuestionIDs, 5)
}

func TestUpdateChallengeMetadataOnlyKeepsQuestions(t *testing.T) {
	stored := &model.Challenge{ID: 4, Questions: questionSet(10), TimeLimit: 120}
	challenges := &challengeRepoMock{
		findByIDWithQsFn: func(uint) (*model.Challenge, error) { return stored, nil },
		replaceQuestionsFn: func(*model.Challenge, []model.Question) error {
			t.Fatal("question set must not change without numberOfQuestions")
			return nil
		},
	}
	svc := newChallengeServiceForTest(challenges, nil, nil, nil)

	desc := "Final stretch"
	resp, err := svc.Update(4, dto.ChallengeUpdateDTO{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, resp.Description)
	assert.Len(t, resp.QuestionIDs, 10)
}

func TestGetActiveChallengeNotFound(t *testing.T) {
	svc := newChallengeServiceForTest(&challengeRepoMock{}, nil, nil, nil)
	_, err := svc.GetActive(model.ChallengeTypeDaily)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitChallengeResultBumpsParticipants(t *testing.T) {
	var bumped uint
	challenges := &challengeRepoMock{
		findByIDFn: func(id uint) (*model.Challenge, error) { return &model.Challenge{ID: id}, nil },
		incrementParticipantsFn: func(id uint) error {
			bumped = id
			return nil
		},
	}
	svc := newChallengeServiceForTest(challenges, nil, nil, nil)

	resp, err := svc.SubmitResult(dto.ChallengeResultSubmitDTO{UserID: 9, ChallengeID: 4, Score: 7, Total: 10})
	require.NoError(t, err)
	assert.Equal(t, uint(4), bumped)
	assert.Equal(t, 7, resp.Score)
}

func TestSubmitChallengeResultRejectsDuplicate(t *testing.T) {
	challenges := &challengeRepoMock{
		findByIDFn: func(id uint) (*model.Challenge, error) { return &model.Challenge{ID: id}, nil },
	}
	results := &challengeResultRepoMock{
		existsFn: func(uint, uint) (bool, error) { return true, nil },
	}
	svc := newChallengeServiceForTest(challenges, results, nil, nil)

	_, err := svc.SubmitResult(dto.ChallengeResultSubmitDTO{UserID: 9, ChallengeID: 4, Score: 7, Total: 10})
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestSubmitChallengeResultUnknownChallenge(t *testing.T) {
	svc := newChallengeServiceForTest(&challengeRepoMock{}, nil, nil, nil)
	_, err := svc.SubmitResult(dto.ChallengeResultSubmitDTO{UserID: 9, ChallengeID: 99, Score: 7, Total: 10})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeChallengeProgress(t *testing.T) {
	progress := &challengeProgressRepoMock{
		findByUserAndChallengeFn: func(userID, challengeID uint) (*model.ChallengeProgress, error) {
			if userID == 9 && challengeID == 4 {
				return &model.ChallengeProgress{Answers: []int{0, 2, -1}, RemainingSeconds: 45}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newChallengeServiceForTest(nil, nil, progress, nil)

	resp, err := svc.ResumeProgress(9, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, -1}, resp.Answers)
	assert.Equal(t, 45, resp.RemainingSeconds)

	_, err = svc.ResumeProgress(9, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
