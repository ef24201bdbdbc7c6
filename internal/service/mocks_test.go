package service

import (
	"time"

	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/repository"
	"gorm.io/gorm"
)

// Function-field mocks for the repository interfaces. Tests set only the
// functions they exercise; unset lookups report gorm.ErrRecordNotFound and
// unset writes succeed.

type subjectRepoMock struct {
	createFn      func(*model.Subject) error
	findByIDFn    func(uint) (*model.Subject, error)
	findByNameFn  func(string) (*model.Subject, error)
	findAllFn     func() ([]model.Subject, error)
	updateFn      func(*model.Subject) error
	deleteFn      func(uint) error
	hasChaptersFn func(uint) (bool, error)
	countFn       func() (int64, error)
}

func (m *subjectRepoMock) Create(s *model.Subject) error {
	if m.createFn != nil {
		return m.createFn(s)
	}
	return nil
}

func (m *subjectRepoMock) FindByID(id uint) (*model.Subject, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *subjectRepoMock) FindByName(name string) (*model.Subject, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *subjectRepoMock) FindAll() ([]model.Subject, error) {
	if m.findAllFn != nil {
		return m.findAllFn()
	}
	return nil, nil
}

func (m *subjectRepoMock) Update(s *model.Subject) error {
	if m.updateFn != nil {
		return m.updateFn(s)
	}
	return nil
}

func (m *subjectRepoMock) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *subjectRepoMock) HasChapters(id uint) (bool, error) {
	if m.hasChaptersFn != nil {
		return m.hasChaptersFn(id)
	}
	return false, nil
}

func (m *subjectRepoMock) Count() (int64, error) {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

type chapterRepoMock struct {
	createFn            func(*model.Chapter) error
	findByIDFn          func(uint) (*model.Chapter, error)
	findAllWithCountsFn func() ([]repository.ChapterWithCount, error)
	findBySubjectIDFn   func(uint) ([]model.Chapter, error)
	updateFn            func(*model.Chapter) error
	deleteFn            func(uint) error
	hasQuestionsFn      func(uint) (bool, error)
	countFn             func() (int64, error)
}

func (m *chapterRepoMock) Create(c *model.Chapter) error {
	if m.createFn != nil {
		return m.createFn(c)
	}
	return nil
}

func (m *chapterRepoMock) FindByID(id uint) (*model.Chapter, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *chapterRepoMock) FindAllWithCounts() ([]repository.ChapterWithCount, error) {
	if m.findAllWithCountsFn != nil {
		return m.findAllWithCountsFn()
	}
	return nil, nil
}

func (m *chapterRepoMock) FindBySubjectID(subjectID uint) ([]model.Chapter, error) {
	if m.findBySubjectIDFn != nil {
		return m.findBySubjectIDFn(subjectID)
	}
	return nil, nil
}

func (m *chapterRepoMock) Update(c *model.Chapter) error {
	if m.updateFn != nil {
		return m.updateFn(c)
	}
	return nil
}

func (m *chapterRepoMock) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *chapterRepoMock) HasQuestions(id uint) (bool, error) {
	if m.hasQuestionsFn != nil {
		return m.hasQuestionsFn(id)
	}
	return false, nil
}

func (m *chapterRepoMock) Count() (int64, error) {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

type questionRepoMock struct {
	createFn             func(*model.Question) error
	findByIDFn           func(uint) (*model.Question, error)
	findAllFn            func(int) ([]model.Question, error)
	findIDsByChapterIDFn func(uint) ([]uint, error)
	updateFn             func(*model.Question) error
	deleteFn             func(uint) error
	sampleRandomFn       func(int) ([]model.Question, error)
	countFn              func() (int64, error)
}

func (m *questionRepoMock) Create(q *model.Question) error {
	if m.createFn != nil {
		return m.createFn(q)
	}
	return nil
}

func (m *questionRepoMock) FindByID(id uint) (*model.Question, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *questionRepoMock) FindAll(limit int) ([]model.Question, error) {
	if m.findAllFn != nil {
		return m.findAllFn(limit)
	}
	return nil, nil
}

func (m *questionRepoMock) FindIDsByChapterID(chapterID uint) ([]uint, error) {
	if m.findIDsByChapterIDFn != nil {
		return m.findIDsByChapterIDFn(chapterID)
	}
	return nil, nil
}

func (m *questionRepoMock) Update(q *model.Question) error {
	if m.updateFn != nil {
		return m.updateFn(q)
	}
	return nil
}

func (m *questionRepoMock) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *questionRepoMock) SampleRandom(count int) ([]model.Question, error) {
	if m.sampleRandomFn != nil {
		return m.sampleRandomFn(count)
	}
	return nil, nil
}

func (m *questionRepoMock) Count() (int64, error) {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

type examRepoMock struct {
	createFn               func(*model.MockExam) error
	findByIDFn             func(uint) (*model.MockExam, error)
	findByIDWithQsFn       func(uint) (*model.MockExam, error)
	findAllWithQsFn        func() ([]model.MockExam, error)
	updateFn               func(*model.MockExam) error
	deleteWithDependentsFn func(uint) error
	titlesLikeFn           func(string) ([]string, error)
	countFn                func() (int64, error)
}

func (m *examRepoMock) Create(exam *model.MockExam) error {
	if m.createFn != nil {
		return m.createFn(exam)
	}
	return nil
}

func (m *examRepoMock) FindByID(id uint) (*model.MockExam, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *examRepoMock) FindByIDWithQuestions(id uint) (*model.MockExam, error) {
	if m.findByIDWithQsFn != nil {
		return m.findByIDWithQsFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *examRepoMock) FindAllWithQuestions() ([]model.MockExam, error) {
	if m.findAllWithQsFn != nil {
		return m.findAllWithQsFn()
	}
	return nil, nil
}

func (m *examRepoMock) Update(exam *model.MockExam) error {
	if m.updateFn != nil {
		return m.updateFn(exam)
	}
	return nil
}

func (m *examRepoMock) DeleteWithDependents(id uint) error {
	if m.deleteWithDependentsFn != nil {
		return m.deleteWithDependentsFn(id)
	}
	return nil
}

func (m *examRepoMock) TitlesLike(base string) ([]string, error) {
	if m.titlesLikeFn != nil {
		return m.titlesLikeFn(base)
	}
	return nil, nil
}

func (m *examRepoMock) Count() (int64, error) {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

type challengeRepoMock struct {
	createFn                func(*model.Challenge) error
	findByIDFn              func(uint) (*model.Challenge, error)
	findByIDWithQsFn        func(uint) (*model.Challenge, error)
	findAllFn               func() ([]model.Challenge, error)
	findActiveByTypeFn      func(string, time.Time) (*model.Challenge, error)
	updateFn                func(*model.Challenge) error
	replaceQuestionsFn      func(*model.Challenge, []model.Question) error
	deleteWithDependentsFn  func(uint) error
	titlesLikeFn            func(string) ([]string, error)
	incrementParticipantsFn func(uint) error
	countFn                 func() (int64, error)
}

func (m *challengeRepoMock) Create(c *model.Challenge) error {
	if m.createFn != nil {
		return m.createFn(c)
	}
	return nil
}

func (m *challengeRepoMock) FindByID(id uint) (*model.Challenge, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *challengeRepoMock) FindByIDWithQuestions(id uint) (*model.Challenge, error) {
	if m.findByIDWithQsFn != nil {
		return m.findByIDWithQsFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *challengeRepoMock) FindAll() ([]model.Challenge, error) {
	if m.findAllFn != nil {
		return m.findAllFn()
	}
	return nil, nil
}

func (m *challengeRepoMock) FindActiveByType(challengeType string, at time.Time) (*model.Challenge, error) {
	if m.findActiveByTypeFn != nil {
		return m.findActiveByTypeFn(challengeType, at)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *challengeRepoMock) Update(c *model.Challenge) error {
	if m.updateFn != nil {
		return m.updateFn(c)
	}
	return nil
}

func (m *challengeRepoMock) ReplaceQuestions(c *model.Challenge, questions []model.Question) error {
	if m.replaceQuestionsFn != nil {
		return m.replaceQuestionsFn(c, questions)
	}
	return nil
}

func (m *challengeRepoMock) DeleteWithDependents(id uint) error {
	if m.deleteWithDependentsFn != nil {
		return m.deleteWithDependentsFn(id)
	}
	return nil
}

func (m *challengeRepoMock) TitlesLike(base string) ([]string, error) {
	if m.titlesLikeFn != nil {
		return m.titlesLikeFn(base)
	}
	return nil, nil
}

func (m *challengeRepoMock) IncrementParticipants(id uint) error {
	if m.incrementParticipantsFn != nil {
		return m.incrementParticipantsFn(id)
	}
	return nil
}

func (m *challengeRepoMock) Count() (int64, error) {
	if m.countFn != nil {
		return m.countFn()
	}
	return 0, nil
}

type examResultRepoMock struct {
	createFn            func(*model.MockExamResult) error
	findByUserAndExamFn func(uint, uint) (*model.MockExamResult, error)
	findAllByUserFn     func(uint) ([]model.MockExamResult, error)
	existsFn            func(uint, uint) (bool, error)
}

func (m *examResultRepoMock) Create(r *model.MockExamResult) error {
	if m.createFn != nil {
		return m.createFn(r)
	}
	return nil
}

func (m *examResultRepoMock) FindByUserAndExam(userID, mockExamID uint) (*model.MockExamResult, error) {
	if m.findByUserAndExamFn != nil {
		return m.findByUserAndExamFn(userID, mockExamID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *examResultRepoMock) FindAllByUser(userID uint) ([]model.MockExamResult, error) {
	if m.findAllByUserFn != nil {
		return m.findAllByUserFn(userID)
	}
	return nil, nil
}

func (m *examResultRepoMock) ExistsByUserAndExam(userID, mockExamID uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(userID, mockExamID)
	}
	return false, nil
}

type challengeResultRepoMock struct {
	createFn                 func(*model.ChallengeResult) error
	findByUserAndChallengeFn func(uint, uint) (*model.ChallengeResult, error)
	existsFn                 func(uint, uint) (bool, error)
}

func (m *challengeResultRepoMock) Create(r *model.ChallengeResult) error {
	if m.createFn != nil {
		return m.createFn(r)
	}
	return nil
}

func (m *challengeResultRepoMock) FindByUserAndChallenge(userID, challengeID uint) (*model.ChallengeResult, error) {
	if m.findByUserAndChallengeFn != nil {
		return m.findByUserAndChallengeFn(userID, challengeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *challengeResultRepoMock) ExistsByUserAndChallenge(userID, challengeID uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(userID, challengeID)
	}
	return false, nil
}

type examProgressRepoMock struct {
	saveFn              func(*model.MockExamProgress) error
	findByUserAndExamFn func(uint, uint) (*model.MockExamProgress, error)
}

func (m *examProgressRepoMock) Save(p *model.MockExamProgress) error {
	if m.saveFn != nil {
		return m.saveFn(p)
	}
	return nil
}

func (m *examProgressRepoMock) FindByUserAndExam(userID, mockExamID uint) (*model.MockExamProgress, error) {
	if m.findByUserAndExamFn != nil {
		return m.findByUserAndExamFn(userID, mockExamID)
	}
	return nil, gorm.ErrRecordNotFound
}

type challengeProgressRepoMock struct {
	saveFn                   func(*model.ChallengeProgress) error
	findByUserAndChallengeFn func(uint, uint) (*model.ChallengeProgress, error)
}

func (m *challengeProgressRepoMock) Save(p *model.ChallengeProgress) error {
	if m.saveFn != nil {
		return m.saveFn(p)
	}
	return nil
}

func (m *challengeProgressRepoMock) FindByUserAndChallenge(userID, challengeID uint) (*model.ChallengeProgress, error) {
	if m.findByUserAndChallengeFn != nil {
		return m.findByUserAndChallengeFn(userID, challengeID)
	}
	return nil, gorm.ErrRecordNotFound
}

type samplerMock struct {
	sampleBySubjectFn func(uint, int) ([]model.Question, error)
	sampleAllFn       func(int) ([]model.Question, error)
}

func (m *samplerMock) SampleBySubject(subjectID uint, count int) ([]model.Question, error) {
	if m.sampleBySubjectFn != nil {
		return m.sampleBySubjectFn(subjectID, count)
	}
	return nil, nil
}

func (m *samplerMock) SampleAll(count int) ([]model.Question, error) {
	if m.sampleAllFn != nil {
		return m.sampleAllFn(count)
	}
	return nil, nil
}

// questionSet builds n placeholder questions with ids starting at 1.
func questionSet(n int) []model.Question {
	qs := make([]model.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, model.Question{ID: uint(i), ChapterID: 1})
	}
	return qs
}
