package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/quizdesk/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database with the same TranslateError
// setting as production, so unique violations surface as
// gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test, so state never leaks between
	// tests in the same process.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Subject{},
		&model.Chapter{},
		&model.Question{},
		&model.MockExam{},
		&model.Challenge{},
		&model.MockExamResult{},
		&model.ChallengeResult{},
		&model.MockExamProgress{},
		&model.ChallengeProgress{},
	))
	return db
}

// seedSubjectWithQuestions creates a subject, one chapter and n questions,
// returning the created questions.
func seedSubjectWithQuestions(t *testing.T, db *gorm.DB, name string, n int) (model.Subject, []model.Question) {
	t.Helper()

	subject := model.Subject{Name: name, Icon: "atom"}
	require.NoError(t, db.Create(&subject).Error)
	chapter := model.Chapter{SubjectID: subject.ID, Name: name + " Basics", Number: 1}
	require.NoError(t, db.Create(&chapter).Error)

	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{
			ChapterID: chapter.ID,
			Text:      "placeholder",
			Options:   []string{"a", "b", "c", "d"},
			Answer:    "a",
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return subject, questions
}

func TestMockExamTitleUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	subject, questions := seedSubjectWithQuestions(t, db, "Biology", 2)
	repo := NewMockExamRepository(db)

	first := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, Questions: questions, TimeLimit: 3600}
	require.NoError(t, repo.Create(first))

	second := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, Questions: questions, TimeLimit: 3600}
	err := repo.Create(second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMockExamTitlesLike(t *testing.T) {
	db := newTestDB(t)
	subject, _ := seedSubjectWithQuestions(t, db, "Biology", 1)
	repo := NewMockExamRepository(db)

	for _, title := range []string{
		"Mock Exam - Biology",
		"Mock Exam - Biology (2)",
		"Mock Exam - Biology Advanced",
		"Mock Exam - Chemistry",
	} {
		require.NoError(t, repo.Create(&model.MockExam{Title: title, SubjectID: subject.ID, TimeLimit: 3600}))
	}

	titles, err := repo.TitlesLike("Mock Exam - Biology")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Mock Exam - Biology", "Mock Exam - Biology (2)"}, titles,
		"prefix-only matches must not count as collisions")
}

func TestMockExamCreateDoesNotTouchQuestions(t *testing.T) {
	db := newTestDB(t)
	subject, questions := seedSubjectWithQuestions(t, db, "Biology", 3)
	repo := NewMockExamRepository(db)

	// Only ids are carried at generation time; a create must never
	// overwrite the question rows with these empty shells.
	shells := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		shells = append(shells, model.Question{ID: q.ID, ChapterID: q.ChapterID})
	}
	exam := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, Questions: shells, TimeLimit: 3600}
	require.NoError(t, repo.Create(exam))

	var stored model.Question
	require.NoError(t, db.First(&stored, questions[0].ID).Error)
	assert.Equal(t, "placeholder", stored.Text)

	loaded, err := repo.FindByIDWithQuestions(exam.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Questions, 3)
}

func TestMockExamDeleteWithDependents(t *testing.T) {
	db := newTestDB(t)
	subject, questions := seedSubjectWithQuestions(t, db, "Biology", 2)
	repo := NewMockExamRepository(db)

	exam := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, Questions: questions, TimeLimit: 3600}
	require.NoError(t, repo.Create(exam))
	require.NoError(t, db.Create(&model.MockExamResult{UserID: 9, MockExamID: exam.ID, Score: 1, Total: 2}).Error)
	require.NoError(t, db.Create(&model.MockExamProgress{UserID: 9, MockExamID: exam.ID, Answers: []int{0, -1}}).Error)

	require.NoError(t, repo.DeleteWithDependents(exam.ID))

	var examCount, resultCount, progressCount, joinCount, questionCount int64
	db.Model(&model.MockExam{}).Count(&examCount)
	db.Model(&model.MockExamResult{}).Count(&resultCount)
	db.Model(&model.MockExamProgress{}).Count(&progressCount)
	db.Table("mock_exam_questions").Count(&joinCount)
	db.Model(&model.Question{}).Count(&questionCount)

	assert.Zero(t, examCount)
	assert.Zero(t, resultCount)
	assert.Zero(t, progressCount)
	assert.Zero(t, joinCount)
	assert.Equal(t, int64(2), questionCount, "questions belong to chapters and must survive")
}

func TestMockExamUpdateKeepsQuestionSet(t *testing.T) {
	db := newTestDB(t)
	subject, questions := seedSubjectWithQuestions(t, db, "Biology", 3)
	repo := NewMockExamRepository(db)

	exam := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, Questions: questions, TimeLimit: 3600}
	require.NoError(t, repo.Create(exam))

	exam.Title = "Biology Final Rehearsal"
	exam.TimeLimit = 5400
	exam.Questions = nil
	require.NoError(t, repo.Update(exam))

	loaded, err := repo.FindByIDWithQuestions(exam.ID)
	require.NoError(t, err)
	assert.Equal(t, "Biology Final Rehearsal", loaded.Title)
	assert.Equal(t, 5400, loaded.TimeLimit)
	assert.Len(t, loaded.Questions, 3)
}

func TestMockExamResultUniquePerUserAndExam(t *testing.T) {
	db := newTestDB(t)
	subject, _ := seedSubjectWithQuestions(t, db, "Biology", 1)
	examRepo := NewMockExamRepository(db)
	resultRepo := NewMockExamResultRepository(db)

	exam := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, TimeLimit: 3600}
	require.NoError(t, examRepo.Create(exam))

	require.NoError(t, resultRepo.Create(&model.MockExamResult{UserID: 9, MockExamID: exam.ID, Score: 1, Total: 2}))
	err := resultRepo.Create(&model.MockExamResult{UserID: 9, MockExamID: exam.ID, Score: 2, Total: 2})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	exists, err := resultRepo.ExistsByUserAndExam(9, exam.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProgressSaveUpserts(t *testing.T) {
	db := newTestDB(t)
	subject, _ := seedSubjectWithQuestions(t, db, "Biology", 1)
	examRepo := NewMockExamRepository(db)
	progressRepo := NewMockExamProgressRepository(db)

	exam := &model.MockExam{Title: "Mock Exam - Biology", SubjectID: subject.ID, TimeLimit: 3600}
	require.NoError(t, examRepo.Create(exam))

	require.NoError(t, progressRepo.Save(&model.MockExamProgress{
		UserID: 9, MockExamID: exam.ID, Answers: []int{0, -1}, RemainingSeconds: 300,
	}))
	require.NoError(t, progressRepo.Save(&model.MockExamProgress{
		UserID: 9, MockExamID: exam.ID, Answers: []int{0, 2}, RemainingSeconds: 120,
	}))

	var count int64
	db.Model(&model.MockExamProgress{}).Count(&count)
	assert.Equal(t, int64(1), count, "save must update in place, not stack rows")

	loaded, err := progressRepo.FindByUserAndExam(9, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, loaded.Answers)
	assert.Equal(t, 120, loaded.RemainingSeconds)
}

func TestChallengeFindActiveByType(t *testing.T) {
	db := newTestDB(t)
	repo := NewChallengeRepository(db)
	now := time.Now()

	expired := &model.Challenge{
		Type: model.ChallengeTypeDaily, Title: "Daily Challenge - yesterday",
		TimeLimit: 120, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour),
	}
	active := &model.Challenge{
		Type: model.ChallengeTypeDaily, Title: "Daily Challenge - today",
		TimeLimit: 120, StartDate: now.Add(-time.Hour), EndDate: now.Add(23 * time.Hour),
	}
	weekly := &model.Challenge{
		Type: model.ChallengeTypeWeekly, Title: "Weekly Challenge - this week",
		TimeLimit: 120, StartDate: now.Add(-24 * time.Hour), EndDate: now.Add(6 * 24 * time.Hour),
	}
	for _, c := range []*model.Challenge{expired, active, weekly} {
		require.NoError(t, repo.Create(c))
	}

	got, err := repo.FindActiveByType(model.ChallengeTypeDaily, now)
	require.NoError(t, err)
	assert.Equal(t, "Daily Challenge - today", got.Title)

	got, err = repo.FindActiveByType(model.ChallengeTypeWeekly, now)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Challenge - this week", got.Title)

	_, err = repo.FindActiveByType(model.ChallengeTypeDaily, now.Add(72*time.Hour))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestChallengeReplaceQuestions(t *testing.T) {
	db := newTestDB(t)
	_, questions := seedSubjectWithQuestions(t, db, "Biology", 4)
	repo := NewChallengeRepository(db)

	challenge := &model.Challenge{
		Type: model.ChallengeTypeDaily, Title: "Daily Challenge - today",
		Questions: questions[:2], TimeLimit: 120,
		StartDate: time.Now(), EndDate: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(challenge))

	require.NoError(t, repo.ReplaceQuestions(challenge, questions[2:]))

	loaded, err := repo.FindByIDWithQuestions(challenge.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	ids := []uint{loaded.Questions[0].ID, loaded.Questions[1].ID}
	assert.ElementsMatch(t, []uint{questions[2].ID, questions[3].ID}, ids)
}

func TestChallengeIncrementParticipants(t *testing.T) {
	db := newTestDB(t)
	repo := NewChallengeRepository(db)

	challenge := &model.Challenge{
		Type: model.ChallengeTypeDaily, Title: "Daily Challenge - today",
		TimeLimit: 120, StartDate: time.Now(), EndDate: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(challenge))

	require.NoError(t, repo.IncrementParticipants(challenge.ID))
	require.NoError(t, repo.IncrementParticipants(challenge.ID))

	loaded, err := repo.FindByID(challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.ParticipantCount)
}

func TestQuestionSampleRandomDistinct(t *testing.T) {
	db := newTestDB(t)
	_, questions := seedSubjectWithQuestions(t, db, "Biology", 5)
	repo := NewQuestionRepository(db)

	sampled, err := repo.SampleRandom(3)
	require.NoError(t, err)
	assert.Len(t, sampled, 3)

	seen := make(map[uint]bool)
	for _, q := range sampled {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}

	// Requesting more than the pool returns everything once.
	sampled, err = repo.SampleRandom(50)
	require.NoError(t, err)
	assert.Len(t, sampled, len(questions))
}

func TestChapterFindAllWithCounts(t *testing.T) {
	db := newTestDB(t)
	_, _ = seedSubjectWithQuestions(t, db, "Biology", 3)
	repo := NewChapterRepository(db)

	rows, err := repo.FindAllWithCounts()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Biology", rows[0].SubjectName)
	assert.Equal(t, 3, rows[0].QuestionCount)
}

func TestSubjectNameUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubjectRepository(db)

	require.NoError(t, repo.Create(&model.Subject{Name: "Biology"}))
	err := repo.Create(&model.Subject{Name: "Biology"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSubjectHasChapters(t *testing.T) {
	db := newTestDB(t)
	subject, _ := seedSubjectWithQuestions(t, db, "Biology", 0)
	repo := NewSubjectRepository(db)

	has, err := repo.HasChapters(subject.ID)
	require.NoError(t, err)
	assert.True(t, has)

	empty := model.Subject{Name: "Chemistry"}
	require.NoError(t, db.Create(&empty).Error)
	has, err = repo.HasChapters(empty.ID)
	require.NoError(t, err)
	assert.False(t, has)
}
