package dto

import "time"

type SubjectCreateDTO struct {
	SubjectName string `json:"subject_name" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
}

type SubjectUpdateDTO struct {
	SubjectName string `json:"subject_name" binding:"required"`
	Icon        string `json:"icon"`
}

type ChapterCreateDTO struct {
	SubjectID     uint   `json:"subject_id" binding:"required"`
	ChapterName   string `json:"chapter_name" binding:"required"`
	ChapterNumber int    `json:"chapter_number" binding:"required,gt=0"`
}

type ChapterUpdateDTO struct {
	SubjectID     uint   `json:"subject_id" binding:"required"`
	ChapterName   string `json:"chapter_name" binding:"required"`
	ChapterNumber int    `json:"chapter_number" binding:"required,gt=0"`
}

type QuestionCreateDTO struct {
	ChapterID       uint     `json:"chapter_id" binding:"required"`
	Question        string   `json:"question" binding:"required"`
	Options         []string `json:"options" binding:"required,min=2,dive,required"`
	Answer          string   `json:"answer" binding:"required"`
	DifficultyLevel string   `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
}

type QuestionUpdateDTO struct {
	ChapterID       uint     `json:"chapter_id" binding:"required"`
	Question        string   `json:"question" binding:"required"`
	Options         []string `json:"options" binding:"required,min=2,dive,required"`
	Answer          string   `json:"answer" binding:"required"`
	DifficultyLevel string   `json:"difficulty_level" binding:"omitempty,oneof=easy medium hard"`
}

// MockExamGenerateDTO is the request body for generating a mock exam.
// Field names follow the public API contract rather than Go conventions.
type MockExamGenerateDTO struct {
	SubjectID         uint `json:"subject_id" binding:"required"`
	NumberOfQuestions int  `json:"numberOfQuestions" binding:"required,gt=0"`
	TimeLimit         int  `json:"timeLimit" binding:"omitempty,gt=0"` // seconds, defaults to 3600
}

// MockExamUpdateDTO only allows metadata changes. The question set of a
// generated exam is immutable.
type MockExamUpdateDTO struct {
	Title     *string `json:"title"`
	TimeLimit *int    `json:"timeLimit" binding:"omitempty,gt=0"`
}

type ChallengeCreateDTO struct {
	Type              string     `json:"type" binding:"required,oneof=daily weekly"`
	Description       string     `json:"description"`
	NumberOfQuestions int        `json:"numberOfQuestions" binding:"required,gt=0"`
	TimeLimit         int        `json:"timeLimit" binding:"omitempty,gt=0"` // seconds, defaults to 120
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
}

// ChallengeUpdateDTO updates challenge metadata. When NumberOfQuestions is
// supplied the question set is re-sampled from the full pool.
type ChallengeUpdateDTO struct {
	Description       *string    `json:"description"`
	NumberOfQuestions *int       `json:"numberOfQuestions" binding:"omitempty,gt=0"`
	TimeLimit         *int       `json:"timeLimit" binding:"omitempty,gt=0"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
}

type MockExamResultSubmitDTO struct {
	UserID     uint     `json:"user_id" binding:"required"`
	MockExamID uint     `json:"mock_exam_id" binding:"required"`
	Score      int      `json:"score" binding:"min=0"`
	Total      int      `json:"total" binding:"required,gt=0"`
	TimeTaken  int      `json:"time_taken" binding:"omitempty,min=0"`
	Answers    []string `json:"answers"`
}

type ChallengeResultSubmitDTO struct {
	UserID      uint     `json:"user_id" binding:"required"`
	ChallengeID uint     `json:"challenge_id" binding:"required"`
	Score       int      `json:"score" binding:"min=0"`
	Total       int      `json:"total" binding:"required,gt=0"`
	TimeTaken   int      `json:"time_taken" binding:"omitempty,min=0"`
	Answers     []string `json:"answers"`
}

type MockExamProgressSaveDTO struct {
	UserID           uint  `json:"user_id" binding:"required"`
	MockExamID       uint  `json:"mock_exam_id" binding:"required"`
	Answers          []int `json:"answers" binding:"required"`
	RemainingSeconds int   `json:"remaining_seconds" binding:"min=0"`
}

type ChallengeProgressSaveDTO struct {
	UserID           uint  `json:"user_id" binding:"required"`
	ChallengeID      uint  `json:"challenge_id" binding:"required"`
	Answers          []int `json:"answers" binding:"required"`
	RemainingSeconds int   `json:"remaining_seconds" binding:"min=0"`
}
