package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SubjectResponseDTO struct {
	ID          uint      `json:"id"`
	SubjectName string    `json:"subject_name"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChapterResponseDTO is the admin chapter listing row: chapter plus its
// subject name and how many questions it currently holds.
type ChapterResponseDTO struct {
	ID            uint   `json:"id"`
	SubjectID     uint   `json:"subject_id"`
	SubjectName   string `json:"subject_name,omitempty"`
	ChapterName   string `json:"chapter_name"`
	ChapterNumber int    `json:"chapter_number"`
	QuestionCount int    `json:"question_count"`
}

type QuestionResponseDTO struct {
	ID              uint      `json:"id"`
	ChapterID       uint      `json:"chapter_id"`
	Question        string    `json:"question"`
	Options         []string  `json:"options"`
	Answer          string    `json:"answer,omitempty"`
	DifficultyLevel string    `json:"difficulty_level,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ExplanationResponseDTO struct {
	QuestionID  uint   `json:"question_id"`
	Explanation string `json:"explanation"`
}

type MockExamResponseDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	SubjectID     uint      `json:"subject_id"`
	QuestionIDs   []uint    `json:"question_ids"`
	QuestionCount int       `json:"question_count"`
	TimeLimit     int       `json:"time_limit"`
	CreatedAt     time.Time `json:"created_at"`
}

// MockExamDetailDTO carries the full question payload for taking the exam.
type MockExamDetailDTO struct {
	ID        uint                  `json:"id"`
	Title     string                `json:"title"`
	SubjectID uint                  `json:"subject_id"`
	Questions []QuestionResponseDTO `json:"questions"`
	TimeLimit int                   `json:"time_limit"`
	CreatedAt time.Time             `json:"created_at"`
}

type ChallengeResponseDTO struct {
	ID               uint      `json:"id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	QuestionIDs      []uint    `json:"question_ids"`
	TimeLimit        int       `json:"time_limit"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	ParticipantCount int       `json:"participant_count"`
}

type ChallengeDetailDTO struct {
	ID               uint                  `json:"id"`
	Type             string                `json:"type"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	Questions        []QuestionResponseDTO `json:"questions"`
	TimeLimit        int                   `json:"time_limit"`
	StartDate        time.Time             `json:"start_date"`
	EndDate          time.Time             `json:"end_date"`
	ParticipantCount int                   `json:"participant_count"`
}

type MockExamResultResponseDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	MockExamID  uint      `json:"mock_exam_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	TimeTaken   int       `json:"time_taken"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ChallengeResultResponseDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ChallengeID uint      `json:"challenge_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	TimeTaken   int       `json:"time_taken"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ProgressResponseDTO struct {
	Answers          []int     `json:"answers"`
	RemainingSeconds int       `json:"remaining_seconds"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SubjectProgressSummaryDTO aggregates a user's mock exam results per subject.
type SubjectProgressSummaryDTO struct {
	Subject string `json:"subject"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

type DashboardSummaryDTO struct {
	Subjects   int64 `json:"subjects"`
	Chapters   int64 `json:"chapters"`
	Questions  int64 `json:"questions"`
	MockExams  int64 `json:"mockExams"`
	Challenges int64 `json:"challenges"`
}
