package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

type MockExamController struct {
	mockExamService service.MockExamService
}

func NewMockExamController(mockExamService service.MockExamService) *MockExamController {
	return &MockExamController{mockExamService: mockExamService}
}

// GetAllMockExams godoc
// @Summary (User) List available mock exams
// @Tags User - Mock Exams
// @Produce json
// @Success 200 {array} dto.MockExamResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams [get]
func (c *MockExamController) GetAllMockExams(ctx *gin.Context) {
	exams, err := c.mockExamService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("User GetAllMockExams: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve mock exams"})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetMockExam godoc
// @Summary (User) Get a mock exam with its full question set
// @Tags User - Mock Exams
// @Produce json
// @Param id path int true "Mock exam ID"
// @Success 200 {object} dto.MockExamDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Mock exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams/{id} [get]
func (c *MockExamController) GetMockExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	exam, err := c.mockExamService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Mock exam not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("User GetMockExam: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve mock exam"})
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitMockExamResult godoc
// @Summary (User) Submit a finished mock exam
// @Description Stores the final score. A user can submit each exam once; resubmission is rejected.
// @Tags User - Mock Exams
// @Accept json
// @Produce json
// @Param result body dto.MockExamResultSubmitDTO true "Result payload"
// @Success 201 {object} dto.MockExamResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Mock exam not found"
// @Failure 409 {object} dto.ErrorResponse "Result already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams/submit [post]
func (c *MockExamController) SubmitMockExamResult(ctx *gin.Context) {
	var req dto.MockExamResultSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitMockExamResult: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.mockExamService.SubmitResult(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Mock exam not found"})
		case errors.Is(err, service.ErrDuplicateSubmission):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Result already submitted for this exam"})
		default:
			log.Error().Err(err).Uint("userID", req.UserID).Uint("mockExamID", req.MockExamID).
				Msg("User SubmitMockExamResult: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit result", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// SaveMockExamProgress godoc
// @Summary (User) Save in-progress mock exam answers
// @Description Upserts the user's answer sheet and remaining time so the exam can be resumed later.
// @Tags User - Mock Exams
// @Accept json
// @Produce json
// @Param progress body dto.MockExamProgressSaveDTO true "Progress payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams/save-progress [post]
func (c *MockExamController) SaveMockExamProgress(ctx *gin.Context) {
	var req dto.MockExamProgressSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.mockExamService.SaveProgress(req); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("mockExamID", req.MockExamID).
			Msg("User SaveMockExamProgress: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save progress", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Progress saved"})
}

// ResumeMockExam godoc
// @Summary (User) Fetch saved progress for a mock exam
// @Tags User - Mock Exams
// @Produce json
// @Param mock_exam_id path int true "Mock exam ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ProgressResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "No saved progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams/resume/{mock_exam_id} [get]
func (c *MockExamController) ResumeMockExam(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "mock_exam_id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(ctx)
	if !ok {
		return
	}

	progress, err := c.mockExamService.ResumeProgress(userID, examID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No saved progress for this exam"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Uint("mockExamID", examID).
			Msg("User ResumeMockExam: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve progress"})
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetMockExamResult godoc
// @Summary (User) Fetch the submitted result for a mock exam
// @Tags User - Mock Exams
// @Produce json
// @Param mock_exam_id path int true "Mock exam ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.MockExamResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "No result for this exam"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams/result/{mock_exam_id} [get]
func (c *MockExamController) GetMockExamResult(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "mock_exam_id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(ctx)
	if !ok {
		return
	}

	result, err := c.mockExamService.GetResultByExam(userID, examID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No result for this exam"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Uint("mockExamID", examID).
			Msg("User GetMockExamResult: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve result"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetProgressSummary godoc
// @Summary (User) Per-subject aggregate of the user's mock exam results
// @Tags User - Mock Exams
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.SubjectProgressSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mockexams/progress-summary [get]
func (c *MockExamController) GetProgressSummary(ctx *gin.Context) {
	userID, ok := parseUserIDQuery(ctx)
	if !ok {
		return
	}

	summary, err := c.mockExamService.ProgressSummaryBySubject(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("User GetProgressSummary: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute progress summary"})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
