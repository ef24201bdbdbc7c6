package admin

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

// GenerateMockExam godoc
// @Summary (Admin) Generate a mock exam for a subject
// @Description Samples the requested number of questions across the subject's chapters and persists the exam with an auto-allocated title.
// @Tags Admin - Mock Exams
// @Accept json
// @Produce json
// @Param exam body dto.MockExamGenerateDTO true "Generation parameters"
// @Success 201 {object} dto.MockExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Subject not found or it has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mockexams [post]
func (c *MockExamController) GenerateMockExam(ctx *gin.Context) {
	var req dto.MockExamGenerateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin GenerateMockExam: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.mockExamService.Generate(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScopeNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
		case errors.Is(err, service.ErrEmptyPool):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No questions available for this subject"})
		default:
			log.Error().Err(err).Uint("subjectID", req.SubjectID).Msg("Admin GenerateMockExam: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate mock exam", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllMockExams godoc
// @Summary (Admin) List all mock exams
// @Tags Admin - Mock Exams
// @Produce json
// @Success 200 {array} dto.MockExamResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mockexams [get]
func (c *MockExamController) GetAllMockExams(ctx *gin.Context) {
	exams, err := c.mockExamService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllMockExams: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve mock exams"})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// UpdateMockExam godoc
// @Summary (Admin) Update mock exam metadata
// @Description Only title and time limit can change. The generated question set is immutable.
// @Tags Admin - Mock Exams
// @Accept json
// @Produce json
// @Param id path int true "Mock exam ID"
// @Param exam body dto.MockExamUpdateDTO true "Metadata fields to update"
// @Success 200 {object} dto.MockExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Mock exam not found"
// @Failure 409 {object} dto.ErrorResponse "Title already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mockexams/{id} [put]
func (c *MockExamController) UpdateMockExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.MockExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.mockExamService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Mock exam not found"})
		case errors.Is(err, service.ErrAlreadyExists):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "A mock exam with this title already exists"})
		default:
			log.Error().Err(err).Uint("id", id).Msg("Admin UpdateMockExam: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update mock exam", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteMockExam godoc
// @Summary (Admin) Delete a mock exam
// @Description Also removes all results and saved progress belonging to the exam.
// @Tags Admin - Mock Exams
// @Produce json
// @Param id path int true "Mock exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Mock exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/mockexams/{id} [delete]
func (c *MockExamController) DeleteMockExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.mockExamService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Mock exam not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Admin DeleteMockExam: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete mock exam", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Mock exam and its results deleted"})
}
