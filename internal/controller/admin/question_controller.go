package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a new question under a chapter
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrScopeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Chapter not found"})
			return
		}
		log.Error().Err(err).Msg("Admin CreateQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllQuestions godoc
// @Summary (Admin) List questions
// @Description Returns the most recent questions for the review table.
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Updated question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Question or chapter not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		case errors.Is(err, service.ErrScopeNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Chapter not found"})
		default:
			log.Error().Err(err).Uint("id", id).Msg("Admin UpdateQuestion: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update question", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.questionService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Admin DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}

// ExplainQuestion godoc
// @Summary (Admin) Generate an AI explanation for a question's answer
// @Description Asks the LLM why the stored answer is correct. Nothing is persisted.
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.ExplanationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "LLM unavailable or request failed"
// @Router /admin/questions/{id}/explanation [post]
func (c *QuestionController) ExplainQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.questionService.Explain(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Admin ExplainQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate explanation", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
