package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

type ChapterController struct {
	chapterService service.ChapterService
}

func NewChapterController(chapterService service.ChapterService) *ChapterController {
	return &ChapterController{chapterService: chapterService}
}

// CreateChapter godoc
// @Summary (Admin) Create a new chapter under a subject
// @Tags Admin - Chapters
// @Accept json
// @Produce json
// @Param chapter body dto.ChapterCreateDTO true "Chapter data"
// @Success 201 {object} dto.ChapterResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/chapters [post]
func (c *ChapterController) CreateChapter(ctx *gin.Context) {
	var req dto.ChapterCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateChapter: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.chapterService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrScopeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
			return
		}
		log.Error().Err(err).Msg("Admin CreateChapter: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create chapter", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllChapters godoc
// @Summary (Admin) List all chapters with subject names and question counts
// @Tags Admin - Chapters
// @Produce json
// @Success 200 {array} dto.ChapterResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/chapters [get]
func (c *ChapterController) GetAllChapters(ctx *gin.Context) {
	chapters, err := c.chapterService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllChapters: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve chapters"})
		return
	}
	ctx.JSON(http.StatusOK, chapters)
}

// UpdateChapter godoc
// @Summary (Admin) Update a chapter
// @Tags Admin - Chapters
// @Accept json
// @Produce json
// @Param id path int true "Chapter ID"
// @Param chapter body dto.ChapterUpdateDTO true "Updated chapter data"
// @Success 200 {object} dto.ChapterResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Chapter or subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/chapters/{id} [put]
func (c *ChapterController) UpdateChapter(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChapterUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.chapterService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Chapter not found"})
		case errors.Is(err, service.ErrScopeNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
		default:
			log.Error().Err(err).Uint("id", id).Msg("Admin UpdateChapter: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update chapter", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteChapter godoc
// @Summary (Admin) Delete a chapter
// @Description Deletion is refused while the chapter still has questions.
// @Tags Admin - Chapters
// @Produce json
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Failure 409 {object} dto.ErrorResponse "Chapter still has questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/chapters/{id} [delete]
func (c *ChapterController) DeleteChapter(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.chapterService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Chapter not found"})
		case errors.Is(err, service.ErrReferenced):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Chapter still has questions. Delete them first."})
		default:
			log.Error().Err(err).Uint("id", id).Msg("Admin DeleteChapter: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete chapter", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Chapter deleted"})
}
