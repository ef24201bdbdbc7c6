package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

// CatalogController serves the read-only subject and chapter browsing
// endpoints of the learner app.
type CatalogController struct {
	subjectService service.SubjectService
	chapterService service.ChapterService
}

func NewCatalogController(subjectService service.SubjectService, chapterService service.ChapterService) *CatalogController {
	return &CatalogController{subjectService: subjectService, chapterService: chapterService}
}

// GetSubjects godoc
// @Summary (User) List all subjects
// @Tags User - Catalog
// @Produce json
// @Success 200 {array} dto.SubjectResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *CatalogController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("User GetSubjects: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetChaptersBySubject godoc
// @Summary (User) List chapters of a subject in chapter order
// @Tags User - Catalog
// @Produce json
// @Param subject_id path int true "Subject ID"
// @Success 200 {array} dto.ChapterResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID format"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{subject_id}/chapters [get]
func (c *CatalogController) GetChaptersBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "subject_id")
	if !ok {
		return
	}

	chapters, err := c.chapterService.GetBySubject(subjectID)
	if err != nil {
		if errors.Is(err, service.ErrScopeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
			return
		}
		log.Error().Err(err).Uint("subjectID", subjectID).Msg("User GetChaptersBySubject: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve chapters"})
		return
	}
	ctx.JSON(http.StatusOK, chapters)
}

// parseIDParam reads a uint path parameter and writes a 400 response itself
// when the value is malformed.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// parseUserIDQuery reads the mandatory user_id query parameter. The learner
// app has no auth layer yet so identity travels as a plain ID.
func parseUserIDQuery(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "user_id query parameter is required"})
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format"})
		return 0, false
	}
	return uint(val), true
}
