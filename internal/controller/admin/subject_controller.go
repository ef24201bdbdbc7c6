package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

type SubjectController struct {
	subjectService service.SubjectService
}

func NewSubjectController(subjectService service.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject godoc
// @Summary (Admin) Create a new subject
// @Description Add a subject to the catalog. Subject names are unique.
// @Tags Admin - Subjects
// @Accept json
// @Produce json
// @Param subject body dto.SubjectCreateDTO true "Subject data"
// @Success 201 {object} dto.SubjectResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Subject name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSubject: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.subjectService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "A subject with this name already exists"})
			return
		}
		log.Error().Err(err).Msg("Admin CreateSubject: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create subject", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllSubjects godoc
// @Summary (Admin) List all subjects
// @Tags Admin - Subjects
// @Produce json
// @Success 200 {array} dto.SubjectResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllSubjects: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// UpdateSubject godoc
// @Summary (Admin) Update a subject
// @Tags Admin - Subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID"
// @Param subject body dto.SubjectUpdateDTO true "Updated subject data"
// @Success 200 {object} dto.SubjectResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubjectUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.subjectService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
		case errors.Is(err, service.ErrAlreadyExists):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "A subject with this name already exists"})
		default:
			log.Error().Err(err).Uint("id", id).Msg("Admin UpdateSubject: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update subject", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteSubject godoc
// @Summary (Admin) Delete a subject
// @Description Deletion is refused while the subject still has chapters.
// @Tags Admin - Subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject still has chapters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Subject not found"})
		case errors.Is(err, service.ErrReferenced):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Subject still has chapters. Delete them first."})
		default:
			log.Error().Err(err).Uint("id", id).Msg("Admin DeleteSubject: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete subject", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Subject deleted"})
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
