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

type ChallengeController struct {
	challengeService service.ChallengeService
}

func NewChallengeController(challengeService service.ChallengeService) *ChallengeController {
	return &ChallengeController{challengeService: challengeService}
}

// CreateChallenge godoc
// @Summary (Admin) Create a daily or weekly challenge
// @Description Samples questions from the full pool. An empty pool still creates the challenge, just without questions.
// @Tags Admin - Challenges
// @Accept json
// @Produce json
// @Param challenge body dto.ChallengeCreateDTO true "Challenge parameters"
// @Success 201 {object} dto.ChallengeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/challenges [post]
func (c *ChallengeController) CreateChallenge(ctx *gin.Context) {
	var req dto.ChallengeCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateChallenge: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.challengeService.Create(req)
	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("Admin CreateChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create challenge", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GenerateDailyChallenge godoc
// @Summary (Admin) Generate today's daily challenge on demand
// @Description Runs the same generation the midnight scheduler performs. The question count defaults to the configured daily size; override with the 'questions' query param.
// @Tags Admin - Challenges
// @Produce json
// @Param questions query int false "Number of questions to sample"
// @Success 201 {object} dto.ChallengeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid questions value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/challenges/generate-daily [post]
func (c *ChallengeController) GenerateDailyChallenge(ctx *gin.Context) {
	questionCount := 0
	if raw := ctx.Query("questions"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid questions value"})
			return
		}
		questionCount = val
	}

	resp, err := c.challengeService.GenerateDaily(questionCount)
	if err != nil {
		log.Error().Err(err).Msg("Admin GenerateDailyChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate daily challenge", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllChallenges godoc
// @Summary (Admin) List all challenges
// @Tags Admin - Challenges
// @Produce json
// @Success 200 {array} dto.ChallengeResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/challenges [get]
func (c *ChallengeController) GetAllChallenges(ctx *gin.Context) {
	challenges, err := c.challengeService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllChallenges: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve challenges"})
		return
	}
	ctx.JSON(http.StatusOK, challenges)
}

// UpdateChallenge godoc
// @Summary (Admin) Update a challenge
// @Description Updates metadata. Supplying numberOfQuestions re-samples the question set from the full pool.
// @Tags Admin - Challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param challenge body dto.ChallengeUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ChallengeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/challenges/{id} [put]
func (c *ChallengeController) UpdateChallenge(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChallengeUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.challengeService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Challenge not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Admin UpdateChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update challenge", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteChallenge godoc
// @Summary (Admin) Delete a challenge
// @Description Also removes all results and saved progress belonging to the challenge.
// @Tags Admin - Challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/challenges/{id} [delete]
func (c *ChallengeController) DeleteChallenge(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.challengeService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Challenge not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Admin DeleteChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete challenge", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Challenge and its results deleted"})
}
