package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdesk/backoffice/internal/dto"
	"github.com/quizdesk/backoffice/internal/model"
	"github.com/quizdesk/backoffice/internal/service"
	"github.com/rs/zerolog/log"
)

type ChallengeController struct {
	challengeService service.ChallengeService
}

func NewChallengeController(challengeService service.ChallengeService) *ChallengeController {
	return &ChallengeController{challengeService: challengeService}
}

// GetDailyChallenge godoc
// @Summary (User) Get the currently active daily challenge
// @Tags User - Challenges
// @Produce json
// @Success 200 {object} dto.ChallengeDetailDTO
// @Failure 404 {object} dto.ErrorResponse "No active daily challenge"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges/daily [get]
func (c *ChallengeController) GetDailyChallenge(ctx *gin.Context) {
	c.getActive(ctx, model.ChallengeTypeDaily)
}

// GetWeeklyChallenge godoc
// @Summary (User) Get the currently active weekly challenge
// @Tags User - Challenges
// @Produce json
// @Success 200 {object} dto.ChallengeDetailDTO
// @Failure 404 {object} dto.ErrorResponse "No active weekly challenge"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges/weekly [get]
func (c *ChallengeController) GetWeeklyChallenge(ctx *gin.Context) {
	c.getActive(ctx, model.ChallengeTypeWeekly)
}

func (c *ChallengeController) getActive(ctx *gin.Context, challengeType string) {
	challenge, err := c.challengeService.GetActive(challengeType)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No active " + challengeType + " challenge"})
			return
		}
		log.Error().Err(err).Str("type", challengeType).Msg("User GetActiveChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve challenge"})
		return
	}
	ctx.JSON(http.StatusOK, challenge)
}

// SubmitChallengeResult godoc
// @Summary (User) Submit a finished challenge
// @Description Stores the score and bumps the challenge participant count. One submission per user per challenge.
// @Tags User - Challenges
// @Accept json
// @Produce json
// @Param result body dto.ChallengeResultSubmitDTO true "Result payload"
// @Success 201 {object} dto.ChallengeResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Failure 409 {object} dto.ErrorResponse "Result already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges/submit [post]
func (c *ChallengeController) SubmitChallengeResult(ctx *gin.Context) {
	var req dto.ChallengeResultSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitChallengeResult: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.challengeService.SubmitResult(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Challenge not found"})
		case errors.Is(err, service.ErrDuplicateSubmission):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Result already submitted for this challenge"})
		default:
			log.Error().Err(err).Uint("userID", req.UserID).Uint("challengeID", req.ChallengeID).
				Msg("User SubmitChallengeResult: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit result", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// SaveChallengeProgress godoc
// @Summary (User) Save in-progress challenge answers
// @Tags User - Challenges
// @Accept json
// @Produce json
// @Param progress body dto.ChallengeProgressSaveDTO true "Progress payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges/save-progress [post]
func (c *ChallengeController) SaveChallengeProgress(ctx *gin.Context) {
	var req dto.ChallengeProgressSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.challengeService.SaveProgress(req); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("challengeID", req.ChallengeID).
			Msg("User SaveChallengeProgress: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save progress", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Progress saved"})
}

// ResumeChallenge godoc
// @Summary (User) Fetch saved progress for a challenge
// @Tags User - Challenges
// @Produce json
// @Param challenge_id path int true "Challenge ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ProgressResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "No saved progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges/resume/{challenge_id} [get]
func (c *ChallengeController) ResumeChallenge(ctx *gin.Context) {
	challengeID, ok := parseIDParam(ctx, "challenge_id")
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(ctx)
	if !ok {
		return
	}

	progress, err := c.challengeService.ResumeProgress(userID, challengeID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No saved progress for this challenge"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Uint("challengeID", challengeID).
			Msg("User ResumeChallenge: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve progress"})
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
