package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galaxia-edu/galaxia-backend/internal/middleware"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
	"github.com/galaxia-edu/galaxia-backend/internal/validator"
)

// ProgressHandler handles track phases, progress lookup and scoring.
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetPhases godoc
// GET /api/v1/tracks/:game/phases
// Returns the static phase registry of a track. Public.
func (h *ProgressHandler) GetPhases(c *gin.Context) {
	phases, err := h.progressService.GetPhases(c.Param("game"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrUnknownGame)
		return
	}

	response.Success(c, http.StatusOK, phases)
}

// GetProgress godoc
// GET /api/v1/progress/:game
// Returns the authenticated student's progress on a track.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	progress, err := h.progressService.GetProgress(c.Request.Context(), claims.UserID, c.Param("game"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownGame):
			response.Fail(c, http.StatusNotFound, response.ErrUnknownGame)
		case errors.Is(err, service.ErrNoProgress):
			response.Fail(c, http.StatusNotFound, response.ErrNoProgress)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, progress)
}

// ScorePhase godoc
// POST /api/v1/progress/:game/score
// Converts a finished phase's stars (0-3) into points and recomputes the
// student's level on that track.
func (h *ProgressHandler) ScorePhase(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.ScoreRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidStars, fields)
		return
	}

	result, err := h.progressService.ScorePhase(c.Request.Context(), claims.UserID, c.Param("game"), req.Phase, *req.Stars)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownGame):
			response.Fail(c, http.StatusNotFound, response.ErrUnknownGame)
		case errors.Is(err, service.ErrUnknownPhase):
			response.Fail(c, http.StatusBadRequest, response.ErrUnknownPhase)
		case errors.Is(err, service.ErrNoProgress):
			response.Fail(c, http.StatusNotFound, response.ErrNoProgress)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
