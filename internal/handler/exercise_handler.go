package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
	"github.com/galaxia-edu/galaxia-backend/internal/validator"
)

// ExerciseHandler handles the text-correction track endpoints.
type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// GenerateExercise godoc
// GET /api/v1/andromeda/exercise
// Returns a short informal paragraph with planted grammar errors.
func (h *ExerciseHandler) GenerateExercise(c *gin.Context) {
	text, err := h.exerciseService.GenerateErrorText(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusServiceUnavailable, response.ErrLLMUnavailable)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"texto_com_erros": text})
}

// ReviewCorrection godoc
// POST /api/v1/andromeda/correction
// Reviews the student's rewrite of an error-riddled paragraph and relays
// the LLM's structured verdict.
func (h *ExerciseHandler) ReviewCorrection(c *gin.Context) {
	var req model.CorrectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrReviewIncomplete, fields)
		return
	}

	verdict, raw, err := h.exerciseService.ReviewCorrection(c.Request.Context(), req.Original, req.Corrected)
	if err != nil {
		if errors.Is(err, service.ErrMalformedVerdict) {
			// Verdict arrived but carried no parseable structure; hand the
			// raw text over so the client can still display it.
			response.FailWithFields(c, http.StatusBadGateway, response.ErrLLMMalformed,
				map[string]string{"resposta_bruta": raw})
			return
		}
		response.Fail(c, http.StatusServiceUnavailable, response.ErrLLMUnavailable)
		return
	}

	response.Success(c, http.StatusOK, verdict)
}
