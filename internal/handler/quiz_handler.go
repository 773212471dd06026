package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/middleware"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
	"github.com/galaxia-edu/galaxia-backend/internal/validator"
	"github.com/galaxia-edu/galaxia-backend/internal/worker"
)

// QuizHandler handles quiz generation and answer review.
type QuizHandler struct {
	quizService *service.QuizService
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, rdb *redis.Client, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		rdb:         rdb,
		log:         log.With().Str("component", "quiz_handler").Logger(),
	}
}

// GenerateQuiz godoc
// GET /api/v1/vialactea/questions?nivel=...&tema=...
// Returns a batch of multiple-choice questions with batch-local IDs.
// Level defaults to "medio" when omitted; the topic is mandatory.
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	level := strings.ToLower(c.DefaultQuery("nivel", "medio"))
	topic := strings.ToLower(c.Query("tema"))

	batch, err := h.quizService.GenerateQuiz(c.Request.Context(), level, topic)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLevel):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidLevel)
		case errors.Is(err, service.ErrUnknownTopic):
			response.Fail(c, http.StatusBadRequest, response.ErrUnknownTopic)
		case errors.Is(err, service.ErrQuizUnavailable):
			response.Fail(c, http.StatusServiceUnavailable, response.ErrQuizUnavailable)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, batch)
}

// ReviewAnswer godoc
// POST /api/v1/vialactea/review
// Grades a submitted answer: verdict text from the LLM, correctness
// computed locally. Also enqueues an answer-stats event when the request
// names a topic.
func (h *QuizHandler) ReviewAnswer(c *gin.Context) {
	var req model.ReviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrReviewIncomplete, fields)
		return
	}

	result, err := h.quizService.ReviewAnswer(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusServiceUnavailable, response.ErrLLMUnavailable)
		return
	}

	if claims := middleware.GetClaims(c); claims != nil && req.Topic != "" {
		event := worker.AnswerEvent{
			StudentID: claims.UserID,
			Topic:     strings.ToLower(req.Topic),
			Correct:   result.Correct,
		}
		if err := worker.EnqueueAnswerEvent(c.Request.Context(), h.rdb, event); err != nil {
			// Stats are best-effort; the review result still goes out.
			h.log.Warn().Err(err).Int("student_id", claims.UserID).Msg("stats enqueue failed")
		}
	}

	response.Success(c, http.StatusOK, result)
}
