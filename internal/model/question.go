package model

import (
	"time"

	"github.com/google/uuid"
)

// ChoiceLabels is the fixed set of multiple-choice labels, in order.
var ChoiceLabels = []string{"A", "B", "C", "D"}

// Question is a single multiple-choice grammar question as served to
// clients. The wire field names follow the app's Portuguese API contract.
// ID is batch-local: assigned sequentially per response, never persisted.
type Question struct {
	ID          int               `json:"id"`
	Text        string            `json:"pergunta"`
	Choices     map[string]string `json:"alternativas"`
	Answer      string            `json:"resposta"`
	Subtopic    string            `json:"subtema"`
	Explanation string            `json:"explicacao"`
}

// ReserveQuestion is a pre-authored question persisted in the reserve
// bank, tagged with the level and topic used as the query filter.
type ReserveQuestion struct {
	DocID     uuid.UUID `json:"doc_id"`
	Level     string    `json:"nivel"`
	Topic     string    `json:"tema"`
	Question            // embedded wire shape
	CreatedAt time.Time `json:"created_at"`
}

// ReviewRequest is the payload for grading a previously issued question.
// Correctness is computed from the labels alone; the explanation feeds the
// tutor-style verdict prompt.
type ReviewRequest struct {
	Question    string            `json:"pergunta" binding:"required"`
	Choices     map[string]string `json:"alternativas" binding:"required,min=1"`
	Submitted   string            `json:"resposta_usuario" binding:"required"`
	Correct     string            `json:"resposta_correta" binding:"required"`
	Explanation string            `json:"explicacao"`
	Topic       string            `json:"tema"`
}

// ReviewResponse carries the LLM verdict plus the locally computed result.
type ReviewResponse struct {
	Evaluation string `json:"avaliacao"`
	Correct    bool   `json:"correta"`
}

// CorrectionRequest is the payload for reviewing a student's rewrite of an
// error-riddled paragraph.
type CorrectionRequest struct {
	Original  string `json:"original" binding:"required"`
	Corrected string `json:"correcao" binding:"required"`
}
