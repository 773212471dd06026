package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

// rawQuestion mirrors the structure the model is instructed to emit.
// Pointer fields distinguish "absent" from "empty" so the validator can
// reject elements missing a required field by name.
type rawQuestion struct {
	Text        *string           `json:"pergunta"`
	Choices     map[string]string `json:"alternativas"`
	Answer      *string           `json:"resposta"`
	Subtopic    *string           `json:"subtema"`
	Explanation *string           `json:"explicacao"`
}

// StripCodeFence removes a surrounding Markdown code fence (``` or
// ```json / ```python variants) the model sometimes wraps its output in.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop a language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine == "" || isFenceLang(firstLine) {
			s = s[idx+1:]
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isFenceLang(s string) bool {
	switch strings.ToLower(s) {
	case "json", "python", "javascript", "txt":
		return true
	}
	return false
}

// DecodeQuestionBatch parses a raw completion into a fully validated batch.
// The contract is all-or-nothing: any parse error, any element failing the
// schema, or a batch of the wrong size invalidates the whole response.
// want <= 0 skips the size check.
func DecodeQuestionBatch(raw string, want int) ([]model.Question, error) {
	clean := StripCodeFence(raw)

	var items []rawQuestion
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("response array is empty")
	}
	if want > 0 && len(items) != want {
		return nil, fmt.Errorf("expected %d questions, got %d", want, len(items))
	}

	batch := make([]model.Question, 0, len(items))
	for i, item := range items {
		q, err := validateQuestion(item)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		batch = append(batch, q)
	}
	return batch, nil
}

// validateQuestion enforces the question schema: all five fields present,
// exactly the four fixed choice labels, answer among them.
func validateQuestion(item rawQuestion) (model.Question, error) {
	var q model.Question

	if item.Text == nil || strings.TrimSpace(*item.Text) == "" {
		return q, fmt.Errorf("missing field 'pergunta'")
	}
	if item.Choices == nil {
		return q, fmt.Errorf("missing field 'alternativas'")
	}
	if item.Answer == nil {
		return q, fmt.Errorf("missing field 'resposta'")
	}
	if item.Subtopic == nil {
		return q, fmt.Errorf("missing field 'subtema'")
	}
	if item.Explanation == nil {
		return q, fmt.Errorf("missing field 'explicacao'")
	}

	if len(item.Choices) != len(model.ChoiceLabels) {
		return q, fmt.Errorf("expected %d choices, got %d", len(model.ChoiceLabels), len(item.Choices))
	}
	for _, label := range model.ChoiceLabels {
		if _, ok := item.Choices[label]; !ok {
			return q, fmt.Errorf("missing choice %q", label)
		}
	}

	answer := NormalizeLabel(*item.Answer)
	if _, ok := item.Choices[answer]; !ok {
		return q, fmt.Errorf("answer %q is not a valid choice label", *item.Answer)
	}

	q.Text = *item.Text
	q.Choices = item.Choices
	q.Answer = answer
	q.Subtopic = *item.Subtopic
	q.Explanation = *item.Explanation
	return q, nil
}

// NormalizeLabel canonicalizes an answer label: trimmed, uppercased.
func NormalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
