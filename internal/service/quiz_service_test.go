package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

// stubLLM returns a fixed completion or error and records the prompts it saw.
type stubLLM struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (s *stubLLM) Complete(_ context.Context, _, user string) (string, error) {
	s.calls++
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// stubReserve serves a canned slice, optionally failing.
type stubReserve struct {
	questions []model.Question
	err       error
	calls     int
}

func (s *stubReserve) SampleByLevelTopic(_ context.Context, _, _ string, _ int) ([]model.Question, error) {
	s.calls++
	return s.questions, s.err
}

func makeQuestionJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"pergunta": "Pergunta %d?",
			"alternativas": {"A": "um", "B": "dois", "C": "três", "D": "quatro"},
			"resposta": "A",
			"subtema": "concordância",
			"explicacao": "Explicação."
		}`, i+1)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func makeReserveQuestions(n int) []model.Question {
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			ID:          99, // overwritten by numbering
			Text:        fmt.Sprintf("Reserva %d?", i+1),
			Choices:     map[string]string{"A": "um", "B": "dois", "C": "três", "D": "quatro"},
			Answer:      "B",
			Subtopic:    "crase",
			Explanation: "Explicação.",
		}
	}
	return qs
}

func newTestQuizService(client *stubLLM, reserve *stubReserve, batchSize int) *QuizService {
	return NewQuizService(client, reserve, batchSize, zerolog.Nop())
}

func TestGenerateQuiz_Success(t *testing.T) {
	client := &stubLLM{response: makeQuestionJSON(3)}
	reserve := &stubReserve{}
	svc := newTestQuizService(client, reserve, 3)

	batch, err := svc.GenerateQuiz(context.Background(), "medio", "sintaxe")
	require.NoError(t, err)
	require.Len(t, batch, 3)

	for i, q := range batch {
		assert.Equal(t, i+1, q.ID)
	}
	assert.Equal(t, 0, reserve.calls, "reserve bank must stay untouched on success")
	assert.Equal(t, 1, client.calls)
}

func TestGenerateQuiz_PromptCarriesLevelAndCount(t *testing.T) {
	client := &stubLLM{response: makeQuestionJSON(2)}
	svc := newTestQuizService(client, &stubReserve{}, 2)

	_, err := svc.GenerateQuiz(context.Background(), "dificil", "morfologia")
	require.NoError(t, err)

	assert.Contains(t, client.lastUser, "2 questões")
	assert.Contains(t, client.lastUser, "dificil")
	assert.Contains(t, client.lastUser, "Morfologia")
}

func TestGenerateQuiz_InvalidLevel(t *testing.T) {
	client := &stubLLM{response: makeQuestionJSON(3)}
	reserve := &stubReserve{}
	svc := newTestQuizService(client, reserve, 3)

	_, err := svc.GenerateQuiz(context.Background(), "impossivel", "sintaxe")
	assert.ErrorIs(t, err, ErrInvalidLevel)
	assert.Equal(t, 0, client.calls, "no external call for a bad request")
	assert.Equal(t, 0, reserve.calls)
}

func TestGenerateQuiz_UnknownTopic(t *testing.T) {
	client := &stubLLM{response: makeQuestionJSON(3)}
	svc := newTestQuizService(client, &stubReserve{}, 3)

	for _, topic := range []string{"", "algebra"} {
		_, err := svc.GenerateQuiz(context.Background(), "facil", topic)
		assert.ErrorIs(t, err, ErrUnknownTopic)
	}
	assert.Equal(t, 0, client.calls)
}

func TestGenerateQuiz_LLMFailureFallsBackToReserve(t *testing.T) {
	client := &stubLLM{err: errors.New("connection refused")}
	reserve := &stubReserve{questions: makeReserveQuestions(3)}
	svc := newTestQuizService(client, reserve, 3)

	batch, err := svc.GenerateQuiz(context.Background(), "facil", "sintaxe")
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, 1, reserve.calls)

	for i, q := range batch {
		assert.Equal(t, i+1, q.ID, "reserve questions get fresh sequential IDs")
	}
}

func TestGenerateQuiz_MalformedBatchFallsBackToReserve(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose refusal", "Desculpe, não posso gerar as questões."},
		{"wrong count", makeQuestionJSON(2)},
		{"schema violation", `[{"pergunta": "p?"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubLLM{response: tt.response}
			reserve := &stubReserve{questions: makeReserveQuestions(3)}
			svc := newTestQuizService(client, reserve, 3)

			batch, err := svc.GenerateQuiz(context.Background(), "medio", "pragmatica")
			require.NoError(t, err)
			assert.Len(t, batch, 3)
			assert.Equal(t, 1, reserve.calls)
		})
	}
}

func TestGenerateQuiz_ShortReserveBatchIsServed(t *testing.T) {
	client := &stubLLM{err: errors.New("timeout")}
	reserve := &stubReserve{questions: makeReserveQuestions(2)}
	svc := newTestQuizService(client, reserve, 12)

	batch, err := svc.GenerateQuiz(context.Background(), "medio", "sintaxe")
	require.NoError(t, err)
	require.Len(t, batch, 2, "a partial reserve batch still goes out")
	assert.Equal(t, 1, batch[0].ID)
	assert.Equal(t, 2, batch[1].ID)
}

func TestGenerateQuiz_EmptyReserveIsTerminal(t *testing.T) {
	client := &stubLLM{err: errors.New("timeout")}
	reserve := &stubReserve{}
	svc := newTestQuizService(client, reserve, 3)

	_, err := svc.GenerateQuiz(context.Background(), "medio", "sintaxe")
	assert.ErrorIs(t, err, ErrQuizUnavailable)
}

func TestGenerateQuiz_ReserveErrorIsTerminal(t *testing.T) {
	client := &stubLLM{err: errors.New("timeout")}
	reserve := &stubReserve{err: errors.New("db down")}
	svc := newTestQuizService(client, reserve, 3)

	_, err := svc.GenerateQuiz(context.Background(), "medio", "sintaxe")
	assert.ErrorIs(t, err, ErrQuizUnavailable)
}

func TestReviewAnswer_CorrectnessIsLocal(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact match", "B", "B", true},
		{"case and spacing normalized", " b ", "B", true},
		{"wrong answer", "C", "B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubLLM{response: "Correto! Muito bem."}
			svc := newTestQuizService(client, &stubReserve{}, 3)

			resp, err := svc.ReviewAnswer(context.Background(), &model.ReviewRequest{
				Question:    "Pergunta?",
				Choices:     map[string]string{"A": "um", "B": "dois", "C": "três", "D": "quatro"},
				Submitted:   tt.submitted,
				Correct:     tt.correct,
				Explanation: "Porque sim.",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Correct)
			assert.Equal(t, "Correto! Muito bem.", resp.Evaluation)
		})
	}
}

func TestReviewAnswer_LLMFailure(t *testing.T) {
	client := &stubLLM{err: errors.New("rate limited")}
	svc := newTestQuizService(client, &stubReserve{}, 3)

	_, err := svc.ReviewAnswer(context.Background(), &model.ReviewRequest{
		Question:  "Pergunta?",
		Choices:   map[string]string{"A": "um", "B": "dois", "C": "três", "D": "quatro"},
		Submitted: "A",
		Correct:   "A",
	})
	assert.ErrorIs(t, err, ErrReviewUnavailable)
}
