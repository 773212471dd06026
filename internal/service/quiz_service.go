package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
	"github.com/galaxia-edu/galaxia-backend/internal/llm"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

// Quiz pipeline errors.
var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrQuizUnavailable is the single terminal failure of the pipeline:
	// generation failed AND the reserve bank had nothing for the filter.
	ErrQuizUnavailable   = errors.New("generation failed and reserve bank is empty")
	ErrReviewUnavailable = errors.New("review service unavailable")
)

// ReserveStore is the slice of the reserve repository the orchestrator
// uses; narrowed to an interface so tests can substitute a double.
type ReserveStore interface {
	SampleByLevelTopic(ctx context.Context, level, topic string, limit int) ([]model.Question, error)
}

// QuizService orchestrates quiz generation: LLM first, reserve bank as the
// contingency path, all-or-nothing schema validation in between. It holds
// no mutable state; concurrent requests are independent.
type QuizService struct {
	llm       llm.Client
	reserve   ReserveStore
	batchSize int
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService. batchSize is the fixed number
// of questions per generated quiz.
func NewQuizService(client llm.Client, reserve ReserveStore, batchSize int, log zerolog.Logger) *QuizService {
	return &QuizService{
		llm:       client,
		reserve:   reserve,
		batchSize: batchSize,
		log:       log.With().Str("component", "quiz_service").Logger(),
	}
}

const quizSystemPrompt = "Você é um professor de português criando um quiz de múltipla escolha. Retorne as questões em JSON."

const reviewSystemPrompt = "Você é um corretor experiente de provas de Língua Portuguesa. Avalie a resposta do aluno."

// GenerateQuiz produces a batch of validated questions for (level, topic).
// Request-shape errors (ErrInvalidLevel, ErrUnknownTopic) are returned
// before any external call. A single LLM attempt is made — no retries —
// and any failure there (transport, empty content, malformed JSON, schema
// violation) falls through to the reserve bank. Only an exhausted reserve
// yields ErrQuizUnavailable.
func (s *QuizService) GenerateQuiz(ctx context.Context, level, topic string) ([]model.Question, error) {
	if !config.ValidLevel(level) {
		return nil, ErrInvalidLevel
	}
	guidance, ok := config.TopicGuidance[topic]
	if topic == "" || !ok {
		return nil, ErrUnknownTopic
	}

	count := s.batchSize

	raw, err := s.llm.Complete(ctx, quizSystemPrompt, s.buildQuizPrompt(config.Level(level), guidance, count))
	if err != nil {
		s.log.Warn().Err(err).
			Str("level", level).
			Str("topic", topic).
			Msg("generation call failed, falling back to reserve bank")
		return s.fromReserve(ctx, level, topic, count)
	}

	batch, err := DecodeQuestionBatch(raw, count)
	if err != nil {
		s.log.Warn().Err(err).
			Str("level", level).
			Str("topic", topic).
			Msg("generated batch failed validation, falling back to reserve bank")
		return s.fromReserve(ctx, level, topic, count)
	}

	numberBatch(batch)
	return batch, nil
}

// buildQuizPrompt renders the generation instruction: difficulty phrasing,
// topic guidance and the structural contract the validator enforces.
func (s *QuizService) buildQuizPrompt(level config.Level, guidance string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Você é um professor experiente de Língua Portuguesa voltado para o ensino médio. ")
	fmt.Fprintf(&b, "Crie %d questões de gramática contextualizadas, de múltipla escolha, com 4 alternativas (A, B, C, D), sendo apenas uma correta. ", count)
	fmt.Fprintf(&b, "Tem que ser exatamente %d perguntas geradas, não pode ser mais e nem menos. ", count)
	fmt.Fprintf(&b, "A dificuldade deve ser de nível '%s'. %s ", level, config.DifficultyContexts[level])
	fmt.Fprintf(&b, "As questões devem abordar conteúdos como: %s ", guidance)
	b.WriteString("Para cada questão, forneça o subtema específico e uma explicação concisa e direta, focada apenas na justificativa da resposta. ")
	b.WriteString("Retorne a resposta em um formato JSON, sendo um array de objetos. ")
	b.WriteString("Não inclua qualquer texto antes ou depois do JSON. ")
	b.WriteString(`Cada objeto deve ter exatamente os campos: "pergunta" (string), "alternativas" (objeto com as chaves "A", "B", "C" e "D"), "resposta" (a letra correta), "subtema" (string) e "explicacao" (string).`)
	return b.String()
}

// fromReserve is the contingency path. An unreachable store is treated the
// same as an empty one: logged, then funneled into the terminal failure.
func (s *QuizService) fromReserve(ctx context.Context, level, topic string, count int) ([]model.Question, error) {
	questions, err := s.reserve.SampleByLevelTopic(ctx, level, topic, count)
	if err != nil {
		s.log.Error().Err(err).
			Str("level", level).
			Str("topic", topic).
			Msg("reserve bank query failed")
		questions = nil
	}

	if len(questions) == 0 {
		return nil, ErrQuizUnavailable
	}

	numberBatch(questions)
	return questions, nil
}

// numberBatch assigns 1-based contiguous IDs in list order, overwriting
// whatever the source attached.
func numberBatch(batch []model.Question) {
	for i := range batch {
		batch[i].ID = i + 1
	}
}

// ReviewAnswer grades a submitted answer. The boolean verdict is computed
// locally from the normalized labels; the LLM only supplies the worded
// explanation, so its phrasing can never flip correctness.
func (s *QuizService) ReviewAnswer(ctx context.Context, req *model.ReviewRequest) (*model.ReviewResponse, error) {
	submitted := NormalizeLabel(req.Submitted)
	correct := NormalizeLabel(req.Correct)

	verdict, err := s.llm.Complete(ctx, reviewSystemPrompt, buildReviewPrompt(req, submitted, correct))
	if err != nil {
		s.log.Error().Err(err).Msg("review call failed")
		return nil, ErrReviewUnavailable
	}

	return &model.ReviewResponse{
		Evaluation: verdict,
		Correct:    submitted == correct,
	}, nil
}

func buildReviewPrompt(req *model.ReviewRequest, submitted, correct string) string {
	var b strings.Builder
	b.WriteString("Aqui está uma pergunta de português:\n\n")
	b.WriteString(req.Question)
	b.WriteString("\n\n")
	for _, label := range model.ChoiceLabels {
		if text, ok := req.Choices[label]; ok {
			fmt.Fprintf(&b, "%s) %s\n", label, text)
		}
	}
	fmt.Fprintf(&b, "\nResposta correta: %s\n", correct)
	fmt.Fprintf(&b, "O usuário escolheu: %s\n", submitted)
	fmt.Fprintf(&b, "Avalie se ele acertou ou errou. Se ele errou, retorne a alternativa %s e a explicação \"%s\" de forma simples e didática.\n", correct, req.Explanation)
	b.WriteString("Use linguagem clara e adequada ao ensino médio. ")
	b.WriteString("Se a resposta estiver correta, comece com 'Correto'. Se estiver errada, comece com 'Incorreto'. ")
	b.WriteString("Evite usar frases longas ou complexas.")
	return b.String()
}
