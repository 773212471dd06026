package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/llm"
)

// Exercise pipeline errors.
var (
	ErrExerciseUnavailable = errors.New("exercise generation unavailable")
	// ErrMalformedVerdict carries no usable structure; the handler attaches
	// the raw completion so the client can at least show something.
	ErrMalformedVerdict = errors.New("no JSON object in correction verdict")
)

// ExerciseService drives the text-correction track: the LLM writes a short
// informal paragraph with deliberate grammar errors, the student rewrites
// it, and the LLM reviews the rewrite.
type ExerciseService struct {
	llm llm.Client
	log zerolog.Logger
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(client llm.Client, log zerolog.Logger) *ExerciseService {
	return &ExerciseService{
		llm: client,
		log: log.With().Str("component", "exercise_service").Logger(),
	}
}

const errorTextSystemPrompt = "Você é um professor gerando textos com erros para correção de alunos."

const errorTextPrompt = "Você é um professor de Língua Portuguesa criando um exercício com erros gramaticais. " +
	"Crie um parágrafo curto (3 a 5 linhas), informal, com 4 a 6 erros. " +
	"Os erros podem envolver figuras de linguagem, vozes, paralinguagem, variação linguística, morfologia, tempos verbais, sintaxe, conjunções e regência. " +
	"Não corrija nem explique os erros. Apenas gere o texto com os desvios inseridos. " +
	"O texto deve ser informal, como se fosse uma conversa entre amigos. " +
	"Não use palavras difíceis ou jargões técnicos. " +
	"Retorne somente o texto com erros, sem mensagem ao usuário no final."

const correctionSystemPrompt = "Você é um professor corrigindo redações de alunos. Avalie a correção do aluno. Seja didático. Use linguagem clara e adequada ao ensino médio."

// GenerateErrorText produces a fresh paragraph with planted grammar errors.
func (s *ExerciseService) GenerateErrorText(ctx context.Context) (string, error) {
	text, err := s.llm.Complete(ctx, errorTextSystemPrompt, errorTextPrompt)
	if err != nil {
		s.log.Error().Err(err).Msg("error-text generation failed")
		return "", ErrExerciseUnavailable
	}
	return strings.TrimSpace(text), nil
}

// ReviewCorrection asks the LLM to compare the original paragraph with the
// student's rewrite and returns its structured verdict. When the verdict
// holds no parseable JSON object, the raw completion is returned alongside
// ErrMalformedVerdict.
func (s *ExerciseService) ReviewCorrection(ctx context.Context, original, corrected string) (json.RawMessage, string, error) {
	prompt := buildCorrectionPrompt(original, corrected)

	raw, err := s.llm.Complete(ctx, correctionSystemPrompt, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("correction review failed")
		return nil, "", ErrExerciseUnavailable
	}

	verdict, ok := ExtractJSONObject(raw)
	if !ok {
		s.log.Warn().Msg("correction verdict held no JSON object")
		return nil, raw, ErrMalformedVerdict
	}

	return verdict, raw, nil
}

func buildCorrectionPrompt(original, corrected string) string {
	var b strings.Builder
	b.WriteString("Você é um professor corrigindo texto de alunos. Avalie a correção do aluno. Seja didático. Use linguagem clara e adequada ao ensino médio.\n\n")
	b.WriteString("Texto com erros:\n\n")
	b.WriteString(original)
	b.WriteString("\n\nTexto corrigido pelo aluno:\n\n")
	b.WriteString(corrected)
	b.WriteString("\n\nRetorne APENAS um objeto JSON com os campos: ")
	b.WriteString(`"nota" (número de 0 a 10), "erros_corrigidos" (array de strings), "erros_restantes" (array de strings) e "comentario" (string curta e encorajadora).`)
	return b.String()
}

// ExtractJSONObject pulls the first balanced-looking JSON object out of
// free prose: the slice between the first '{' and the last '}', accepted
// only if it parses as an object.
func ExtractJSONObject(s string) (json.RawMessage, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || start >= end {
		return nil, false
	}

	candidate := s[start : end+1]
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return json.RawMessage(candidate), true
}
