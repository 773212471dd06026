package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuestionJSON = `{
	"pergunta": "Qual é o sujeito da frase 'O menino correu'?",
	"alternativas": {"A": "O menino", "B": "correu", "C": "a frase", "D": "nenhum"},
	"resposta": "A",
	"subtema": "sujeito",
	"explicacao": "O sujeito é o termo sobre o qual se declara algo."
}`

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `[{"a": 1}]`, `[{"a": 1}]`},
		{"plain fence", "```\n[1, 2]\n```", "[1, 2]"},
		{"json fence", "```json\n[1, 2]\n```", "[1, 2]"},
		{"python fence", "```python\n[1, 2]\n```", "[1, 2]"},
		{"surrounding whitespace", "  \n```json\n[1]\n```\n  ", "[1]"},
		{"fence without newline", "```[1]```", "[1]"},
		{"content starting with backticks left alone", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestDecodeQuestionBatch_Valid(t *testing.T) {
	raw := "[" + validQuestionJSON + "," + validQuestionJSON + "]"

	batch, err := DecodeQuestionBatch(raw, 2)
	require.NoError(t, err)
	require.Len(t, batch, 2)

	assert.Equal(t, "A", batch[0].Answer)
	assert.Equal(t, "sujeito", batch[0].Subtopic)
	assert.Len(t, batch[0].Choices, 4)
}

func TestDecodeQuestionBatch_FencedValid(t *testing.T) {
	raw := "```json\n[" + validQuestionJSON + "]\n```"

	batch, err := DecodeQuestionBatch(raw, 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)
}

func TestDecodeQuestionBatch_NormalizesAnswer(t *testing.T) {
	raw := `[{
		"pergunta": "P?",
		"alternativas": {"A": "1", "B": "2", "C": "3", "D": "4"},
		"resposta": " b ",
		"subtema": "s",
		"explicacao": "e"
	}]`

	batch, err := DecodeQuestionBatch(raw, 1)
	require.NoError(t, err)
	assert.Equal(t, "B", batch[0].Answer)
}

func TestDecodeQuestionBatch_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		errPart string
	}{
		{"not an array", `{"pergunta": "x"}`, 0, "not a JSON array"},
		{"not JSON at all", "desculpe, não posso gerar isso", 0, "not a JSON array"},
		{"empty array", `[]`, 0, "empty"},
		{"count mismatch", "[" + validQuestionJSON + "]", 2, "expected 2 questions, got 1"},
		{
			"missing question text",
			`[{"alternativas": {"A":"1","B":"2","C":"3","D":"4"}, "resposta":"A", "subtema":"s", "explicacao":"e"}]`,
			0, "missing field 'pergunta'",
		},
		{
			"missing explanation",
			`[{"pergunta":"p", "alternativas": {"A":"1","B":"2","C":"3","D":"4"}, "resposta":"A", "subtema":"s"}]`,
			0, "missing field 'explicacao'",
		},
		{
			"three choices",
			`[{"pergunta":"p", "alternativas": {"A":"1","B":"2","C":"3"}, "resposta":"A", "subtema":"s", "explicacao":"e"}]`,
			0, "expected 4 choices",
		},
		{
			"five choices",
			`[{"pergunta":"p", "alternativas": {"A":"1","B":"2","C":"3","D":"4","E":"5"}, "resposta":"A", "subtema":"s", "explicacao":"e"}]`,
			0, "expected 4 choices",
		},
		{
			"wrong choice labels",
			`[{"pergunta":"p", "alternativas": {"1":"a","2":"b","3":"c","4":"d"}, "resposta":"1", "subtema":"s", "explicacao":"e"}]`,
			0, "missing choice",
		},
		{
			"answer outside choices",
			`[{"pergunta":"p", "alternativas": {"A":"1","B":"2","C":"3","D":"4"}, "resposta":"E", "subtema":"s", "explicacao":"e"}]`,
			0, "not a valid choice label",
		},
		{
			"second element invalid poisons batch",
			"[" + validQuestionJSON + `, {"pergunta":"p", "alternativas": {"A":"1","B":"2","C":"3","D":"4"}, "subtema":"s", "explicacao":"e"}]`,
			0, "question 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := DecodeQuestionBatch(tt.raw, tt.want)
			require.Error(t, err)
			assert.Nil(t, batch)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "A", NormalizeLabel(" a "))
	assert.Equal(t, "B", NormalizeLabel("b"))
	assert.Equal(t, "C", NormalizeLabel("C"))
	assert.Equal(t, "", NormalizeLabel("  "))
}
