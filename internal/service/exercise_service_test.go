package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"nota": 8}`, `{"nota": 8}`, true},
		{
			"object buried in prose",
			`Claro! Aqui está a avaliação: {"nota": 7, "comentario": "Bom trabalho"} Espero ter ajudado.`,
			`{"nota": 7, "comentario": "Bom trabalho"}`,
			true,
		},
		{"no braces", "só texto, sem estrutura", "", false},
		{"only opening brace", "{nota incompleta", "", false},
		{"braces around non-JSON", "{isto não é json}", "", false},
		{"reversed braces", "} depois {", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.JSONEq(t, tt.want, string(got))
			}
		})
	}
}

func TestGenerateErrorText(t *testing.T) {
	client := &stubLLM{response: "  Oi galera, nois foi no cinema ontem e gostemos muito.  \n"}
	svc := NewExerciseService(client, zerolog.Nop())

	text, err := svc.GenerateErrorText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Oi galera, nois foi no cinema ontem e gostemos muito.", text)
}

func TestGenerateErrorText_Unavailable(t *testing.T) {
	client := &stubLLM{err: errors.New("connection reset")}
	svc := NewExerciseService(client, zerolog.Nop())

	_, err := svc.GenerateErrorText(context.Background())
	assert.ErrorIs(t, err, ErrExerciseUnavailable)
}

func TestReviewCorrection_StructuredVerdict(t *testing.T) {
	client := &stubLLM{response: `Avaliação: {"nota": 9, "erros_corrigidos": ["concordância"], "erros_restantes": [], "comentario": "Excelente!"}`}
	svc := NewExerciseService(client, zerolog.Nop())

	verdict, raw, err := svc.ReviewCorrection(context.Background(), "texto com erro", "texto corrigido")
	require.NoError(t, err)
	assert.Contains(t, raw, "Avaliação")

	var parsed struct {
		Nota       int    `json:"nota"`
		Comentario string `json:"comentario"`
	}
	require.NoError(t, json.Unmarshal(verdict, &parsed))
	assert.Equal(t, 9, parsed.Nota)
	assert.Equal(t, "Excelente!", parsed.Comentario)
}

func TestReviewCorrection_MalformedVerdict(t *testing.T) {
	client := &stubLLM{response: "A correção ficou boa, nota alta!"}
	svc := NewExerciseService(client, zerolog.Nop())

	verdict, raw, err := svc.ReviewCorrection(context.Background(), "original", "corrigido")
	assert.ErrorIs(t, err, ErrMalformedVerdict)
	assert.Nil(t, verdict)
	assert.Equal(t, "A correção ficou boa, nota alta!", raw)
}

func TestReviewCorrection_Unavailable(t *testing.T) {
	client := &stubLLM{err: errors.New("timeout")}
	svc := NewExerciseService(client, zerolog.Nop())

	_, _, err := svc.ReviewCorrection(context.Background(), "original", "corrigido")
	assert.ErrorIs(t, err, ErrExerciseUnavailable)
}
