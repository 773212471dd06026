package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

// ReserveQuestionRepository reads the pre-authored fallback question bank.
// Records are seeded out-of-band (cmd/seed-questions); the request path
// only ever samples from it.
type ReserveQuestionRepository struct {
	pool *pgxpool.Pool
}

// NewReserveQuestionRepository creates a new ReserveQuestionRepository.
func NewReserveQuestionRepository(pool *pgxpool.Pool) *ReserveQuestionRepository {
	return &ReserveQuestionRepository{pool: pool}
}

// SampleByLevelTopic returns up to limit questions matching level and topic
// exactly, drawn uniformly at random without replacement. Fewer matches
// than limit are returned as-is; zero matches yield an empty slice.
func (r *ReserveQuestionRepository) SampleByLevelTopic(ctx context.Context, level, topic string, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT question, choices, answer, subtopic, explanation
		 FROM reserve_questions
		 WHERE level = $1 AND topic = $2
		 ORDER BY random()
		 LIMIT $3`,
		level, topic, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		var choicesRaw []byte
		if err := rows.Scan(&q.Text, &choicesRaw, &q.Answer, &q.Subtopic, &q.Explanation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(choicesRaw, &q.Choices); err != nil {
			return nil, fmt.Errorf("decode choices: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CountByLevelTopic reports how many reserve questions exist for a filter.
func (r *ReserveQuestionRepository) CountByLevelTopic(ctx context.Context, level, topic string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reserve_questions WHERE level = $1 AND topic = $2`,
		level, topic,
	).Scan(&n)
	return n, err
}

// Insert stores a pre-authored question. Used by the seeding CLI only.
func (r *ReserveQuestionRepository) Insert(ctx context.Context, rq *model.ReserveQuestion) error {
	choicesRaw, err := json.Marshal(rq.Choices)
	if err != nil {
		return fmt.Errorf("encode choices: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO reserve_questions (level, topic, question, choices, answer, subtopic, explanation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING doc_id, created_at`,
		rq.Level, rq.Topic, rq.Text, choicesRaw, rq.Answer, rq.Subtopic, rq.Explanation,
	).Scan(&rq.DocID, &rq.CreatedAt)
}
