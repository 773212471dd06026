package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

// ProgressRepository handles per-game progress and per-topic accuracy rows.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

// InitDefaults seeds fresh progress rows for a newly registered student:
// one row per track at level 1 plus zeroed topic accuracy rows. Safe to
// call once per student; conflicts are ignored so re-registration attempts
// do not fail midway.
func (r *ProgressRepository) InitDefaults(ctx context.Context, studentID int) error {
	games := map[string]string{
		"via_lactea": "via_lactea_fase_1",
		"andromeda":  "andromeda_fase_1",
	}
	for game, phase := range games {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO game_progress (student_id, game, current_phase, level, total_score, phase_stars)
			 VALUES ($1, $2, $3, 1, 0, '{}')
			 ON CONFLICT (student_id, game) DO NOTHING`,
			studentID, game, phase,
		)
		if err != nil {
			return fmt.Errorf("init progress %s: %w", game, err)
		}
	}

	for _, topic := range []string{"morfologia", "sintaxe", "pragmatica"} {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO topic_progress (student_id, topic, correct_count, answered_count)
			 VALUES ($1, $2, 0, 0)
			 ON CONFLICT (student_id, topic) DO NOTHING`,
			studentID, topic,
		)
		if err != nil {
			return fmt.Errorf("init topic %s: %w", topic, err)
		}
	}
	return nil
}

// GetGame retrieves a student's progress for one track.
func (r *ProgressRepository) GetGame(ctx context.Context, studentID int, game string) (*model.GameProgress, error) {
	p := &model.GameProgress{Game: game}
	var starsRaw []byte

	err := r.pool.QueryRow(ctx,
		`SELECT current_phase, level, total_score, phase_stars
		 FROM game_progress WHERE student_id = $1 AND game = $2`,
		studentID, game,
	).Scan(&p.CurrentPhase, &p.Level, &p.TotalScore, &starsRaw)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(starsRaw, &p.PhaseStars); err != nil {
		return nil, fmt.Errorf("decode phase stars: %w", err)
	}
	if p.PhaseStars == nil {
		p.PhaseStars = map[string]int{}
	}
	return p, nil
}

// UpdateGame persists a recomputed progress snapshot for one track.
func (r *ProgressRepository) UpdateGame(ctx context.Context, studentID int, p *model.GameProgress) error {
	starsRaw, err := json.Marshal(p.PhaseStars)
	if err != nil {
		return fmt.Errorf("encode phase stars: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`UPDATE game_progress
		 SET current_phase = $1, level = $2, total_score = $3, phase_stars = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE student_id = $5 AND game = $6`,
		p.CurrentPhase, p.Level, p.TotalScore, starsRaw, studentID, p.Game,
	)
	return err
}

// ListTopics returns a student's per-topic accuracy, percentage included.
func (r *ProgressRepository) ListTopics(ctx context.Context, studentID int) ([]model.TopicProgress, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT topic, correct_count, answered_count
		 FROM topic_progress WHERE student_id = $1 ORDER BY topic`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.TopicProgress
	for rows.Next() {
		var t model.TopicProgress
		if err := rows.Scan(&t.Topic, &t.Correct, &t.Answered); err != nil {
			return nil, err
		}
		if t.Answered > 0 {
			t.Percentage = t.Correct * 100 / t.Answered
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}
