package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
)

// AnswerEvent is one graded answer, queued for asynchronous aggregation.
type AnswerEvent struct {
	StudentID int    `json:"student_id"`
	Topic     string `json:"topic"`
	Correct   bool   `json:"correct"`
}

// EnqueueAnswerEvent pushes a graded answer onto the stats queue.
func EnqueueAnswerEvent(ctx context.Context, rdb *redis.Client, event AnswerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return rdb.RPush(ctx, config.WorkerKey.AnswerStatsQueue, data).Err()
}

// AnswerStatsWorker consumes answer_stats_queue and updates the student's
// global and per-topic answer counters in PostgreSQL.
type AnswerStatsWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewAnswerStatsWorker creates a new AnswerStatsWorker.
func NewAnswerStatsWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *AnswerStatsWorker {
	return &AnswerStatsWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "answer_stats_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *AnswerStatsWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *AnswerStatsWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.AnswerStatsQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var event AnswerEvent
	if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.applyEvent(ctx, &event); err != nil {
		w.log.Error().Err(err).
			Int("student_id", event.StudentID).
			Str("topic", event.Topic).
			Msg("Stats update error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.AnswerStatsQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

func (w *AnswerStatsWorker) applyEvent(ctx context.Context, e *AnswerEvent) error {
	correctDelta := 0
	if e.Correct {
		correctDelta = 1
	}

	_, err := w.pool.Exec(ctx,
		`UPDATE students
		 SET correct_answers = correct_answers + $1,
		     total_answered = total_answered + 1,
		     updated_at = NOW()
		 WHERE id = $2`,
		correctDelta, e.StudentID,
	)
	if err != nil {
		return err
	}

	// UPSERT the per-topic row so new topics appear on first answer.
	_, err = w.pool.Exec(ctx,
		`INSERT INTO topic_progress (student_id, topic, correct_count, answered_count)
		 VALUES ($1, $2, $3, 1)
		 ON CONFLICT (student_id, topic) DO UPDATE
		 SET correct_count = topic_progress.correct_count + EXCLUDED.correct_count,
		     answered_count = topic_progress.answered_count + 1,
		     updated_at = NOW()`,
		e.StudentID, e.Topic, correctDelta,
	)
	return err
}

// drain processes all remaining items in the queue before shutdown.
func (w *AnswerStatsWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.AnswerStatsQueue).Result()
		if err != nil {
			break
		}

		var event AnswerEvent
		if err := json.Unmarshal([]byte(result), &event); err != nil {
			w.log.Error().Err(err).Msg("Drain unmarshal error")
			continue
		}

		if err := w.applyEvent(ctx, &event); err != nil {
			w.log.Error().Err(err).Msg("Drain stats update error")
			w.rdb.RPush(ctx, config.WorkerKey.AnswerStatsQueue, result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
