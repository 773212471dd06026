package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/repository"
)

// Progress errors.
var (
	ErrUnknownGame  = errors.New("unknown game")
	ErrNoProgress   = errors.New("no progress for this game")
	ErrUnknownPhase = errors.New("unknown phase for this game")
)

// PointsPerStar converts phase stars into track score.
const PointsPerStar = 100

// ProgressService handles track progress and leveling.
type ProgressService struct {
	progressRepo *repository.ProgressRepository
	log          zerolog.Logger
}

// NewProgressService creates a new ProgressService.
func NewProgressService(progressRepo *repository.ProgressRepository, log zerolog.Logger) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		log:          log.With().Str("component", "progress_service").Logger(),
	}
}

// GetPhases returns the static phase registry for a track.
func (s *ProgressService) GetPhases(game string) (map[string]config.Phase, error) {
	phases, ok := config.Tracks[game]
	if !ok {
		return nil, ErrUnknownGame
	}
	return phases, nil
}

// GetProgress returns a student's progress on a track, decorated with the
// planet/star name for the current level. A missing row is ErrNoProgress;
// no default state is silently created.
func (s *ProgressService) GetProgress(ctx context.Context, studentID int, game string) (*model.GameProgress, error) {
	goals := config.GoalsForGame(game)
	if goals == nil {
		return nil, ErrUnknownGame
	}

	p, err := s.progressRepo.GetGame(ctx, studentID, game)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoProgress
	}
	if err != nil {
		return nil, err
	}

	p.CurrentPlace = placeName(goals, p.Level)
	return p, nil
}

// ScorePhase applies a finished phase: stars become points, the level is
// recomputed against the goal table, and the phase's star count is stored
// (later runs overwrite earlier ones).
func (s *ProgressService) ScorePhase(ctx context.Context, studentID int, game, phase string, stars int) (*model.ScoreResult, error) {
	goals := config.GoalsForGame(game)
	if goals == nil {
		return nil, ErrUnknownGame
	}
	if _, ok := config.Tracks[game][phase]; !ok {
		return nil, ErrUnknownPhase
	}

	p, err := s.progressRepo.GetGame(ctx, studentID, game)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoProgress
	}
	if err != nil {
		return nil, err
	}

	points := stars * PointsPerStar
	p.TotalScore += points
	p.Level = ComputeLevel(goals, p.TotalScore)
	p.CurrentPhase = phase
	p.PhaseStars[phase] = stars

	if err := s.progressRepo.UpdateGame(ctx, studentID, p); err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("student_id", studentID).
		Str("game", game).
		Int("points", points).
		Int("level", p.Level).
		Msg("phase scored")

	return &model.ScoreResult{
		Message:    fmt.Sprintf("Pontuação atualizada em %s. %d pontos adicionados.", game, points),
		TotalScore: p.TotalScore,
		Level:      p.Level,
		PhaseStars: stars,
		PlaceName:  placeName(goals, p.Level),
	}, nil
}

// ComputeLevel walks the goal table in ascending order: each goal the
// score has reached advances the student past it, onto the next level when
// one exists, capped at the last. Below the first goal the level is 1.
func ComputeLevel(goals map[int]config.LevelGoal, score int) int {
	levels := make([]int, 0, len(goals))
	for lvl := range goals {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	level := 1
	for _, lvl := range levels {
		if score < goals[lvl].Goal {
			break
		}
		if _, hasNext := goals[lvl+1]; hasNext {
			level = lvl + 1
		} else {
			level = lvl
		}
	}
	return level
}

// placeName resolves the planet/star for a level, falling back to the
// track's first stop for out-of-table levels.
func placeName(goals map[int]config.LevelGoal, level int) string {
	if g, ok := goals[level]; ok {
		return g.Name
	}
	return goals[1].Name
}
