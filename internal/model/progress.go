package model

// GameProgress is a student's state inside one activity track.
type GameProgress struct {
	Game         string         `json:"-"`
	CurrentPhase string         `json:"fase_atual"`
	Level        int            `json:"nivel"`
	TotalScore   int            `json:"pontuacao_total"`
	PhaseStars   map[string]int `json:"estrelas_por_fase"`
	// CurrentPlace is the planet/star name for the current level,
	// decorated from the goal table on read. Not persisted.
	CurrentPlace string `json:"nome_planeta_atual,omitempty"`
}

// TopicProgress tracks per-topic answer accuracy.
type TopicProgress struct {
	Topic      string `json:"nome"`
	Correct    int    `json:"-"`
	Answered   int    `json:"-"`
	Percentage int    `json:"porcentagem"`
}

// ScoreRequest is the payload for scoring a finished phase.
type ScoreRequest struct {
	Phase string `json:"fase" binding:"required"`
	Stars *int   `json:"estrelas" binding:"required,min=0,max=3"`
}

// ScoreResult is returned after a phase score is applied.
type ScoreResult struct {
	Message    string `json:"mensagem"`
	TotalScore int    `json:"pontuacao_total"`
	Level      int    `json:"nivel_atual"`
	PhaseStars int    `json:"estrelas_da_fase"`
	PlaceName  string `json:"nome_planeta"`
}
