package config

// Static curriculum content: quiz levels, topic guidance, activity tracks
// and the score goals that drive leveling. The key sets are closed —
// handlers reject anything outside them before touching external services.

// Level is a quiz difficulty tier.
type Level string

const (
	LevelEasy   Level = "facil"
	LevelMedium Level = "medio"
	LevelHard   Level = "dificil"
)

// ValidLevel reports whether s is one of the three recognized tiers.
func ValidLevel(s string) bool {
	switch Level(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// DifficultyContexts maps each level to the prompt phrasing that sets the
// expected depth of the generated questions.
var DifficultyContexts = map[Level]string{
	LevelEasy:   "Elabore a pergunta com vocabulário mais simples, com foco em conteúdos básicos e exemplos acessíveis.",
	LevelMedium: "Use nível intermediário de complexidade, com exemplos contextualizados e exigência razoável de análise.",
	LevelHard:   "Inclua maior profundidade e complexidade na pergunta, exigindo maior domínio das regras gramaticais e interpretação sutil.",
}

// TopicGuidance maps each known topic key to the content guidance embedded
// in the generation prompt. Unknown keys are rejected up front.
var TopicGuidance = map[string]string{
	"sintaxe":       "Sintaxe, com foco em Sujeito e Predicado (tipos, concordância), e Objetos Direto e Indireto (diferenciação, uso da preposição). Inclua exemplos práticos para identificar essas funções.",
	"pragmatica":    "Pragmática, abordando principalmente Atos de Fala (diretos/indiretos), Ironia e Humor (como são construídos), Regras de cortesia, Pressuposição, Dêixis e Implicatura (o que se subentende). A questão deve exigir interpretação de contexto.",
	"morfologia":    "Morfologia, com foco em Radical, Afixos (prefixos e sufixos), Vogal Temática e Desinências na formação e flexão das palavras. Pergunte sobre a estrutura das palavras ou sua classificação morfológica.",
	"revisao_geral": "Revise os conceitos de sintaxe, morfologia e pragmática, focando na identificação de erros de concordância, regência, crase e pontuação. As questões devem apresentar textos com desvios gramaticais para o aluno corrigir ou identificar o erro.",
}

// TopicKeys returns the known topic keys in a stable order, for error messages.
func TopicKeys() []string {
	return []string{"sintaxe", "pragmatica", "morfologia", "revisao_geral"}
}

// Phase is one playable stage inside an activity track.
type Phase struct {
	Name  string `json:"nome"`
	Topic string `json:"tema"`
}

// Tracks maps each game to its ordered phases.
var Tracks = map[string]map[string]Phase{
	"via_lactea": {
		"via_lactea_fase_1": {Name: "Galáxia Via Láctea", Topic: "revisao_geral"},
	},
	"andromeda": {
		"andromeda_fase_1": {Name: "Galáxia Andrômeda", Topic: "revisao_geral"},
	},
}

// LevelGoal is one row of a track's leveling table.
type LevelGoal struct {
	Goal  int
	Name  string
	Topic string
}

// ViaLacteaGoals maps level number to the score goal and planet reached.
var ViaLacteaGoals = map[int]LevelGoal{
	1: {Goal: 990, Name: "Netuno", Topic: "sintaxe"},
	2: {Goal: 2000, Name: "Urano", Topic: "morfologia"},
	3: {Goal: 3500, Name: "Saturno", Topic: "pragmatica"},
	4: {Goal: 5000, Name: "Júpiter", Topic: "revisao_geral"},
	5: {Goal: 7500, Name: "Terra", Topic: "revisao_geral"},
}

// AndromedaGoals maps level number to the score goal and star reached.
var AndromedaGoals = map[int]LevelGoal{
	1: {Goal: 990, Name: "Sirius"},
	2: {Goal: 2000, Name: "Betelgeuse"},
	3: {Goal: 3500, Name: "Vega"},
	4: {Goal: 5000, Name: "Proxima Centauri"},
	5: {Goal: 7500, Name: "Kepler-186f"},
}

// GoalsForGame returns the leveling table for a game, or nil if unknown.
func GoalsForGame(game string) map[int]LevelGoal {
	switch game {
	case "via_lactea":
		return ViaLacteaGoals
	case "andromeda":
		return AndromedaGoals
	}
	return nil
}
