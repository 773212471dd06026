package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLevel(t *testing.T) {
	for _, s := range []string{"facil", "medio", "dificil"} {
		assert.True(t, ValidLevel(s), s)
	}
	for _, s := range []string{"", "FACIL", "easy", "médio"} {
		assert.False(t, ValidLevel(s), s)
	}
}

func TestTopicRegistryIsConsistent(t *testing.T) {
	keys := TopicKeys()
	require.Len(t, keys, len(TopicGuidance))
	for _, k := range keys {
		assert.Contains(t, TopicGuidance, k)
	}
}

func TestDifficultyContextsCoverAllLevels(t *testing.T) {
	for _, lvl := range []Level{LevelEasy, LevelMedium, LevelHard} {
		assert.NotEmpty(t, DifficultyContexts[lvl])
	}
}

func TestGoalsForGame(t *testing.T) {
	assert.Equal(t, ViaLacteaGoals, GoalsForGame("via_lactea"))
	assert.Equal(t, AndromedaGoals, GoalsForGame("andromeda"))
	assert.Nil(t, GoalsForGame("orion"))
}

func TestGoalTablesAreContiguousAndAscending(t *testing.T) {
	for name, goals := range map[string]map[int]LevelGoal{
		"via_lactea": ViaLacteaGoals,
		"andromeda":  AndromedaGoals,
	} {
		prev := 0
		for lvl := 1; lvl <= len(goals); lvl++ {
			g, ok := goals[lvl]
			require.True(t, ok, "%s: level %d missing", name, lvl)
			assert.Greater(t, g.Goal, prev, "%s: goals must ascend", name)
			assert.NotEmpty(t, g.Name, "%s: level %d has no place name", name, lvl)
			prev = g.Goal
		}
	}
}

func TestTracksPointAtKnownTopics(t *testing.T) {
	for game, phases := range Tracks {
		for phase, p := range phases {
			assert.Contains(t, TopicGuidance, p.Topic, "%s/%s", game, phase)
		}
	}
}
