package afcon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupAAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a := NewAnalyzer()
	teams := []*TeamRecord{
		ivoryCoast(),
		{Name: "Mozambique", Group: "A", Rank: 92},
		{Name: "Cameroon", Group: "A", Rank: 43},
		{
			Name: "Gabon", Group: "A", Rank: 75,
			Played: 1, Draws: 1, GoalsFor: 1, GoalsAgainst: 1, Points: 1,
		},
	}
	for _, team := range teams {
		require.NoError(t, a.AddTeam(team))
	}
	return a
}

func TestAddTeamRequiresName(t *testing.T) {
	a := NewAnalyzer()
	assert.Error(t, a.AddTeam(nil))
	assert.Error(t, a.AddTeam(&TeamRecord{}))
}

func TestAddTeamAcceptsInconsistentRecord(t *testing.T) {
	a := NewAnalyzer()
	// Inconsistent records are logged but still registered
	bad := &TeamRecord{Name: "Phantom", Group: "A", Played: 3, Wins: 1}
	require.NoError(t, a.AddTeam(bad))

	_, ok := a.Team("Phantom")
	assert.True(t, ok)
}

func TestCompareTeams(t *testing.T) {
	a := groupAAnalyzer(t)

	c, err := a.CompareTeams("Ivory Coast", "Mozambique")
	require.NoError(t, err)

	assert.Equal(t, "Ivory Coast vs Mozambique", c.MatchUp)
	assert.Equal(t, 9, c.Home.Rank)
	assert.Equal(t, 92, c.Away.Rank)
	assert.Equal(t, 2.0, c.Home.AvgGoals)
	assert.Equal(t, 100.0, c.Home.WinPercentage)
}

func TestCompareTeamsIsSymmetric(t *testing.T) {
	a := groupAAnalyzer(t)

	forward, err := a.CompareTeams("Cameroon", "Gabon")
	require.NoError(t, err)
	reverse, err := a.CompareTeams("Gabon", "Cameroon")
	require.NoError(t, err)

	// Swapping the arguments swaps the sides and nothing else
	assert.Equal(t, forward.Home, reverse.Away)
	assert.Equal(t, forward.Away, reverse.Home)
}

func TestCompareTeamsUnknownTeam(t *testing.T) {
	a := groupAAnalyzer(t)

	_, err := a.CompareTeams("Ivory Coast", "Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTeamNotFound))

	_, err = a.PredictOutcome("Atlantis", "Ivory Coast")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTeamNotFound))
}

func TestPredictOutcomeFavorsStrongerTeam(t *testing.T) {
	a := groupAAnalyzer(t)

	p, err := a.PredictOutcome("Ivory Coast", "Mozambique")
	require.NoError(t, err)

	// Rank 9 with a win on the board against rank 92 with no record
	assert.Greater(t, p.Home.WinProbability, 50.0)
	assert.Less(t, p.Away.WinProbability, 50.0)
	assert.InDelta(t, 100.0, p.Home.WinProbability+p.Away.WinProbability, 0.11)
	assert.Equal(t, 2.0, p.Home.ExpectedGoals)
	assert.Equal(t, 0.0, p.Away.ExpectedGoals)
}

func TestPredictOutcomeIdenticalTeams(t *testing.T) {
	a := NewAnalyzer()
	for _, name := range []string{"Alpha", "Beta"} {
		require.NoError(t, a.AddTeam(&TeamRecord{
			Name: name, Group: "B", Rank: 20,
			Played: 1, Wins: 1, GoalsFor: 1, Points: 3,
		}))
	}

	p, err := a.PredictOutcome("Alpha", "Beta")
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Home.WinProbability)
	assert.Equal(t, 50.0, p.Away.WinProbability)
}

func TestPredictOutcomeBothScoreZero(t *testing.T) {
	a := NewAnalyzer()
	// Ranks deep enough that the heuristic bottoms out at zero for both
	for _, name := range []string{"Deep1", "Deep2"} {
		require.NoError(t, a.AddTeam(&TeamRecord{
			Name: name, Group: "C", Rank: 150,
			Played: 1, Losses: 1, GoalsAgainst: 5,
		}))
	}

	p, err := a.PredictOutcome("Deep1", "Deep2")
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Home.WinProbability)
	assert.Equal(t, 50.0, p.Away.WinProbability)
}

func TestAnalyzeGroupOrdering(t *testing.T) {
	a := groupAAnalyzer(t)

	standings := a.AnalyzeGroup("A")
	require.Len(t, standings, 4)

	assert.Equal(t, "Ivory Coast", standings[0].Team)
	assert.Equal(t, 1, standings[0].Position)
	assert.Equal(t, "Gabon", standings[1].Team)

	// Cameroon and Mozambique are level on every key, so registration
	// order decides
	assert.Equal(t, "Mozambique", standings[2].Team)
	assert.Equal(t, "Cameroon", standings[3].Team)

	// Points never increase down the table
	for i := 1; i < len(standings); i++ {
		assert.GreaterOrEqual(t, standings[i-1].Points, standings[i].Points)
	}
}

func TestAnalyzeGroupTieBreaks(t *testing.T) {
	a := NewAnalyzer()
	require.NoError(t, a.AddTeam(&TeamRecord{
		Name: "Quiet Draws", Group: "D", Rank: 1,
		Played: 2, Wins: 1, Losses: 1, GoalsFor: 2, GoalsAgainst: 2, Points: 3,
	}))
	require.NoError(t, a.AddTeam(&TeamRecord{
		Name: "High GD", Group: "D", Rank: 2,
		Played: 2, Wins: 1, Losses: 1, GoalsFor: 3, GoalsAgainst: 1, Points: 3,
	}))
	require.NoError(t, a.AddTeam(&TeamRecord{
		Name: "Busy Draws", Group: "D", Rank: 3,
		Played: 2, Wins: 1, Losses: 1, GoalsFor: 4, GoalsAgainst: 4, Points: 3,
	}))

	standings := a.AnalyzeGroup("D")
	require.Len(t, standings, 3)

	// Level points: goal difference first, then goals scored
	assert.Equal(t, "High GD", standings[0].Team)
	assert.Equal(t, "Busy Draws", standings[1].Team)
	assert.Equal(t, "Quiet Draws", standings[2].Team)
}

func TestAnalyzeGroupFiltersOtherGroups(t *testing.T) {
	a := groupAAnalyzer(t)
	require.NoError(t, a.AddTeam(&TeamRecord{Name: "Egypt", Group: "B", Rank: 30}))

	standings := a.AnalyzeGroup("A")
	for _, s := range standings {
		assert.NotEqual(t, "Egypt", s.Team)
	}
	assert.Empty(t, a.AnalyzeGroup("Z"))
}
