package afcon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/richard-senior/statto/internal/config"
	"github.com/richard-senior/statto/internal/logger"
	"github.com/richard-senior/statto/pkg/util"
)

// ErrTeamNotFound is returned by comparisons and predictions when a named
// team has not been registered. Callers must branch on it with errors.Is
// before formatting results.
var ErrTeamNotFound = errors.New("team not found")

// Fixture is a scheduled match between two registered teams
type Fixture struct {
	Kickoff string `json:"time"`
	Home    string `json:"home"`
	Away    string `json:"away"`
}

// Analyzer holds the tournament team records and answers comparison,
// prediction and standings queries over them. Records are registered once
// at startup and only read thereafter.
type Analyzer struct {
	teams    map[string]*TeamRecord
	order    []string // registration order, the stable tie-break of last resort
	fixtures []Fixture
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		teams: map[string]*TeamRecord{},
	}
}

// AddTeam registers a team record. An internally inconsistent record
// (wins+draws+losses != played) is logged and accepted as given.
func (a *Analyzer) AddTeam(t *TeamRecord) error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("team record must have a name")
	}
	if err := t.Validate(); err != nil {
		logger.Warn("Team record failed validation, registering anyway:", err)
	}
	if _, seen := a.teams[t.Name]; !seen {
		a.order = append(a.order, t.Name)
	}
	a.teams[t.Name] = t
	return nil
}

// AddFixture registers a match for inclusion in the generated report
func (a *Analyzer) AddFixture(f Fixture) {
	a.fixtures = append(a.fixtures, f)
}

// Fixtures returns the registered matches in registration order
func (a *Analyzer) Fixtures() []Fixture {
	return a.fixtures
}

// Team retrieves a registered record by name
func (a *Analyzer) Team(name string) (*TeamRecord, bool) {
	t, ok := a.teams[name]
	return t, ok
}

/////////////////////////////////////////////////////////////////////////
////// Head To Head Comparison
/////////////////////////////////////////////////////////////////////////

// ComparisonSide carries one team's figures within a head-to-head comparison
type ComparisonSide struct {
	Name            string  `json:"name"`
	Rank            int     `json:"rank"`
	Points          int     `json:"points"`
	GoalDifference  int     `json:"goalDifference"`
	AvgGoals        float64 `json:"offensivePower"`
	DefenseStrength float64 `json:"defensiveStrength"`
	WinPercentage   float64 `json:"winPercentage"`
	Played          int     `json:"matchesPlayed"`
}

// Comparison bundles both teams' figures for a fixture
type Comparison struct {
	MatchUp string         `json:"matchUp"`
	Home    ComparisonSide `json:"home"`
	Away    ComparisonSide `json:"away"`
}

func sideFor(t *TeamRecord) ComparisonSide {
	return ComparisonSide{
		Name:            t.Name,
		Rank:            t.Rank,
		Points:          t.Points,
		GoalDifference:  t.GoalDifference(),
		AvgGoals:        t.AvgGoalsPerMatch(),
		DefenseStrength: t.DefenseStrength(),
		WinPercentage:   t.WinPercentage(),
		Played:          t.Played,
	}
}

// CompareTeams compares two registered teams head-to-head. Swapping the
// arguments swaps the sides and nothing else.
func (a *Analyzer) CompareTeams(homeName, awayName string) (*Comparison, error) {
	home, ok := a.teams[homeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, homeName)
	}
	away, ok := a.teams[awayName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, awayName)
	}

	return &Comparison{
		MatchUp: fmt.Sprintf("%s vs %s", homeName, awayName),
		Home:    sideFor(home),
		Away:    sideFor(away),
	}, nil
}

/////////////////////////////////////////////////////////////////////////
////// Outcome Prediction
/////////////////////////////////////////////////////////////////////////

// PredictionSide carries one team's predicted figures
type PredictionSide struct {
	Name string `json:"name"`
	// Win probability as a percentage, rounded to 1 decimal place
	WinProbability float64 `json:"winProbability"`
	// Expected goals, the team's per-match average rounded to 1 decimal place
	ExpectedGoals float64 `json:"expectedGoals"`
}

// Prediction is the heuristic outcome estimate for a fixture
type Prediction struct {
	Match string         `json:"match"`
	Home  PredictionSide `json:"home"`
	Away  PredictionSide `json:"away"`
}

// compositeScore applies the configured weighting to a team's rank,
// offensive and defensive figures. Scores are floored at zero: a deeply
// negative composite would otherwise flip the probability share.
func compositeScore(t *TeamRecord) float64 {
	p := config.GetPrediction()
	score := (p.RankOffset-float64(t.Rank))*p.RankWeight +
		t.AvgGoalsPerMatch()*p.AttackWeight +
		(p.DefenseBaseline-t.DefenseStrength())*p.DefenseWeight
	if score < 0 {
		return 0
	}
	return score
}

// PredictOutcome estimates win probabilities for a fixture between two
// registered teams. The probabilities sum to 100.0. When neither team
// scores above zero on the heuristic the split is 50/50.
func (a *Analyzer) PredictOutcome(homeName, awayName string) (*Prediction, error) {
	home, ok := a.teams[homeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, homeName)
	}
	away, ok := a.teams[awayName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, awayName)
	}

	homeScore := compositeScore(home)
	awayScore := compositeScore(away)
	total := homeScore + awayScore

	homeProb := 50.0
	if total > 0 {
		homeProb = homeScore / total * 100
	}
	awayProb := 100 - homeProb

	return &Prediction{
		Match: fmt.Sprintf("%s vs %s", homeName, awayName),
		Home: PredictionSide{
			Name:           homeName,
			WinProbability: util.RoundTo(homeProb, 1),
			ExpectedGoals:  util.RoundTo(home.AvgGoalsPerMatch(), 1),
		},
		Away: PredictionSide{
			Name:           awayName,
			WinProbability: util.RoundTo(awayProb, 1),
			ExpectedGoals:  util.RoundTo(away.AvgGoalsPerMatch(), 1),
		},
	}, nil
}

/////////////////////////////////////////////////////////////////////////
////// Group Standings
/////////////////////////////////////////////////////////////////////////

// Standing is one row of a group table
type Standing struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Points         int    `json:"points"`
	Played         int    `json:"matches"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

// AnalyzeGroup returns the standings for a group, sorted by points then
// goal difference then goals scored, all descending. Registration order
// breaks any remaining ties.
func (a *Analyzer) AnalyzeGroup(group string) []Standing {
	var members []*TeamRecord
	for _, name := range a.order {
		t := a.teams[name]
		if t.Group == group {
			members = append(members, t)
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Points != members[j].Points {
			return members[i].Points > members[j].Points
		}
		if members[i].GoalDifference() != members[j].GoalDifference() {
			return members[i].GoalDifference() > members[j].GoalDifference()
		}
		return members[i].GoalsFor > members[j].GoalsFor
	})

	standings := make([]Standing, 0, len(members))
	for idx, t := range members {
		standings = append(standings, Standing{
			Position:       idx + 1,
			Team:           t.Name,
			Points:         t.Points,
			Played:         t.Played,
			Wins:           t.Wins,
			Draws:          t.Draws,
			Losses:         t.Losses,
			GoalsFor:       t.GoalsFor,
			GoalsAgainst:   t.GoalsAgainst,
			GoalDifference: t.GoalDifference(),
		})
	}
	return standings
}
