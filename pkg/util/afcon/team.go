package afcon

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/richard-senior/statto/pkg/util"
	"github.com/richard-senior/statto/pkg/util/persist"
)

// Compile-time check to ensure TeamRecord implements Persistable
var _ persist.Persistable = (*TeamRecord)(nil)

var validate = validator.New()

// TeamRecord represents one team's tournament record with database
// persistence annotations. Records are constructed once at startup and
// treated as immutable thereafter.
type TeamRecord struct {
	// Primary key
	Name string `json:"name" column:"name" dbtype:"TEXT NOT NULL" primary:"true" index:"true" validate:"required"`

	// "group" is an SQL keyword so the column carries a suffix
	Group string `json:"group" column:"group_label" dbtype:"TEXT NOT NULL" index:"true"`
	Rank  int    `json:"rank" column:"rank" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`

	Played int `json:"matchesPlayed" column:"matches_played" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`
	Wins   int `json:"wins" column:"wins" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`
	Draws  int `json:"draws" column:"draws" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`
	Losses int `json:"losses" column:"losses" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`

	GoalsFor     int `json:"goalsFor" column:"goals_for" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`
	GoalsAgainst int `json:"goalsAgainst" column:"goals_against" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`
	Points       int `json:"points" column:"points" dbtype:"INTEGER DEFAULT 0" validate:"gte=0"`

	// Stored per-match averages, recomputed on save
	AvgGoals float64 `json:"avgGoals" column:"avg_goals" dbtype:"REAL DEFAULT 0.0"`
	Defense  float64 `json:"defense" column:"defense" dbtype:"REAL DEFAULT 0.0"`

	// Metadata
	CreatedAt time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

func (t *TeamRecord) String() string {
	return fmt.Sprintf("%s (Rank: %d)", t.Name, t.Rank)
}

/////////////////////////////////////////////////////////////////////////
////// Derived Metrics
/////////////////////////////////////////////////////////////////////////

// GoalDifference returns goals scored minus goals conceded, may be negative
func (t *TeamRecord) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// AvgGoalsPerMatch returns goals scored per match played, rounded to
// 2 decimal places, 0 when no matches have been played
func (t *TeamRecord) AvgGoalsPerMatch() float64 {
	if t.Played == 0 {
		return 0
	}
	return util.RoundTo(float64(t.GoalsFor)/float64(t.Played), 2)
}

// WinPercentage returns wins as a percentage of matches played, rounded to
// 2 decimal places, 0 when no matches have been played
func (t *TeamRecord) WinPercentage() float64 {
	if t.Played == 0 {
		return 0
	}
	return util.RoundTo(float64(t.Wins)/float64(t.Played)*100, 2)
}

// DefenseStrength returns goals conceded per match played. Lower is better.
// Rounded to 2 decimal places, 0 when no matches have been played.
func (t *TeamRecord) DefenseStrength() float64 {
	if t.Played == 0 {
		return 0
	}
	return util.RoundTo(float64(t.GoalsAgainst)/float64(t.Played), 2)
}

// Validate checks field ranges and the internal consistency of the record.
// An inconsistent win/draw/loss split is reported but is not fatal to the
// caller; see Analyzer.AddTeam.
func (t *TeamRecord) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid team record %q: %w", t.Name, err)
	}
	if t.Wins+t.Draws+t.Losses != t.Played {
		return fmt.Errorf("team %q: wins+draws+losses (%d) does not equal matches played (%d)",
			t.Name, t.Wins+t.Draws+t.Losses, t.Played)
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetTableName returns the table name for team records
func (t *TeamRecord) GetTableName() string {
	return "team_records"
}

// GetPrimaryKey returns the primary key as a map
func (t *TeamRecord) GetPrimaryKey() map[string]any {
	return map[string]any{
		"name": t.Name,
	}
}

// BeforeSave recomputes the stored per-match averages and sets timestamps
func (t *TeamRecord) BeforeSave() error {
	t.AvgGoals = t.AvgGoalsPerMatch()
	t.Defense = t.DefenseStrength()

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return nil
}

// AfterSave is called after saving the team record
func (t *TeamRecord) AfterSave() error {
	return nil
}
