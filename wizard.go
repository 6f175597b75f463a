package predictions

import (
	"fmt"
	"math"
	"strconv"
)

// WizardStage is the tagged state of the prediction wizard. Stages only
// move forward as selections are made; changing an earlier selection drops
// the wizard back and clears everything downstream.
type WizardStage string

const (
	StageClosed         WizardStage = "closed"
	StageMatchChosen    WizardStage = "match_chosen"
	StageTeamChosen     WizardStage = "team_chosen"
	StagePlayerChosen   WizardStage = "player_chosen"
	StageCategoryChosen WizardStage = "category_chosen"
	StageAnalysisShown  WizardStage = "analysis_shown"
)

type PredictionType string

const (
	PredictionOver  PredictionType = "over"
	PredictionUnder PredictionType = "under"
)

// RosterStatus distinguishes the three roster outcomes the dialog renders:
// still loading, loaded (possibly empty), or failed. Failure renders the
// same as an empty roster but stays distinguishable in the state.
type RosterStatus string

const (
	RosterNone    RosterStatus = "none"
	RosterLoading RosterStatus = "loading"
	RosterLoaded  RosterStatus = "loaded"
	RosterFailed  RosterStatus = "failed"
)

// Wizard is the selection state machine behind the prediction dialog:
// match -> team -> player -> category -> over/under + target -> submit.
// It is pure state; the prediction workflow wraps it and runs the network
// calls its transitions ask for.
type Wizard struct {
	Stage          WizardStage          `json:"stage"`
	Match          Match                `json:"match"`
	Categories     []PredictionCategory `json:"categories"`
	TeamID         string               `json:"teamId"`
	TeamName       string               `json:"teamName"`
	RosterStatus   RosterStatus         `json:"rosterStatus"`
	Roster         []Player             `json:"roster"`
	PlayerID       string               `json:"playerId"`
	PlayerName     string               `json:"playerName"`
	CategoryID     string               `json:"categoryId"`
	PredictionType PredictionType       `json:"predictionType"`
	TargetValue    string               `json:"targetValue"`
	Submitting     bool                 `json:"submitting"`
	SubmitError    string               `json:"submitError,omitempty"`
	Analysis       *PredictionAnalysis  `json:"analysis,omitempty"`
}

// NewWizard opens the wizard on a match with every downstream selection
// cleared and the category list bound to the match's sport.
func NewWizard(match Match) Wizard {
	return Wizard{
		Stage:          StageMatchChosen,
		Match:          match,
		Categories:     CategoriesForSport(match.Sport),
		RosterStatus:   RosterNone,
		PredictionType: PredictionOver,
	}
}

// SelectTeam picks one of the match's two teams. Any previously chosen
// player, category and target are discarded, the old roster is dropped and
// a fresh roster load is expected.
func (w *Wizard) SelectTeam(teamID string) error {
	if w.Stage == StageClosed || w.Stage == StageAnalysisShown {
		return fmt.Errorf("wizard is not accepting selections in stage %s", w.Stage)
	}

	var teamName string
	switch teamID {
	case w.Match.HomeTeam.ID:
		teamName = w.Match.HomeTeam.Name
	case w.Match.AwayTeam.ID:
		teamName = w.Match.AwayTeam.Name
	default:
		return fmt.Errorf("team %s is not part of match %s", teamID, w.Match.ID)
	}

	w.TeamID = teamID
	w.TeamName = teamName
	w.Roster = nil
	w.RosterStatus = RosterLoading
	w.clearDownstreamOfTeam()
	w.Stage = StageTeamChosen
	return nil
}

// SetRoster installs the fetched roster, replacing (never merging) any
// previous one. An empty slice is a valid "no players found" outcome.
func (w *Wizard) SetRoster(players []Player) {
	w.Roster = players
	w.RosterStatus = RosterLoaded
}

// FailRoster records a roster fetch failure. Players are cleared; the
// dialog shows the same empty state as a genuinely empty roster.
func (w *Wizard) FailRoster() {
	w.Roster = nil
	w.RosterStatus = RosterFailed
}

// SelectPlayer picks a player by id from the fetched roster. Identity is
// the key: a same-named player on another team never survives a team
// change. Category, type and target reset.
func (w *Wizard) SelectPlayer(playerID string) error {
	if w.TeamID == "" {
		return fmt.Errorf("no team selected")
	}
	if w.RosterStatus != RosterLoaded {
		return fmt.Errorf("roster for %s is not loaded", w.TeamName)
	}

	for _, p := range w.Roster {
		if p.ID == playerID {
			w.PlayerID = p.ID
			w.PlayerName = p.Name
			w.clearDownstreamOfPlayer()
			w.Stage = StagePlayerChosen
			return nil
		}
	}
	return fmt.Errorf("player %s is not in the %s roster", playerID, w.TeamName)
}

// SelectCategory picks a category from the sport's static category list.
func (w *Wizard) SelectCategory(categoryID string) error {
	if w.PlayerID == "" {
		return fmt.Errorf("no player selected")
	}
	for _, c := range w.Categories {
		if c.ID == categoryID {
			w.CategoryID = c.ID
			w.Stage = StageCategoryChosen
			return nil
		}
	}
	return fmt.Errorf("category %s is not offered for %s", categoryID, w.Match.Sport)
}

// SetPredictionType toggles over/under. There is no way back to an
// unselected type once the wizard is open.
func (w *Wizard) SetPredictionType(t PredictionType) error {
	if t != PredictionOver && t != PredictionUnder {
		return fmt.Errorf("invalid prediction type %q", t)
	}
	if w.CategoryID == "" {
		return fmt.Errorf("no category selected")
	}
	w.PredictionType = t
	return nil
}

// SetTargetValue stores the target-value field. Only parseable
// non-negative numbers are accepted; rejected input leaves the stored
// value untouched. An empty string clears the field.
func (w *Wizard) SetTargetValue(raw string) error {
	if w.CategoryID == "" {
		return fmt.Errorf("no category selected")
	}
	if raw == "" {
		w.TargetValue = ""
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("target value must be a non-negative number, got %q", raw)
	}
	w.TargetValue = raw
	return nil
}

// TargetValueNumber parses the stored target value. The second return is
// false while the field is empty.
func (w *Wizard) TargetValueNumber() (float64, bool) {
	if w.TargetValue == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(w.TargetValue, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// ReadyToSubmit reports whether team, player, category and a valid target
// value are all set at once, with no submission already in flight.
func (w *Wizard) ReadyToSubmit() bool {
	if w.Stage == StageClosed || w.Stage == StageAnalysisShown || w.Submitting {
		return false
	}
	if w.TeamID == "" || w.PlayerID == "" || w.CategoryID == "" {
		return false
	}
	_, ok := w.TargetValueNumber()
	return ok
}

// BeginSubmit marks a submission in flight, guarding against re-entry.
func (w *Wizard) BeginSubmit() error {
	if !w.ReadyToSubmit() {
		return fmt.Errorf("wizard is not ready to submit")
	}
	w.Submitting = true
	w.SubmitError = ""
	return nil
}

// ShowAnalysis stores the service response and switches to the read-only
// analysis view.
func (w *Wizard) ShowAnalysis(a PredictionAnalysis) {
	w.Submitting = false
	w.Analysis = &a
	w.Stage = StageAnalysisShown
}

// FailSubmit surfaces a retryable submission error. All selections stay
// intact so the user can submit again.
func (w *Wizard) FailSubmit(msg string) {
	w.Submitting = false
	w.SubmitError = msg
}

// Close tears down every field, roster included.
func (w *Wizard) Close() {
	*w = Wizard{Stage: StageClosed}
}

// Request packages the current selections into the prediction-service
// contract. Only valid once ReadyToSubmit or Submitting.
func (w *Wizard) Request() PredictionRequest {
	value, _ := w.TargetValueNumber()
	return PredictionRequest{
		PlayerName:     w.PlayerName,
		Team:           w.TeamName,
		Category:       w.CategoryID,
		PredictionType: string(w.PredictionType),
		TargetValue:    value,
	}
}

func (w *Wizard) clearDownstreamOfTeam() {
	w.PlayerID = ""
	w.PlayerName = ""
	w.clearDownstreamOfPlayer()
}

func (w *Wizard) clearDownstreamOfPlayer() {
	w.CategoryID = ""
	w.PredictionType = PredictionOver
	w.TargetValue = ""
	w.SubmitError = ""
}
