package predictions

import "fmt"

// ESPN API Response Models

// ScoreboardResponse is the shape of {sport}/{league}/scoreboard.
type ScoreboardResponse struct {
	Events []ScoreboardEvent `json:"events"`
}

type ScoreboardEvent struct {
	ID           string        `json:"id"`
	Date         ESPNTime      `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
	Status       EventStatus   `json:"status"`
}

type Competition struct {
	ID          string       `json:"id"`
	Venue       EventVenue   `json:"venue"`
	Competitors []Competitor `json:"competitors"`
	Status      EventStatus  `json:"status"`
}

type EventVenue struct {
	FullName string `json:"fullName"`
}

type Competitor struct {
	ID       string         `json:"id"`
	HomeAway string         `json:"homeAway"`
	Score    string         `json:"score"`
	Team     CompetitorTeam `json:"team"`
}

type CompetitorTeam struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	Logo        string     `json:"logo"`
	Logos       []TeamLogo `json:"logos"`
}

type TeamLogo struct {
	Href string `json:"href"`
}

type EventStatus struct {
	Type EventStatusType `json:"type"`
}

type EventStatusType struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Detail string `json:"detail"`
}

// SummaryResponse is the shape of {sport}/{league}/summary?event={id}.
// Scoring plays carry the per-goal detail; the header carries the
// authoritative score per side.
type SummaryResponse struct {
	Header       SummaryHeader `json:"header"`
	ScoringPlays []ScoringPlay `json:"scoringPlays"`
}

type SummaryHeader struct {
	Competitions []SummaryCompetition `json:"competitions"`
}

type SummaryCompetition struct {
	Competitors []Competitor `json:"competitors"`
}

type ScoringPlay struct {
	Scorer PlayParticipant `json:"scorer"`
	Assist PlayParticipant `json:"assist"`
	Clock  PlayClock       `json:"clock"`
	Team   PlayTeam        `json:"team"`
}

type PlayParticipant struct {
	Name string `json:"name"`
}

type PlayClock struct {
	DisplayValue string `json:"displayValue"`
}

type PlayTeam struct {
	ID       string `json:"id"`
	HomeAway string `json:"homeAway"`
}

// RosterResponse is the shape of {sport}/{league}/teams/{id}/roster.
type RosterResponse struct {
	Athletes []Athlete `json:"athletes"`
}

type Athlete struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"displayName"`
	FullName    string          `json:"fullName"`
	Position    AthletePosition `json:"position"`
}

type AthletePosition struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Match status type names as ESPN reports them.
const (
	StatusScheduled  = "STATUS_SCHEDULED"
	StatusInProgress = "STATUS_IN_PROGRESS"
	StatusFinal      = "STATUS_FINAL"
)

// Match is a single fixture on the board, shaped for the dashboard.
type Match struct {
	ID        string      `json:"id"`
	Date      ESPNTime    `json:"date"`
	Time      string      `json:"time,omitempty"`
	Name      string      `json:"name"`
	ShortName string      `json:"shortName"`
	HomeTeam  MatchTeam   `json:"home_team"`
	AwayTeam  MatchTeam   `json:"away_team"`
	Venue     string      `json:"venue"`
	League    string      `json:"league"`
	Status    MatchStatus `json:"status"`
	Sport     string      `json:"sport"`
}

type MatchStatus struct {
	Type   string `json:"type"`
	State  string `json:"state"`
	Detail string `json:"detail"`
}

type MatchTeam struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Score   string   `json:"score"`
	Logo    string   `json:"logo"`
	Scorers []Scorer `json:"scorers,omitempty"`
}

type Scorer struct {
	Scorer string `json:"scorer"`
	Assist string `json:"assist,omitempty"`
	Minute string `json:"minute,omitempty"`
}

// NeedsDetail reports whether the scoring detail fetch applies to this
// match. Scheduled matches have nothing to enrich.
func (m Match) NeedsDetail() bool {
	return m.Status.Type == StatusFinal || m.Status.Type == StatusInProgress
}

// Player is one roster entry, rebuilt from scratch on every team change.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
}

// BoardRequest identifies the sport/league a match board tracks.
type BoardRequest struct {
	Sport  string `json:"sport"`
	League string `json:"league"`
}

// MatchBoard is the resolved board a query returns: every match overlaid
// with whatever scoring detail has arrived so far.
type MatchBoard struct {
	Sport   string  `json:"sport"`
	League  string  `json:"league"`
	Matches []Match `json:"matches"`
}

type DetailRequest struct {
	MatchID string `json:"matchId"`
	Sport   string `json:"sport"`
	League  string `json:"league"`
}

// MatchDetail is the per-match patch the enricher merges into the board.
type MatchDetail struct {
	MatchID string     `json:"matchId"`
	Home    TeamDetail `json:"home_team"`
	Away    TeamDetail `json:"away_team"`
}

type TeamDetail struct {
	Score   string   `json:"score"`
	Scorers []Scorer `json:"scorers"`
}

type RosterRequest struct {
	Sport    string `json:"sport"`
	League   string `json:"league"`
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
}

// PredictionRequest is the canonical prediction-service contract. The
// original system posted two slightly different shapes from different entry
// points; this field set is the one its backend actually validated.
type PredictionRequest struct {
	PlayerName     string  `json:"player_name"`
	Team           string  `json:"team"`
	Category       string  `json:"category"`
	PredictionType string  `json:"prediction_type"`
	TargetValue    float64 `json:"target_value"`
}

// PredictionAnalysis is the prediction-service response, display-only once
// received.
type PredictionAnalysis struct {
	Player         string  `json:"player"`
	Team           string  `json:"team"`
	Category       string  `json:"category"`
	PredictionType string  `json:"prediction_type"`
	TargetValue    float64 `json:"target_value"`
	Confidence     float64 `json:"confidence"`
	Analysis       string  `json:"analysis"`
}

// ConfidencePercent renders the confidence the way the dashboard shows it,
// e.g. 0.82 -> "82.0%".
func (a PredictionAnalysis) ConfidencePercent() string {
	return fmt.Sprintf("%.1f%%", a.Confidence*100)
}

// Wizard signal payloads.

type TeamSelection struct {
	TeamID string `json:"teamId"`
}

type PlayerSelection struct {
	PlayerID string `json:"playerId"`
}

type CategorySelection struct {
	CategoryID string `json:"categoryId"`
}

// PredictionInput carries the over/under toggle and the raw text of the
// target-value field. The value stays a string so the wizard can reject
// non-numeric input without losing the previous entry.
type PredictionInput struct {
	Type  PredictionType `json:"type"`
	Value string         `json:"value"`
}
