package predictions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"go.temporal.io/sdk/activity"
)

const (
	DefaultESPNAPIBase       = "https://site.api.espn.com/apis/site/v2/sports"
	DefaultPredictionAPIBase = "http://localhost:8000/api/predictions"
)

var apiClient = &http.Client{
	Timeout: 15 * time.Second,
}

func espnAPIBase() string {
	if base := os.Getenv("ESPN_API_BASE"); base != "" {
		return base
	}
	return DefaultESPNAPIBase
}

func predictionAPIBase() string {
	if base := os.Getenv("PREDICTION_API_URL"); base != "" {
		return base
	}
	return DefaultPredictionAPIBase
}

func fetchJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "prediction-dashboard/1.0")

	resp, err := apiClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return body, nil
}

// GetMatchesActivity fetches the scoreboard for a sport/league and maps it
// into the board's match shape, sorted ascending by date.
func GetMatchesActivity(ctx context.Context, req BoardRequest) ([]Match, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching matches from ESPN API", "sport", req.Sport, "league", req.League)

	url := fmt.Sprintf("%s/%s/%s/scoreboard?limit=100", espnAPIBase(), req.Sport, req.League)
	body, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var sb ScoreboardResponse
	if err := json.Unmarshal(body, &sb); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoreboard response: %w", err)
	}

	var matches []Match
	for _, event := range sb.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]

		var home, away *Competitor
		for i := range comp.Competitors {
			switch comp.Competitors[i].HomeAway {
			case "home":
				home = &comp.Competitors[i]
			case "away":
				away = &comp.Competitors[i]
			}
		}
		if home == nil || away == nil {
			logger.Warn("Skipping event with missing team data", "eventID", event.ID)
			continue
		}

		venue := comp.Venue.FullName
		if venue == "" {
			venue = "TBD"
		}

		match := Match{
			ID:        event.ID,
			Date:      event.Date,
			Name:      event.Name,
			ShortName: event.ShortName,
			HomeTeam:  mapCompetitor(*home),
			AwayTeam:  mapCompetitor(*away),
			Venue:     venue,
			League:    req.League,
			Status: MatchStatus{
				Type:   event.Status.Type.Name,
				State:  event.Status.Type.State,
				Detail: event.Status.Type.Detail,
			},
			Sport: req.Sport,
		}
		if !event.Date.IsZero() {
			match.Time = event.Date.Format("3:04 PM")
		}
		matches = append(matches, match)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Date.Time.Before(matches[j].Date.Time)
	})

	logger.Info("Fetched matches", "count", len(matches))
	return matches, nil
}

func mapCompetitor(c Competitor) MatchTeam {
	logo := c.Team.Logo
	if logo == "" && len(c.Team.Logos) > 0 {
		logo = c.Team.Logos[0].Href
	}
	name := c.Team.Name
	if name == "" {
		name = c.Team.DisplayName
	}
	return MatchTeam{
		ID:    c.Team.ID,
		Name:  name,
		Score: c.Score,
		Logo:  logo,
	}
}

// GetMatchDetailActivity fetches the summary for one match and extracts
// the per-team scoring detail: goal scorers with assists and minutes from
// the scoring plays, authoritative scores from the header.
func GetMatchDetailActivity(ctx context.Context, req DetailRequest) (MatchDetail, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching match detail", "matchID", req.MatchID, "sport", req.Sport, "league", req.League)

	url := fmt.Sprintf("%s/%s/%s/summary?event=%s", espnAPIBase(), req.Sport, req.League, req.MatchID)
	body, err := fetchJSON(ctx, url)
	if err != nil {
		return MatchDetail{}, err
	}

	var summary SummaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return MatchDetail{}, fmt.Errorf("failed to unmarshal summary response: %w", err)
	}

	detail := MatchDetail{MatchID: req.MatchID}

	for _, play := range summary.ScoringPlays {
		scorer := Scorer{
			Scorer: play.Scorer.Name,
			Assist: play.Assist.Name,
			Minute: play.Clock.DisplayValue,
		}
		if scorer.Scorer == "" {
			scorer.Scorer = "Unknown"
		}
		if play.Team.HomeAway == "home" {
			detail.Home.Scorers = append(detail.Home.Scorers, scorer)
		} else {
			detail.Away.Scorers = append(detail.Away.Scorers, scorer)
		}
	}

	if len(summary.Header.Competitions) > 0 {
		for _, competitor := range summary.Header.Competitions[0].Competitors {
			switch competitor.HomeAway {
			case "home":
				detail.Home.Score = competitor.Score
			case "away":
				detail.Away.Score = competitor.Score
			}
		}
	}

	return detail, nil
}

// GetRosterActivity fetches the player roster for one team. An empty
// roster is a valid result, not an error; missing names and positions get
// the dashboard's fallback labels.
func GetRosterActivity(ctx context.Context, req RosterRequest) ([]Player, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching roster", "teamID", req.TeamID, "team", req.TeamName, "sport", req.Sport, "league", req.League)

	url := fmt.Sprintf("%s/%s/%s/teams/%s/roster", espnAPIBase(), req.Sport, req.League, req.TeamID)
	body, err := fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var roster RosterResponse
	if err := json.Unmarshal(body, &roster); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster response: %w", err)
	}

	players := make([]Player, 0, len(roster.Athletes))
	for _, athlete := range roster.Athletes {
		name := athlete.DisplayName
		if name == "" {
			name = athlete.FullName
		}
		if name == "" {
			name = "Unknown Player"
		}
		position := athlete.Position.Name
		if position == "" {
			position = athlete.Position.Abbreviation
		}
		if position == "" {
			position = "Unknown Position"
		}
		players = append(players, Player{
			ID:       athlete.ID,
			Name:     name,
			Position: position,
			Team:     req.TeamName,
		})
	}

	logger.Info("Fetched roster", "team", req.TeamName, "count", len(players))
	return players, nil
}

// SubmitPredictionActivity posts the wizard's selections to the prediction
// service and returns its analysis.
func SubmitPredictionActivity(ctx context.Context, req PredictionRequest) (PredictionAnalysis, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Submitting prediction", "player", req.PlayerName, "category", req.Category,
		"type", req.PredictionType, "value", req.TargetValue)

	payload, err := json.Marshal(req)
	if err != nil {
		return PredictionAnalysis{}, fmt.Errorf("failed to marshal prediction request: %w", err)
	}

	url := fmt.Sprintf("%s/predict/player", predictionAPIBase())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return PredictionAnalysis{}, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := apiClient.Do(httpReq)
	if err != nil {
		return PredictionAnalysis{}, fmt.Errorf("failed to reach prediction service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return PredictionAnalysis{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return PredictionAnalysis{}, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	var analysis PredictionAnalysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return PredictionAnalysis{}, fmt.Errorf("failed to unmarshal prediction response: %w", err)
	}

	return analysis, nil
}
