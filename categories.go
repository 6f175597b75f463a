package predictions

// Static reference data for the dashboard: supported sports, their leagues
// (with the path ids the ESPN site API expects), and the prediction
// categories offered per sport. Loaded once at process start, never
// user-editable.

type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type League struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Path    string `json:"path"`
}

type PredictionCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Sports = []Sport{
	{ID: "soccer", Name: "Soccer", Path: "soccer"},
	{ID: "basketball", Name: "Basketball", Path: "basketball"},
	{ID: "baseball", Name: "Baseball", Path: "baseball"},
	{ID: "football", Name: "Football", Path: "football"},
	{ID: "hockey", Name: "Hockey", Path: "hockey"},
}

var Leagues = map[string][]League{
	"soccer": {
		{ID: "epl", Name: "Premier League", Country: "England", Path: "eng.1"},
		{ID: "laliga", Name: "La Liga", Country: "Spain", Path: "esp.1"},
		{ID: "bundesliga", Name: "Bundesliga", Country: "Germany", Path: "ger.1"},
		{ID: "seriea", Name: "Serie A", Country: "Italy", Path: "ita.1"},
	},
	"basketball": {
		{ID: "nba", Name: "NBA", Country: "United States", Path: "nba"},
	},
	"baseball": {
		{ID: "mlb", Name: "MLB", Country: "United States", Path: "mlb"},
	},
	"football": {
		{ID: "nfl", Name: "NFL", Country: "United States", Path: "nfl"},
	},
	"hockey": {
		{ID: "nhl", Name: "NHL", Country: "United States & Canada", Path: "nhl"},
	},
}

var PredictionCategories = map[string][]PredictionCategory{
	"soccer": {
		{ID: "goals", Name: "Goals", Description: "Number of goals scored"},
		{ID: "assists", Name: "Assists", Description: "Number of assists"},
		{ID: "shots", Name: "Shots", Description: "Total shots attempted"},
		{ID: "shots_on_target", Name: "Shots on Target", Description: "Shots that hit the target"},
		{ID: "passes", Name: "Passes", Description: "Total passes completed"},
		{ID: "tackles", Name: "Tackles", Description: "Successful tackles made"},
		{ID: "minutes", Name: "Minutes Played", Description: "Minutes on the field"},
	},
	"basketball": {
		{ID: "points", Name: "Points", Description: "Total points scored"},
		{ID: "rebounds", Name: "Rebounds", Description: "Total rebounds (offensive + defensive)"},
		{ID: "assists", Name: "Assists", Description: "Number of assists"},
		{ID: "steals", Name: "Steals", Description: "Number of steals"},
		{ID: "blocks", Name: "Blocks", Description: "Number of shots blocked"},
		{ID: "field_goals", Name: "Field Goals Made", Description: "Number of field goals made"},
		{ID: "three_pointers", Name: "3-Pointers Made", Description: "Number of three-pointers made"},
		{ID: "free_throws", Name: "Free Throws Made", Description: "Number of free throws made"},
		{ID: "turnovers", Name: "Turnovers", Description: "Number of turnovers"},
		{ID: "minutes", Name: "Minutes Played", Description: "Minutes played in the game"},
	},
	"baseball": {
		{ID: "hits", Name: "Hits", Description: "Number of hits"},
		{ID: "home_runs", Name: "Home Runs", Description: "Number of home runs"},
		{ID: "rbis", Name: "RBIs", Description: "Runs batted in"},
		{ID: "runs", Name: "Runs", Description: "Runs scored"},
		{ID: "stolen_bases", Name: "Stolen Bases", Description: "Number of stolen bases"},
		{ID: "strikeouts", Name: "Strikeouts", Description: "Number of strikeouts (pitchers)"},
		{ID: "innings", Name: "Innings Pitched", Description: "Number of innings pitched"},
	},
	"football": {
		{ID: "passing_yards", Name: "Passing Yards", Description: "Total passing yards"},
		{ID: "passing_tds", Name: "Passing TDs", Description: "Passing touchdowns"},
		{ID: "completions", Name: "Completions", Description: "Number of completed passes"},
		{ID: "interceptions", Name: "Interceptions", Description: "Passes intercepted"},
		{ID: "rushing_yards", Name: "Rushing Yards", Description: "Total rushing yards"},
		{ID: "rushing_tds", Name: "Rushing TDs", Description: "Rushing touchdowns"},
		{ID: "receptions", Name: "Receptions", Description: "Number of catches"},
		{ID: "receiving_yards", Name: "Receiving Yards", Description: "Total receiving yards"},
		{ID: "receiving_tds", Name: "Receiving TDs", Description: "Receiving touchdowns"},
		{ID: "tackles", Name: "Tackles", Description: "Total tackles"},
		{ID: "sacks", Name: "Sacks", Description: "Number of sacks"},
	},
	"hockey": {
		{ID: "goals", Name: "Goals", Description: "Number of goals scored"},
		{ID: "assists", Name: "Assists", Description: "Number of assists"},
		{ID: "points", Name: "Points", Description: "Total points (goals + assists)"},
		{ID: "shots", Name: "Shots on Goal", Description: "Shots on goal"},
		{ID: "penalty_minutes", Name: "Penalty Minutes", Description: "Time spent in penalty box"},
		{ID: "power_play_goals", Name: "Power Play Goals", Description: "Goals scored on power play"},
		{ID: "saves", Name: "Saves", Description: "Number of saves (goalies)"},
	},
}

// LeaguesForSport returns the leagues offered for a sport id, nil for an
// unsupported sport.
func LeaguesForSport(sport string) []League {
	return Leagues[sport]
}

// CategoriesForSport returns the prediction categories for a sport id, nil
// for an unsupported sport.
func CategoriesForSport(sport string) []PredictionCategory {
	return PredictionCategories[sport]
}

// LeagueName maps a league path id (e.g. "eng.1") to its display name.
// Unknown leagues fall back to the raw id.
func LeagueName(league string) string {
	for _, leagues := range Leagues {
		for _, l := range leagues {
			if l.Path == league || l.ID == league {
				return l.Name
			}
		}
	}
	return league
}
