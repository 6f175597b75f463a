package predictions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
)

const scoreboardFixture = `{
	"events": [
		{
			"id": "401520282",
			"date": "2025-09-11T19:00Z",
			"name": "Liverpool at Everton",
			"shortName": "LIV @ EVE",
			"competitions": [
				{
					"id": "401520282",
					"venue": {"fullName": "Goodison Park"},
					"competitors": [
						{
							"id": "368",
							"homeAway": "home",
							"score": "",
							"team": {"id": "368", "name": "Everton", "displayName": "Everton", "logo": "https://a.espncdn.com/everton.png"}
						},
						{
							"id": "364",
							"homeAway": "away",
							"score": "",
							"team": {"id": "364", "displayName": "Liverpool", "logos": [{"href": "https://a.espncdn.com/liverpool.png"}]}
						}
					]
				}
			],
			"status": {"type": {"name": "STATUS_SCHEDULED", "state": "pre", "detail": "Thu, September 11th at 7:00 PM UTC"}}
		},
		{
			"id": "401520281",
			"date": "2025-09-10T15:30:00Z",
			"name": "Arsenal at Chelsea",
			"shortName": "ARS @ CHE",
			"competitions": [
				{
					"id": "401520281",
					"venue": {},
					"competitors": [
						{
							"id": "363",
							"homeAway": "home",
							"score": "2",
							"team": {"id": "363", "name": "Chelsea", "logo": "https://a.espncdn.com/chelsea.png"}
						},
						{
							"id": "359",
							"homeAway": "away",
							"score": "1",
							"team": {"id": "359", "name": "Arsenal", "logo": "https://a.espncdn.com/arsenal.png"}
						}
					]
				}
			],
			"status": {"type": {"name": "STATUS_IN_PROGRESS", "state": "in", "detail": "65'"}}
		},
		{
			"id": "401520283",
			"date": "2025-09-12T14:00:00Z",
			"name": "Malformed Event",
			"shortName": "BAD",
			"competitions": [
				{
					"id": "401520283",
					"competitors": [
						{"id": "100", "homeAway": "home", "team": {"id": "100", "name": "Lonely"}}
					]
				}
			],
			"status": {"type": {"name": "STATUS_SCHEDULED", "state": "pre"}}
		}
	]
}`

func TestGetMatchesActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/soccer/eng.1/scoreboard", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(scoreboardFixture))
	}))
	defer server.Close()
	t.Setenv("ESPN_API_BASE", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(GetMatchesActivity)

	val, err := env.ExecuteActivity(GetMatchesActivity, BoardRequest{Sport: "soccer", League: "eng.1"})
	require.NoError(t, err)

	var matches []Match
	require.NoError(t, val.Get(&matches))

	// The one-competitor event is skipped; the rest sort by date ascending.
	require.Len(t, matches, 2)
	assert.Equal(t, "401520281", matches[0].ID)
	assert.Equal(t, "401520282", matches[1].ID)

	derby := matches[0]
	assert.Equal(t, "Chelsea", derby.HomeTeam.Name)
	assert.Equal(t, "2", derby.HomeTeam.Score)
	assert.Equal(t, "Arsenal", derby.AwayTeam.Name)
	assert.Equal(t, "TBD", derby.Venue, "missing venue falls back")
	assert.Equal(t, StatusInProgress, derby.Status.Type)
	assert.Equal(t, "soccer", derby.Sport)
	assert.Equal(t, "eng.1", derby.League)
	assert.Equal(t, "3:30 PM", derby.Time)
	assert.True(t, derby.NeedsDetail())

	merseyside := matches[1]
	assert.Equal(t, "Goodison Park", merseyside.Venue)
	assert.Equal(t, "Liverpool", merseyside.AwayTeam.Name, "displayName fallback")
	assert.Equal(t, "https://a.espncdn.com/liverpool.png", merseyside.AwayTeam.Logo, "logos array fallback")
	assert.False(t, merseyside.NeedsDetail())
}

func TestGetMatchesActivity_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()
	t.Setenv("ESPN_API_BASE", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(GetMatchesActivity)

	_, err := env.ExecuteActivity(GetMatchesActivity, BoardRequest{Sport: "soccer", League: "eng.1"})
	assert.Error(t, err)
}

func TestGetMatchDetailActivity(t *testing.T) {
	summary := `{
		"header": {
			"competitions": [
				{
					"competitors": [
						{"id": "363", "homeAway": "home", "score": "2"},
						{"id": "359", "homeAway": "away", "score": "1"}
					]
				}
			]
		},
		"scoringPlays": [
			{
				"scorer": {"name": "Cole Palmer"},
				"assist": {"name": "Enzo Fernandez"},
				"clock": {"displayValue": "23'"},
				"team": {"id": "363", "homeAway": "home"}
			},
			{
				"scorer": {"name": "Bukayo Saka"},
				"clock": {"displayValue": "41'"},
				"team": {"id": "359", "homeAway": "away"}
			},
			{
				"scorer": {},
				"clock": {"displayValue": "58'"},
				"team": {"id": "363", "homeAway": "home"}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/soccer/eng.1/summary", r.URL.Path)
		assert.Equal(t, "401520281", r.URL.Query().Get("event"))
		w.Write([]byte(summary))
	}))
	defer server.Close()
	t.Setenv("ESPN_API_BASE", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(GetMatchDetailActivity)

	val, err := env.ExecuteActivity(GetMatchDetailActivity, DetailRequest{
		MatchID: "401520281",
		Sport:   "soccer",
		League:  "eng.1",
	})
	require.NoError(t, err)

	var detail MatchDetail
	require.NoError(t, val.Get(&detail))

	assert.Equal(t, "401520281", detail.MatchID)
	assert.Equal(t, "2", detail.Home.Score)
	assert.Equal(t, "1", detail.Away.Score)

	require.Len(t, detail.Home.Scorers, 2)
	assert.Equal(t, Scorer{Scorer: "Cole Palmer", Assist: "Enzo Fernandez", Minute: "23'"}, detail.Home.Scorers[0])
	assert.Equal(t, "Unknown", detail.Home.Scorers[1].Scorer, "nameless scorer gets the fallback label")

	require.Len(t, detail.Away.Scorers, 1)
	assert.Equal(t, "Bukayo Saka", detail.Away.Scorers[0].Scorer)
	assert.Empty(t, detail.Away.Scorers[0].Assist)
}

func TestGetRosterActivity(t *testing.T) {
	roster := `{
		"athletes": [
			{"id": "a1", "displayName": "Cole Palmer", "position": {"name": "Midfielder", "abbreviation": "M"}},
			{"id": "a2", "fullName": "Nicolas Jackson", "position": {"abbreviation": "F"}},
			{"id": "a3", "position": {}}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/soccer/eng.1/teams/363/roster", r.URL.Path)
		w.Write([]byte(roster))
	}))
	defer server.Close()
	t.Setenv("ESPN_API_BASE", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(GetRosterActivity)

	val, err := env.ExecuteActivity(GetRosterActivity, RosterRequest{
		Sport:    "soccer",
		League:   "eng.1",
		TeamID:   "363",
		TeamName: "Chelsea",
	})
	require.NoError(t, err)

	var players []Player
	require.NoError(t, val.Get(&players))

	require.Len(t, players, 3)
	assert.Equal(t, Player{ID: "a1", Name: "Cole Palmer", Position: "Midfielder", Team: "Chelsea"}, players[0])
	assert.Equal(t, Player{ID: "a2", Name: "Nicolas Jackson", Position: "F", Team: "Chelsea"}, players[1])
	assert.Equal(t, Player{ID: "a3", Name: "Unknown Player", Position: "Unknown Position", Team: "Chelsea"}, players[2])
}

func TestGetRosterActivity_EmptyRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"athletes": []}`))
	}))
	defer server.Close()
	t.Setenv("ESPN_API_BASE", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(GetRosterActivity)

	val, err := env.ExecuteActivity(GetRosterActivity, RosterRequest{
		Sport:  "soccer",
		League: "eng.1",
		TeamID: "363",
	})
	require.NoError(t, err, "an empty roster is a result, not an error")

	var players []Player
	require.NoError(t, val.Get(&players))
	assert.Len(t, players, 0)
}

func TestSubmitPredictionActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict/player", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cole Palmer", body["player_name"])
		assert.Equal(t, "Chelsea", body["team"])
		assert.Equal(t, "goals", body["category"])
		assert.Equal(t, "over", body["prediction_type"])
		assert.Equal(t, 0.5, body["target_value"])

		json.NewEncoder(w).Encode(PredictionAnalysis{
			Player:         "Cole Palmer",
			Team:           "Chelsea",
			Category:       "goals",
			PredictionType: "over",
			TargetValue:    0.5,
			Confidence:     0.82,
			Analysis:       "Palmer has scored in 4 of his last 5 matches.",
		})
	}))
	defer server.Close()
	t.Setenv("PREDICTION_API_URL", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(SubmitPredictionActivity)

	val, err := env.ExecuteActivity(SubmitPredictionActivity, PredictionRequest{
		PlayerName:     "Cole Palmer",
		Team:           "Chelsea",
		Category:       "goals",
		PredictionType: "over",
		TargetValue:    0.5,
	})
	require.NoError(t, err)

	var analysis PredictionAnalysis
	require.NoError(t, val.Get(&analysis))
	assert.Equal(t, 0.82, analysis.Confidence)
	assert.Equal(t, "82.0%", analysis.ConfidencePercent())
	assert.NotEmpty(t, analysis.Analysis)
}

func TestSubmitPredictionActivity_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "model unavailable"}`, http.StatusBadGateway)
	}))
	defer server.Close()
	t.Setenv("PREDICTION_API_URL", server.URL)

	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestActivityEnvironment()
	env.RegisterActivity(SubmitPredictionActivity)

	_, err := env.ExecuteActivity(SubmitPredictionActivity, PredictionRequest{
		PlayerName: "Cole Palmer",
	})
	assert.Error(t, err)
}
