package predictions

const TaskQueueName = "prediction-dashboard-task-queue"

// Queries exposed by the workflows for the dashboard UI.
const (
	QueryMatchBoard  = "matchBoard"
	QueryWizardState = "wizardState"
)

// Signals understood by the workflows. The wizard signals map one-to-one
// onto the user actions in the prediction dialog.
const (
	SignalRefresh        = "refresh"
	SignalSelectTeam     = "select-team"
	SignalSelectPlayer   = "select-player"
	SignalSelectCategory = "select-category"
	SignalSetPrediction  = "set-prediction"
	SignalSubmit         = "submit"
	SignalClose          = "close"
)

// All ESPN site APIs hang off
// https://site.api.espn.com/apis/site/v2/sports/{sport}/{league}/, with
// scoreboard for the match list, summary?event={id} for scoring detail,
// and teams/{teamID}/roster for players. For example, the Premier League
// scoreboard is
// https://site.api.espn.com/apis/site/v2/sports/soccer/eng.1/scoreboard
