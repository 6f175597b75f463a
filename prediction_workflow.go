package predictions

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// A wizard left alone this long is torn down as if the user had closed it.
const wizardIdleTimeout = 2 * time.Hour

const submitErrorMessage = "Failed to generate prediction analysis. Please try again."

// PredictionWorkflow runs one prediction wizard for one match. Signals
// carry the user's selections, the wizardState query feeds the dialog, and
// the roster fetch and prediction submission run as activities at exactly
// the points the wizard's transitions call for.
//
// Invalid selections (wrong team, unknown player, non-numeric target) are
// rejected by the wizard's own guards and logged; they never move the
// stage or fail the workflow.
func PredictionWorkflow(ctx workflow.Context, match Match) (string, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting Prediction Workflow", "matchID", match.ID,
		"homeTeam", match.HomeTeam.Name, "awayTeam", match.AwayTeam.Name)

	wizard := NewWizard(match)

	err := workflow.SetQueryHandler(ctx, QueryWizardState, func() (Wizard, error) {
		return wizard, nil
	})
	if err != nil {
		logger.Error("Failed to set query handler", "error", err)
		return "", err
	}

	// Roster and prediction calls get a single attempt each; their
	// failures degrade to wizard states, not workflow failures.
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	teamCh := workflow.GetSignalChannel(ctx, SignalSelectTeam)
	playerCh := workflow.GetSignalChannel(ctx, SignalSelectPlayer)
	categoryCh := workflow.GetSignalChannel(ctx, SignalSelectCategory)
	predictionCh := workflow.GetSignalChannel(ctx, SignalSetPrediction)
	submitCh := workflow.GetSignalChannel(ctx, SignalSubmit)
	closeCh := workflow.GetSignalChannel(ctx, SignalClose)

	outcome := "closed without submitting a prediction"
	closed := false

	for !closed {
		rosterNeeded := false
		submitRequested := false

		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, wizardIdleTimeout)

		selector := workflow.NewSelector(ctx)
		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Wizard idle timeout reached", "matchID", match.ID)
			closed = true
		})
		selector.AddReceive(teamCh, func(c workflow.ReceiveChannel, more bool) {
			var sel TeamSelection
			c.Receive(ctx, &sel)
			if err := wizard.SelectTeam(sel.TeamID); err != nil {
				logger.Warn("Ignoring team selection", "teamID", sel.TeamID, "error", err)
				return
			}
			rosterNeeded = true
		})
		selector.AddReceive(playerCh, func(c workflow.ReceiveChannel, more bool) {
			var sel PlayerSelection
			c.Receive(ctx, &sel)
			if err := wizard.SelectPlayer(sel.PlayerID); err != nil {
				logger.Warn("Ignoring player selection", "playerID", sel.PlayerID, "error", err)
			}
		})
		selector.AddReceive(categoryCh, func(c workflow.ReceiveChannel, more bool) {
			var sel CategorySelection
			c.Receive(ctx, &sel)
			if err := wizard.SelectCategory(sel.CategoryID); err != nil {
				logger.Warn("Ignoring category selection", "categoryID", sel.CategoryID, "error", err)
			}
		})
		selector.AddReceive(predictionCh, func(c workflow.ReceiveChannel, more bool) {
			var input PredictionInput
			c.Receive(ctx, &input)
			if input.Type != "" {
				if err := wizard.SetPredictionType(input.Type); err != nil {
					logger.Warn("Ignoring prediction type", "type", input.Type, "error", err)
				}
			}
			if err := wizard.SetTargetValue(input.Value); err != nil {
				logger.Warn("Rejecting target value", "value", input.Value, "error", err)
			}
		})
		selector.AddReceive(submitCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			if err := wizard.BeginSubmit(); err != nil {
				logger.Warn("Ignoring submit", "error", err)
				return
			}
			submitRequested = true
		})
		selector.AddReceive(closeCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			closed = true
		})

		selector.Select(ctx)
		cancelTimer()

		if closed {
			wizard.Close()
			break
		}

		if rosterNeeded {
			var players []Player
			rosterErr := workflow.ExecuteActivity(ctx, GetRosterActivity, RosterRequest{
				Sport:    match.Sport,
				League:   match.League,
				TeamID:   wizard.TeamID,
				TeamName: wizard.TeamName,
			}).Get(ctx, &players)
			if rosterErr != nil {
				logger.Error("Failed to fetch roster", "teamID", wizard.TeamID, "error", rosterErr)
				wizard.FailRoster()
			} else {
				wizard.SetRoster(players)
			}
		}

		if submitRequested {
			request := wizard.Request()
			var analysis PredictionAnalysis
			submitErr := workflow.ExecuteActivity(ctx, SubmitPredictionActivity, request).Get(ctx, &analysis)
			if submitErr != nil {
				logger.Error("Prediction submission failed", "player", request.PlayerName, "error", submitErr)
				wizard.FailSubmit(submitErrorMessage)
			} else {
				wizard.ShowAnalysis(analysis)
				outcome = fmt.Sprintf("%s %s %g %s for %s: %s confidence",
					analysis.Player, analysis.PredictionType, analysis.TargetValue,
					analysis.Category, analysis.Team, analysis.ConfidencePercent())
			}
		}
	}

	logger.Info("Prediction workflow completed", "matchID", match.ID, "outcome", outcome)
	return outcome, nil
}
