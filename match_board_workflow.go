package predictions

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// How long a board keeps serving queries after its last load or refresh.
const boardLifetime = 6 * time.Hour

// MatchBoardWorkflow loads the match list for one sport/league and
// enriches every started or finished match with scoring detail, merging
// each detail response into a patch map keyed by match id as it lands. The
// matchBoard query resolves every match against that map, so the board
// fills in progressively while detail fetches are still in flight.
//
// A refresh signal replaces the whole list and re-runs enrichment. Detail
// fetches are independent: one match failing to enrich never touches the
// others, and a failed list load leaves the board empty rather than
// failing the workflow.
func MatchBoardWorkflow(ctx workflow.Context, req BoardRequest) (MatchBoard, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting Match Board Workflow", "sport", req.Sport, "league", req.League)

	var matches []Match
	details := make(map[string]MatchDetail)

	err := workflow.SetQueryHandler(ctx, QueryMatchBoard, func() (MatchBoard, error) {
		return MatchBoard{
			Sport:   req.Sport,
			League:  req.League,
			Matches: resolveMatches(matches, details),
		}, nil
	})
	if err != nil {
		logger.Error("Failed to set query handler", "error", err)
		return MatchBoard{}, err
	}

	// Single attempts only: a failed list load leaves an empty board, a
	// failed detail fetch leaves that match un-enriched.
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	loadBoard := func() {
		var fresh []Match
		if err := workflow.ExecuteActivity(ctx, GetMatchesActivity, req).Get(ctx, &fresh); err != nil {
			logger.Error("Failed to load match list", "sport", req.Sport, "league", req.League, "error", err)
			fresh = nil
		}
		matches = fresh
		details = make(map[string]MatchDetail)

		// Fire one detail fetch per eligible match, all concurrent, and
		// merge responses in whatever order they resolve.
		selector := workflow.NewSelector(ctx)
		pending := 0
		for _, m := range matches {
			if !m.NeedsDetail() {
				continue
			}
			matchID := m.ID
			future := workflow.ExecuteActivity(ctx, GetMatchDetailActivity, DetailRequest{
				MatchID: matchID,
				Sport:   req.Sport,
				League:  req.League,
			})
			pending++
			selector.AddFuture(future, func(f workflow.Future) {
				pending--
				var detail MatchDetail
				if err := f.Get(ctx, &detail); err != nil {
					logger.Error("Failed to enrich match", "matchID", matchID, "error", err)
					return
				}
				details[detail.MatchID] = detail
			})
		}
		for pending > 0 {
			selector.Select(ctx)
		}
	}

	loadBoard()

	refreshCh := workflow.GetSignalChannel(ctx, SignalRefresh)
	deadline := workflow.Now(ctx).Add(boardLifetime)

	for {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, deadline.Sub(workflow.Now(ctx)))

		expired := false
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(refreshCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
		})
		selector.AddFuture(timer, func(f workflow.Future) {
			expired = true
		})
		selector.Select(ctx)
		cancelTimer()

		if expired {
			break
		}

		logger.Info("Refreshing match board", "sport", req.Sport, "league", req.League)
		loadBoard()
		deadline = workflow.Now(ctx).Add(boardLifetime)
	}

	logger.Info("Match board workflow completed", "sport", req.Sport, "league", req.League, "matches", len(matches))
	return MatchBoard{
		Sport:   req.Sport,
		League:  req.League,
		Matches: resolveMatches(matches, details),
	}, nil
}

// resolveMatches overlays each match with its detail patch when one has
// arrived, falling back to the raw match otherwise. Patches for ids no
// longer on the board are simply never resolved against, so a late detail
// response is harmless. Merging is per-id and order independent.
func resolveMatches(matches []Match, details map[string]MatchDetail) []Match {
	resolved := make([]Match, len(matches))
	for i, m := range matches {
		if detail, ok := details[m.ID]; ok {
			m.HomeTeam = patchTeam(m.HomeTeam, detail.Home)
			m.AwayTeam = patchTeam(m.AwayTeam, detail.Away)
		}
		resolved[i] = m
	}
	return resolved
}

func patchTeam(team MatchTeam, detail TeamDetail) MatchTeam {
	team.Scorers = detail.Scorers
	if detail.Score != "" {
		team.Score = detail.Score
	}
	return team
}
