package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	predictions "temporal-prediction-dashboard"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

type Handlers struct {
	temporalClient client.Client
}

func NewHandlers(temporalClient client.Client) *Handlers {
	return &Handlers{
		temporalClient: temporalClient,
	}
}

// Routes mounts the dashboard API. The frontend drives the whole wizard
// through these endpoints: board reads, wizard lifecycle, and one POST per
// selection step.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/sports", h.GetSports)
	r.Get("/leagues/{sport}", h.GetLeagues)
	r.Get("/categories/{sport}", h.GetCategories)

	r.Post("/board", h.StartBoard)
	r.Get("/board/{sport}/{league}", h.GetBoard)

	r.Post("/wizards", h.StartWizard)
	r.Get("/wizards", h.GetWizards)
	r.Get("/wizards/{id}", h.GetWizard)
	r.Post("/wizards/{id}/team", h.SelectTeam)
	r.Post("/wizards/{id}/player", h.SelectPlayer)
	r.Post("/wizards/{id}/category", h.SelectCategory)
	r.Post("/wizards/{id}/prediction", h.SetPrediction)
	r.Post("/wizards/{id}/submit", h.SubmitPrediction)
	r.Delete("/wizards/{id}", h.CloseWizard)

	return r
}

// StartWizardRequest identifies the match a new wizard opens on. The match
// itself is resolved from the running board so the wizard always starts
// from the enriched record the user clicked.
type StartWizardRequest struct {
	Sport   string `json:"sport"`
	League  string `json:"league"`
	MatchID string `json:"matchId"`
}

// WizardSummary is one row in the running-wizard listing.
type WizardSummary struct {
	WizardID string                  `json:"wizardId"`
	RunID    string                  `json:"runId"`
	Stage    predictions.WizardStage `json:"stage"`
	Match    string                  `json:"match"`
	League   string                  `json:"league,omitempty"`
	Team     string                  `json:"team,omitempty"`
	Player   string                  `json:"player,omitempty"`
}

// GetSports returns the supported sports.
func (h *Handlers) GetSports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, predictions.Sports)
}

// GetLeagues returns available leagues for a sport.
func (h *Handlers) GetLeagues(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	leagues := predictions.LeaguesForSport(sport)
	if leagues == nil {
		http.Error(w, "Unsupported sport", http.StatusBadRequest)
		return
	}
	writeJSON(w, leagues)
}

// GetCategories returns the prediction categories offered for a sport.
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	categories := predictions.CategoriesForSport(sport)
	if categories == nil {
		http.Error(w, "Unsupported sport", http.StatusBadRequest)
		return
	}
	writeJSON(w, categories)
}

// StartBoard starts the match board workflow for a sport/league. A board
// already running for the same pair is left alone.
func (h *Handlers) StartBoard(w http.ResponseWriter, r *http.Request) {
	var req predictions.BoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Sport == "" || req.League == "" {
		http.Error(w, "Sport and league required", http.StatusBadRequest)
		return
	}

	workflowID := boardWorkflowID(req.Sport, req.League)

	// Check if Temporal client is available
	if h.temporalClient == nil {
		writeJSON(w, map[string]string{
			"workflowId": workflowID,
			"message":    "Demo mode: board request received (Temporal server not connected)",
		})
		return
	}

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue(),
	}

	we, err := h.temporalClient.ExecuteWorkflow(context.Background(), options, predictions.MatchBoardWorkflow, req)
	if err != nil {
		if strings.Contains(err.Error(), "already") {
			writeJSON(w, map[string]string{
				"workflowId": workflowID,
				"message":    "Board already running",
			})
			return
		}
		http.Error(w, fmt.Sprintf("Failed to start board workflow: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{
		"workflowId": we.GetID(),
		"runId":      we.GetRunID(),
		"message":    "Board started successfully",
	})
}

// GetBoard returns the current resolved board for a sport/league.
func (h *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	league := chi.URLParam(r, "league")

	// Check if Temporal client is available
	if h.temporalClient == nil {
		writeJSON(w, predictions.MatchBoard{Sport: sport, League: league, Matches: []predictions.Match{}})
		return
	}

	board, err := h.queryBoard(r.Context(), sport, league)
	if err != nil {
		http.Error(w, "No match board running for this sport/league", http.StatusNotFound)
		return
	}
	writeJSON(w, board)
}

// StartWizard opens a prediction wizard on one of the board's matches.
func (h *Handlers) StartWizard(w http.ResponseWriter, r *http.Request) {
	var req StartWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Sport == "" || req.League == "" || req.MatchID == "" {
		http.Error(w, "Sport, league and matchId required", http.StatusBadRequest)
		return
	}

	// Check if Temporal client is available
	if h.temporalClient == nil {
		writeJSON(w, map[string]string{
			"wizardId": "demo-wizard",
			"message":  "Demo mode: wizard request received (Temporal server not connected)",
		})
		return
	}

	board, err := h.queryBoard(r.Context(), req.Sport, req.League)
	if err != nil {
		http.Error(w, "No match board running for this sport/league", http.StatusNotFound)
		return
	}

	var match *predictions.Match
	for i := range board.Matches {
		if board.Matches[i].ID == req.MatchID {
			match = &board.Matches[i]
			break
		}
	}
	if match == nil {
		http.Error(w, "Match not found on the board", http.StatusNotFound)
		return
	}

	wizardID := "wizard-" + uuid.NewString()
	options := client.StartWorkflowOptions{
		ID:        wizardID,
		TaskQueue: taskQueue(),
	}

	we, err := h.temporalClient.ExecuteWorkflow(context.Background(), options, predictions.PredictionWorkflow, *match)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to start wizard workflow: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{
		"wizardId": we.GetID(),
		"runId":    we.GetRunID(),
		"message":  "Wizard started successfully",
	})
}

// GetWizards returns the currently running prediction wizards.
func (h *Handlers) GetWizards(w http.ResponseWriter, r *http.Request) {
	summaries := []WizardSummary{}

	// Check if Temporal client is available
	if h.temporalClient == nil {
		writeJSON(w, summaries)
		return
	}

	listRequest := &workflowservice.ListWorkflowExecutionsRequest{
		Query: "WorkflowId STARTS_WITH 'wizard-' AND ExecutionStatus = 'Running'",
	}

	resp, err := h.temporalClient.ListWorkflow(r.Context(), listRequest)
	if err != nil {
		// Degrade to an empty list rather than failing the dashboard.
		fmt.Printf("Failed to list wizard workflows: %v\n", err)
		writeJSON(w, summaries)
		return
	}

	for _, execution := range resp.Executions {
		summary := WizardSummary{
			WizardID: execution.Execution.WorkflowId,
			RunID:    execution.Execution.RunId,
		}

		result, err := h.temporalClient.QueryWorkflow(r.Context(), summary.WizardID, summary.RunID, predictions.QueryWizardState)
		if err != nil {
			fmt.Printf("Failed to query wizard %s: %v\n", summary.WizardID, err)
			continue
		}
		var wizard predictions.Wizard
		if err := result.Get(&wizard); err != nil {
			fmt.Printf("Failed to decode wizard state for %s: %v\n", summary.WizardID, err)
			continue
		}

		summary.Stage = wizard.Stage
		summary.Match = wizard.Match.ShortName
		summary.League = predictions.LeagueName(wizard.Match.League)
		summary.Team = wizard.TeamName
		summary.Player = wizard.PlayerName
		summaries = append(summaries, summary)
	}

	writeJSON(w, summaries)
}

// GetWizard returns the full wizard state for one wizard id.
func (h *Handlers) GetWizard(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "id")

	// Check if Temporal client is available
	if h.temporalClient == nil {
		http.Error(w, "Temporal server not connected", http.StatusServiceUnavailable)
		return
	}

	result, err := h.temporalClient.QueryWorkflow(r.Context(), wizardID, "", predictions.QueryWizardState)
	if err != nil {
		http.Error(w, "Wizard not found", http.StatusNotFound)
		return
	}

	var wizard predictions.Wizard
	if err := result.Get(&wizard); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode wizard state: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, wizard)
}

// SelectTeam signals a team selection into the wizard.
func (h *Handlers) SelectTeam(w http.ResponseWriter, r *http.Request) {
	var sel predictions.TeamSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	h.signalWizard(w, r, predictions.SignalSelectTeam, sel)
}

// SelectPlayer signals a player selection into the wizard.
func (h *Handlers) SelectPlayer(w http.ResponseWriter, r *http.Request) {
	var sel predictions.PlayerSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	h.signalWizard(w, r, predictions.SignalSelectPlayer, sel)
}

// SelectCategory signals a category selection into the wizard.
func (h *Handlers) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var sel predictions.CategorySelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	h.signalWizard(w, r, predictions.SignalSelectCategory, sel)
}

// SetPrediction signals the over/under toggle and target value.
func (h *Handlers) SetPrediction(w http.ResponseWriter, r *http.Request) {
	var input predictions.PredictionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	h.signalWizard(w, r, predictions.SignalSetPrediction, input)
}

// SubmitPrediction signals the wizard to submit its selections.
func (h *Handlers) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	h.signalWizard(w, r, predictions.SignalSubmit, nil)
}

// CloseWizard signals the wizard to tear down.
func (h *Handlers) CloseWizard(w http.ResponseWriter, r *http.Request) {
	h.signalWizard(w, r, predictions.SignalClose, nil)
}

func (h *Handlers) signalWizard(w http.ResponseWriter, r *http.Request, signal string, payload interface{}) {
	wizardID := chi.URLParam(r, "id")

	// Check if Temporal client is available
	if h.temporalClient == nil {
		writeJSON(w, map[string]string{
			"message": "Demo mode: signal received (Temporal server not connected)",
		})
		return
	}

	if err := h.temporalClient.SignalWorkflow(r.Context(), wizardID, "", signal, payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to signal wizard: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{
		"message": "Signal delivered",
	})
}

func (h *Handlers) queryBoard(ctx context.Context, sport, league string) (predictions.MatchBoard, error) {
	var board predictions.MatchBoard
	result, err := h.temporalClient.QueryWorkflow(ctx, boardWorkflowID(sport, league), "", predictions.QueryMatchBoard)
	if err != nil {
		return board, err
	}
	if err := result.Get(&board); err != nil {
		return board, err
	}
	return board, nil
}

func boardWorkflowID(sport, league string) string {
	return fmt.Sprintf("board-%s-%s", sport, league)
}

func taskQueue() string {
	if tq := os.Getenv("TASK_QUEUE"); tq != "" {
		return tq
	}
	return predictions.TaskQueueName
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
