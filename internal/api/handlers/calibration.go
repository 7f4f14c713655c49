package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sells-group/learning-loop/internal/engine"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

const defaultCalibrationHistoryLimit = 20

// Calibrator defines the engine operation for triggering a calibration run.
type Calibrator interface {
	Recalibrate(ctx context.Context, trigger domain.CalibrationTrigger, actorID string) ([]domain.CalibrationResult, error)
}

// CalibrationHistoryProvider defines the store method for durable run history.
type CalibrationHistoryProvider interface {
	ListCalibrationRuns(ctx context.Context, limit int) ([]domain.CalibrationRun, error)
}

// CalibrationHandler handles calibration trigger and history endpoints.
type CalibrationHandler struct {
	calibrator Calibrator
	store      CalibrationHistoryProvider
}

// NewCalibrationHandler creates a new CalibrationHandler.
func NewCalibrationHandler(c Calibrator, s CalibrationHistoryProvider) *CalibrationHandler {
	return &CalibrationHandler{calibrator: c, store: s}
}

// --- Input/Output types ---

// RunCalibrationInput is the input for a manual calibration run.
type RunCalibrationInput struct {
	Body struct {
		ActorID string `json:"actor_id,omitempty" doc:"Operator triggering the run"`
	}
}

// RunCalibrationOutput is the response for a completed calibration run.
type RunCalibrationOutput struct {
	Body struct {
		Results []domain.CalibrationResult `json:"results"`
	}
}

// ListCalibrationHistoryInput is the input for the calibration run history.
type ListCalibrationHistoryInput struct {
	Limit int `query:"limit" doc:"Number of runs (default 20)" minimum:"1" maximum:"100"`
}

// ListCalibrationHistoryOutput is the calibration history response, newest
// first.
type ListCalibrationHistoryOutput struct {
	Body struct {
		Runs []domain.CalibrationRun `json:"runs"`
	}
}

// --- Handlers ---

// RunCalibration triggers a manual calibration run across all tools.
func (h *CalibrationHandler) RunCalibration(
	ctx context.Context,
	input *RunCalibrationInput,
) (*RunCalibrationOutput, error) {
	results, err := h.calibrator.Recalibrate(ctx, domain.TriggerManual, input.Body.ActorID)
	if err != nil {
		if errors.Is(err, engine.ErrCalibrationRunning) {
			return nil, huma.Error409Conflict("calibration run already in progress")
		}
		return nil, huma.Error500InternalServerError("calibration failed: " + err.Error())
	}

	if results == nil {
		results = []domain.CalibrationResult{}
	}

	resp := &RunCalibrationOutput{}
	resp.Body.Results = results
	return resp, nil
}

// ListCalibrationHistory returns persisted calibration runs, newest first.
func (h *CalibrationHandler) ListCalibrationHistory(
	ctx context.Context,
	input *ListCalibrationHistoryInput,
) (*ListCalibrationHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultCalibrationHistoryLimit
	}

	runs, err := h.store.ListCalibrationRuns(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching calibration history failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.CalibrationRun{}
	}

	resp := &ListCalibrationHistoryOutput{}
	resp.Body.Runs = runs
	return resp, nil
}

// RegisterCalibrationRoutes registers calibration endpoints with the Huma API.
func RegisterCalibrationRoutes(api huma.API, h *CalibrationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-calibration",
		Method:      http.MethodPost,
		Path:        "/api/v1/calibration/run",
		Summary:     "Trigger a calibration run",
		Description: "Runs confidence-weight calibration across all tools over the lookback window.",
		Tags:        []string{"calibration"},
		Errors:      []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.RunCalibration)

	huma.Register(api, huma.Operation{
		OperationID: "list-calibration-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/calibration/history",
		Summary:     "List calibration run history",
		Description: "Returns persisted calibration runs, newest first.",
		Tags:        []string{"calibration"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListCalibrationHistory)
}
