package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"streaksim/domain/streak"
	apperrors "streaksim/internal/errors"
)

// simulateRequest is the wire shape of a simulation request. Pointer
// fields distinguish missing values from zero values so required fields
// can be enforced before the core runs.
type simulateRequest struct {
	SuccessRate  *float64 `json:"success_rate"`
	NumSequences *int     `json:"num_sequences"`
	Seed         *int64   `json:"seed"`
}

// handleSimulate runs one estimator run for a validated request body.
func (a *App) handleSimulate(w http.ResponseWriter, r *http.Request) {
	params, err := decodeParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.estimator.Run(r.Context(), params)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handlePreflight answers CORS preflight requests.
func (a *App) handlePreflight(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "OK"})
}

// handleHealth reports liveness.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeParams parses and validates the request body into typed run
// parameters. The core only ever sees already-validated parameters.
func decodeParams(r *http.Request) (streak.Params, error) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field != "" {
				return streak.Params{}, fmt.Errorf("Invalid input parameters: %s must be a number", typeErr.Field)
			}
			return streak.Params{}, fmt.Errorf("Invalid input parameters: request body must be a JSON object")
		}
		return streak.Params{}, fmt.Errorf("Invalid JSON in request body")
	}

	if req.SuccessRate == nil {
		return streak.Params{}, fmt.Errorf("Invalid input parameters: success_rate is required")
	}
	if req.NumSequences == nil {
		return streak.Params{}, fmt.Errorf("Invalid input parameters: num_sequences is required")
	}

	params := streak.Params{
		SuccessRate:  *req.SuccessRate,
		NumSequences: *req.NumSequences,
		Seed:         req.Seed,
	}
	return params, params.Validate()
}

// writeServiceError maps service errors onto HTTP status codes by their
// application error code.
func (a *App) writeServiceError(w http.ResponseWriter, err error) {
	switch apperrors.GetCode(err) {
	case apperrors.CodeValidationError, apperrors.CodeInvalidInput:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Error("simulation failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
