package rest

import (
	"net/http"
	"strconv"

	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/simulator"
)

const (
	defaultListLimit = 20
	maxListLimit     = 500
)

type CreateSimulationRequest struct {
	Name      string              `json:"name,omitempty"`
	Processes []simulator.Process `json:"processes"`
}

type ListSimulationsResponse struct {
	Runs []*domain.SimulationRun `json:"runs"`
}

// CreateSimulation godoc
// @Summary Run a simulation
// @Description Simulate preemptive priority scheduling over the given processes and store the run.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSimulationRequest true "Process set"
// @Success 200 {object} SuccessResponse[domain.SimulationRun]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/simulations [post]
func (h *Handler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateSimulationRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	run, err := h.Svc.RunSimulation(ctx, req.Name, req.Processes)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(run))
}

// ListSimulations godoc
// @Summary List stored simulation runs
// @Description Newest runs first.
// @Tags Simulations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of runs (default 20, at most 500)"
// @Param fingerprint query string false "Only runs of this process set"
// @Success 200 {object} SuccessResponse[ListSimulationsResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/simulations [get]
func (h *Handler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := int64(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > maxListLimit {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "limit must be an integer between 1 and 500", err)
			return
		}
		limit = parsed
	}

	opt := &domain.QueryRunOptions{Limit: limit}
	if fingerprint := r.URL.Query().Get("fingerprint"); fingerprint != "" {
		opt.Fingerprints = []string{fingerprint}
	}
	if err := h.Svc.ListRuns(ctx, opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	runs := opt.Result
	if runs == nil {
		runs = []*domain.SimulationRun{}
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&ListSimulationsResponse{Runs: runs}))
}

// GetSimulation godoc
// @Summary Get a stored simulation run
// @Tags Simulations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Run ID"
// @Success 200 {object} SuccessResponse[domain.SimulationRun]
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/simulations/{id} [get]
func (h *Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	run, err := h.Svc.GetRun(ctx, h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(run))
}

// DeleteSimulation godoc
// @Summary Delete a stored simulation run
// @Tags Simulations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Run ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/simulations/{id} [delete]
func (h *Handler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteRun(ctx, h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}
