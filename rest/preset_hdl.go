package rest

import (
	"net/http"

	"github.com/Gthulhu/priosim/simulator"
)

type ListPresetsResponse struct {
	Presets []string `json:"presets"`
}

type PresetResponse struct {
	Name      string              `json:"name"`
	Processes []simulator.Process `json:"processes"`
}

// ListPresets godoc
// @Summary List built-in process sets
// @Tags Presets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse[ListPresetsResponse]
// @Router /api/v1/presets [get]
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&ListPresetsResponse{Presets: h.Svc.ListPresets(ctx)}))
}

// GetPreset godoc
// @Summary Get a built-in process set
// @Tags Presets
// @Produce json
// @Security BearerAuth
// @Param name path string true "Preset name"
// @Success 200 {object} SuccessResponse[PresetResponse]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/presets/{name} [get]
func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := h.GetPathParam(r, "name")
	procs, err := h.Svc.GetPreset(ctx, name)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&PresetResponse{Name: name, Processes: procs}))
}
