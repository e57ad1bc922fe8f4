package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"lovinamom/internal/service"
)

// DashboardHandler serves the normalized dataset to the staff dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// Get returns the current snapshot. ?force=true refreshes from the sheet
// first; a refresh racing an in-flight fetch serves the stale snapshot
// instead of queueing a second request.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	snap, err := h.dashboard.Get(r.Context(), force)
	if err != nil && !errors.Is(err, service.ErrFetchInFlight) {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(snap))
}
