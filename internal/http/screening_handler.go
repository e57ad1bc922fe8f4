package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"lovinamom/internal/service"
)

// ScreeningHandler serves the public intake form: question list, form
// submission, and the fire-and-forget traffic ping.
type ScreeningHandler struct {
	screening *service.ScreeningService
	dashboard *service.DashboardService
	system    *service.SystemService
	traffic   *service.TrafficService
	logger    *zap.Logger
}

func NewScreeningHandler(
	screening *service.ScreeningService,
	dashboard *service.DashboardService,
	system *service.SystemService,
	traffic *service.TrafficService,
	logger *zap.Logger,
) *ScreeningHandler {
	return &ScreeningHandler{
		screening: screening,
		dashboard: dashboard,
		system:    system,
		traffic:   traffic,
		logger:    logger,
	}
}

// GetQuestions returns the active question set in display order.
func (h *ScreeningHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.dashboard.Questions(r.Context())))
}

// Submit runs one intake submission through the classifier and the sheet.
func (h *ScreeningHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !h.system.Status(r.Context()) {
		writeJSON(w, http.StatusForbidden, Fail("Pendaftaran ditutup sementara"))
		return
	}

	var req service.SubmitRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	resp, err := h.screening.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// LogTraffic records a page-open event. Always answers ok; the sheet
// write happens on a best-effort basis.
func (h *ScreeningHandler) LogTraffic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
		UA  string  `json:"ua"`
	}
	if err := readBodyJSON(r, 64<<10, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if req.UA == "" {
		req.UA = r.UserAgent()
	}
	h.traffic.Log(r.Context(), req.Lat, req.Lng, req.UA)
	writeJSON(w, http.StatusOK, Ok(true))
}
