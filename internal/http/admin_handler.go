package httpapi

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"lovinamom/internal/domain"
	"lovinamom/internal/service"
)

// AdminHandler serves the staff-only surface: system lock, content
// management, image upload, and the xlsx export.
type AdminHandler struct {
	system    *service.SystemService
	content   *service.ContentService
	dashboard *service.DashboardService
	logger    *zap.Logger
}

func NewAdminHandler(
	system *service.SystemService,
	content *service.ContentService,
	dashboard *service.DashboardService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{system: system, content: content, dashboard: dashboard, logger: logger}
}

// SystemStatus handles GET (read lock state) and POST (toggle it).
func (h *AdminHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(map[string]bool{"isActive": h.system.Status(r.Context())}))
	case http.MethodPost:
		var req struct {
			IsActive bool `json:"isActive"`
		}
		if err := readBodyJSON(r, 4<<10, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		active, err := h.system.SetActive(r.Context(), req.IsActive)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]bool{"isActive": active}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// UpdateQuestions replaces the question sheet.
func (h *AdminHandler) UpdateQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Questions []domain.ScreeningQuestion `json:"questions"`
	}
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if err := h.content.UpdateQuestions(r.Context(), req.Questions); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(true))
}

// UploadImage forwards a base64 image to the sheet backend.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data     string `json:"data"`
		Name     string `json:"name"`
		MimeType string `json:"mimeType"`
	}
	// images arrive base64-inflated; allow a larger body
	if err := readBodyJSON(r, 16<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	url, err := h.content.UploadImage(r.Context(), req.Data, req.Name, req.MimeType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"url": url}))
}

// Export streams the screening list as an xlsx attachment.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dashboard.Get(r.Context(), false)
	if err != nil && !errors.Is(err, service.ErrFetchInFlight) {
		writeError(w, err)
		return
	}
	workbook, err := service.ScreeningWorkbook(snap.Data.Screening)
	if err != nil {
		h.logger.Error("export workbook failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("export failed"))
		return
	}
	filename := "screening-" + time.Now().Format("20060102-150405") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
