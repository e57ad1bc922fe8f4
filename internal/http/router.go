package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no need for a
// third-party router at this route count).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func methodOnly(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}

// RegisterPublicRoutes wires the intake form surface.
func (r *Router) RegisterPublicRoutes(s *ScreeningHandler, a *AuthHandler) {
	r.Handle("/api/v1/questions", methodOnly(http.MethodGet, s.GetQuestions))
	r.Handle("/api/v1/screening", methodOnly(http.MethodPost, s.Submit))
	r.Handle("/api/v1/traffic", methodOnly(http.MethodPost, s.LogTraffic))
	r.Handle("/api/v1/auth/pin", methodOnly(http.MethodPost, a.CheckPIN))
}

// RegisterDashboardRoutes wires the staff dashboard surface.
func (r *Router) RegisterDashboardRoutes(d *DashboardHandler, admin *AdminHandler) {
	r.Handle("/api/v1/dashboard", methodOnly(http.MethodGet, d.Get))
	// GET + POST on the same path
	r.Handle("/api/v1/system/status", admin.SystemStatus)
	r.Handle("/api/v1/admin/questions", methodOnly(http.MethodPost, admin.UpdateQuestions))
	r.Handle("/api/v1/admin/upload", methodOnly(http.MethodPost, admin.UploadImage))
	r.Handle("/api/v1/admin/export", methodOnly(http.MethodGet, admin.Export))
}
