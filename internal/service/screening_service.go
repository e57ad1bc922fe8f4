package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lovinamom/internal/domain"
	"lovinamom/internal/screening"
	"lovinamom/internal/sheet"
)

// ScreeningSubmitter is the slice of the sheet client the intake flow needs.
type ScreeningSubmitter interface {
	SubmitScreening(ctx context.Context, submission sheet.ScreeningSubmission) error
}

// SubmitRequest is one completed intake form.
type SubmitRequest struct {
	Name           string                   `json:"name"`
	Age            int                      `json:"age"`
	PregnancyWeeks int                      `json:"pregnancyWeeks"`
	Answers        map[string]domain.Answer `json:"answers"`
	Notes          string                   `json:"notes"`
	Lat            float64                  `json:"lat,omitempty"`
	Lng            float64                  `json:"lng,omitempty"`
	LocationName   string                   `json:"locationName,omitempty"`
	Lang           domain.Lang              `json:"lang,omitempty"`
}

// SubmitResponse is what the intake form renders on its result screen.
type SubmitResponse struct {
	SubmissionID string      `json:"submissionId"`
	Status       domain.Zone `json:"status"`
	StatusLabel  string      `json:"statusLabel"`
	RiskFactors  []string    `json:"riskFactors"`
	Message      string      `json:"message"`
}

// ScreeningService runs the intake pipeline: validate, classify, submit.
type ScreeningService struct {
	submitter ScreeningSubmitter
	dashboard *DashboardService
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

func NewScreeningService(submitter ScreeningSubmitter, dashboard *DashboardService, logger *zap.Logger) *ScreeningService {
	return &ScreeningService{
		submitter: submitter,
		dashboard: dashboard,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SetNowFuncForTest pins the submission timestamp.
func (s *ScreeningService) SetNowFuncForTest(now func() time.Time) { s.now = now }

// SetIDFuncForTest pins submission id generation.
func (s *ScreeningService) SetIDFuncForTest(newID func() string) { s.newID = newID }

// Submit classifies the questionnaire and writes the result row. A failed
// write is always reported — reads may fall back to cache, writes never do.
func (s *ScreeningService) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return SubmitResponse{}, requiredField("name")
	}
	if req.Age <= 0 {
		return SubmitResponse{}, &ValidationError{Field: "age", Reason: "must be positive"}
	}
	if req.PregnancyWeeks <= 0 {
		return SubmitResponse{}, &ValidationError{Field: "pregnancyWeeks", Reason: "must be positive"}
	}

	questions := s.dashboard.Questions(ctx)
	status, reasons := screening.Classify(req.PregnancyWeeks, req.Answers, questions)

	lang := req.Lang
	if lang == "" {
		lang = domain.LangID
	}

	submission := sheet.ScreeningSubmission{
		SubmissionID:   s.newID(),
		Name:           strings.TrimSpace(req.Name),
		Age:            req.Age,
		PregnancyWeeks: req.PregnancyWeeks,
		Status:         status.SheetLabel(),
		// the sheet column keeps the legacy comma-joined Indonesian strings
		RiskFactors:  strings.Join(screening.RenderReasons(reasons, domain.LangID, questions), ", "),
		Notes:        req.Notes,
		Lat:          req.Lat,
		Lng:          req.Lng,
		LocationName: req.LocationName,
	}

	if err := s.submitter.SubmitScreening(ctx, submission); err != nil {
		s.logger.Error("screening submit failed",
			zap.String("submission_id", submission.SubmissionID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return SubmitResponse{}, err
	}

	s.logger.Info("screening submitted",
		zap.String("submission_id", submission.SubmissionID),
		zap.String("status", string(status)),
		zap.Int("risk_factors", len(reasons)),
	)

	return SubmitResponse{
		SubmissionID: submission.SubmissionID,
		Status:       status,
		StatusLabel:  status.SheetLabel(),
		RiskFactors:  screening.RenderReasons(reasons, lang, questions),
		Message:      resultMessage(status, lang),
	}, nil
}

// resultMessage is the visitor-facing verdict shown on the result screen.
func resultMessage(status domain.Zone, lang domain.Lang) string {
	if lang == domain.LangEN {
		switch status {
		case domain.ZoneSafe:
			return "Congratulations! You are safe to join the tour."
		case domain.ZoneCaution:
			return "Attention! Special supervision is required."
		default:
			return "Sorry, for your safety you are not permitted to join."
		}
	}
	switch status {
	case domain.ZoneSafe:
		return "Selamat! Anda aman untuk berwisata."
	case domain.ZoneCaution:
		return "Perhatian! Dibutuhkan pengawasan khusus."
	default:
		return "Maaf, demi keselamatan, Anda tidak diizinkan ikut."
	}
}
