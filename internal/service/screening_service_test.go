package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lovinamom/internal/domain"
	"lovinamom/internal/sheet"
	"lovinamom/internal/store"
)

// stubSubmitter records the rows it was asked to append.
type stubSubmitter struct {
	submissions []sheet.ScreeningSubmission
	err         error
}

func (s *stubSubmitter) SubmitScreening(_ context.Context, sub sheet.ScreeningSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.submissions = append(s.submissions, sub)
	return nil
}

// newTestScreening wires the intake service over the seed template
// question set (the dashboard fetch fails on purpose, so Questions
// degrades to the template).
func newTestScreening(submitter *stubSubmitter) *ScreeningService {
	dashboard := NewDashboardService(
		&stubFetcher{err: errors.New("endpoint unreachable")},
		store.NewMemoryKV(),
		zap.NewNop(),
	)
	svc := NewScreeningService(submitter, dashboard, zap.NewNop())
	svc.SetNowFuncForTest(func() time.Time {
		return time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	})
	svc.SetIDFuncForTest(func() string { return "11111111-2222-3333-4444-555555555555" })
	return svc
}

// templateSafeAnswers matches every seed question's safe answer.
func templateSafeAnswers() map[string]domain.Answer {
	answers := make(map[string]domain.Answer, len(domain.TemplateQuestions))
	for _, q := range domain.TemplateQuestions {
		answers[q.ID] = q.SafeAnswer
	}
	return answers
}

func TestSubmit_ValidationRejectsWithoutWrite(t *testing.T) {
	submitter := &stubSubmitter{}
	svc := newTestScreening(submitter)

	cases := []SubmitRequest{
		{Name: "  ", Age: 28, PregnancyWeeks: 20},
		{Name: "Siti", Age: 0, PregnancyWeeks: 20},
		{Name: "Siti", Age: 28, PregnancyWeeks: 0},
	}
	for _, req := range cases {
		_, err := svc.Submit(context.Background(), req)
		require.Error(t, err)
		require.True(t, IsValidation(err), "req=%+v", req)
	}
	require.Empty(t, submitter.submissions)
}

func TestSubmit_SafePipeline(t *testing.T) {
	submitter := &stubSubmitter{}
	svc := newTestScreening(submitter)

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Name:           "  siti aminah ",
		Age:            28,
		PregnancyWeeks: 20,
		Answers:        templateSafeAnswers(),
		Notes:          "first trip",
	})
	require.NoError(t, err)
	require.Equal(t, "11111111-2222-3333-4444-555555555555", resp.SubmissionID)
	require.Equal(t, domain.ZoneSafe, resp.Status)
	require.Equal(t, "ZONA HIJAU", resp.StatusLabel)
	require.Empty(t, resp.RiskFactors)
	require.Equal(t, "Selamat! Anda aman untuk berwisata.", resp.Message)

	require.Len(t, submitter.submissions, 1)
	sub := submitter.submissions[0]
	require.Equal(t, "siti aminah", sub.Name)
	require.Equal(t, "ZONA HIJAU", sub.Status)
	require.Empty(t, sub.RiskFactors)
	require.Equal(t, "first trip", sub.Notes)
}

// TestSubmit_RiskMismatch: the sheet row carries the Indonesian reason
// string regardless of the requested response language.
func TestSubmit_RiskMismatch(t *testing.T) {
	submitter := &stubSubmitter{}
	svc := newTestScreening(submitter)

	answers := templateSafeAnswers()
	answers["q6"] = domain.AnswerYes // bleeding question, RISK

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Name:           "Siti",
		Age:            28,
		PregnancyWeeks: 20,
		Answers:        answers,
		Lang:           domain.LangEN,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ZoneDanger, resp.Status)
	require.Equal(t, "ZONA MERAH", resp.StatusLabel)
	require.Equal(t, []string{"Failed: Any bleeding/fluid leakage/severe pain?"}, resp.RiskFactors)
	require.Equal(t, "Sorry, for your safety you are not permitted to join.", resp.Message)

	require.Len(t, submitter.submissions, 1)
	require.Equal(t,
		"Gagal pada: Apakah mengalami perdarahan/keluar air/nyeri hebat?",
		submitter.submissions[0].RiskFactors,
	)
}

func TestSubmit_OutOfWindowIsDanger(t *testing.T) {
	svc := newTestScreening(&stubSubmitter{})

	resp, err := svc.Submit(context.Background(), SubmitRequest{
		Name:           "Siti",
		Age:            28,
		PregnancyWeeks: 10,
		Answers:        templateSafeAnswers(),
	})
	require.NoError(t, err)
	require.Equal(t, domain.ZoneDanger, resp.Status)
	require.Equal(t, []string{"Usia kehamilan < 14 minggu"}, resp.RiskFactors)
	require.Equal(t, "Maaf, demi keselamatan, Anda tidak diizinkan ikut.", resp.Message)
}

// TestSubmit_WriteFailureSurfaces: a failed sheet write is never hidden
// behind a cached result.
func TestSubmit_WriteFailureSurfaces(t *testing.T) {
	writeErr := &sheet.Error{Kind: sheet.FailServerFault, Action: sheet.ActionSubmitScreening, Message: "gateway fault"}
	svc := newTestScreening(&stubSubmitter{err: writeErr})

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:           "Siti",
		Age:            28,
		PregnancyWeeks: 20,
		Answers:        templateSafeAnswers(),
	})
	require.Error(t, err)
	kind, ok := sheet.KindOf(err)
	require.True(t, ok)
	require.Equal(t, sheet.FailServerFault, kind)
}
