package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lovinamom/internal/domain"
)

type stubContentClient struct {
	sheetName string
	rows      []map[string]any
	updateErr error
	url       string
	uploadErr error
}

func (s *stubContentClient) UpdateData(_ context.Context, sheetName string, rows []map[string]any) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.sheetName = sheetName
	s.rows = rows
	return nil
}

func (s *stubContentClient) UploadImage(context.Context, string, string, string) (string, error) {
	return s.url, s.uploadErr
}

func TestUpdateQuestions_WritesQuestionSheet(t *testing.T) {
	client := &stubContentClient{}
	svc := NewContentService(client, zap.NewNop())

	err := svc.UpdateQuestions(context.Background(), []domain.ScreeningQuestion{
		{ID: "q1", Index: 1, TextID: "Apakah ibu merasa sehat?", TextEN: "Do you feel healthy?", Category: domain.CategoryCore, SafeAnswer: domain.AnswerYes},
		{ID: "q2", Index: 2, TextID: "Apakah ada perdarahan?", Category: domain.CategoryRisk, SafeAnswer: domain.AnswerNo},
	})
	require.NoError(t, err)
	require.Equal(t, QuestionsSheetName, client.sheetName)
	require.Len(t, client.rows, 2)
	require.Equal(t, "q1", client.rows[0]["id"])
	require.Equal(t, "RISK", client.rows[1]["type"])
	require.Equal(t, "NO", client.rows[1]["safe_answer"])
}

func TestUpdateQuestions_Validation(t *testing.T) {
	client := &stubContentClient{}
	svc := NewContentService(client, zap.NewNop())
	valid := domain.ScreeningQuestion{ID: "q1", Index: 1, TextID: "t", Category: domain.CategoryCore, SafeAnswer: domain.AnswerYes}

	cases := [][]domain.ScreeningQuestion{
		nil, // empty set
		{{Index: 1, TextID: "t"}},            // missing id
		{valid, valid},                       // duplicate id
		{{ID: "q1", Index: 0, TextID: "t"}},  // non-positive index
		{{ID: "q1", Index: 1, TextID: "  "}}, // blank text
	}
	for i, questions := range cases {
		err := svc.UpdateQuestions(context.Background(), questions)
		require.Error(t, err, "case %d", i)
		require.True(t, IsValidation(err), "case %d", i)
	}
	require.Nil(t, client.rows)
}

func TestUploadImage(t *testing.T) {
	client := &stubContentClient{url: "https://drive.example/img.png"}
	svc := NewContentService(client, zap.NewNop())

	url, err := svc.UploadImage(context.Background(), "aGVsbG8=", "img.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "https://drive.example/img.png", url)

	_, err = svc.UploadImage(context.Background(), "", "img.png", "image/png")
	require.True(t, IsValidation(err))
	_, err = svc.UploadImage(context.Background(), "aGVsbG8=", "", "image/png")
	require.True(t, IsValidation(err))

	client.uploadErr = errors.New("endpoint unreachable")
	_, err = svc.UploadImage(context.Background(), "aGVsbG8=", "img.png", "image/png")
	require.ErrorIs(t, err, client.uploadErr)
}
