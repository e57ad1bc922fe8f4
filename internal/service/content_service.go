package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"lovinamom/internal/domain"
)

// QuestionsSheetName is the tab the content manager edits.
const QuestionsSheetName = "SCREENING_QUESTIONS"

// ContentClient is the slice of the sheet client content management needs.
type ContentClient interface {
	UpdateData(ctx context.Context, sheetName string, rows []map[string]any) error
	UploadImage(ctx context.Context, data, name, mimeType string) (string, error)
}

// ContentService lets staff rewrite the question set and upload images.
type ContentService struct {
	client ContentClient
	logger *zap.Logger
}

func NewContentService(client ContentClient, logger *zap.Logger) *ContentService {
	return &ContentService{client: client, logger: logger}
}

// UpdateQuestions replaces the SCREENING_QUESTIONS sheet wholesale.
func (c *ContentService) UpdateQuestions(ctx context.Context, questions []domain.ScreeningQuestion) error {
	if len(questions) == 0 {
		return &ValidationError{Field: "questions", Reason: "must not be empty"}
	}
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.ID) == "" {
			return requiredField("question id")
		}
		if seen[q.ID] {
			return &ValidationError{Field: "question id", Reason: "must be unique: " + q.ID}
		}
		seen[q.ID] = true
		if q.Index <= 0 {
			return &ValidationError{Field: "question index", Reason: "must be positive: " + q.ID}
		}
		if strings.TrimSpace(q.TextID) == "" {
			return &ValidationError{Field: "question text_id", Reason: "is required: " + q.ID}
		}
	}

	rows := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, map[string]any{
			"id":          q.ID,
			"index":       q.Index,
			"text_id":     q.TextID,
			"text_en":     q.TextEN,
			"type":        string(q.Category),
			"safe_answer": string(q.SafeAnswer),
		})
	}

	if err := c.client.UpdateData(ctx, QuestionsSheetName, rows); err != nil {
		return err
	}
	c.logger.Info("question sheet updated", zap.Int("count", len(rows)))
	return nil
}

// UploadImage stores a base64 image via the sheet backend and returns its
// public URL.
func (c *ContentService) UploadImage(ctx context.Context, data, name, mimeType string) (string, error) {
	if data == "" {
		return "", requiredField("data")
	}
	if name == "" {
		return "", requiredField("name")
	}
	url, err := c.client.UploadImage(ctx, data, name, mimeType)
	if err != nil {
		return "", err
	}
	c.logger.Info("image uploaded", zap.String("name", name), zap.String("url", url))
	return url, nil
}
