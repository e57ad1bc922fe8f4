package service

import (
	"context"

	"go.uber.org/zap"
)

// SystemClient is the slice of the sheet client the lock toggle needs.
type SystemClient interface {
	GetSystemStatus(ctx context.Context) (bool, error)
	SetSystemStatus(ctx context.Context, isActive bool) (bool, error)
}

// SystemService exposes the intake-form lock stored in the sheet.
type SystemService struct {
	client SystemClient
	logger *zap.Logger
}

func NewSystemService(client SystemClient, logger *zap.Logger) *SystemService {
	return &SystemService{client: client, logger: logger}
}

// Status reports whether the public form is open. The check fails open:
// an unreachable backend must not lock visitors out of screening.
func (s *SystemService) Status(ctx context.Context) bool {
	active, err := s.client.GetSystemStatus(ctx)
	if err != nil {
		s.logger.Warn("system status check failed, defaulting to active", zap.Error(err))
		return true
	}
	return active
}

// SetActive toggles the lock. As a write, failures surface to the caller.
func (s *SystemService) SetActive(ctx context.Context, isActive bool) (bool, error) {
	active, err := s.client.SetSystemStatus(ctx, isActive)
	if err != nil {
		return false, err
	}
	s.logger.Info("system status changed", zap.Bool("is_active", active))
	return active, nil
}
