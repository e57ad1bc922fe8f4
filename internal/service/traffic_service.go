package service

import (
	"context"

	"go.uber.org/zap"
)

// TrafficClient is the slice of the sheet client traffic logging needs.
type TrafficClient interface {
	LogTraffic(ctx context.Context, lat, lng any, userAgent string) error
}

// TrafficService records page-open events for the density map.
// Fire-and-forget: failures are logged, never surfaced, because losing a
// traffic point must not disturb the visitor flow.
type TrafficService struct {
	client TrafficClient
	logger *zap.Logger
}

func NewTrafficService(client TrafficClient, logger *zap.Logger) *TrafficService {
	return &TrafficService{client: client, logger: logger}
}

// Log records one event. Zero coordinates are sent as empty strings, the
// sheet's convention for "no fix".
func (t *TrafficService) Log(ctx context.Context, lat, lng float64, userAgent string) {
	var rawLat, rawLng any = lat, lng
	if lat == 0 {
		rawLat = ""
	}
	if lng == 0 {
		rawLng = ""
	}
	if err := t.client.LogTraffic(ctx, rawLat, rawLng, userAgent); err != nil {
		t.logger.Warn("traffic log failed", zap.Error(err))
	}
}
