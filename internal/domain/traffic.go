package domain

import "time"

// TrafficLog (catatan kunjungan) — one page-open event from the TRAFFIC sheet. Used
// only for the visitor-density layer of the dashboard map.
type TrafficLog struct {
	Timestamp time.Time `json:"timestamp"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UserAgent string    `json:"userAgent"`
}
