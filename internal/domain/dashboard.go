package domain

// Analytics carries sheet-side aggregate counters.
type Analytics struct {
	TotalViews int `json:"totalViews"`
}

// DashboardData is the full normalized dataset the staff dashboard renders.
type DashboardData struct {
	Screening []ScreeningResult   `json:"screening"`
	Questions []ScreeningQuestion `json:"questions"`
	Traffic   []TrafficLog        `json:"traffic"`
	Analytics Analytics           `json:"analytics"`
}
