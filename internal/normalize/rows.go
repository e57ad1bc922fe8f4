package normalize

import (
	"sort"
	"strings"
	"time"

	"lovinamom/internal/domain"
)

// Row is one loosely-typed sheet row. Keys vary in casing and naming
// between sheet revisions, so lookups go through field().
type Row map[string]any

// RawDataset is the wire shape of a get_data response before
// normalization. Raw fields must not leak past this package.
type RawDataset struct {
	Screening []Row          `json:"screening"`
	Questions []Row          `json:"questions"`
	Traffic   []Row          `json:"traffic"`
	Analytics map[string]any `json:"analytics"`
}

// field returns the first present, non-nil value among the given key
// aliases, matching case-insensitively as a last resort.
func field(row Row, aliases ...string) any {
	for _, k := range aliases {
		if v, ok := row[k]; ok && v != nil {
			return v
		}
	}
	for _, k := range aliases {
		for rk, v := range row {
			if v != nil && strings.EqualFold(rk, k) {
				return v
			}
		}
	}
	return nil
}

// Dataset converts a raw get_data payload into the strict dashboard
// model. now supplies the default timestamp for rows missing one.
func Dataset(raw RawDataset, now time.Time) domain.DashboardData {
	data := domain.DashboardData{
		Screening: make([]domain.ScreeningResult, 0, len(raw.Screening)),
		Questions: make([]domain.ScreeningQuestion, 0, len(raw.Questions)),
		Traffic:   make([]domain.TrafficLog, 0, len(raw.Traffic)),
	}
	for i, row := range raw.Screening {
		data.Screening = append(data.Screening, ScreeningFromRow(row, i, now))
	}
	for _, row := range raw.Questions {
		data.Questions = append(data.Questions, QuestionFromRow(row))
	}
	sort.SliceStable(data.Questions, func(i, j int) bool {
		return data.Questions[i].Index < data.Questions[j].Index
	})
	for _, row := range raw.Traffic {
		data.Traffic = append(data.Traffic, TrafficFromRow(row, now))
	}
	data.Analytics.TotalViews = IntField(field(raw.Analytics, "totalViews", "TotalViews"))
	return data
}

// ScreeningFromRow normalizes one screening sheet row. fallbackIndex
// drives the geo fallback for rows without a GPS fix.
func ScreeningFromRow(row Row, fallbackIndex int, now time.Time) domain.ScreeningResult {
	lat, lng, locName, estimated := Location(
		field(row, "Lat", "lat", "Latitude"),
		field(row, "Lng", "lng", "Longitude"),
		asString(field(row, "LocationName", "locationName")),
		fallbackIndex,
	)
	return domain.ScreeningResult{
		SubmissionID:      asString(field(row, "SubmissionId", "submissionId", "ID")),
		Timestamp:         timestampField(field(row, "Timestamp", "timestamp"), now),
		Name:              Name(field(row, "Name", "name", "Nama")),
		Age:               IntField(field(row, "Age", "age", "Usia")),
		PregnancyWeeks:    GestationalWeeks(field(row, "PregnancyWeek", "PregnancyWeeks", "pregnancyWeeks", "MingguHamil")),
		Status:            Status(field(row, "Status", "status", "Zona")),
		RiskFactors:       riskFactorsField(field(row, "RiskFactors", "riskFactors")),
		Notes:             asString(field(row, "Notes", "notes", "Catatan")),
		Lat:               lat,
		Lng:               lng,
		LocationName:      locName,
		LocationEstimated: estimated,
	}
}

// QuestionFromRow normalizes one question sheet row.
func QuestionFromRow(row Row) domain.ScreeningQuestion {
	category := domain.CategoryCore
	if strings.Contains(strings.ToUpper(asString(field(row, "type", "Type", "category"))), "RISK") {
		category = domain.CategoryRisk
	}
	// Unrecognized safe answers default to NO: an impossible-to-match
	// safe answer fails closed rather than waving everyone through.
	safe := domain.AnswerNo
	if strings.Contains(strings.ToUpper(asString(field(row, "safe_answer", "SafeAnswer"))), "YES") {
		safe = domain.AnswerYes
	}
	return domain.ScreeningQuestion{
		ID:         asString(field(row, "id", "ID", "Id")),
		Index:      IntField(field(row, "index", "Index")),
		TextID:     asString(field(row, "text_id", "TextId", "text")),
		TextEN:     asString(field(row, "text_en", "TextEn")),
		Category:   category,
		SafeAnswer: safe,
	}
}

// TrafficFromRow normalizes one traffic sheet row. Unparseable
// coordinates become 0 (the map layer skips origin points).
func TrafficFromRow(row Row, now time.Time) domain.TrafficLog {
	lat, _ := FloatField(field(row, "Lat", "lat"))
	lng, _ := FloatField(field(row, "Lng", "lng"))
	ua := asString(field(row, "UserAgent", "userAgent", "ua"))
	if ua == "" {
		ua = "Unknown Device"
	}
	return domain.TrafficLog{
		Timestamp: timestampField(field(row, "Timestamp", "timestamp"), now),
		Lat:       lat,
		Lng:       lng,
		UserAgent: ua,
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
}

func timestampField(raw any, now time.Time) time.Time {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		return now
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

func riskFactorsField(raw any) []string {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	factors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			factors = append(factors, p)
		}
	}
	return factors
}
