package normalize

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lovinamom/internal/domain"
)

// TestStatus_KeywordMapping covers the three-way keyword match and its
// safe default.
func TestStatus_KeywordMapping(t *testing.T) {
	cases := []struct {
		raw  any
		want domain.Zone
	}{
		{"ZONA MERAH", domain.ZoneDanger},
		{"danger", domain.ZoneDanger},
		{"!! BAHAYA !!", domain.ZoneDanger},
		{"ZONA KUNING", domain.ZoneCaution},
		{"warning", domain.ZoneCaution},
		{"waspada", domain.ZoneCaution},
		{"ZONA HIJAU", domain.ZoneSafe},
		{"AMAN", domain.ZoneSafe},
		{"", domain.ZoneSafe},
		{nil, domain.ZoneSafe},
		{123, domain.ZoneSafe},
		{true, domain.ZoneSafe},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Status(c.raw), "raw=%v", c.raw)
	}
}

// TestStatus_DangerWinsOverCaution: when both keyword sets match, the
// more severe one applies.
func TestStatus_DangerWinsOverCaution(t *testing.T) {
	require.Equal(t, domain.ZoneDanger, Status("KUNING MERAH"))
	require.Equal(t, domain.ZoneDanger, Status("warning danger"))
}

func TestName_Formatting(t *testing.T) {
	require.Equal(t, "Siti Aminah", Name("  siti   aminah "))
	require.Equal(t, "Siti Aminah", Name("SITI AMINAH"))
	require.Equal(t, "Budi", Name("budi"))
	require.Equal(t, NamePlaceholder, Name(""))
	require.Equal(t, NamePlaceholder, Name("   "))
	require.Equal(t, NamePlaceholder, Name(nil))
	// legacy placeholder collapses to the canonical one
	require.Equal(t, NamePlaceholder, Name("Tanpa Nama"))
	require.Equal(t, NamePlaceholder, Name("TANPA  NAMA"))
}

func TestGestationalWeeks_Heuristic(t *testing.T) {
	cases := []struct {
		raw  any
		want int
	}{
		{"5 bulan", 20},
		{"20", 20},
		{"", 0},
		{"8", 32}, // the ≤9 heuristic fires even without a month keyword
		{"20 minggu", 20},
		{"2 months", 8},
		{"sekitar 6 bulan", 24},
		{nil, 0},
		{"tidak tahu", 0},
		{float64(20), 20},
		{float64(5), 20},
		{"12 bulan", 48}, // month keyword forces conversion above 9 too
	}
	for _, c := range cases {
		require.Equal(t, c.want, GestationalWeeks(c.raw), "raw=%v", c.raw)
	}
}

func TestIntField_Coercion(t *testing.T) {
	require.Equal(t, 28, IntField(float64(28)))
	require.Equal(t, 28, IntField("28"))
	require.Equal(t, 28, IntField("28 th"))
	require.Equal(t, 0, IntField(nil))
	require.Equal(t, 0, IntField(""))
	require.Equal(t, 0, IntField("unknown"))
	require.Equal(t, 0, IntField(true))
}

func TestFloatField_Coercion(t *testing.T) {
	v, ok := FloatField("-8.25")
	require.True(t, ok)
	require.InDelta(t, -8.25, v, 1e-9)

	v, ok = FloatField(float64(115.2))
	require.True(t, ok)
	require.InDelta(t, 115.2, v, 1e-9)

	_, ok = FloatField("")
	require.False(t, ok)
	_, ok = FloatField(nil)
	require.False(t, ok)
	_, ok = FloatField("abc")
	require.False(t, ok)
	_, ok = FloatField(math.NaN())
	require.False(t, ok)
}

// TestLocation_ValidPassThrough: real coordinates are used verbatim and
// the result is deterministic.
func TestLocation_ValidPassThrough(t *testing.T) {
	lat, lng, name, estimated := Location(-8.158, 115.025, "Dermaga Lovina", 7)
	require.InDelta(t, -8.158, lat, 1e-9)
	require.InDelta(t, 115.025, lng, 1e-9)
	require.Equal(t, "Dermaga Lovina", name)
	require.False(t, estimated)

	lat2, lng2, name2, _ := Location(-8.158, 115.025, "Dermaga Lovina", 7)
	require.Equal(t, lat, lat2)
	require.Equal(t, lng, lng2)
	require.Equal(t, name, name2)

	// missing label gets the generic GPS one
	_, _, name, _ = Location(-8.158, 115.025, "", 0)
	require.Equal(t, "Lokasi Akurat (GPS)", name)
}

// TestLocation_Fallback: absent or zero coordinates map onto a reference
// point selected by index, within the jitter bound, deterministically.
func TestLocation_Fallback(t *testing.T) {
	for _, coords := range [][2]any{
		{nil, nil},
		{"", ""},
		{float64(0), float64(0)},
		{"abc", "def"},
		{-8.1, float64(0)}, // one zero coordinate is still unusable
	} {
		idx := 2
		lat, lng, name, estimated := Location(coords[0], coords[1], "", idx)
		ref := ReferencePoints[idx%len(ReferencePoints)]
		require.True(t, estimated)
		require.Contains(t, name, ref.Name)
		require.Contains(t, name, "Estimasi")
		require.LessOrEqual(t, math.Abs(lat-ref.Lat), JitterBound)
		require.LessOrEqual(t, math.Abs(lng-ref.Lng), JitterBound)

		lat2, lng2, _, _ := Location(coords[0], coords[1], "", idx)
		require.Equal(t, lat, lat2)
		require.Equal(t, lng, lng2)
	}
}

func TestLocation_FallbackIndexWraps(t *testing.T) {
	n := len(ReferencePoints)
	for i := 0; i < 2*n; i++ {
		_, _, name, _ := Location(nil, nil, "", i)
		require.Contains(t, name, ReferencePoints[i%n].Name)
	}
	// negative indexes must not panic
	_, _, _, estimated := Location(nil, nil, "", -3)
	require.True(t, estimated)
}

func TestScreeningFromRow_Aliases(t *testing.T) {
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	row := Row{
		"Timestamp":     "2024-07-31T08:30:00Z",
		"Name":          "siti aminah",
		"Age":           "28",
		"PregnancyWeek": "5 bulan",
		"Status":        "ZONA MERAH",
		"RiskFactors":   "Gagal pada: A, Gagal pada: B",
		"Notes":         "catatan",
		"Lat":           "-8.2",
		"Lng":           "115.1",
		"LocationName":  "Lovina Beach",
	}
	r := ScreeningFromRow(row, 0, now)
	require.Equal(t, "Siti Aminah", r.Name)
	require.Equal(t, 28, r.Age)
	require.Equal(t, 20, r.PregnancyWeeks)
	require.Equal(t, domain.ZoneDanger, r.Status)
	require.Equal(t, []string{"Gagal pada: A", "Gagal pada: B"}, r.RiskFactors)
	require.Equal(t, "catatan", r.Notes)
	require.InDelta(t, -8.2, r.Lat, 1e-9)
	require.False(t, r.LocationEstimated)
	require.Equal(t, "2024-07-31T08:30:00Z", r.Timestamp.Format(time.RFC3339))
}

func TestScreeningFromRow_DegradesToDefaults(t *testing.T) {
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	r := ScreeningFromRow(Row{}, 3, now)
	require.Equal(t, NamePlaceholder, r.Name)
	require.Equal(t, 0, r.Age)
	require.Equal(t, 0, r.PregnancyWeeks)
	require.Equal(t, domain.ZoneSafe, r.Status)
	require.Empty(t, r.RiskFactors)
	require.True(t, r.LocationEstimated)
	require.Equal(t, now, r.Timestamp)
}

func TestQuestionFromRow(t *testing.T) {
	q := QuestionFromRow(Row{
		"id":          "q5",
		"index":       float64(5),
		"text_id":     "Apakah perut terasa mulas?",
		"text_en":     "Regular contractions?",
		"type":        "risk",
		"safe_answer": "no",
	})
	require.Equal(t, "q5", q.ID)
	require.Equal(t, 5, q.Index)
	require.Equal(t, domain.CategoryRisk, q.Category)
	require.Equal(t, domain.AnswerNo, q.SafeAnswer)

	// unknown category and safe answer fail toward the strict side
	q = QuestionFromRow(Row{"id": "qx"})
	require.Equal(t, domain.CategoryCore, q.Category)
	require.Equal(t, domain.AnswerNo, q.SafeAnswer)
}

func TestTrafficFromRow(t *testing.T) {
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	tr := TrafficFromRow(Row{"Lat": "", "Lng": nil, "UserAgent": ""}, now)
	require.Zero(t, tr.Lat)
	require.Zero(t, tr.Lng)
	require.Equal(t, "Unknown Device", tr.UserAgent)
	require.Equal(t, now, tr.Timestamp)

	tr = TrafficFromRow(Row{"Lat": "-8.1", "Lng": "115.3", "UserAgent": "Mozilla/5.0"}, now)
	require.InDelta(t, -8.1, tr.Lat, 1e-9)
	require.Equal(t, "Mozilla/5.0", tr.UserAgent)
}

// TestDataset_SortsQuestionsAndCounts: questions come back in index order
// regardless of sheet row order.
func TestDataset_SortsQuestionsAndCounts(t *testing.T) {
	now := time.Now()
	raw := RawDataset{
		Screening: []Row{{"Name": "a"}, {"Name": "b"}},
		Questions: []Row{
			{"id": "q2", "index": float64(7)},
			{"id": "q1", "index": float64(3)},
		},
		Traffic:   []Row{{"UserAgent": "x"}},
		Analytics: map[string]any{"totalViews": float64(42)},
	}
	data := Dataset(raw, now)
	require.Len(t, data.Screening, 2)
	require.Len(t, data.Traffic, 1)
	require.Equal(t, 42, data.Analytics.TotalViews)
	require.Equal(t, "q1", data.Questions[0].ID)
	require.Equal(t, "q2", data.Questions[1].ID)
}

// TestDataset_TotalFunction: the normalizer must accept a fully empty
// payload without panicking.
func TestDataset_TotalFunction(t *testing.T) {
	data := Dataset(RawDataset{}, time.Now())
	require.Empty(t, data.Screening)
	require.Empty(t, data.Questions)
	require.Empty(t, data.Traffic)
}
