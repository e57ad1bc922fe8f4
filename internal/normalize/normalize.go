// Package normalize is the single conversion boundary between the
// loosely-typed rows the sheet endpoint returns and the strict domain
// model. Every function here is total and pure: malformed input degrades
// to a documented default, never to a panic, because the upstream store is
// schema-less text edited by staff.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"lovinamom/internal/domain"
)

// NamePlaceholder is used for empty or absent visitor names.
const NamePlaceholder = "Unnamed"

var (
	dangerKeywords  = []string{"DANGER", "MERAH", "BAHAYA"}
	cautionKeywords = []string{"WARNING", "KUNING", "WASPADA"}
)

// Status maps arbitrary sheet text onto the three-level zone. Danger
// keywords win over caution keywords when both match; anything unmatched
// is SAFE so a garbled cell can never block the dashboard.
func Status(raw any) domain.Zone {
	s := strings.ToUpper(asString(raw))
	for _, kw := range dangerKeywords {
		if strings.Contains(s, kw) {
			return domain.ZoneDanger
		}
	}
	for _, kw := range cautionKeywords {
		if strings.Contains(s, kw) {
			return domain.ZoneCaution
		}
	}
	return domain.ZoneSafe
}

// Name trims, collapses whitespace runs, and title-cases each token.
// Empty input (including the legacy "Tanpa Nama" placeholder) yields
// NamePlaceholder.
func Name(raw any) string {
	fields := strings.Fields(asString(raw))
	if len(fields) == 0 {
		return NamePlaceholder
	}
	for i, f := range fields {
		fields[i] = titleToken(strings.ToLower(f))
	}
	name := strings.Join(fields, " ")
	if strings.EqualFold(name, "tanpa nama") {
		return NamePlaceholder
	}
	return name
}

func titleToken(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// GestationalWeeks extracts the pregnancy duration in weeks from free
// text. The first contiguous digit run is taken; values of 9 or less, or
// any text mentioning months ("bulan"/"month"), are treated as months and
// multiplied by 4. No digits yields 0.
//
// Known ambiguity, preserved from the sheet's historical behavior: a true
// 8-week entry reads as 8 months and becomes 32 weeks.
func GestationalWeeks(raw any) int {
	s := asString(raw)
	digits := firstDigitRun(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// digit run too long for an int; nobody is pregnant that long
		return 0
	}
	lower := strings.ToLower(s)
	if n <= 9 || strings.Contains(lower, "bulan") || strings.Contains(lower, "month") {
		return n * 4
	}
	return n
}

func firstDigitRun(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

// IntField coerces a sheet cell to an integer, defaulting to 0. Handles
// JSON numbers, numeric strings, and strings with leading digits ("28 th").
func IntField(raw any) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case bool:
		return 0
	}
	s := strings.TrimSpace(asString(raw))
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if digits := firstDigitRun(s); digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			return n
		}
	}
	return 0
}

// FloatField coerces a sheet cell to a float, reporting whether the value
// was a parseable finite number.
func FloatField(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// sheet numbers arrive as float64; render 20 not 20.000000
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
