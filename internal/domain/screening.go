package domain

import "time"

// Zone is the three-level screening outcome shown to visitors and staff:
// go / go-with-supervision / no-go.
type Zone string

const (
	ZoneSafe    Zone = "SAFE"
	ZoneCaution Zone = "CAUTION"
	ZoneDanger  Zone = "DANGER"
)

// severity ranks zones for escalation. DANGER > CAUTION > SAFE.
func (z Zone) severity() int {
	switch z {
	case ZoneDanger:
		return 2
	case ZoneCaution:
		return 1
	default:
		return 0
	}
}

// Escalate returns the more severe of z and other. Escalation never
// downgrades: once DANGER, always DANGER.
func (z Zone) Escalate(other Zone) Zone {
	if other.severity() > z.severity() {
		return other
	}
	return z
}

// MoreSevereThan reports whether z outranks other.
func (z Zone) MoreSevereThan(other Zone) bool {
	return z.severity() > other.severity()
}

// SheetLabel is the legacy Indonesian zone label the sheet stores and the
// UI displays. The normalizer maps these (and older variants) back to Zone.
func (z Zone) SheetLabel() string {
	switch z {
	case ZoneDanger:
		return "ZONA MERAH"
	case ZoneCaution:
		return "ZONA KUNING"
	default:
		return "ZONA HIJAU"
	}
}

// ScreeningResult (hasil skrining) — one completed self-screening, as stored in the
// SCREENING sheet. Created once at submission time and immutable afterward;
// rows read back from the sheet pass through the normalizer before they
// become this type again.
type ScreeningResult struct {
	// Identity
	SubmissionID string    `json:"submissionId,omitempty"`
	Timestamp    time.Time `json:"timestamp"`

	// Visitor data
	Name           string `json:"name"`
	Age            int    `json:"age"`
	PregnancyWeeks int    `json:"pregnancyWeeks"`

	// Outcome
	Status      Zone     `json:"status"`
	RiskFactors []string `json:"riskFactors"` // every contributing mismatch, in question order
	Notes       string   `json:"notes"`

	// Location (optional; estimated when GPS was unavailable)
	Lat               float64 `json:"lat,omitempty"`
	Lng               float64 `json:"lng,omitempty"`
	LocationName      string  `json:"locationName,omitempty"`
	LocationEstimated bool    `json:"locationEstimated,omitempty"`
}
