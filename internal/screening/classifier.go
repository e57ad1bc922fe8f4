// Package screening holds the risk-classification rule for pregnant
// visitor self-screening: gestational window plus per-question answer
// checks, escalating monotonically from SAFE through CAUTION to DANGER.
package screening

import (
	"sort"

	"lovinamom/internal/domain"
)

// Gestational window (weeks, inclusive) permitted for the boat tour.
const (
	MinWeeks = 14
	MaxWeeks = 26
)

// ReasonKind identifies what triggered a risk reason.
type ReasonKind string

const (
	ReasonBelowWindow ReasonKind = "GESTATION_BELOW_MIN"
	ReasonAboveWindow ReasonKind = "GESTATION_ABOVE_MAX"
	ReasonQuestion    ReasonKind = "QUESTION_MISMATCH"
)

// Reason is one contributing risk factor, kept structured so the text can
// be rendered in either language instead of baking one into storage.
type Reason struct {
	Kind       ReasonKind `json:"kind"`
	QuestionID string     `json:"questionId,omitempty"`
}

// Text renders the reason for visitors/staff. Question reasons use the
// question's wording in the requested language; a reason referencing an
// unknown question falls back to its id.
func (r Reason) Text(lang domain.Lang, questions []domain.ScreeningQuestion) string {
	switch r.Kind {
	case ReasonBelowWindow:
		if lang == domain.LangEN {
			return "Gestational age below 14 weeks"
		}
		return "Usia kehamilan < 14 minggu"
	case ReasonAboveWindow:
		if lang == domain.LangEN {
			return "Gestational age above 26 weeks"
		}
		return "Usia kehamilan > 26 minggu"
	}
	for _, q := range questions {
		if q.ID == r.QuestionID {
			if lang == domain.LangEN {
				return "Failed: " + q.Text(domain.LangEN)
			}
			return "Gagal pada: " + q.Text(domain.LangID)
		}
	}
	return "Gagal pada: " + r.QuestionID
}

// RenderReasons renders every reason in order.
func RenderReasons(reasons []Reason, lang domain.Lang, questions []domain.ScreeningQuestion) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.Text(lang, questions))
	}
	return out
}

// Classify computes the zone and the full list of triggering reasons for
// one completed questionnaire. It is deterministic and never fails: a
// missing answer counts as a mismatch, because an unanswered safety
// question cannot be assumed safe.
//
// Escalation is monotonic. A RISK-category mismatch always forces DANGER;
// a CORE mismatch raises SAFE to CAUTION but never lowers DANGER. Reasons
// accumulate in question-index order even after DANGER is reached, so the
// list always names every contributing mismatch.
func Classify(weeks int, answers map[string]domain.Answer, questions []domain.ScreeningQuestion) (domain.Zone, []Reason) {
	status := domain.ZoneSafe
	var reasons []Reason

	// Only one window bound can fire.
	if weeks < MinWeeks {
		status = status.Escalate(domain.ZoneDanger)
		reasons = append(reasons, Reason{Kind: ReasonBelowWindow})
	} else if weeks > MaxWeeks {
		status = status.Escalate(domain.ZoneDanger)
		reasons = append(reasons, Reason{Kind: ReasonAboveWindow})
	}

	ordered := make([]domain.ScreeningQuestion, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	for _, q := range ordered {
		ans, answered := answers[q.ID]
		if answered && ans == q.SafeAnswer {
			continue
		}
		if q.Category == domain.CategoryRisk {
			status = status.Escalate(domain.ZoneDanger)
		} else {
			status = status.Escalate(domain.ZoneCaution)
		}
		reasons = append(reasons, Reason{Kind: ReasonQuestion, QuestionID: q.ID})
	}

	return status, reasons
}
