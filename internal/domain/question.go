package domain

// QuestionCategory distinguishes eligibility prerequisites from
// danger-symptom probes.
type QuestionCategory string

const (
	// CategoryCore: eligibility prerequisite. A mismatch means supervised
	// caution, not automatic exclusion.
	CategoryCore QuestionCategory = "CORE"
	// CategoryRisk: danger-symptom probe. Any mismatch excludes the visitor.
	CategoryRisk QuestionCategory = "RISK"
)

// Answer is a yes/no response to a screening question.
type Answer string

const (
	AnswerYes Answer = "YES"
	AnswerNo  Answer = "NO"
)

// Lang selects the rendering language for visitor-facing text.
type Lang string

const (
	LangID Lang = "id" // Bahasa Indonesia (primary)
	LangEN Lang = "en"
)

// ScreeningQuestion (pertanyaan skrining) — one row of the SCREENING_QUESTIONS sheet.
// Authored by staff in the content manager, consumed read-only by the
// classifier.
type ScreeningQuestion struct {
	ID    string `json:"id"`
	Index int    `json:"index"` // display order; not necessarily contiguous

	TextID string `json:"text_id"` // Indonesian wording
	TextEN string `json:"text_en"` // English wording

	Category   QuestionCategory `json:"type"`
	SafeAnswer Answer           `json:"safe_answer"`
}

// Text returns the question wording in the requested language, falling back
// to Indonesian when the English text is missing.
func (q ScreeningQuestion) Text(lang Lang) string {
	if lang == LangEN && q.TextEN != "" {
		return q.TextEN
	}
	return q.TextID
}
