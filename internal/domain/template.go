package domain

// TemplateQuestions is the seed question set served when the
// SCREENING_QUESTIONS sheet is empty (fresh deployment, or staff wiped the
// sheet). Mirrors the content manager's reset template.
var TemplateQuestions = []ScreeningQuestion{
	{ID: "q1", Index: 1, TextID: "Apakah usia kehamilannya 4-6 bulan?", TextEN: "Is the pregnancy between 4-6 months?", Category: CategoryCore, SafeAnswer: AnswerYes},
	{ID: "q2", Index: 2, TextID: "Apakah ibu merasa sehat dan siap berwisata?", TextEN: "Do you feel healthy and ready for tourism?", Category: CategoryCore, SafeAnswer: AnswerYes},
	{ID: "q3", Index: 3, TextID: "Apakah bayi dalam kandungan bergerak secara teratur?", TextEN: "Is the baby moving regularly?", Category: CategoryCore, SafeAnswer: AnswerYes},
	{ID: "q4", Index: 4, TextID: "Apakah sudah konsultasi dokter/bidan untuk aktivitas ini?", TextEN: "Have you consulted a doctor/midwife for this activity?", Category: CategoryCore, SafeAnswer: AnswerYes},
	{ID: "q5", Index: 5, TextID: "Apakah perut terasa mulas/kencang teratur?", TextEN: "Do you feel regular contractions/tightness?", Category: CategoryRisk, SafeAnswer: AnswerNo},
	{ID: "q6", Index: 6, TextID: "Apakah mengalami perdarahan/keluar air/nyeri hebat?", TextEN: "Any bleeding/fluid leakage/severe pain?", Category: CategoryRisk, SafeAnswer: AnswerNo},
	{ID: "q7", Index: 7, TextID: "Apakah ada riwayat tekanan darah tinggi?", TextEN: "History of high blood pressure?", Category: CategoryRisk, SafeAnswer: AnswerNo},
	{ID: "q8", Index: 8, TextID: "Apakah mengalami mual muntah berat?", TextEN: "Experiencing severe nausea/vomiting?", Category: CategoryRisk, SafeAnswer: AnswerNo},
	{ID: "q9", Index: 9, TextID: "Apakah merasa pusing hebat/ingin pingsan/sesak?", TextEN: "Feeling severe dizziness/faint/breathless?", Category: CategoryRisk, SafeAnswer: AnswerNo},
	{ID: "q10", Index: 10, TextID: "Apakah ada penyakit lain yang dilarang dokter?", TextEN: "Any other medical conditions prohibited by doctor?", Category: CategoryRisk, SafeAnswer: AnswerNo},
}
