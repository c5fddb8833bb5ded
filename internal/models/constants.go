package models

// contains all supported interview types (in lowercase)
var ValidInterviewTypes = map[string]bool{
	"technical":     true,
	"behavioral":    true,
	"role-specific": true,
}

// contains all valid difficulties (in lowercase)
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// contains all valid session durations (in lowercase)
var ValidDurations = map[string]bool{
	"quick":    true,
	"standard": true,
	"full":     true,
}

// contains all categories a generated question may carry
var ValidCategories = map[string]bool{
	"DSA":           true,
	"System Design": true,
	"Behavioral":    true,
	"Technical":     true,
	"General":       true,
}

// session statuses
const (
	StatusInProgress = "in-progress"
	StatusPaused     = "paused"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// QuestionCounts maps a session duration to its fixed question total.
var QuestionCounts = map[string]int{
	"quick":    5,
	"standard": 10,
	"full":     15,
}

// DefaultTotalQuestions is used when the duration carries no mapped count.
const DefaultTotalQuestions = 10

// SkippedAnswer is the sentinel recorded as the answer of a skipped question.
const SkippedAnswer = "[SKIPPED]"

// MinAnswerLength is the trimmed length below which an answer is scored
// locally without a provider call.
const MinAnswerLength = 10

func ValidInterviewTypesList() []string {
	return []string{"technical", "behavioral", "role-specific"}
}

func ValidDifficultiesList() []string {
	return []string{"easy", "medium", "hard"}
}

func ValidDurationsList() []string {
	return []string{"quick", "standard", "full"}
}
