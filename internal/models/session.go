package models

import (
	"time"
)

// Evaluation is the scored feedback attached to one answered question.
// Produced once per answer; never user-editable.
type Evaluation struct {
	Score        int      `json:"score"` // 0-10
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Question is owned exclusively by its session and has no identity outside it.
type Question struct {
	ID         string      `json:"id"`
	Text       string      `json:"text"`
	Category   string      `json:"category"`
	Difficulty string      `json:"difficulty"`
	Answer     string      `json:"answer,omitempty"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	TimeSpent  int         `json:"time_spent,omitempty"` // seconds
	AnsweredAt *time.Time  `json:"answered_at,omitempty"`
}

// Answered reports whether the question carries a real answer,
// excluding the skip sentinel.
func (q *Question) Answered() bool {
	return q.Answer != "" && q.Answer != SkippedAnswer
}

// Skipped reports whether the question was skipped.
func (q *Question) Skipped() bool {
	return q.Answer == SkippedAnswer
}

// FinalReport is the synthesized summary produced at completion.
type FinalReport struct {
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
	CategoryScores  map[string]int `json:"category_scores,omitempty"` // 0-100 per category
}

// QuestionList is stored as a single JSON column on the session row. The list
// is append-only; only the answer/evaluation fields of an entry ever mutate.
type QuestionList []Question

// InterviewSession is the aggregate root for one interview-practice attempt.
type InterviewSession struct {
	ID                   string       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               string       `gorm:"not null;index" json:"user_id"`
	Type                 string       `gorm:"not null" json:"type"`
	Difficulty           string       `gorm:"not null" json:"difficulty"`
	Duration             string       `gorm:"not null;default:standard" json:"duration"`
	Status               string       `gorm:"not null;default:in-progress;index" json:"status"`
	TotalQuestions       int          `gorm:"not null" json:"total_questions"`
	CurrentQuestionIndex int          `gorm:"not null;default:0" json:"current_question_index"`
	Questions            QuestionList `gorm:"serializer:json" json:"questions"`
	OverallScore         int          `gorm:"not null;default:0" json:"overall_score"` // 0-100
	FinalReport          *FinalReport `gorm:"serializer:json" json:"final_report,omitempty"`
	StartedAt            time.Time    `gorm:"not null" json:"started_at"`
	CompletedAt          *time.Time   `json:"completed_at,omitempty"`
	TotalTimeSpent       int          `gorm:"not null;default:0" json:"total_time_spent"` // seconds
	Version              int          `gorm:"not null;default:1" json:"-"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// AnsweredCount counts questions with a real answer. Completion is judged on
// this count so skipped questions never count toward the total.
func (s *InterviewSession) AnsweredCount() int {
	count := 0
	for i := range s.Questions {
		if s.Questions[i].Answered() {
			count++
		}
	}
	return count
}

// AnsweredQuestions returns the answered questions in asked order.
func (s *InterviewSession) AnsweredQuestions() []Question {
	answered := make([]Question, 0, len(s.Questions))
	for i := range s.Questions {
		if s.Questions[i].Answered() {
			answered = append(answered, s.Questions[i])
		}
	}
	return answered
}

// QuestionByID returns the index of the question with the given id, or -1.
func (s *InterviewSession) QuestionByID(questionID string) int {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return i
		}
	}
	return -1
}
