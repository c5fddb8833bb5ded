package models

import "time"

// QuestionView is the question shape returned to clients: the prompt only,
// never the recorded answer or evaluation.
type QuestionView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func NewQuestionView(q Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Text:       q.Text,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

type StartInterviewResponse struct {
	SessionID      string       `json:"session_id"`
	Question       QuestionView `json:"question"`
	QuestionNumber int          `json:"question_number"`
	TotalQuestions int          `json:"total_questions"`
}

type SubmitAnswerResponse struct {
	Evaluation Evaluation `json:"evaluation"`
	IsComplete bool       `json:"is_complete"`
	SessionID  string     `json:"session_id"`
}

type NextQuestionResponse struct {
	Question       QuestionView `json:"question"`
	QuestionNumber int          `json:"question_number"`
	TotalQuestions int          `json:"total_questions"`
}

type SkipQuestionResponse struct {
	IsComplete bool   `json:"is_complete"`
	SessionID  string `json:"session_id"`
}

type CompleteInterviewResponse struct {
	SessionID      string      `json:"session_id"`
	OverallScore   int         `json:"overall_score"`
	Report         FinalReport `json:"report"`
	TotalQuestions int         `json:"total_questions"`
}

// SessionSnapshot is returned by pause/resume and session lookup.
type SessionSnapshot struct {
	SessionID            string       `json:"session_id"`
	Type                 string       `json:"type"`
	Difficulty           string       `json:"difficulty"`
	Duration             string       `json:"duration"`
	Status               string       `json:"status"`
	TotalQuestions       int          `json:"total_questions"`
	CurrentQuestionIndex int          `json:"current_question_index"`
	Questions            []Question   `json:"questions"`
	OverallScore         int          `json:"overall_score"`
	FinalReport          *FinalReport `json:"final_report,omitempty"`
	StartedAt            time.Time    `json:"started_at"`
	CompletedAt          *time.Time   `json:"completed_at,omitempty"`
	TotalTimeSpent       int          `json:"total_time_spent"`
}

func NewSessionSnapshot(s *InterviewSession) SessionSnapshot {
	return SessionSnapshot{
		SessionID:            s.ID,
		Type:                 s.Type,
		Difficulty:           s.Difficulty,
		Duration:             s.Duration,
		Status:               s.Status,
		TotalQuestions:       s.TotalQuestions,
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		Questions:            s.Questions,
		OverallScore:         s.OverallScore,
		FinalReport:          s.FinalReport,
		StartedAt:            s.StartedAt,
		CompletedAt:          s.CompletedAt,
		TotalTimeSpent:       s.TotalTimeSpent,
	}
}

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
