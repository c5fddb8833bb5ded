package models

import (
	"strings"
)

type StartInterviewRequest struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Duration   string `json:"duration"`
}

// implements the Validator interface
func (r *StartInterviewRequest) Validate() error {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.Duration = strings.ToLower(strings.TrimSpace(r.Duration))

	if r.Type == "" {
		return &ErrorResponse{
			Code:    "missing_type",
			Message: "Interview type is required",
		}
	}
	if !ValidInterviewTypes[r.Type] {
		return &ErrorResponse{
			Code:    "invalid_type",
			Message: "Interview type must be one of: technical, behavioral, role-specific",
		}
	}

	if r.Difficulty == "" {
		return &ErrorResponse{
			Code:    "missing_difficulty",
			Message: "Difficulty is required",
		}
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: easy, medium, hard",
		}
	}

	if r.Duration == "" {
		r.Duration = "standard"
	}
	if !ValidDurations[r.Duration] {
		return &ErrorResponse{
			Code:    "invalid_duration",
			Message: "Duration must be one of: quick, standard, full",
		}
	}

	return nil
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	TimeSpent  int    `json:"time_spent"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.QuestionID) == "" {
		return &ErrorResponse{
			Code:    "missing_question_id",
			Message: "Question ID is required",
		}
	}
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Answer cannot be empty",
		}
	}
	if r.TimeSpent < 0 {
		return &ErrorResponse{
			Code:    "invalid_time_spent",
			Message: "Time spent must not be negative",
		}
	}
	return nil
}
