package gateway

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"prepwise/interview/internal/models"
	"prepwise/interview/internal/utils"
)

// Provider output is an untrusted string: it is stripped of fences and parsed
// into a strict schema with explicit defaults for optional fields. Any parse
// or validation failure is reported to the caller, which treats it like a
// provider failure.

type generatedQuestion struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func parseGeneratedQuestion(raw, requestedDifficulty string) (models.Question, error) {
	cleaned := utils.StripFences(raw)

	var parsed generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.Question{}, err
	}

	if strings.TrimSpace(parsed.Text) == "" {
		return models.Question{}, errors.New("generated question has no text")
	}

	category := parsed.Category
	if !models.ValidCategories[category] {
		category = "General"
	}

	difficulty := parsed.Difficulty
	if !models.ValidDifficulties[difficulty] {
		difficulty = requestedDifficulty
	}

	return models.Question{
		ID:         uuid.New().String(),
		Text:       strings.TrimSpace(parsed.Text),
		Category:   category,
		Difficulty: difficulty,
	}, nil
}

type parsedEvaluation struct {
	Score        *int     `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

func parseEvaluation(raw string) (models.Evaluation, error) {
	cleaned := utils.StripFences(raw)

	var parsed parsedEvaluation
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.Evaluation{}, err
	}

	// missing score defaults to neutral; an explicit score is clamped
	score := 5
	if parsed.Score != nil {
		score = utils.ClampScore(*parsed.Score, 0, 10)
	}

	feedback := parsed.Feedback
	if feedback == "" {
		feedback = "Answer evaluated."
	}

	strengths := parsed.Strengths
	if strengths == nil {
		strengths = []string{}
	}
	improvements := parsed.Improvements
	if improvements == nil {
		improvements = []string{}
	}

	return models.Evaluation{
		Score:        score,
		Feedback:     feedback,
		Strengths:    utils.Truncate(strengths, 3),
		Improvements: utils.Truncate(improvements, 3),
	}, nil
}
