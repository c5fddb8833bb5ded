package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepwise/interview/internal/llm"
	"prepwise/interview/internal/models"
	"prepwise/interview/internal/prompts"
)

// Gateway is the adapter boundary to the generative-text provider. Every
// operation is total: provider or parse failures degrade to deterministic
// fallback values and are never returned to the caller. The session state
// machine therefore never branches on generation or evaluation failure.
type Gateway struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	logger        *zap.Logger

	maxAttempts int
	retryDelay  time.Duration
	callTimeout time.Duration
}

// Config bounds the retry loop and the overall provider call.
type Config struct {
	MaxAttempts int           // attempts per operation, default 3
	RetryDelay  time.Duration // fixed inter-attempt delay, default 2s
	CallTimeout time.Duration // overall bound per operation, default 30s
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		RetryDelay:  2 * time.Second,
		CallTimeout: 30 * time.Second,
	}
}

func New(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger, cfg Config) *Gateway {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	return &Gateway{
		provider:      provider,
		promptManager: promptManager,
		logger:        logger,
		maxAttempts:   cfg.MaxAttempts,
		retryDelay:    cfg.RetryDelay,
		callTimeout:   cfg.CallTimeout,
	}
}

// QuestionContext carries everything needed to generate one question.
type QuestionContext struct {
	Type              string
	Difficulty        string
	Profile           *models.UserProfile
	Resume            *models.ParsedResume
	QuestionNumber    int
	PreviousQuestions []string // texts of previously answered questions, for de-duplication
}

// EvaluationContext carries one question/answer pair for scoring.
type EvaluationContext struct {
	Question   string
	Answer     string
	Category   string
	Difficulty string
	// Sink receives partial output as it arrives. Nil means silent accumulation.
	Sink func(chunk string)
}

// GenerateQuestion builds a role/skill-aware prompt and asks the provider for
// one question. Generation failure never aborts a session: after the retry
// budget is spent, a generic fallback question is returned instead.
func (g *Gateway) GenerateQuestion(ctx context.Context, qc QuestionContext) models.Question {
	prompt, err := g.promptManager.BuildPrompt("question", qc.Type, questionPromptData(qc))
	if err != nil {
		g.logger.Error("Failed to build question prompt", zap.Error(err), zap.String("type", qc.Type))
		return fallbackQuestion(qc.Difficulty)
	}

	raw, err := g.generateWithRetry(ctx, prompt, nil)
	if err != nil {
		g.logger.Warn("Question generation degraded to fallback", zap.Error(err),
			zap.Int("question_number", qc.QuestionNumber))
		return fallbackQuestion(qc.Difficulty)
	}

	question, err := parseGeneratedQuestion(raw, qc.Difficulty)
	if err != nil {
		// a parse failure is treated identically to a provider failure
		g.logger.Warn("Question parse degraded to fallback", zap.Error(err))
		return fallbackQuestion(qc.Difficulty)
	}

	return question
}

// EvaluateAnswer scores one answer. Answers below the minimum length are
// scored locally without a provider call. Provider or parse failures degrade
// to a neutral evaluation so the interview can proceed.
func (g *Gateway) EvaluateAnswer(ctx context.Context, ec EvaluationContext) models.Evaluation {
	if len(strings.TrimSpace(ec.Answer)) < models.MinAnswerLength {
		return shortAnswerEvaluation()
	}

	prompt, err := g.promptManager.BuildPrompt("evaluation", "default", map[string]string{
		"Question":   ec.Question,
		"Category":   ec.Category,
		"Difficulty": ec.Difficulty,
		"Answer":     ec.Answer,
	})
	if err != nil {
		g.logger.Error("Failed to build evaluation prompt", zap.Error(err))
		return fallbackEvaluation()
	}

	raw, err := g.generateWithRetry(ctx, prompt, ec.Sink)
	if err != nil {
		g.logger.Warn("Evaluation degraded to fallback", zap.Error(err))
		return fallbackEvaluation()
	}

	evaluation, err := parseEvaluation(raw)
	if err != nil {
		g.logger.Warn("Evaluation parse degraded to fallback", zap.Error(err))
		return fallbackEvaluation()
	}

	return evaluation
}

// SummarizeSession derives the qualitative report from the answered questions.
// Category scores are computed separately by the scoring aggregator.
func (g *Gateway) SummarizeSession(answered []models.Question) models.FinalReport {
	if len(answered) == 0 {
		return models.FinalReport{
			Strengths:       []string{"Completed interview"},
			Weaknesses:      []string{"No answers provided"},
			Recommendations: []string{"Try answering next time"},
		}
	}

	total := 0
	for i := range answered {
		if answered[i].Evaluation != nil {
			total += answered[i].Evaluation.Score
		}
	}
	avg := float64(total) / float64(len(answered))

	report := models.FinalReport{
		Strengths:  []string{"Completed interview"},
		Weaknesses: []string{},
	}
	if avg >= 7 {
		report.Strengths = []string{"Strong performance"}
	}
	if avg < 5 {
		report.Weaknesses = []string{"Needs improvement"}
	}

	first := "Keep practicing"
	if avg < 6 {
		first = "Focus on fundamentals"
	}
	report.Recommendations = []string{first, "Review challenging questions"}

	return report
}

// generateWithRetry runs the provider call inside a bounded retry loop with a
// fixed inter-attempt delay. The whole loop shares one timeout so a single
// operation cannot stall a request past its bound.
func (g *Gateway) generateWithRetry(ctx context.Context, prompt string, sink func(chunk string)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		var result string
		var err error
		if sink != nil {
			result, err = g.provider.GenerateTextStream(ctx, prompt, sink)
		} else {
			result, err = g.provider.GenerateText(ctx, prompt)
		}
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == g.maxAttempts {
			break
		}

		g.logger.Warn("Provider attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		case <-time.After(g.retryDelay):
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxAttempts, lastErr)
}

func questionPromptData(qc QuestionContext) map[string]string {
	targetRole := "Software Developer"
	experience := "Fresher"
	if qc.Profile != nil {
		if qc.Profile.TargetRole != "" {
			targetRole = qc.Profile.TargetRole
		}
		if qc.Profile.Experience != "" {
			experience = qc.Profile.Experience
		}
	}

	skills := "Not specified"
	if qc.Resume != nil && len(qc.Resume.Skills) > 0 {
		skills = strings.Join(qc.Resume.Skills, ", ")
	}

	previous := ""
	if len(qc.PreviousQuestions) > 0 {
		var b strings.Builder
		b.WriteString("Previously asked:\n")
		for i, text := range qc.PreviousQuestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, text)
		}
		previous = strings.TrimRight(b.String(), "\n")
	}

	return map[string]string{
		"Type":              qc.Type,
		"TargetRole":        targetRole,
		"Experience":        experience,
		"Skills":            skills,
		"Difficulty":        qc.Difficulty,
		"QuestionNumber":    fmt.Sprintf("%d", qc.QuestionNumber),
		"PreviousQuestions": previous,
	}
}

// fallbackQuestion is the deterministic substitute used whenever the provider
// cannot produce a valid question.
func fallbackQuestion(difficulty string) models.Question {
	return models.Question{
		ID:         uuid.New().String(),
		Text:       "Tell me about your experience with software development.",
		Category:   "General",
		Difficulty: difficulty,
	}
}

// shortAnswerEvaluation is the deterministic fast path for trivially short
// answers; it must make zero provider calls.
func shortAnswerEvaluation() models.Evaluation {
	return models.Evaluation{
		Score:        1,
		Feedback:     "Answer too brief. Provide more details.",
		Strengths:    []string{},
		Improvements: []string{"Elaborate more", "Include examples"},
	}
}

// fallbackEvaluation is the neutral substitute used on provider or parse failure.
func fallbackEvaluation() models.Evaluation {
	return models.Evaluation{
		Score:        5,
		Feedback:     "Could not evaluate. Try again.",
		Strengths:    []string{"Attempted answer"},
		Improvements: []string{"Provide more detail"},
	}
}
