package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"prepwise/interview/internal/gateway"
	"prepwise/interview/internal/interview"
	"prepwise/interview/internal/middleware"
	"prepwise/interview/internal/models"
	"prepwise/interview/internal/repositories"
	"prepwise/interview/internal/testhelpers"
)

const testSecret = "test-secret"

type mockAI struct {
	generateQuestionFn func(ctx context.Context, qc gateway.QuestionContext) models.Question
	evaluateAnswerFn   func(ctx context.Context, ec gateway.EvaluationContext) models.Evaluation

	questionCalls int
}

func (m *mockAI) GenerateQuestion(ctx context.Context, qc gateway.QuestionContext) models.Question {
	m.questionCalls++
	if m.generateQuestionFn == nil {
		return models.Question{
			ID:         fmt.Sprintf("q%d", m.questionCalls),
			Text:       fmt.Sprintf("Question %d?", qc.QuestionNumber),
			Category:   "Technical",
			Difficulty: qc.Difficulty,
		}
	}
	return m.generateQuestionFn(ctx, qc)
}

func (m *mockAI) EvaluateAnswer(ctx context.Context, ec gateway.EvaluationContext) models.Evaluation {
	if m.evaluateAnswerFn == nil {
		return models.Evaluation{Score: 8, Feedback: "Solid answer."}
	}
	return m.evaluateAnswerFn(ctx, ec)
}

func (m *mockAI) SummarizeSession(answered []models.Question) models.FinalReport {
	return models.FinalReport{
		Strengths:       []string{"Completed interview"},
		Weaknesses:      []string{},
		Recommendations: []string{"Keep practicing"},
	}
}

type mockProfiles struct{}

func (mockProfiles) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return &models.UserProfile{UserID: userID, TargetRole: "Backend Engineer"}, nil
}

type mockResumes struct{}

func (mockResumes) GetResume(ctx context.Context, userID string) (*models.ParsedResume, error) {
	return nil, repositories.ErrResumeNotFound
}

// setupTestServer wires a real engine over an in-memory store behind the same
// middleware chain the service uses in production.
func setupTestServer(t *testing.T, ai *mockAI) (*chi.Mux, *repositories.SessionRepository) {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	store := &repositories.SessionRepository{DB: db}
	engine := interview.NewEngine(store, mockProfiles{}, mockResumes{}, ai, zap.NewNop())
	handler := NewInterviewHandler(engine, zap.NewNop())

	router := chi.NewRouter()
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.Use(middleware.RequireAuth(testSecret))

		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/", handler.StartHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/{sessionID}/answer", handler.AnswerHandler)
		r.Post("/{sessionID}/next", handler.NextHandler)
		r.Post("/{sessionID}/skip", handler.SkipHandler)
		r.Post("/{sessionID}/complete", handler.CompleteHandler)
		r.Post("/{sessionID}/pause", handler.PauseHandler)
		r.Post("/{sessionID}/resume", handler.ResumeHandler)
		r.Get("/{sessionID}", handler.GetHandler)
	})

	return router, store
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + signed
}
