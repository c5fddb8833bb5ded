package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prepwise/interview/internal/gateway"
	"prepwise/interview/internal/models"
	"prepwise/interview/internal/repositories"
	"prepwise/interview/internal/scoring"
)

// SessionStore is the persistence boundary for session aggregates.
type SessionStore interface {
	Create(session *models.InterviewSession) error
	FindByIDAndUser(sessionID, userID string) (*models.InterviewSession, error)
	Update(session *models.InterviewSession) error
}

// ProfileProvider reads profile fields for prompt context.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// ResumeProvider reads parsed resume data. Absence is a valid state except
// for role-specific interviews.
type ResumeProvider interface {
	GetResume(ctx context.Context, userID string) (*models.ParsedResume, error)
}

// AIGateway is the total (never-failing) boundary to the generative-text
// provider.
type AIGateway interface {
	GenerateQuestion(ctx context.Context, qc gateway.QuestionContext) models.Question
	EvaluateAnswer(ctx context.Context, ec gateway.EvaluationContext) models.Evaluation
	SummarizeSession(answered []models.Question) models.FinalReport
}

// Engine drives the interview session state machine. Mutating operations on
// the same session id are serialized through a per-id lock, so the
// read-modify-write cycle of one operation can never interleave with another.
type Engine struct {
	store    SessionStore
	profiles ProfileProvider
	resumes  ResumeProvider
	ai       AIGateway
	logger   *zap.Logger
	locks    *sessionLocks
}

func NewEngine(store SessionStore, profiles ProfileProvider, resumes ResumeProvider, ai AIGateway, logger *zap.Logger) *Engine {
	return &Engine{
		store:    store,
		profiles: profiles,
		resumes:  resumes,
		ai:       ai,
		logger:   logger,
		locks:    newSessionLocks(),
	}
}

// Start creates a session with its first generated question.
func (e *Engine) Start(ctx context.Context, userID string, req *models.StartInterviewRequest) (*models.StartInterviewResponse, error) {
	profile, err := e.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	resume, err := e.resumes.GetResume(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, fmt.Errorf("load resume: %w", err)
		}
		if req.Type == "role-specific" {
			return nil, ErrResumeRequired
		}
		resume = nil
	}

	totalQuestions, ok := models.QuestionCounts[req.Duration]
	if !ok {
		totalQuestions = models.DefaultTotalQuestions
	}

	firstQuestion := e.ai.GenerateQuestion(ctx, gateway.QuestionContext{
		Type:              req.Type,
		Difficulty:        req.Difficulty,
		Profile:           profile,
		Resume:            resume,
		QuestionNumber:    1,
		PreviousQuestions: nil,
	})

	session := &models.InterviewSession{
		ID:                   uuid.New().String(),
		UserID:               userID,
		Type:                 req.Type,
		Difficulty:           req.Difficulty,
		Duration:             req.Duration,
		Status:               models.StatusInProgress,
		TotalQuestions:       totalQuestions,
		CurrentQuestionIndex: 0,
		Questions:            models.QuestionList{firstQuestion},
		StartedAt:            time.Now(),
	}

	if err := e.store.Create(session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	e.logger.Info("Interview session started",
		zap.String("session_id", session.ID),
		zap.String("type", session.Type),
		zap.Int("total_questions", totalQuestions))

	return &models.StartInterviewResponse{
		SessionID:      session.ID,
		Question:       models.NewQuestionView(firstQuestion),
		QuestionNumber: 1,
		TotalQuestions: totalQuestions,
	}, nil
}

// SubmitAnswer evaluates and records the answer for one question. A question
// is evaluated exactly once: re-answering is rejected, never re-scored.
func (e *Engine) SubmitAnswer(ctx context.Context, userID, sessionID string, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	release := e.locks.acquire(sessionID)
	defer release()

	session, err := e.load(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.StatusInProgress {
		return nil, ErrSessionNotActive
	}

	index := session.QuestionByID(req.QuestionID)
	if index < 0 {
		return nil, ErrQuestionNotFound
	}
	question := &session.Questions[index]
	if question.Answer != "" {
		return nil, ErrAlreadyAnswered
	}

	answer := strings.TrimSpace(req.Answer)
	evaluation := e.ai.EvaluateAnswer(ctx, gateway.EvaluationContext{
		Question:   question.Text,
		Answer:     answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	})

	now := time.Now()
	question.Answer = answer
	question.Evaluation = &evaluation
	question.TimeSpent = req.TimeSpent
	question.AnsweredAt = &now
	session.TotalTimeSpent = totalTimeSpent(session)

	if err := e.store.Update(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &models.SubmitAnswerResponse{
		Evaluation: evaluation,
		IsComplete: session.AnsweredCount() >= session.TotalQuestions,
		SessionID:  session.ID,
	}, nil
}

// NextQuestion generates and appends the next question, feeding every
// previously answered question's text back as de-duplication context.
// Skipped questions are excluded from that context.
func (e *Engine) NextQuestion(ctx context.Context, userID, sessionID string) (*models.NextQuestionResponse, error) {
	release := e.locks.acquire(sessionID)
	defer release()

	session, err := e.load(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.StatusInProgress {
		return nil, ErrSessionNotActive
	}
	if len(session.Questions) >= session.TotalQuestions {
		return nil, ErrInterviewComplete
	}

	// prompt context is best-effort here: the session already exists, so a
	// missing profile or resume must not block question generation
	profile, err := e.profiles.GetProfile(ctx, userID)
	if err != nil {
		profile = nil
	}
	resume, err := e.resumes.GetResume(ctx, userID)
	if err != nil {
		resume = nil
	}

	previous := make([]string, 0, len(session.Questions))
	for i := range session.Questions {
		if session.Questions[i].Answered() {
			previous = append(previous, session.Questions[i].Text)
		}
	}

	questionNumber := len(session.Questions) + 1
	question := e.ai.GenerateQuestion(ctx, gateway.QuestionContext{
		Type:              session.Type,
		Difficulty:        session.Difficulty,
		Profile:           profile,
		Resume:            resume,
		QuestionNumber:    questionNumber,
		PreviousQuestions: previous,
	})

	session.Questions = append(session.Questions, question)
	session.CurrentQuestionIndex = len(session.Questions) - 1

	if err := e.store.Update(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &models.NextQuestionResponse{
		Question:       models.NewQuestionView(question),
		QuestionNumber: questionNumber,
		TotalQuestions: session.TotalQuestions,
	}, nil
}

// Skip marks the question at the effective current index as skipped. The
// index is clamped to the last question so a corrupted index in the store can
// never cause an out-of-bounds write.
func (e *Engine) Skip(ctx context.Context, userID, sessionID string) (*models.SkipQuestionResponse, error) {
	release := e.locks.acquire(sessionID)
	defer release()

	session, err := e.load(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if len(session.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	skipIndex := session.CurrentQuestionIndex
	if skipIndex >= len(session.Questions) {
		skipIndex = len(session.Questions) - 1
	}
	if skipIndex < 0 {
		return nil, ErrNoQuestions
	}

	evaluation := skippedEvaluation()
	session.Questions[skipIndex].Answer = models.SkippedAnswer
	session.Questions[skipIndex].Evaluation = &evaluation
	session.CurrentQuestionIndex = skipIndex + 1

	if err := e.store.Update(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &models.SkipQuestionResponse{
		IsComplete: session.CurrentQuestionIndex >= session.TotalQuestions,
		SessionID:  session.ID,
	}, nil
}

// Pause sets the session aside without losing progress.
func (e *Engine) Pause(ctx context.Context, userID, sessionID string) (*models.SessionSnapshot, error) {
	return e.setStatus(userID, sessionID, models.StatusPaused)
}

// Resume reactivates a paused session.
func (e *Engine) Resume(ctx context.Context, userID, sessionID string) (*models.SessionSnapshot, error) {
	return e.setStatus(userID, sessionID, models.StatusInProgress)
}

// Complete freezes the session and synthesizes its final report.
func (e *Engine) Complete(ctx context.Context, userID, sessionID string) (*models.CompleteInterviewResponse, error) {
	release := e.locks.acquire(sessionID)
	defer release()

	session, err := e.load(sessionID, userID)
	if err != nil {
		return nil, err
	}

	overallScore := scoring.OverallScore(session.Questions)
	report := e.ai.SummarizeSession(session.AnsweredQuestions())
	report.CategoryScores = scoring.CategoryBreakdown(session.Questions)

	now := time.Now()
	session.Status = models.StatusCompleted
	session.CompletedAt = &now
	session.OverallScore = overallScore
	session.FinalReport = &report

	if err := e.store.Update(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	e.logger.Info("Interview session completed",
		zap.String("session_id", session.ID),
		zap.Int("overall_score", overallScore))

	return &models.CompleteInterviewResponse{
		SessionID:      session.ID,
		OverallScore:   overallScore,
		Report:         report,
		TotalQuestions: session.TotalQuestions,
	}, nil
}

// Get returns the owned session snapshot.
func (e *Engine) Get(ctx context.Context, userID, sessionID string) (*models.SessionSnapshot, error) {
	session, err := e.load(sessionID, userID)
	if err != nil {
		return nil, err
	}
	snapshot := models.NewSessionSnapshot(session)
	return &snapshot, nil
}

func (e *Engine) setStatus(userID, sessionID, status string) (*models.SessionSnapshot, error) {
	release := e.locks.acquire(sessionID)
	defer release()

	session, err := e.load(sessionID, userID)
	if err != nil {
		return nil, err
	}

	session.Status = status
	if err := e.store.Update(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	snapshot := models.NewSessionSnapshot(session)
	return &snapshot, nil
}

func (e *Engine) load(sessionID, userID string) (*models.InterviewSession, error) {
	session, err := e.store.FindByIDAndUser(sessionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

func totalTimeSpent(session *models.InterviewSession) int {
	total := 0
	for i := range session.Questions {
		total += session.Questions[i].TimeSpent
	}
	return total
}

// skippedEvaluation is the fixed zero-score evaluation recorded for a skipped
// question.
func skippedEvaluation() models.Evaluation {
	return models.Evaluation{
		Score:        0,
		Feedback:     "Question was skipped",
		Strengths:    []string{},
		Improvements: []string{"Answer the question to get feedback"},
	}
}
