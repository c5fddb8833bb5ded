package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"prepwise/interview/internal/models"
	"prepwise/interview/internal/testhelpers"
)

func newSession(userID string) *models.InterviewSession {
	return &models.InterviewSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Type:           "technical",
		Difficulty:     "medium",
		Duration:       "quick",
		Status:         models.StatusInProgress,
		TotalQuestions: 5,
		Questions: models.QuestionList{
			{ID: "q1", Text: "First?", Category: "Technical", Difficulty: "medium"},
		},
		StartedAt: time.Now(),
	}
}

func TestSessionRepositoryCreateAndFind(t *testing.T) {
	repo := &SessionRepository{DB: testhelpers.SetupTestDB(t)}

	session := newSession("user-1")
	if err := repo.Create(session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session.Version != 1 {
		t.Fatalf("expected initial version 1, got %d", session.Version)
	}

	loaded, err := repo.FindByIDAndUser(session.ID, "user-1")
	if err != nil {
		t.Fatalf("FindByIDAndUser failed: %v", err)
	}
	if loaded.Type != "technical" || len(loaded.Questions) != 1 {
		t.Fatalf("unexpected loaded session: %+v", loaded)
	}
	if loaded.Questions[0].Text != "First?" {
		t.Fatalf("question column did not round-trip: %+v", loaded.Questions)
	}
}

func TestSessionRepositoryOwnershipScoping(t *testing.T) {
	repo := &SessionRepository{DB: testhelpers.SetupTestDB(t)}

	session := newSession("user-1")
	if err := repo.Create(session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// a foreign owner and a missing session are indistinguishable
	if _, err := repo.FindByIDAndUser(session.ID, "user-2"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for foreign user, got %v", err)
	}
	if _, err := repo.FindByIDAndUser("missing", "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for missing id, got %v", err)
	}
}

func TestSessionRepositoryUpdate(t *testing.T) {
	t.Run("persists changes and bumps version", func(t *testing.T) {
		repo := &SessionRepository{DB: testhelpers.SetupTestDB(t)}
		session := newSession("user-1")
		if err := repo.Create(session); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		session.Status = models.StatusPaused
		if err := repo.Update(session); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if session.Version != 2 {
			t.Fatalf("expected version 2 after update, got %d", session.Version)
		}

		loaded, _ := repo.FindByIDAndUser(session.ID, "user-1")
		if loaded.Status != models.StatusPaused || loaded.Version != 2 {
			t.Fatalf("update not persisted: %+v", loaded)
		}
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		repo := &SessionRepository{DB: testhelpers.SetupTestDB(t)}
		session := newSession("user-1")
		if err := repo.Create(session); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		first, _ := repo.FindByIDAndUser(session.ID, "user-1")
		second, _ := repo.FindByIDAndUser(session.ID, "user-1")

		first.Status = models.StatusPaused
		if err := repo.Update(first); err != nil {
			t.Fatalf("first update failed: %v", err)
		}

		second.Status = models.StatusCompleted
		err := repo.Update(second)
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		if second.Version != 1 {
			t.Fatalf("failed update must not bump the in-memory version, got %d", second.Version)
		}

		loaded, _ := repo.FindByIDAndUser(session.ID, "user-1")
		if loaded.Status != models.StatusPaused {
			t.Fatalf("losing write leaked through: %s", loaded.Status)
		}
	})
}

func TestMarkAbandonedBefore(t *testing.T) {
	repo := &SessionRepository{DB: testhelpers.SetupTestDB(t)}

	stale := newSession("user-1")
	paused := newSession("user-1")
	paused.Status = models.StatusPaused
	completed := newSession("user-1")
	completed.Status = models.StatusCompleted

	for _, s := range []*models.InterviewSession{stale, paused, completed} {
		if err := repo.Create(s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	marked, err := repo.MarkAbandonedBefore(time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("MarkAbandonedBefore failed: %v", err)
	}
	if marked != 2 {
		t.Fatalf("expected 2 sessions marked, got %d", marked)
	}

	for _, s := range []*models.InterviewSession{stale, paused} {
		loaded, _ := repo.FindByIDAndUser(s.ID, "user-1")
		if loaded.Status != models.StatusAbandoned {
			t.Fatalf("expected abandoned, got %s", loaded.Status)
		}
		if loaded.Version != 2 {
			t.Fatalf("expected version bump on sweep, got %d", loaded.Version)
		}
	}

	loaded, _ := repo.FindByIDAndUser(completed.ID, "user-1")
	if loaded.Status != models.StatusCompleted {
		t.Fatalf("completed session must not be swept, got %s", loaded.Status)
	}

	// nothing left to sweep
	marked, err = repo.MarkAbandonedBefore(time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if marked != 0 {
		t.Fatalf("expected idempotent sweep, got %d", marked)
	}
}

func TestProfileRepository(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := &ProfileRepository{DB: db}
	resumes := &ResumeRepository{DB: db}
	ctx := context.Background()

	if _, err := profiles.GetProfile(ctx, "ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := resumes.GetResume(ctx, "ghost"); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}

	if err := db.Create(&models.UserProfile{UserID: "user-1", TargetRole: "SRE", Experience: "3 years"}).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	if err := db.Create(&models.Resume{
		UserID:     "user-1",
		ParsedData: models.ParsedResume{Skills: []string{"Go", "Kubernetes"}},
	}).Error; err != nil {
		t.Fatalf("failed to seed resume: %v", err)
	}

	profile, err := profiles.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.TargetRole != "SRE" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	resume, err := resumes.GetResume(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetResume failed: %v", err)
	}
	if len(resume.Skills) != 2 || resume.Skills[0] != "Go" {
		t.Fatalf("resume did not round-trip: %+v", resume)
	}
}
