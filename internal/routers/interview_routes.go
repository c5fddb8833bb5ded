package routers

import (
	"github.com/go-chi/chi/v5"

	"prepwise/interview/internal/handlers"
	"prepwise/interview/internal/middleware"
	"prepwise/interview/internal/models"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, jwtSecret string) {
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))

		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/", interviewHandler.StartHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/{sessionID}/answer", interviewHandler.AnswerHandler)
		r.Post("/{sessionID}/next", interviewHandler.NextHandler)
		r.Post("/{sessionID}/skip", interviewHandler.SkipHandler)
		r.Post("/{sessionID}/complete", interviewHandler.CompleteHandler)
		r.Post("/{sessionID}/pause", interviewHandler.PauseHandler)
		r.Post("/{sessionID}/resume", interviewHandler.ResumeHandler)
		r.Get("/{sessionID}", interviewHandler.GetHandler)
	})
}
