package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"prepwise/interview/internal/interview"
	"prepwise/interview/internal/middleware"
	"prepwise/interview/internal/models"
	"prepwise/interview/internal/utils"
)

type InterviewHandler struct {
	engine *interview.Engine
	logger *zap.Logger
}

func NewInterviewHandler(engine *interview.Engine, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartInterviewRequest](r)
	userID := middleware.GetUserID(r)

	resp, err := h.engine.Start(r.Context(), userID, req)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

func (h *InterviewHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.SubmitAnswer(r.Context(), userID, sessionID, req)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) NextHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.NextQuestion(r.Context(), userID, sessionID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) SkipHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.Skip(r.Context(), userID, sessionID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.Complete(r.Context(), userID, sessionID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) PauseHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.Pause(r.Context(), userID, sessionID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) ResumeHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.Resume(r.Context(), userID, sessionID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.engine.Get(r.Context(), userID, sessionID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// writeEngineError maps the engine's error taxonomy to HTTP responses:
// not-found and invalid-state are caller-visible with a readable message,
// everything else is an opaque server error.
func (h *InterviewHandler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case interview.IsNotFound(err):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: err.Error(),
		})
	case interview.IsInvalidState(err):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "invalid_state",
			Message: err.Error(),
		})
	default:
		h.logger.Error("Interview operation failed", zap.Error(err), zap.String("path", r.URL.Path))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Something went wrong",
		})
	}
}

func sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if sessionID == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_session_id",
			Message: "Session ID is required",
		})
		return "", false
	}
	return sessionID, true
}
