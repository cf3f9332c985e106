package handlers

import (
	"context"
	"net/http"

	"trainer-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	Sessions *service.SessionService
}

func NewAnswerHandler(sessions *service.SessionService) *AnswerHandler {
	return &AnswerHandler{Sessions: sessions}
}

type answerRequest struct {
	UserID         string  `json:"user_id"`
	SessionID      string  `json:"session_id"`
	QuestionID     string  `json:"question_id"`
	SelectedAnswer string  `json:"selected_answer"`
	TimeTaken      float64 `json:"time_taken_seconds"`
	TimedOut       bool    `json:"timed_out"`
}

// SubmitAnswer grades a selection and returns the reveal: correctness,
// explanation, citation, the refreshed topic aggregate, and session progress.
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" || req.SessionID == "" || req.QuestionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, session_id and question_id are required"})
		return
	}
	result, err := h.Sessions.SubmitAnswer(
		context.Background(),
		req.UserID,
		req.SessionID,
		req.QuestionID,
		req.SelectedAnswer,
		req.TimeTaken,
		req.TimedOut,
	)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
