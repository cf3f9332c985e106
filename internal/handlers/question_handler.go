package handlers

import (
	"context"
	"net/http"
	"strings"

	"trainer-service/internal/models"
	"trainer-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service  *service.QuestionService
	Sessions *service.SessionService
}

func NewQuestionHandler(s *service.QuestionService, sessions *service.SessionService) *QuestionHandler {
	return &QuestionHandler{Service: s, Sessions: sessions}
}

// NextQuestion runs the adaptive selection for a session. The answer and
// explanation are withheld until the answer is submitted.
func (h *QuestionHandler) NextQuestion(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}
	var subjects []string
	if raw := c.Query("subjects"); raw != "" {
		subjects = strings.Split(raw, ",")
	}
	question, err := h.Sessions.NextQuestion(context.Background(), sessionID, subjects)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, question.Public())
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	question, err := h.Service.GetQuestion(context.Background(), id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	if question == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	if c.Query("include_answer") == "true" {
		c.JSON(http.StatusOK, question)
		return
	}
	c.JSON(http.StatusOK, question.Public())
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateQuestion(context.Background(), &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) ListSubjects(c *gin.Context) {
	overview, err := h.Service.GetSubjectOverview(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}
